package stager

import "errors"

// Ошибки staging.
var (
	// ErrSourceNotFound — каталог исходников не существует.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrSourceNotDir — путь к исходникам указывает не на каталог.
	ErrSourceNotDir = errors.New("source path is not a directory")
)

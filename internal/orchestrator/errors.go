package orchestrator

import "errors"

// Ошибки оркестратора.
var (
	// ErrNoEntryFile — имя entry-файла не задано.
	ErrNoEntryFile = errors.New("entry file name is required")

	// ErrNoDestination — целевой путь не задан.
	ErrNoDestination = errors.New("destination path is required")

	// ErrEntryNotStaged — после staging workspace не содержит entry-файл,
	// значит bin-override в манифесте указал бы в пустоту.
	ErrEntryNotStaged = errors.New("entry file not found in staged sources")
)

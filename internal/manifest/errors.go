package manifest

import "errors"

// Ошибки работы с манифестом.
var (
	// ErrManifestNotFound — манифест отсутствует в каталоге (для Merge/Read).
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestDecode — манифест не удалось разобрать.
	ErrManifestDecode = errors.New("manifest decode failed")
)

package builder

import (
	"errors"
	"fmt"
)

// Ошибки сборки.
var (
	// ErrToolchainUnavailable — внешний toolchain не вызывается.
	ErrToolchainUnavailable = errors.New("toolchain unavailable")

	// ErrBuildFailed — внешняя сборка завершилась ненулевым кодом.
	ErrBuildFailed = errors.New("build failed")

	// ErrArtifactMissing — сборка отчиталась успехом, но ожидаемый
	// артефакт отсутствует (разошлись предположения о путях toolchain).
	ErrArtifactMissing = errors.New("build artifact missing")
)

// BuildError — ошибка внешней сборки с полной диагностикой.
type BuildError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error реализует интерфейс error.
func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed with exit code %d", e.ExitCode)
}

// Unwrap возвращает базовую ошибку.
func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}

package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/shaiso/forge/internal/telemetry"
)

// DefaultToolchain — команда сборки по умолчанию.
const DefaultToolchain = "cargo"

// releaseDir — каталог release-артефактов относительно workspace.
var releaseDir = filepath.Join("target", "release")

// Builder вызывает внешний toolchain.
type Builder struct {
	toolchain string
}

// New создаёт Builder. Пустая команда заменяется на DefaultToolchain.
func New(toolchain string) *Builder {
	if toolchain == "" {
		toolchain = DefaultToolchain
	}
	return &Builder{toolchain: toolchain}
}

// ExeSuffix возвращает расширение исполняемого файла текущей платформы:
// ".exe" на Windows, пустую строку на остальных.
func ExeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// Probe проверяет, что toolchain вызывается (version-probe).
// Возвращает ErrToolchainUnavailable, если команда не запускается
// или завершается с ошибкой.
func (b *Builder) Probe(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.toolchain, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrToolchainUnavailable, b.toolchain, err)
	}

	telemetry.FromContext(ctx).Debug("toolchain probe ok",
		"toolchain", b.toolchain,
		"version", string(bytes.TrimSpace(out)),
	)
	return nil
}

// Build выполняет release-сборку в workspaceDir и возвращает путь
// к артефакту для бинарника binary.
//
// stdout и stderr сборки захватываются целиком (не стримятся) и при
// ненулевом коде выхода возвращаются внутри BuildError. Успешная
// сборка без артефакта по ожидаемому пути — ErrArtifactMissing.
func (b *Builder) Build(ctx context.Context, workspaceDir, binary string) (string, error) {
	logger := telemetry.FromContext(ctx)

	cmd := exec.CommandContext(ctx, b.toolchain, "build", "--release")
	cmd.Dir = workspaceDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("invoking release build", "toolchain", b.toolchain)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &BuildError{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("%w: %s: %v", ErrToolchainUnavailable, b.toolchain, err)
	}

	artifact := filepath.Join(workspaceDir, releaseDir, binary+ExeSuffix())
	if _, err := os.Stat(artifact); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrArtifactMissing, artifact)
		}
		return "", fmt.Errorf("stat artifact: %w", err)
	}

	logger.Debug("build succeeded", "artifact", artifact)
	return artifact, nil
}

// Deliver копирует артефакт в destination.
//
// Родительский каталог создаётся при необходимости. Копирование идёт
// через временный файл с rename, чтобы при сбое по целевому пути не
// остался частичный бинарник. Вне Windows на результат ставится 0755.
func (b *Builder) Deliver(artifact, destination string) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	in, err := os.Open(artifact)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(destination), filepath.Base(destination)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp destination: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("copy artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp destination: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpName, 0o755); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("chmod destination: %w", err)
		}
	}

	if err := os.Rename(tmpName, destination); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace destination: %w", err)
	}
	return nil
}

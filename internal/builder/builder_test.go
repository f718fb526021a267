package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubToolchain создаёт скрипт, изображающий cargo.
// body выполняется при вызове "build --release";
// "--version" всегда отвечает успехом.
func stubToolchain(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub toolchain scripts require a POSIX shell")
	}

	script := "#!/bin/sh\n" +
		"if [ \"$1\" = \"--version\" ]; then echo \"stub-cargo 1.0.0\"; exit 0; fi\n" +
		body + "\n"

	path := filepath.Join(t.TempDir(), "stub-cargo")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew_DefaultToolchain(t *testing.T) {
	b := New("")
	if b.toolchain != DefaultToolchain {
		t.Errorf("expected %q, got %q", DefaultToolchain, b.toolchain)
	}
}

func TestProbe(t *testing.T) {
	t.Run("available toolchain", func(t *testing.T) {
		b := New(stubToolchain(t, "exit 0"))
		if err := b.Probe(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing toolchain", func(t *testing.T) {
		b := New(filepath.Join(t.TempDir(), "no-such-cargo"))
		err := b.Probe(context.Background())
		if !errors.Is(err, ErrToolchainUnavailable) {
			t.Errorf("expected ErrToolchainUnavailable, got %v", err)
		}
	})
}

func TestBuild_Success(t *testing.T) {
	workspace := t.TempDir()
	toolchain := stubToolchain(t,
		"mkdir -p target/release\n"+
			"printf 'binary-bytes' > target/release/app\n"+
			"exit 0")

	b := New(toolchain)
	artifact, err := b.Build(context.Background(), workspace, "app")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(workspace, "target", "release", "app")
	if artifact != want {
		t.Errorf("expected artifact %s, got %s", want, artifact)
	}
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary-bytes" {
		t.Errorf("artifact content mismatch: %q", data)
	}
}

func TestBuild_NonzeroExit(t *testing.T) {
	toolchain := stubToolchain(t,
		"echo 'compiling app' \n"+
			"echo 'error[E0433]: unresolved import' >&2\n"+
			"exit 101")

	b := New(toolchain)
	_, err := b.Build(context.Background(), t.TempDir(), "app")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrBuildFailed) {
		t.Errorf("expected ErrBuildFailed, got %v", err)
	}

	var bErr *BuildError
	if !errors.As(err, &bErr) {
		t.Fatalf("expected BuildError, got %T", err)
	}
	if bErr.ExitCode != 101 {
		t.Errorf("expected exit code 101, got %d", bErr.ExitCode)
	}
	if bErr.Stdout == "" || bErr.Stderr == "" {
		t.Error("BuildError must carry captured stdout and stderr")
	}
}

func TestBuild_ArtifactMissing(t *testing.T) {
	// Сборка успешна, но артефакт не появился.
	b := New(stubToolchain(t, "exit 0"))
	_, err := b.Build(context.Background(), t.TempDir(), "app")
	if !errors.Is(err, ErrArtifactMissing) {
		t.Errorf("expected ErrArtifactMissing, got %v", err)
	}
}

func TestDeliver(t *testing.T) {
	artifact := filepath.Join(t.TempDir(), "app")
	if err := os.WriteFile(artifact, []byte("binary-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "out", "bin", "app")
	b := New("")
	if err := b.Deliver(artifact, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "binary-bytes" {
		t.Errorf("delivered content mismatch: %q", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dest)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Errorf("expected mode 0755, got %o", info.Mode().Perm())
		}
	}
}

func TestDeliver_MissingArtifact(t *testing.T) {
	b := New("")
	err := b.Deliver(filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "out"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

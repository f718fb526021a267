package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/shaiso/forge/internal/domain"
)

// FileName — имя файла манифеста в каталоге workspace.
const FileName = "Cargo.toml"

// Package — идентичность пакета в манифесте.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// BinTarget — явная цель сборки.
// Присутствует только когда entry-файл отличается от main.rs;
// Path всегда задан относительно каталога манифеста.
type BinTarget struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Manifest — манифест сборки целиком.
type Manifest struct {
	Package      Package        `toml:"package"`
	Bin          []BinTarget    `toml:"bin,omitempty"`
	Dependencies map[string]any `toml:"dependencies"`
}

// DependencyTable декодирует секцию dependencies в доменную таблицу.
func (m *Manifest) DependencyTable() (*domain.Table, error) {
	table, err := domain.TableFromMap(m.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestDecode, err)
	}
	return table, nil
}

// Write создаёт манифест в dir с пустой таблицей зависимостей.
// bin — опциональная цель сборки (nil для entry-файла main.rs).
func Write(dir string, pkg Package, bin *BinTarget) error {
	m := &Manifest{
		Package:      pkg,
		Dependencies: map[string]any{},
	}
	if bin != nil {
		m.Bin = []BinTarget{*bin}
	}
	return writeAtomic(dir, m)
}

// Merge читает манифест из dir, целиком заменяет таблицу зависимостей
// и перезаписывает файл. При любой ошибке прежний манифест не меняется.
func Merge(dir string, table *domain.Table) error {
	m, err := Read(dir)
	if err != nil {
		return err
	}
	m.Dependencies = table.ToMap()
	return writeAtomic(dir, m)
}

// Read читает и декодирует манифест из dir.
func Read(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestDecode, err)
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string]any{}
	}
	return &m, nil
}

// writeAtomic сериализует манифест во временный файл в том же каталоге
// и подменяет Cargo.toml через rename.
func writeAtomic(dir string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp manifest: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, FileName)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace manifest: %w", err)
	}
	return nil
}

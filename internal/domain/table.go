package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidDependencyShape — значение зависимости имеет неподдерживаемый тип.
var ErrInvalidDependencyShape = errors.New("invalid dependency shape")

// Table — таблица зависимостей: имя (уникальное) → Dependency.
//
// Порядок вставки не влияет на корректность, но сохраняется,
// чтобы вывод (таблица CLI, манифест) был воспроизводимым.
type Table struct {
	names   []string
	entries map[string]*Dependency
}

// NewTable создаёт пустую таблицу.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Dependency)}
}

// Set добавляет или заменяет зависимость.
// При повторном имени сохраняется позиция первой вставки.
func (t *Table) Set(name string, dep *Dependency) {
	if _, exists := t.entries[name]; !exists {
		t.names = append(t.names, name)
	}
	t.entries[name] = dep
}

// Get возвращает зависимость по имени.
func (t *Table) Get(name string) (*Dependency, bool) {
	dep, ok := t.entries[name]
	return dep, ok
}

// Names возвращает имена в порядке вставки.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len возвращает количество зависимостей.
func (t *Table) Len() int {
	return len(t.entries)
}

// Equal сравнивает таблицы по содержимому. Порядок вставки не учитывается.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.entries) != len(other.entries) {
		return false
	}
	for name, dep := range t.entries {
		otherDep, ok := other.entries[name]
		if !ok || !dep.Equal(otherDep) {
			return false
		}
	}
	return true
}

// ToMap кодирует таблицу в обобщённую форму для сериализации
// (TOML-манифест, JSON-вывод CLI).
//
// Bare-зависимость кодируется строкой версии, структурированная — map
// с ключами version / features / optional и passthrough-атрибутами.
// Optional попадает в вывод только если был задан явно.
func (t *Table) ToMap() map[string]any {
	out := make(map[string]any, len(t.entries))
	for name, dep := range t.entries {
		if dep.Bare() {
			out[name] = dep.Version
			continue
		}
		record := map[string]any{"version": dep.Version}
		if dep.Features != nil {
			record["features"] = dep.Features
		}
		if dep.Optional != nil {
			record["optional"] = *dep.Optional
		}
		for k, v := range dep.Extra {
			record[k] = v
		}
		out[name] = record
	}
	return out
}

// TableFromMap декодирует таблицу из обобщённой формы (обратная к ToMap).
//
// Имена зависимостей вставляются в отсортированном порядке,
// чтобы результат был детерминированным.
func TableFromMap(m map[string]any) (*Table, error) {
	table := NewTable()

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch value := m[name].(type) {
		case string:
			table.Set(name, NewBare(value))

		case map[string]any:
			dep, err := dependencyFromMap(value)
			if err != nil {
				return nil, fmt.Errorf("dependency %s: %w", name, err)
			}
			table.Set(name, dep)

		default:
			return nil, fmt.Errorf("dependency %s: %w: %T", name, ErrInvalidDependencyShape, value)
		}
	}
	return table, nil
}

func dependencyFromMap(record map[string]any) (*Dependency, error) {
	dep := NewStructured("")

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := record[key]
		switch key {
		case "version":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: version is %T", ErrInvalidDependencyShape, value)
			}
			dep.Version = s

		case "features":
			features, err := stringSlice(value)
			if err != nil {
				return nil, err
			}
			dep.Features = features

		case "optional":
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: optional is %T", ErrInvalidDependencyShape, value)
			}
			dep.Optional = &b

		default:
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: attribute %s is %T", ErrInvalidDependencyShape, key, value)
			}
			dep.SetExtra(key, s)
		}
	}
	return dep, nil
}

func stringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("%w: feature is %T", ErrInvalidDependencyShape, elem)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: features is %T", ErrInvalidDependencyShape, value)
	}
}

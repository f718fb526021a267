package domain

// Dependency — одна зависимость из дескриптора.
//
// Зависимость существует в двух формах:
//   - bare: только строка версии (`serde: "1.0"`)
//   - структурированная: версия плюс атрибуты (features, optional, прочие)
//
// Форма необратима в пределах одного прохода парсера: как только
// у зависимости появляется хотя бы один атрибут, она навсегда
// остаётся структурированной (Promote).
type Dependency struct {
	// Version — версия зависимости. В bare-форме это единственное значение.
	Version string

	// Features — упорядоченный список фич.
	// Nil, если атрибут features не задан.
	Features []string

	// Optional — значение атрибута optional.
	// Nil, если атрибут не задан (отличаем "не указан" от "optional = false").
	Optional *bool

	// Extra — прочие атрибуты, сохранённые как есть (имя → значение).
	Extra map[string]string

	// bare — true, пока зависимость представлена одной строкой версии.
	bare bool
}

// NewBare создаёт зависимость в bare-форме (только версия).
func NewBare(version string) *Dependency {
	return &Dependency{Version: version, bare: true}
}

// NewStructured создаёт зависимость сразу в структурированной форме.
func NewStructured(version string) *Dependency {
	return &Dependency{Version: version}
}

// Bare возвращает true, если зависимость в bare-форме.
func (d *Dependency) Bare() bool {
	return d.bare
}

// Promote переводит зависимость в структурированную форму.
// Версия сохраняется. Повторные вызовы — no-op.
func (d *Dependency) Promote() {
	d.bare = false
}

// SetExtra сохраняет passthrough-атрибут.
func (d *Dependency) SetExtra(name, value string) {
	if d.Extra == nil {
		d.Extra = make(map[string]string)
	}
	d.Extra[name] = value
}

// Equal сравнивает зависимости по форме и всем атрибутам.
func (d *Dependency) Equal(other *Dependency) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.bare != other.bare || d.Version != other.Version {
		return false
	}
	if (d.Features == nil) != (other.Features == nil) || len(d.Features) != len(other.Features) {
		return false
	}
	for i := range d.Features {
		if d.Features[i] != other.Features[i] {
			return false
		}
	}
	if (d.Optional == nil) != (other.Optional == nil) {
		return false
	}
	if d.Optional != nil && *d.Optional != *other.Optional {
		return false
	}
	if len(d.Extra) != len(other.Extra) {
		return false
	}
	for k, v := range d.Extra {
		if other.Extra[k] != v {
			return false
		}
	}
	return true
}

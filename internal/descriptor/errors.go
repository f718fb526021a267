package descriptor

import (
	"errors"
	"fmt"
)

// Ошибки парсинга дескриптора.
var (
	// ErrMalformedDescriptor — дескриптор содержит некорректные строки (strict-режим).
	ErrMalformedDescriptor = errors.New("malformed descriptor")
)

// Diagnostic — одна пропущенная строка дескриптора.
type Diagnostic struct {
	Line   int    // номер строки (с 1)
	Text   string // содержимое строки (без пробелов по краям)
	Reason string // причина пропуска
}

// String возвращает диагностику в виде "line N: reason: text".
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Reason, d.Text)
}

// MalformedError — ошибка strict-режима с полным списком диагностик.
type MalformedError struct {
	Diagnostics []Diagnostic
}

// Error реализует интерфейс error.
func (e *MalformedError) Error() string {
	if len(e.Diagnostics) == 1 {
		return "descriptor has 1 malformed line: " + e.Diagnostics[0].String()
	}
	return fmt.Sprintf("descriptor has %d malformed lines, first: %s",
		len(e.Diagnostics), e.Diagnostics[0].String())
}

// Unwrap возвращает базовую ошибку.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedDescriptor
}

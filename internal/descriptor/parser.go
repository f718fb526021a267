package descriptor

import (
	"strings"

	"github.com/shaiso/forge/internal/domain"
)

// Причины пропуска строк (Diagnostic.Reason).
const (
	reasonEmptyName    = "dependency entry has empty name"
	reasonOrphanAttr   = "attribute line before any dependency entry"
	reasonUnrecognized = "line is neither a dependency entry nor an attribute"
)

// Parse разбирает содержимое дескриптора в таблицу зависимостей.
//
// Lenient-режим: строки, не подошедшие ни под один паттерн, пропускаются
// и возвращаются как диагностика — разбор никогда не прерывается.
//
// Правила:
//   - пустые строки и строки, начинающиеся с '#', игнорируются
//   - строка без отступа с ':' — новая зависимость; левая часть — имя,
//     правая (без кавычек) — bare-значение версии
//   - строка с отступом и '=' — атрибут последней открытой зависимости;
//     первый атрибут переводит bare-значение в структурированную форму,
//     сохраняя его как version
//   - features: [a, b] → список; без скобок → список из одного элемента
//   - optional: сравнение с "true" без учёта регистра
//   - прочие атрибуты сохраняются как есть
func Parse(content string) (*domain.Table, []Diagnostic) {
	table := domain.NewTable()
	var diags []Diagnostic

	// Аккумулятор прохода: зависимость, к которой привязываются атрибуты.
	var current *domain.Dependency

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'

		if !indented && strings.Contains(line, ":") {
			name, value, _ := strings.Cut(line, ":")
			name = strings.TrimSpace(name)
			if name == "" {
				diags = append(diags, Diagnostic{Line: i + 1, Text: trimmed, Reason: reasonEmptyName})
				// Пустое имя не открывает контекст: атрибуты ниже
				// не должны привязаться к предыдущей зависимости.
				current = nil
				continue
			}
			dep := domain.NewBare(unquote(strings.TrimSpace(value)))
			table.Set(name, dep)
			current = dep
			continue
		}

		if indented && strings.Contains(line, "=") {
			if current == nil {
				diags = append(diags, Diagnostic{Line: i + 1, Text: trimmed, Reason: reasonOrphanAttr})
				continue
			}
			name, value, _ := strings.Cut(line, "=")
			applyAttribute(current, strings.TrimSpace(name), strings.TrimSpace(value))
			continue
		}

		diags = append(diags, Diagnostic{Line: i + 1, Text: trimmed, Reason: reasonUnrecognized})
	}

	return table, diags
}

// ParseStrict разбирает дескриптор в strict-режиме: любая пропущенная
// строка превращает разбор в ошибку MalformedError.
func ParseStrict(content string) (*domain.Table, error) {
	table, diags := Parse(content)
	if len(diags) > 0 {
		return nil, &MalformedError{Diagnostics: diags}
	}
	return table, nil
}

// applyAttribute применяет атрибут к зависимости,
// при необходимости переводя её в структурированную форму.
func applyAttribute(dep *domain.Dependency, name, raw string) {
	dep.Promote()

	switch name {
	case "version":
		dep.Version = unquote(raw)
	case "features":
		dep.Features = parseFeatures(raw)
	case "optional":
		v := strings.EqualFold(unquote(raw), "true")
		dep.Optional = &v
	default:
		dep.SetExtra(name, unquote(raw))
	}
}

// parseFeatures разбирает значение атрибута features.
// "[a, b]" → {"a", "b"}; "[]" → пустой список; "x" → {"x"}.
func parseFeatures(raw string) []string {
	value := strings.TrimSpace(raw)
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.TrimSpace(value[1 : len(value)-1])
		if inner == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		features := make([]string, 0, len(parts))
		for _, part := range parts {
			features = append(features, unquote(strings.TrimSpace(part)))
		}
		return features
	}
	return []string{unquote(value)}
}

// unquote снимает парные двойные кавычки по краям значения.
// Оригинальный формат допускает и `"1.0"`, и `1.0`.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

package domain

import (
	"errors"
	"testing"
)

func TestTable_SetPreservesFirstInsertPosition(t *testing.T) {
	table := NewTable()
	table.Set("b", NewBare("1"))
	table.Set("a", NewBare("2"))
	table.Set("b", NewBare("3"))

	names := table.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("expected [b a], got %v", names)
	}
	dep, _ := table.Get("b")
	if dep.Version != "3" {
		t.Errorf("expected replacement value, got %q", dep.Version)
	}
}

func TestDependency_Equal(t *testing.T) {
	optTrue := true
	optFalse := false

	structured := func(mutate func(*Dependency)) *Dependency {
		d := NewStructured("1.0")
		d.Features = []string{"derive"}
		d.Optional = &optTrue
		if mutate != nil {
			mutate(d)
		}
		return d
	}

	tests := []struct {
		name string
		a, b *Dependency
		want bool
	}{
		{name: "equal bare", a: NewBare("1.0"), b: NewBare("1.0"), want: true},
		{name: "different versions", a: NewBare("1.0"), b: NewBare("2.0"), want: false},
		{name: "bare vs structured", a: NewBare("1.0"), b: NewStructured("1.0"), want: false},
		{name: "equal structured", a: structured(nil), b: structured(nil), want: true},
		{
			name: "different optional",
			a:    structured(nil),
			b:    structured(func(d *Dependency) { d.Optional = &optFalse }),
			want: false,
		},
		{
			name: "unset vs explicit optional",
			a:    structured(func(d *Dependency) { d.Optional = nil }),
			b:    structured(func(d *Dependency) { d.Optional = &optFalse }),
			want: false,
		},
		{
			name: "different features",
			a:    structured(nil),
			b:    structured(func(d *Dependency) { d.Features = []string{"rc"} }),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_MapRoundTrip(t *testing.T) {
	optFalse := false

	table := NewTable()
	table.Set("logging", NewBare("0.4"))

	serde := NewStructured("1.0")
	serde.Features = []string{"derive"}
	serde.Optional = &optFalse
	serde.SetExtra("git", "https://example.com/serde.git")
	table.Set("serde", serde)

	decoded, err := TableFromMap(table.ToMap())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !table.Equal(decoded) {
		t.Error("table must survive a ToMap/TableFromMap round trip")
	}
}

func TestTableFromMap_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{name: "numeric value", m: map[string]any{"serde": 1}},
		{name: "numeric version", m: map[string]any{"serde": map[string]any{"version": 1}}},
		{name: "string optional", m: map[string]any{"serde": map[string]any{"optional": "true"}}},
		{name: "numeric feature", m: map[string]any{"serde": map[string]any{"features": []any{1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TableFromMap(tt.m)
			if !errors.Is(err, ErrInvalidDependencyShape) {
				t.Errorf("expected ErrInvalidDependencyShape, got %v", err)
			}
		})
	}
}

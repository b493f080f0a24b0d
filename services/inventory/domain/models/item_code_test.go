package models

import (
	"strings"
	"testing"
)

func TestNewItemCode(t *testing.T) {
	t.Run("valid single character", func(t *testing.T) {
		c, err := NewItemCode("R")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "R" {
			t.Fatalf("expected %q, got %q", "R", c.String())
		}
	})

	t.Run("valid 32 characters", func(t *testing.T) {
		s := strings.Repeat("x", 32)
		c, err := NewItemCode(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != s {
			t.Fatalf("expected code of length 32, got %d", len(c.String()))
		}
	})

	t.Run("case preserved", func(t *testing.T) {
		c, err := NewItemCode("PC42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "PC42" {
			t.Fatalf("expected %q, got %q", "PC42", c.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewItemCode(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("33 characters returns error", func(t *testing.T) {
		if _, err := NewItemCode(strings.Repeat("x", 33)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace returns error", func(t *testing.T) {
		for _, s := range []string{"PC 42", " PC42", "PC42 ", "PC\t42"} {
			if _, err := NewItemCode(s); err == nil {
				t.Fatalf("expected error for %q, got nil", s)
			}
		}
	})

	t.Run("control character returns error", func(t *testing.T) {
		if _, err := NewItemCode("PC\x0042"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestItemCode_Norm(t *testing.T) {
	if ItemCode("PC42").Norm() != "pc42" {
		t.Fatalf("expected %q, got %q", "pc42", ItemCode("PC42").Norm())
	}
}

func TestItemCode_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b ItemCode
		want bool
	}{
		{"same spelling", "PC42", "PC42", true},
		{"different case", "dup1", "Dup1", true},
		{"all caps vs lower", "CHERNOBYL", "chernobyl", true},
		{"different codes", "PC42", "PC43", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

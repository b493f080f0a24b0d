package services

import (
	"strings"
	"testing"

	"github.com/ghuser/inventree/services/inventory/domain/models"
)

func TestValidateSubtree(t *testing.T) {
	registry := models.DefaultRegistry()

	t.Run("nil item returns error", func(t *testing.T) {
		if err := ValidateSubtree(nil, registry); err == nil {
			t.Fatal("expected error for nil item")
		}
	})

	t.Run("valid single item", func(t *testing.T) {
		item := models.NewItem("PC42").WithFeature("owner", "lab")
		if err := ValidateSubtree(item, registry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid nested subtree", func(t *testing.T) {
		root := models.NewItem("PC42").
			AddChild(models.NewItem("RAM1").WithFeature("type", "ram")).
			AddChild(models.NewItem("CPU1").WithFeature("working", "yes"))
		if err := ValidateSubtree(root, registry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed code in child", func(t *testing.T) {
		root := models.NewItem("PC42")
		root.AddChild(&models.Item{Code: "has space", OwnFeatures: models.Features{}})
		if err := ValidateSubtree(root, registry); err == nil {
			t.Fatal("expected error for malformed child code")
		}
	})

	t.Run("overlong code", func(t *testing.T) {
		item := &models.Item{Code: models.ItemCode(strings.Repeat("x", 33)), OwnFeatures: models.Features{}}
		if err := ValidateSubtree(item, registry); err == nil {
			t.Fatal("expected error for overlong code")
		}
	})

	t.Run("duplicate code inside subtree, different case", func(t *testing.T) {
		root := models.NewItem("dup1").AddChild(models.NewItem("Dup1"))
		if err := ValidateSubtree(root, registry); err == nil {
			t.Fatal("expected error for case-insensitive duplicate")
		}
	})

	t.Run("duplicate in sibling branches", func(t *testing.T) {
		root := models.NewItem("R").
			AddChild(models.NewItem("A").AddChild(models.NewItem("X"))).
			AddChild(models.NewItem("B").AddChild(models.NewItem("x")))
		if err := ValidateSubtree(root, registry); err == nil {
			t.Fatal("expected error for duplicate across branches")
		}
	})

	t.Run("unknown feature name", func(t *testing.T) {
		item := models.NewItem("PC42").WithFeature("bogus", "1")
		if err := ValidateSubtree(item, registry); err == nil {
			t.Fatal("expected error for unknown feature")
		}
	})

	t.Run("enum value outside domain in nested child", func(t *testing.T) {
		root := models.NewItem("PC42").
			AddChild(models.NewItem("HDD1").WithFeature("working", "broken"))
		if err := ValidateSubtree(root, registry); err == nil {
			t.Fatal("expected error for invalid enum value")
		}
	})
}

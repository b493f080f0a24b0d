package models

import "testing"

// buildTree returns R containing B containing L1, plus L2 under R.
func buildTree() *Item {
	l1 := NewItem("L1")
	l2 := NewItem("L2")
	b := NewItem("B").AddChild(l1)
	return NewItem("R").AddChild(b).AddChild(l2)
}

func TestItem_Walk_PreOrder(t *testing.T) {
	var visited []string
	buildTree().Walk(func(n *Item) bool {
		visited = append(visited, n.Code.String())
		return true
	})
	want := []string{"R", "B", "L1", "L2"}
	if len(visited) != len(want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, visited)
		}
	}
}

func TestItem_Walk_EarlyStop(t *testing.T) {
	var visited []string
	buildTree().Walk(func(n *Item) bool {
		visited = append(visited, n.Code.String())
		return n.Code != "B"
	})
	if len(visited) != 2 {
		t.Fatalf("expected walk to stop after B, visited %v", visited)
	}
}

func TestItem_Size(t *testing.T) {
	if got := buildTree().Size(); got != 4 {
		t.Fatalf("expected size 4, got %d", got)
	}
	if got := NewItem("solo").Size(); got != 1 {
		t.Fatalf("expected size 1, got %d", got)
	}
}

func TestItem_Find(t *testing.T) {
	root := buildTree()

	t.Run("finds nested node case-insensitively", func(t *testing.T) {
		n := root.Find("l1")
		if n == nil {
			t.Fatal("expected to find L1")
		}
		if n.Code != "L1" {
			t.Fatalf("expected L1, got %q", n.Code)
		}
	})

	t.Run("finds the root itself", func(t *testing.T) {
		if root.Find("R") != root {
			t.Fatal("expected the root node")
		}
	})

	t.Run("unknown code returns nil", func(t *testing.T) {
		if root.Find("nope") != nil {
			t.Fatal("expected nil for unknown code")
		}
	})
}

func TestItem_WithFeature_NilMap(t *testing.T) {
	i := &Item{Code: "X"}
	i.WithFeature("color", "red")
	if i.OwnFeatures["color"] != "red" {
		t.Fatal("WithFeature must initialize the map")
	}
}

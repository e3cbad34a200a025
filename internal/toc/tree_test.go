package toc

import "testing"

func TestTree(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if result := Tree(nil); result != nil {
			t.Error("expected nil for empty input")
		}
	})

	t.Run("nested structure", func(t *testing.T) {
		entries := NewBuilder().Build(Lines("# Title\n## One\n### One A\n### One B\n## Two\n"))
		result := Tree(entries)

		if len(result) != 2 {
			t.Fatalf("expected 2 root nodes, got %d", len(result))
		}
		if len(result[0].Children) != 2 {
			t.Errorf("expected One to have 2 children, got %d", len(result[0].Children))
		}
		if result[0].Children[1].Anchor != "#one-b" {
			t.Errorf("expected second child '#one-b', got %q", result[0].Children[1].Anchor)
		}
		if len(result[1].Children) != 0 {
			t.Errorf("expected Two to have no children, got %d", len(result[1].Children))
		}
	})

	t.Run("skipped level", func(t *testing.T) {
		entries := []Entry{
			{Indent: 1, Title: "A", Anchor: "#a"},
			{Indent: 3, Title: "B", Anchor: "#b"},
			{Indent: 2, Title: "C", Anchor: "#c"},
		}
		result := Tree(entries)

		if len(result) != 1 {
			t.Fatalf("expected 1 root node, got %d", len(result))
		}
		if len(result[0].Children) != 2 {
			t.Errorf("expected A to have 2 children, got %d", len(result[0].Children))
		}
	})

	t.Run("shallower entry after deeper start", func(t *testing.T) {
		entries := []Entry{
			{Indent: 2, Title: "Deep", Anchor: "#deep"},
			{Indent: 0, Title: "Top", Anchor: "#top"},
		}
		result := Tree(entries)

		if len(result) != 2 {
			t.Errorf("expected 2 root nodes, got %d", len(result))
		}
	})
}

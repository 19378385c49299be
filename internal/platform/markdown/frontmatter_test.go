package markdown

import (
	"strings"
	"testing"
)

func TestRenderThenParse(t *testing.T) {
	t.Parallel()
	rendered, err := Note{Meta: map[string]any{"sessions": 2}, Body: "# History\n"}.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nsessions: 2\n---\n\n# History") {
		t.Fatalf("unexpected rendering: %q", rendered)
	}
	note, err := Parse(rendered)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if note.Meta["sessions"] != 2 {
		t.Fatalf("expected sessions=2, got %#v", note.Meta["sessions"])
	}
	if strings.TrimSpace(note.Body) != "# History" {
		t.Fatalf("unexpected body %q", note.Body)
	}
}

func TestParseRejectsUnclosedFence(t *testing.T) {
	t.Parallel()
	if _, err := Parse("---\na: 1\n"); err == nil {
		t.Fatalf("expected error for unclosed frontmatter")
	}
}

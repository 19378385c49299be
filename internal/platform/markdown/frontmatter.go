package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Note is a markdown document with a YAML frontmatter block.
type Note struct {
	Meta map[string]any
	Body string
}

func (n Note) Render() (string, error) {
	meta := n.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if !strings.HasPrefix(n.Body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(n.Body)
	return buf.String(), nil
}

// Parse splits content into frontmatter and body. Content without a leading
// fence is all body.
func Parse(content string) (Note, error) {
	if !strings.HasPrefix(content, fence) {
		return Note{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, fence)
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return Note{}, fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return Note{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return Note{Meta: meta, Body: rest[end+len("\n"+fence):]}, nil
}

package out

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"timeaify/internal/modules/focus/domain"
	focusout "timeaify/internal/modules/focus/port/out"
	"timeaify/internal/platform/clock"
	"timeaify/internal/platform/markdown"
)

const timestampLayout = "2006-01-02T15:04:05Z07:00"

// MarkdownExporter writes the in-memory history as one markdown note with a
// YAML frontmatter summary. Notes are never read back.
type MarkdownExporter struct {
	dir   string
	clock clock.Clock
}

func NewMarkdownExporter(dir string, clk clock.Clock) focusout.HistoryExporter {
	return &MarkdownExporter{dir: dir, clock: clk}
}

func (e *MarkdownExporter) Export(ctx context.Context, sessions []domain.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	now := e.clock.Now()
	path := filepath.Join(e.dir, fmt.Sprintf("focus-%s.md", now.Format("20060102-150405")))

	total := 0.0
	completed := 0
	attempts := 0
	for _, s := range sessions {
		total += s.DurationMin
		attempts += len(s.BlockedAttempts)
		if s.Completed {
			completed++
		}
	}
	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"exported_at":      now.Format(timestampLayout),
		"sessions":         len(sessions),
		"completed":        completed,
		"total_minutes":    math.Round(total*100) / 100,
		"blocked_attempts": attempts,
	}
	rendered, err := markdown.Note{Meta: meta, Body: renderBody(sessions)}.Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write history export: %w", err)
	}
	return path, nil
}

func renderBody(sessions []domain.Session) string {
	var b strings.Builder
	b.WriteString("# Focus Sessions\n")
	if len(sessions) == 0 {
		b.WriteString("\nNo sessions yet.\n")
		return b.String()
	}
	for i, s := range sessions {
		outcome := "stopped"
		if s.Completed {
			outcome = "completed"
		}
		fmt.Fprintf(&b, "\n## Session %d\n\n", i+1)
		fmt.Fprintf(&b, "- Start: %s\n", s.StartedAt.Format(timestampLayout))
		fmt.Fprintf(&b, "- End: %s\n", s.EndedAt.Format(timestampLayout))
		fmt.Fprintf(&b, "- Duration: %.0f of %d minutes (%s)\n", math.Round(s.DurationMin), s.PlannedMinutes, outcome)
		for _, a := range s.BlockedAttempts {
			fmt.Fprintf(&b, "- Blocked: %s at %s\n", a.Identifier, a.At.Format(timestampLayout))
		}
	}
	return b.String()
}

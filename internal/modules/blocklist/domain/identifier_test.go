package domain

import (
	"errors"
	"testing"

	apperrors "timeaify/internal/platform/errors"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want Identifier
	}{
		{"example.com", Identifier{Kind: KindWebsite, Value: "example.com"}},
		{"Slack", Identifier{Kind: KindApp, Value: "Slack"}},
		{"  Slack ", Identifier{Kind: KindApp, Value: "  Slack "}},
		// Dotted app names are classified as websites.
		{"Node.js", Identifier{Kind: KindWebsite, Value: "Node.js"}},
		{"1.5", Identifier{Kind: KindWebsite, Value: "1.5"}},
	}
	for _, tc := range cases {
		got, err := Classify(tc.raw)
		if err != nil {
			t.Fatalf("classify %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("classify %q: expected %+v, got %+v", tc.raw, tc.want, got)
		}
	}
}

func TestClassifyRejectsBlank(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "   ", "\t\n"} {
		if _, err := Classify(raw); !errors.Is(err, apperrors.ErrInvalidBlockItem) {
			t.Fatalf("classify %q: expected ErrInvalidBlockItem, got %v", raw, err)
		}
	}
}

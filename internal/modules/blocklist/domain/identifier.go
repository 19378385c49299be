package domain

import (
	"fmt"
	"strings"

	apperrors "timeaify/internal/platform/errors"
)

type Kind string

const (
	KindApp     Kind = "app"
	KindWebsite Kind = "website"
)

// Identifier is a blocked app name or website domain, kept exactly as the
// user typed it.
type Identifier struct {
	Kind  Kind
	Value string
}

// Classify tags raw as a website when it contains a dot and as an app
// otherwise. "Node.js" therefore lands in the website list; stricter rules
// belong here if product ever asks for them.
func Classify(raw string) (Identifier, error) {
	if strings.TrimSpace(raw) == "" {
		return Identifier{}, fmt.Errorf("%w: identifier is empty", apperrors.ErrInvalidBlockItem)
	}
	if strings.Contains(raw, ".") {
		return Identifier{Kind: KindWebsite, Value: raw}, nil
	}
	return Identifier{Kind: KindApp, Value: raw}, nil
}

package out

import (
	"context"
	"fmt"

	"timeaify/internal/modules/blocklist/domain"
	blocklistout "timeaify/internal/modules/blocklist/port/out"
)

// MemoryStore keeps the two block lists for the lifetime of the process.
type MemoryStore struct {
	apps     []domain.Identifier
	websites []domain.Identifier
}

func NewMemoryStore() blocklistout.Store {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, item domain.Identifier) error {
	switch item.Kind {
	case domain.KindApp:
		s.apps = append(s.apps, item)
	case domain.KindWebsite:
		s.websites = append(s.websites, item)
	default:
		return fmt.Errorf("append block item: unknown kind %q", item.Kind)
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context, kind domain.Kind) ([]domain.Identifier, error) {
	switch kind {
	case domain.KindApp:
		return append([]domain.Identifier{}, s.apps...), nil
	case domain.KindWebsite:
		return append([]domain.Identifier{}, s.websites...), nil
	}
	return nil, fmt.Errorf("list block items: unknown kind %q", kind)
}

package service

import (
	"context"
	"fmt"

	"timeaify/internal/modules/blocklist/domain"
	blocklistout "timeaify/internal/modules/blocklist/port/out"
	"timeaify/internal/platform/notify"
)

type BlockListService struct {
	store    blocklistout.Store
	notifier notify.Notifier
}

func NewBlockListService(store blocklistout.Store, notifier notify.Notifier) *BlockListService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &BlockListService{store: store, notifier: notifier}
}

func (s *BlockListService) Add(ctx context.Context, raw string) (domain.Identifier, error) {
	item, err := domain.Classify(raw)
	if err != nil {
		s.notifier.Notify(notify.KindInvalidInput, "Invalid Block Item", "Enter an app name or website URL")
		return domain.Identifier{}, err
	}
	if err := s.store.Append(ctx, item); err != nil {
		return domain.Identifier{}, err
	}
	s.notifier.Notify(notify.KindItemBlocked, "Item Blocked", fmt.Sprintf("Added %s to blocklist", item.Value))
	return item, nil
}

func (s *BlockListService) List(ctx context.Context, kind domain.Kind) ([]domain.Identifier, error) {
	return s.store.List(ctx, kind)
}

// IsBlocked reports an exact, case-sensitive match in either list.
func (s *BlockListService) IsBlocked(ctx context.Context, value string) (bool, error) {
	for _, kind := range []domain.Kind{domain.KindApp, domain.KindWebsite} {
		items, err := s.store.List(ctx, kind)
		if err != nil {
			return false, err
		}
		for _, item := range items {
			if item.Value == value {
				return true, nil
			}
		}
	}
	return false, nil
}

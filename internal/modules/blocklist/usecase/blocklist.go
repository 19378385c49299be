package usecase

import (
	"context"
	"errors"

	"timeaify/internal/modules/blocklist/domain"
	blocklistdto "timeaify/internal/modules/blocklist/dto"
	blocklistin "timeaify/internal/modules/blocklist/port/in"
	"timeaify/internal/modules/blocklist/service"
	apperrors "timeaify/internal/platform/errors"
)

type Interactor struct {
	svc *service.BlockListService
}

func NewInteractor(svc *service.BlockListService) blocklistin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, raw string) (blocklistdto.IdentifierOutput, error) {
	item, err := i.svc.Add(ctx, raw)
	if err != nil {
		return blocklistdto.IdentifierOutput{}, err
	}
	return toOutput(item), nil
}

// Classify reports how raw would be stored without adding it.
func (i *Interactor) Classify(raw string) (blocklistdto.IdentifierOutput, error) {
	item, err := domain.Classify(raw)
	if err != nil {
		return blocklistdto.IdentifierOutput{}, err
	}
	return toOutput(item), nil
}

// Seed adds configured identifiers in order. Blank entries are reported as
// rejected rather than aborting the rest of the list.
func (i *Interactor) Seed(ctx context.Context, raw []string) (blocklistdto.SeedOutput, error) {
	out := blocklistdto.SeedOutput{}
	for _, value := range raw {
		item, err := i.svc.Add(ctx, value)
		if errors.Is(err, apperrors.ErrInvalidBlockItem) {
			out.Rejected = append(out.Rejected, value)
			continue
		}
		if err != nil {
			return out, err
		}
		out.Added = append(out.Added, toOutput(item))
	}
	return out, nil
}

func (i *Interactor) ListApps(ctx context.Context) ([]string, error) {
	return i.values(ctx, domain.KindApp)
}

func (i *Interactor) ListWebsites(ctx context.Context) ([]string, error) {
	return i.values(ctx, domain.KindWebsite)
}

func (i *Interactor) IsBlocked(ctx context.Context, value string) (bool, error) {
	return i.svc.IsBlocked(ctx, value)
}

func (i *Interactor) values(ctx context.Context, kind domain.Kind) ([]string, error) {
	items, err := i.svc.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Value)
	}
	return out, nil
}

func toOutput(item domain.Identifier) blocklistdto.IdentifierOutput {
	return blocklistdto.IdentifierOutput{Kind: string(item.Kind), Value: item.Value}
}

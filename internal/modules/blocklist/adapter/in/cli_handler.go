package in

import (
	"context"

	blocklistdto "timeaify/internal/modules/blocklist/dto"
	blocklistin "timeaify/internal/modules/blocklist/port/in"
)

type CLIHandler struct {
	usecase blocklistin.Usecase
}

func NewCLIHandler(usecase blocklistin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, raw string) (blocklistdto.IdentifierOutput, error) {
	return h.usecase.Add(ctx, raw)
}

func (h CLIHandler) Classify(raw string) (blocklistdto.IdentifierOutput, error) {
	return h.usecase.Classify(raw)
}

func (h CLIHandler) Seed(ctx context.Context, raw []string) (blocklistdto.SeedOutput, error) {
	return h.usecase.Seed(ctx, raw)
}

func (h CLIHandler) List(ctx context.Context) (blocklistdto.ListOutput, error) {
	apps, err := h.usecase.ListApps(ctx)
	if err != nil {
		return blocklistdto.ListOutput{}, err
	}
	websites, err := h.usecase.ListWebsites(ctx)
	if err != nil {
		return blocklistdto.ListOutput{}, err
	}
	return blocklistdto.ListOutput{Apps: apps, Websites: websites}, nil
}

func (h CLIHandler) IsBlocked(ctx context.Context, value string) (bool, error) {
	return h.usecase.IsBlocked(ctx, value)
}

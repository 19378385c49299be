package in

import (
	"context"

	"timeaify/internal/modules/blocklist/dto"
)

type Usecase interface {
	Add(ctx context.Context, raw string) (dto.IdentifierOutput, error)
	Classify(raw string) (dto.IdentifierOutput, error)
	Seed(ctx context.Context, raw []string) (dto.SeedOutput, error)
	ListApps(ctx context.Context) ([]string, error)
	ListWebsites(ctx context.Context) ([]string, error)
	IsBlocked(ctx context.Context, value string) (bool, error)
}

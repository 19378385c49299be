package out

import (
	"context"

	"timeaify/internal/modules/blocklist/domain"
)

type Store interface {
	Append(ctx context.Context, item domain.Identifier) error
	List(ctx context.Context, kind domain.Kind) ([]domain.Identifier, error)
}

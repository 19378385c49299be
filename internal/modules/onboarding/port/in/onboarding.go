package in

import (
	"context"

	"timeaify/internal/modules/onboarding/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.StatusOutput, error)
	Complete(ctx context.Context) error
	Reset(ctx context.Context) error
}

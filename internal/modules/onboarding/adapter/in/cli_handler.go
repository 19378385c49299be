package in

import (
	"context"

	onboardingdto "timeaify/internal/modules/onboarding/dto"
	onboardingin "timeaify/internal/modules/onboarding/port/in"
)

type CLIHandler struct {
	usecase onboardingin.Usecase
}

func NewCLIHandler(usecase onboardingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (onboardingdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Complete(ctx context.Context) error {
	return h.usecase.Complete(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

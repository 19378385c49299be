package usecase

import (
	"context"
	"fmt"

	"timeaify/internal/modules/onboarding/domain"
	onboardingdto "timeaify/internal/modules/onboarding/dto"
	onboardingin "timeaify/internal/modules/onboarding/port/in"
	onboardingout "timeaify/internal/modules/onboarding/port/out"
)

type Interactor struct {
	flags     onboardingout.FlagStore
	toggleKey string
}

func NewInteractor(flags onboardingout.FlagStore, toggleKey string) onboardingin.Usecase {
	return &Interactor{flags: flags, toggleKey: toggleKey}
}

func (i *Interactor) Status(ctx context.Context) (onboardingdto.StatusOutput, error) {
	complete, err := i.flags.Get(ctx, domain.FlagComplete)
	if err != nil {
		return onboardingdto.StatusOutput{}, fmt.Errorf("read onboarding flag: %w", err)
	}
	out := onboardingdto.StatusOutput{Complete: complete}
	for _, step := range domain.Steps(i.toggleKey) {
		out.Steps = append(out.Steps, onboardingdto.StepOutput{Title: step.Title, Description: step.Description})
	}
	return out, nil
}

func (i *Interactor) Complete(ctx context.Context) error {
	return i.flags.Set(ctx, domain.FlagComplete, true)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.flags.Set(ctx, domain.FlagComplete, false)
}

package out_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	onboardingout "timeaify/internal/modules/onboarding/adapter/out"
	"timeaify/internal/modules/onboarding/domain"
	"timeaify/internal/platform/clock"
)

func TestSQLiteFlagStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "timeaify.db")

	store, err := onboardingout.NewSQLiteFlagStore(dbPath, clock.SystemClock{})
	require.NoError(t, err)

	got, err := store.Get(ctx, domain.FlagComplete)
	require.NoError(t, err)
	require.False(t, got, "missing flag must read as false")

	require.NoError(t, store.Set(ctx, domain.FlagComplete, true))
	require.NoError(t, store.Set(ctx, domain.FlagComplete, true))

	reopened, err := onboardingout.NewSQLiteFlagStore(dbPath, clock.SystemClock{})
	require.NoError(t, err)
	got, err = reopened.Get(ctx, domain.FlagComplete)
	require.NoError(t, err)
	require.True(t, got)

	require.NoError(t, reopened.Set(ctx, domain.FlagComplete, false))
	got, err = store.Get(ctx, domain.FlagComplete)
	require.NoError(t, err)
	require.False(t, got)
}

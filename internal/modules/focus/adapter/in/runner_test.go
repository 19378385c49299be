package in_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	focusin "timeaify/internal/modules/focus/adapter/in"
	"timeaify/internal/modules/focus/domain"
	"timeaify/internal/modules/focus/service"
	"timeaify/internal/modules/focus/usecase"
	"timeaify/internal/platform/clock"
)

type fixedID struct{}

func (fixedID) New() string { return "run-1" }

var start = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newRunner(buf *bytes.Buffer, ticks chan time.Time) focusin.Runner {
	ctrl := service.NewController(clock.NewManual(start), fixedID{}, nil, nil, domain.NewSessionClock(time.Second))
	uc := usecase.NewInteractor(ctrl, nil, nil)
	source := func(time.Duration) (<-chan time.Time, func()) { return ticks, func() {} }
	return focusin.NewRunner(uc, buf, source)
}

func TestRunnerCompletesSession(t *testing.T) {
	ticks := make(chan time.Time, 60)
	for i := 1; i <= 60; i++ {
		ticks <- start.Add(time.Duration(i) * time.Second)
	}
	buf := &bytes.Buffer{}

	session, err := newRunner(buf, ticks).Run(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, session.Completed)
	require.InDelta(t, 1.0, session.DurationMin, 1e-9)
	require.True(t, strings.Contains(buf.String(), "100% Complete - Stay focused!"), buf.String())
}

func TestRunnerDeactivatesOnCancel(t *testing.T) {
	ticks := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session, err := newRunner(&bytes.Buffer{}, ticks).Run(ctx, 5)
	require.NoError(t, err)
	require.False(t, session.Completed)
	require.True(t, session.EndedAt.Equal(start))
}

func TestRunnerRejectsInvalidDuration(t *testing.T) {
	_, err := newRunner(&bytes.Buffer{}, make(chan time.Time)).Run(context.Background(), 0)
	require.Error(t, err)
}

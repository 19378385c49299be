package notify_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"timeaify/internal/platform/notify"
)

type recorded struct {
	kind  notify.Kind
	title string
}

func TestFanoutDeliversInOrder(t *testing.T) {
	var got []recorded
	first := notify.Func(func(k notify.Kind, title, _ string) { got = append(got, recorded{k, "a:" + title}) })
	second := notify.Func(func(k notify.Kind, title, _ string) { got = append(got, recorded{k, "b:" + title}) })

	notify.Fanout{first, nil, second}.Notify(notify.KindActivated, "x", "")

	require.Equal(t, []recorded{{notify.KindActivated, "a:x"}, {notify.KindActivated, "b:x"}}, got)
}

func TestLogNotifierLevels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := notify.NewLogNotifier(zap.New(core))

	n.Notify(notify.KindCompleted, "Focus Session Complete", "25 minutes")
	n.Notify(notify.KindInvalidInput, "Invalid Duration", "must be 1-120")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, "invalidInput", entries[1].ContextMap()["kind"])
}

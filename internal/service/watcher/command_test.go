package watcher

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	api "github.com/oshokin/ab-modules/internal/api/grpc/modules"
	"github.com/oshokin/ab-modules/internal/config"
	"github.com/oshokin/ab-modules/internal/domain/alarm"
)

var errTestUnavailable = errors.New("server unavailable")

// scriptedReader replays canned responses, repeating the last one.
type scriptedReader struct {
	// responses are returned in order.
	responses []response
	// calls counts Alarm invocations.
	calls int
}

// response is one scripted Alarm result.
type response struct {
	snapshot api.AlarmSnapshot
	err      error
}

// Alarm returns the next scripted response.
func (s *scriptedReader) Alarm(context.Context) (api.AlarmSnapshot, error) {
	i := min(s.calls, len(s.responses)-1)
	s.calls++

	return s.responses[i].snapshot, s.responses[i].err
}

// TestWatch_StopsWhenTriggered retries through errors and idle polls until the alarm latches.
func TestWatch_StopsWhenTriggered(t *testing.T) {
	t.Parallel()

	reader := &scriptedReader{
		responses: []response{
			{err: errTestUnavailable},
			{snapshot: api.AlarmSnapshot{Threshold: 100, State: alarm.StateIdle}},
			{snapshot: api.AlarmSnapshot{Threshold: 100, State: alarm.StateTriggered, Triggered: true}},
		},
	}

	var out bytes.Buffer

	err := watch(context.Background(), reader, &Options{PollInterval: time.Millisecond, Out: &out})
	require.NoError(t, err)
	require.Equal(t, 3, reader.calls)
	require.Equal(t, "Notification: Result exceeded threshold 100!\n", out.String())
}

// TestWatch_StopsOnCancel returns without a notification when the context ends.
func TestWatch_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	reader := &scriptedReader{
		responses: []response{{snapshot: api.AlarmSnapshot{Threshold: 1, State: alarm.StateIdle}}},
	}

	cancel()

	var out bytes.Buffer

	require.NoError(t, watch(ctx, reader, &Options{PollInterval: time.Hour, Out: &out}))
	require.Equal(t, 1, reader.calls)
	require.Empty(t, out.String())
}

// TestCallTimeout prefers a positive option over the configured timeout.
func TestCallTimeout(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	require.Equal(t, config.DefaultTimeout, callTimeout(cfg, &Options{}))
	require.Equal(t, config.DefaultTimeout, callTimeout(cfg, &Options{Timeout: -time.Second}))
	require.Equal(t, 250*time.Millisecond, callTimeout(cfg, &Options{Timeout: 250 * time.Millisecond}))
}

package alarm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAlarm_LatchesAboveThreshold walks the Idle -> Triggered -> Triggered scenario.
func TestAlarm_LatchesAboveThreshold(t *testing.T) {
	t.Parallel()

	a := New(10)
	require.False(t, a.IsTriggered())
	require.Equal(t, StateIdle, a.State())

	a.Check(5)
	require.False(t, a.IsTriggered())

	a.Check(15)
	require.True(t, a.IsTriggered())

	// Smaller values never reset the latch.
	a.Check(1)
	require.True(t, a.IsTriggered())
	require.Equal(t, StateTriggered, a.State())
}

// TestAlarm_ThresholdIsExclusive ensures a value equal to the threshold does not trigger.
func TestAlarm_ThresholdIsExclusive(t *testing.T) {
	t.Parallel()

	a := New(100)

	a.Check(100)
	require.False(t, a.IsTriggered())

	a.Check(101)
	require.True(t, a.IsTriggered())
}

// TestAlarm_NegativeAndExtremeThresholds verifies no validation is applied to the threshold.
func TestAlarm_NegativeAndExtremeThresholds(t *testing.T) {
	t.Parallel()

	negative := New(-5)
	negative.Check(-5)
	require.False(t, negative.IsTriggered())
	negative.Check(-4)
	require.True(t, negative.IsTriggered())
	require.Equal(t, -5, negative.Threshold())

	never := New(math.MaxInt)
	never.Check(math.MaxInt)
	require.False(t, never.IsTriggered())
}

// TestAlarm_ResultsOfDemo replays the driver scenario: 23 stays idle, 120 latches.
func TestAlarm_ResultsOfDemo(t *testing.T) {
	t.Parallel()

	a := New(100)

	a.Check(23)
	require.False(t, a.IsTriggered())

	a.Check(120)
	require.True(t, a.IsTriggered())
}

// TestState_String checks state names.
func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "triggered", StateTriggered.String())
	require.Equal(t, "unknown", State(7).String())
}

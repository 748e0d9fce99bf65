package modules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/ab-modules/internal/domain/alarm"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
)

// TestEvaluateRequest_Roundtrip keeps extreme operands exact.
func TestEvaluateRequest_Roundtrip(t *testing.T) {
	t.Parallel()

	want := EvaluateRequest{
		Operation: calculator.OperationSubtract,
		LHS:       math.MinInt,
		RHS:       math.MaxInt,
	}

	got, err := DecodeEvaluateRequest(EncodeEvaluateRequest(want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestDecodeEvaluateRequest_AcceptsNumbers allows clients that send JSON numbers.
func TestDecodeEvaluateRequest_AcceptsNumbers(t *testing.T) {
	t.Parallel()

	msg, err := structpb.NewStruct(map[string]any{
		"operation": "*",
		"lhs":       15,
		"rhs":       8,
	})
	require.NoError(t, err)

	got, err := DecodeEvaluateRequest(msg)
	require.NoError(t, err)
	require.Equal(t, EvaluateRequest{Operation: calculator.OperationMultiply, LHS: 15, RHS: 8}, got)
}

// TestDecodeEvaluateRequest_Rejects covers malformed messages; all map to ErrInvalidArgument.
func TestDecodeEvaluateRequest_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]any{
		"missing operation": {"lhs": "1", "rhs": "2"},
		"unknown operation": {"operation": "pow", "lhs": "1", "rhs": "2"},
		"missing lhs":       {"operation": "add", "rhs": "2"},
		"fractional rhs":    {"operation": "add", "lhs": "1", "rhs": 2.5},
		"non-numeric lhs":   {"operation": "add", "lhs": "one", "rhs": "2"},
		"bool rhs":          {"operation": "add", "lhs": "1", "rhs": true},
		"huge number":       {"operation": "add", "lhs": 1e300, "rhs": "2"},
	}

	for name, fields := range cases {
		msg, err := structpb.NewStruct(fields)
		require.NoError(t, err, name)

		_, err = DecodeEvaluateRequest(msg)
		require.ErrorIs(t, err, calculator.ErrInvalidArgument, name)
	}

	_, err := DecodeEvaluateRequest(nil)
	require.ErrorIs(t, err, calculator.ErrInvalidArgument)
}

// TestHistory_Roundtrip preserves order and yields a non-nil empty slice.
func TestHistory_Roundtrip(t *testing.T) {
	t.Parallel()

	got, err := DecodeHistory(EncodeHistory([]string{"x", "y"}))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, got)

	empty, err := DecodeHistory(EncodeHistory(nil))
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = DecodeHistory(&structpb.ListValue{Values: []*structpb.Value{structpb.NewNumberValue(1)}})
	require.Error(t, err)
}

// TestAlarm_Roundtrip keeps threshold and state.
func TestAlarm_Roundtrip(t *testing.T) {
	t.Parallel()

	msg := EncodeAlarm(AlarmSnapshot{Threshold: -10, State: alarm.StateTriggered})
	require.Equal(t, "triggered", msg.GetFields()["state"].GetStringValue())

	got, err := DecodeAlarm(msg)
	require.NoError(t, err)
	require.Equal(t, AlarmSnapshot{Threshold: -10, State: alarm.StateTriggered, Triggered: true}, got)
}

// TestEvaluation_Roundtrip keeps the result exact.
func TestEvaluation_Roundtrip(t *testing.T) {
	t.Parallel()

	want := Evaluation{Value: math.MaxInt, Triggered: true}

	got, err := DecodeEvaluation(EncodeEvaluation(want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

package modules

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/ab-modules/internal/domain/alarm"
	"github.com/oshokin/ab-modules/internal/domain/calculator"
)

// Field names used in structpb messages.
const (
	fieldOperation = "operation"
	fieldLHS       = "lhs"
	fieldRHS       = "rhs"
	fieldResult    = "result"
	fieldTriggered = "triggered"
	fieldThreshold = "threshold"
	fieldState     = "state"
)

// maxExactFloat is the largest integer a float64 represents exactly.
const maxExactFloat = 1 << 53

var (
	// errMissingField is returned when a required field is absent.
	errMissingField = errors.New("missing field")
	// errMalformedField is returned when a field has an unexpected kind or value.
	errMalformedField = errors.New("malformed field")
	// errNilMessage is returned when a nil message is decoded.
	errNilMessage = errors.New("message is nil")
)

// EvaluateRequest is the decoded form of an Evaluate request.
type EvaluateRequest struct {
	Operation calculator.Operation
	LHS       int
	RHS       int
}

// Evaluation is the decoded form of an Evaluate response.
type Evaluation struct {
	Value     int
	Triggered bool
}

// AlarmSnapshot is the decoded form of a GetAlarm response.
type AlarmSnapshot struct {
	Threshold int
	State     alarm.State
	Triggered bool
}

// EncodeEvaluateRequest builds the Evaluate request message.
func EncodeEvaluateRequest(req EvaluateRequest) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldOperation: structpb.NewStringValue(req.Operation.String()),
			fieldLHS:       encodeInt(req.LHS),
			fieldRHS:       encodeInt(req.RHS),
		},
	}
}

// DecodeEvaluateRequest parses an Evaluate request message.
// Malformed input yields an error matching calculator.ErrInvalidArgument.
func DecodeEvaluateRequest(msg *structpb.Struct) (EvaluateRequest, error) {
	if msg == nil {
		return EvaluateRequest{}, fmt.Errorf("%w: %w", errNilMessage, calculator.ErrInvalidArgument)
	}

	rawOperation, ok := msg.GetFields()[fieldOperation]
	if !ok {
		return EvaluateRequest{}, fieldError(errMissingField, fieldOperation)
	}

	operation, err := calculator.ParseOperation(rawOperation.GetStringValue())
	if err != nil {
		return EvaluateRequest{}, err
	}

	lhs, err := decodeInt(msg, fieldLHS)
	if err != nil {
		return EvaluateRequest{}, err
	}

	rhs, err := decodeInt(msg, fieldRHS)
	if err != nil {
		return EvaluateRequest{}, err
	}

	return EvaluateRequest{
		Operation: operation,
		LHS:       lhs,
		RHS:       rhs,
	}, nil
}

// EncodeEvaluation builds the Evaluate response message.
func EncodeEvaluation(e Evaluation) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldResult:    encodeInt(e.Value),
			fieldTriggered: structpb.NewBoolValue(e.Triggered),
		},
	}
}

// DecodeEvaluation parses the Evaluate response message.
func DecodeEvaluation(msg *structpb.Struct) (Evaluation, error) {
	if msg == nil {
		return Evaluation{}, errNilMessage
	}

	value, err := decodeInt(msg, fieldResult)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Value:     value,
		Triggered: msg.GetFields()[fieldTriggered].GetBoolValue(),
	}, nil
}

// EncodeHistory builds the GetHistory response message.
func EncodeHistory(history []string) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(history))
	for _, entry := range history {
		values = append(values, structpb.NewStringValue(entry))
	}

	return &structpb.ListValue{
		Values: values,
	}
}

// DecodeHistory parses the GetHistory response message. The result is never nil.
func DecodeHistory(msg *structpb.ListValue) ([]string, error) {
	history := make([]string, 0, len(msg.GetValues()))

	for i, value := range msg.GetValues() {
		entry, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: history entry %d", errMalformedField, i)
		}

		history = append(history, entry.StringValue)
	}

	return history, nil
}

// EncodeAlarm builds the GetAlarm response message.
func EncodeAlarm(a AlarmSnapshot) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			fieldThreshold: encodeInt(a.Threshold),
			fieldState:     structpb.NewStringValue(a.State.String()),
			fieldTriggered: structpb.NewBoolValue(a.State == alarm.StateTriggered),
		},
	}
}

// DecodeAlarm parses the GetAlarm response message.
func DecodeAlarm(msg *structpb.Struct) (AlarmSnapshot, error) {
	if msg == nil {
		return AlarmSnapshot{}, errNilMessage
	}

	threshold, err := decodeInt(msg, fieldThreshold)
	if err != nil {
		return AlarmSnapshot{}, err
	}

	triggered := msg.GetFields()[fieldTriggered].GetBoolValue()

	state := alarm.StateIdle
	if triggered {
		state = alarm.StateTriggered
	}

	return AlarmSnapshot{
		Threshold: threshold,
		State:     state,
		Triggered: triggered,
	}, nil
}

// encodeInt stores v as a decimal string.
func encodeInt(v int) *structpb.Value {
	return structpb.NewStringValue(strconv.Itoa(v))
}

// decodeInt reads an integer stored either as a decimal string or as an
// integral number within the exactly representable float64 range.
func decodeInt(msg *structpb.Struct, field string) (int, error) {
	raw, ok := msg.GetFields()[field]
	if !ok {
		return 0, fieldError(errMissingField, field)
	}

	switch kind := raw.GetKind().(type) {
	case *structpb.Value_StringValue:
		v, err := strconv.Atoi(kind.StringValue)
		if err != nil {
			return 0, fieldError(errMalformedField, field)
		}

		return v, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > maxExactFloat {
			return 0, fieldError(errMalformedField, field)
		}

		return int(n), nil
	default:
		return 0, fieldError(errMalformedField, field)
	}
}

// fieldError wraps kind with the field name and ErrInvalidArgument.
func fieldError(kind error, field string) error {
	return fmt.Errorf("%w %q: %w", kind, field, calculator.ErrInvalidArgument)
}

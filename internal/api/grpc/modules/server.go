package modules

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/ab-modules/internal/domain/calculator"
	"github.com/oshokin/ab-modules/internal/logger"
	"github.com/oshokin/ab-modules/internal/service/session"
)

// Service abstracts the operations the transport layer depends on.
type Service interface {
	Evaluate(ctx context.Context, op calculator.Operation, lhs, rhs int) (session.Result, error)
	History() []string
	Alarm() session.AlarmStatus
}

// Server implements ModulesServiceServer on top of a Service.
type Server struct {
	// service provides the evaluate/record/check logic.
	service Service
}

// compile-time check.
var _ ModulesServiceServer = (*Server)(nil)

// NewServer wires the provided service into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Evaluate decodes the request, runs it through the service and reports the result and alarm state.
func (s *Server) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	request, err := DecodeEvaluateRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.service.Evaluate(ctx, request.Operation, request.LHS, request.RHS)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return EncodeEvaluation(Evaluation{
		Value:     result.Value,
		Triggered: result.Triggered,
	}), nil
}

// GetHistory returns every recorded line.
func (s *Server) GetHistory(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return EncodeHistory(s.service.History()), nil
}

// GetAlarm returns the alarm snapshot.
func (s *Server) GetAlarm(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	snapshot := s.service.Alarm()

	return EncodeAlarm(AlarmSnapshot{
		Threshold: snapshot.Threshold,
		State:     snapshot.State,
		Triggered: snapshot.Triggered(),
	}), nil
}

// toStatus maps service errors to gRPC status errors.
func toStatus(ctx context.Context, err error) error {
	if errors.Is(err, calculator.ErrInvalidArgument) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	logger.ErrorKV(ctx, "Evaluate failed", "error", err)

	return status.Error(codes.Internal, "unable to evaluate")
}

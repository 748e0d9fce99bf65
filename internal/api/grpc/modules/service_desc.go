package modules

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "abmodules.v1.ModulesService"

// Full method names.
const (
	EvaluateFullMethodName   = "/" + ServiceName + "/Evaluate"
	GetHistoryFullMethodName = "/" + ServiceName + "/GetHistory"
	GetAlarmFullMethodName   = "/" + ServiceName + "/GetAlarm"
)

// ModulesServiceServer is the server API of the modules service.
type ModulesServiceServer interface {
	Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetHistory(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	GetAlarm(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// ModulesServiceDesc describes the modules service for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by grpc convention.
var ModulesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ModulesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    evaluateHandler,
		},
		{
			MethodName: "GetHistory",
			Handler:    getHistoryHandler,
		},
		{
			MethodName: "GetAlarm",
			Handler:    getAlarmHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "abmodules/v1/modules",
}

// RegisterModulesServiceServer registers srv on the provided registrar.
func RegisterModulesServiceServer(s grpc.ServiceRegistrar, srv ModulesServiceServer) {
	s.RegisterService(&ModulesServiceDesc, srv)
}

func evaluateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	api, _ := srv.(ModulesServiceServer)
	if interceptor == nil {
		return api.Evaluate(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateFullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		typed, _ := req.(*structpb.Struct)

		return api.Evaluate(ctx, typed)
	}

	return interceptor(ctx, in, info, handler)
}

func getHistoryHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	api, _ := srv.(ModulesServiceServer)
	if interceptor == nil {
		return api.GetHistory(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetHistoryFullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		typed, _ := req.(*emptypb.Empty)

		return api.GetHistory(ctx, typed)
	}

	return interceptor(ctx, in, info, handler)
}

func getAlarmHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	api, _ := srv.(ModulesServiceServer)
	if interceptor == nil {
		return api.GetAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetAlarmFullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		typed, _ := req.(*emptypb.Empty)

		return api.GetAlarm(ctx, typed)
	}

	return interceptor(ctx, in, info, handler)
}

// ModulesServiceClient is the client API of the modules service.
type ModulesServiceClient struct {
	// cc is the underlying connection.
	cc grpc.ClientConnInterface
}

// NewModulesServiceClient wraps cc.
func NewModulesServiceClient(cc grpc.ClientConnInterface) *ModulesServiceClient {
	return &ModulesServiceClient{
		cc: cc,
	}
}

// Evaluate calls ModulesService.Evaluate.
func (c *ModulesServiceClient) Evaluate(
	ctx context.Context,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EvaluateFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// GetHistory calls ModulesService.GetHistory.
func (c *ModulesServiceClient) GetHistory(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, GetHistoryFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// GetAlarm calls ModulesService.GetAlarm.
func (c *ModulesServiceClient) GetAlarm(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetAlarmFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

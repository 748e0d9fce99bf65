// Package modules implements the gRPC transport for ab-modules.
//
// The service is described by a hand-written grpc.ServiceDesc whose messages
// are protobuf well-known types (structpb, emptypb), so no generated code is
// needed. Integers travel as decimal strings to stay exact beyond 2^53.
package modules

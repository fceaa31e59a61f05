// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     server
// Description: Service descriptor of eiya.v1.Gregor. Requests and responses
//              are google.protobuf.Struct values, so no generated code is
//              needed on either side.
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "eiya.v1.Gregor"

// Method names
const (
	MethodFormat   = "Format"
	MethodParse    = "Parse"
	MethodShift    = "Shift"
	MethodBoundary = "Boundary"
	MethodCompare  = "Compare"
	MethodCalendar = "Calendar"
)

// GregorServer is the server API of eiya.v1.Gregor
type GregorServer interface {
	Format(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Parse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Shift(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Boundary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Compare(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Calendar(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// FullMethod returns "/eiya.v1.Gregor/<method>"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ServiceDesc describes eiya.v1.Gregor for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GregorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodFormat, Handler: unaryHandler(MethodFormat, GregorServer.Format)},
		{MethodName: MethodParse, Handler: unaryHandler(MethodParse, GregorServer.Parse)},
		{MethodName: MethodShift, Handler: unaryHandler(MethodShift, GregorServer.Shift)},
		{MethodName: MethodBoundary, Handler: unaryHandler(MethodBoundary, GregorServer.Boundary)},
		{MethodName: MethodCompare, Handler: unaryHandler(MethodCompare, GregorServer.Compare)},
		{MethodName: MethodCalendar, Handler: unaryHandler(MethodCalendar, GregorServer.Calendar)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "eiya/v1/gregor.proto",
}

// RegisterGregorServer registers srv with s
func RegisterGregorServer(s grpc.ServiceRegistrar, srv GregorServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryCall func(GregorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GregorServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(GregorServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

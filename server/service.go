package server

import (
	"context"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified name of the debugger service.
const ServiceName = "nescore.Debugger"

// Debugger is the set of calls served under ServiceName. Messages are
// protobuf well-known types, so no generated code is needed on either side.
type Debugger interface {
	Pause(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Resume(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Step(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	CPUState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ReadMemory(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	Frame(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	StreamInput(grpc.ServerStream) error
}

// ServiceDesc describes the debugger service to grpc.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Debugger)(nil),
	Methods: []grpc.MethodDesc{
		unary("Pause", Debugger.Pause),
		unary("Resume", Debugger.Resume),
		unary("Reset", Debugger.Reset),
		unary("Step", Debugger.Step),
		unary("CPUState", Debugger.CPUState),
		unary("ReadMemory", Debugger.ReadMemory),
		unary("Frame", Debugger.Frame),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamInput",
			ClientStreams: true,
			Handler: func(srv any, stream grpc.ServerStream) error {
				return srv.(Debugger).StreamInput(stream)
			},
		},
	},
	Metadata: "nescore/debugger",
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary builds the method description for a call taking a Req and returning
// a Resp.
func unary[Req, Resp any](name string, call func(Debugger, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(Debugger), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(Debugger), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// recvInput reads input messages from the stream until the client closes
// it, passing each to fn.
func recvInput(stream grpc.ServerStream, fn func(*wrapperspb.StringValue) error) error {
	for {
		msg := new(wrapperspb.StringValue)
		err := stream.RecvMsg(msg)
		if err == io.EOF {
			return stream.SendMsg(&emptypb.Empty{})
		}
		if err != nil {
			return err
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
}

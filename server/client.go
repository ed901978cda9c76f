package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls the debugger service over a client connection.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient returns a client using conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) call(ctx context.Context, method string, in, out any) error {
	return c.conn.Invoke(ctx, fullMethod(method), in, out)
}

// Pause suspends the emulator loop.
func (c *Client) Pause(ctx context.Context) error {
	return c.call(ctx, "Pause", &emptypb.Empty{}, new(emptypb.Empty))
}

// Resume restarts the emulator loop.
func (c *Client) Resume(ctx context.Context) error {
	return c.call(ctx, "Resume", &emptypb.Empty{}, new(emptypb.Empty))
}

// Reset presses the reset button.
func (c *Client) Reset(ctx context.Context) error {
	return c.call(ctx, "Reset", &emptypb.Empty{}, new(emptypb.Empty))
}

// Step executes one instruction and returns its trace line.
func (c *Client) Step(ctx context.Context) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.call(ctx, "Step", &emptypb.Empty{}, out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// CPUState returns the CPU registers and timing counters.
func (c *Client) CPUState(ctx context.Context) (CPUState, error) {
	out := new(structpb.Struct)
	if err := c.call(ctx, "CPUState", &emptypb.Empty{}, out); err != nil {
		return CPUState{}, err
	}
	return cpuStateFromStruct(out), nil
}

// ReadMemory returns size bytes of CPU address space starting at addr.
func (c *Client) ReadMemory(ctx context.Context, addr uint16, size int) ([]byte, error) {
	in, err := memoryRequest(addr, size)
	if err != nil {
		return nil, err
	}
	out := new(wrapperspb.BytesValue)
	if err := c.call(ctx, "ReadMemory", in, out); err != nil {
		return nil, err
	}
	return out.GetValue(), nil
}

// Frame returns the RGBA pixels of the last completed frame.
func (c *Client) Frame(ctx context.Context) ([]byte, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.call(ctx, "Frame", &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out.GetValue(), nil
}

// InputStream sends controller states to the server.
type InputStream struct {
	stream grpc.ClientStream
}

// StreamInput opens an input stream.
func (c *Client) StreamInput(ctx context.Context) (*InputStream, error) {
	stream, err := c.conn.NewStream(ctx, &ServiceDesc.Streams[0], fullMethod("StreamInput"))
	if err != nil {
		return nil, err
	}
	return &InputStream{stream: stream}, nil
}

// Send sets the buttons of the controller in port.
func (s *InputStream) Send(port int, buttons [8]bool) error {
	return s.stream.SendMsg(wrapperspb.String(FormatInput(port, buttons)))
}

// Close ends the stream and waits for the server to acknowledge it.
func (s *InputStream) Close() error {
	if err := s.stream.CloseSend(); err != nil {
		return err
	}
	return s.stream.RecvMsg(new(emptypb.Empty))
}

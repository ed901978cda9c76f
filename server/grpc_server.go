// Package server exposes a running machine over gRPC so that external tools
// can pause, step and inspect it and feed it controller input.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/ppu"
	"github.com/meadori/nescore/trace"
)

// GRPCServer serves the debugger service for the machine owned by a runner.
type GRPCServer struct {
	runner *machine.Runner

	mu     sync.Mutex
	remote [2][8]bool

	listener net.Listener
	server   *grpc.Server
}

// NewGRPCServer creates a server for the machine driven by r.
func NewGRPCServer(r *machine.Runner) *GRPCServer {
	return &GRPCServer{runner: r}
}

// Start begins listening for gRPC connections on the given port.
func (s *GRPCServer) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	log.Printf("gRPC server listening on :%d", port)
	s.Serve(lis)
	return nil
}

// Serve handles connections from lis in a background goroutine.
func (s *GRPCServer) Serve(lis net.Listener) {
	s.listener = lis
	s.server = grpc.NewServer()
	s.server.RegisterService(&ServiceDesc, s)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			logger.Logf("server", "serve: %v", err)
		}
	}()
}

// Stop gracefully shuts down the gRPC server.
func (s *GRPCServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}

// Remote returns the buttons last sent for the controller port.
func (s *GRPCServer) Remote(port int) [8]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remote[port&1]
}

// do runs fn with the machine and converts failures to grpc status errors.
func (s *GRPCServer) do(fn func(m *machine.Machine) error) error {
	err := s.runner.Do(fn)
	switch {
	case err == nil:
		return nil
	case curated.Is(err, machine.ErrNoMachine):
		return status.Error(codes.Unavailable, err.Error())
	case curated.IsUnimplemented(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case curated.Is(err, ErrRange), curated.Is(err, ErrFields):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// Pause suspends the emulator loop.
func (s *GRPCServer) Pause(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	s.runner.SetPaused(true)
	return &emptypb.Empty{}, nil
}

// Resume restarts the emulator loop.
func (s *GRPCServer) Resume(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	s.runner.SetPaused(false)
	return &emptypb.Empty{}, nil
}

// Reset presses the reset button.
func (s *GRPCServer) Reset(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	err := s.do(func(m *machine.Machine) error {
		m.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// Step pauses the emulator and executes one instruction. The trace line of
// the instruction is returned.
func (s *GRPCServer) Step(ctx context.Context, in *emptypb.Empty) (*wrapperspb.StringValue, error) {
	s.runner.SetPaused(true)

	var line string
	err := s.do(func(m *machine.Machine) error {
		line = trace.Line(m)
		_, err := m.Step()
		return err
	})
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(line), nil
}

// CPUState returns the CPU registers and timing counters.
func (s *GRPCServer) CPUState(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
	paused := s.runner.Paused()

	var st CPUState
	err := s.do(func(m *machine.Machine) error {
		r := m.CPU.Registers
		scanline, dot, frame := m.PPU.Position()
		st = CPUState{
			A: r.A, X: r.X, Y: r.Y, SP: r.SP, P: byte(r.P),
			PC:       r.PC,
			Cycles:   m.Cycles(),
			Frame:    frame,
			Scanline: scanline,
			Dot:      dot,
			Flags:    trace.Flags(r.P),
			Paused:   paused,
			Mapper:   fmt.Sprintf("%d %s", m.Cart.Mapper.ID(), m.Cart.Mapper),
		}
		if err := m.Halted(); err != nil {
			st.Halted = err.Error()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st.toStruct()
}

// ReadMemory returns a block of CPU address space. Reads have no side effects
// on the machine.
func (s *GRPCServer) ReadMemory(ctx context.Context, in *structpb.Struct) (*wrapperspb.BytesValue, error) {
	var data []byte
	err := s.do(func(m *machine.Machine) error {
		addr, size, err := parseMemoryRequest(in)
		if err != nil {
			return err
		}
		data = make([]byte, size)
		for i := range data {
			data[i] = m.Peek(addr + uint16(i))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(data), nil
}

// Frame returns the RGBA pixels of the last completed frame.
func (s *GRPCServer) Frame(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	pix := make([]byte, ppu.Width*ppu.Height*4)
	err := s.do(func(m *machine.Machine) error {
		m.Frame.Snapshot(pix)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(pix), nil
}

// StreamInput handles incoming controller streams from clients.
func (s *GRPCServer) StreamInput(stream grpc.ServerStream) error {
	return recvInput(stream, func(msg *wrapperspb.StringValue) error {
		port, buttons, err := ParseInput(msg.GetValue())
		if err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		s.mu.Lock()
		s.remote[port] = buttons
		s.mu.Unlock()
		return nil
	})
}

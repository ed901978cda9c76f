package server

import (
	"context"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/meadori/nescore/cartridge"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/ppu"
	"github.com/meadori/nescore/test"
)

func newMachine(t *testing.T, program []byte) *machine.Machine {
	t.Helper()

	prg := make([]byte, 0x8000)
	copy(prg, program)
	prg[0x7FFC], prg[0x7FFD] = 0x00, 0x80

	img := []byte{'N', 'E', 'S', 0x1A, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	img = append(img, prg...)
	img = append(img, make([]byte, 0x2000)...)

	cart, err := cartridge.Parse(img)
	test.DemandSuccess(t, err)
	return machine.New(cart, nil)
}

// setupServer serves a runner over an in-memory connection.
func setupServer(t *testing.T, r *machine.Runner) (*GRPCServer, *Client) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(r)
	srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { conn.Close() })

	return srv, NewClient(conn)
}

func TestPauseStepState(t *testing.T) {
	// LDA #$42 ; STA $10 ; loop: JMP loop
	r := machine.NewRunner(newMachine(t, []byte{0xA9, 0x42, 0x85, 0x10, 0x4C, 0x04, 0x80}))
	_, client := setupServer(t, r)
	ctx := context.Background()

	test.DemandSuccess(t, client.Pause(ctx))
	test.ExpectSuccess(t, r.Paused())

	line, err := client.Step(ctx)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(line, "$8000: A9 42    LDA #$42"), line)

	line, err = client.Step(ctx)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(line, "$8002: 85 10    STA $10 = #$00"), line)

	st, err := client.CPUState(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.A, byte(0x42))
	test.ExpectEquality(t, st.PC, uint16(0x8004))
	test.ExpectEquality(t, st.SP, byte(0xFD))
	test.ExpectEquality(t, st.Cycles, uint64(7+2+3))
	test.ExpectEquality(t, st.Flags, "nvubdIzc")
	test.ExpectEquality(t, st.Halted, "")
	test.ExpectEquality(t, st.Paused, true)
	test.ExpectEquality(t, st.Mapper, "0 NROM")

	mem, err := client.ReadMemory(ctx, 0x0010, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem[0], byte(0x42))

	// mirrored RAM and cartridge space
	mem, err = client.ReadMemory(ctx, 0x0810, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem[0], byte(0x42))
	mem, err = client.ReadMemory(ctx, 0x8000, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(mem), string([]byte{0xA9, 0x42, 0x85, 0x10}))

	test.DemandSuccess(t, client.Resume(ctx))
	test.ExpectFailure(t, r.Paused())
}

func TestReadMemoryBounds(t *testing.T) {
	r := machine.NewRunner(newMachine(t, []byte{0xEA}))
	_, client := setupServer(t, r)

	_, err := client.ReadMemory(context.Background(), 0xFFFF, 2)
	test.ExpectEquality(t, status.Code(err), codes.InvalidArgument)
	_, err = client.ReadMemory(context.Background(), 0xFFFF, 1)
	test.ExpectSuccess(t, err)
}

func TestHaltedStep(t *testing.T) {
	r := machine.NewRunner(newMachine(t, []byte{0x02}))
	_, client := setupServer(t, r)
	ctx := context.Background()

	_, err := client.Step(ctx)
	test.ExpectEquality(t, status.Code(err), codes.FailedPrecondition)

	st, err := client.CPUState(ctx)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, st.Halted, "")
}

func TestNoMachine(t *testing.T) {
	_, client := setupServer(t, machine.NewRunner(nil))
	_, err := client.CPUState(context.Background())
	test.ExpectEquality(t, status.Code(err), codes.Unavailable)
}

func TestResetAndFrame(t *testing.T) {
	r := machine.NewRunner(newMachine(t, []byte{0x4C, 0x00, 0x80}))
	_, client := setupServer(t, r)
	ctx := context.Background()

	test.DemandSuccess(t, r.Frame())
	pix, err := client.Frame(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(pix), ppu.Width*ppu.Height*4)

	test.DemandSuccess(t, client.Reset(ctx))
	st, err := client.CPUState(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.PC, uint16(0x8000))
	test.ExpectEquality(t, st.SP, byte(0xFA))
}

func TestStreamInput(t *testing.T) {
	srv, client := setupServer(t, machine.NewRunner(nil))

	stream, err := client.StreamInput(context.Background())
	test.DemandSuccess(t, err)

	var p1, p2 [8]bool
	p1[0], p1[3] = true, true
	p2[7] = true
	test.DemandSuccess(t, stream.Send(0, p1))
	test.DemandSuccess(t, stream.Send(1, p2))
	test.DemandSuccess(t, stream.Close())

	test.ExpectEquality(t, srv.Remote(0), p1)
	test.ExpectEquality(t, srv.Remote(1), p2)
}

func TestStreamInputRejectsGarbage(t *testing.T) {
	_, client := setupServer(t, machine.NewRunner(nil))

	stream, err := client.StreamInput(context.Background())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, stream.stream.SendMsg(wrapperspb.String("0 TURBO")))

	err = stream.Close()
	test.ExpectEquality(t, status.Code(err), codes.InvalidArgument)
}

func TestInputEncoding(t *testing.T) {
	var b [8]bool
	test.ExpectEquality(t, FormatInput(0, b), "0 NONE")

	b[0], b[3] = true, true
	s := FormatInput(1, b)
	test.ExpectEquality(t, s, "1 A+START")

	port, decoded, err := ParseInput(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, port, 1)
	test.ExpectEquality(t, decoded, b)

	port, decoded, err = ParseInput("up+left")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, port, 0)
	test.ExpectSuccess(t, decoded[4] && decoded[6])

	_, _, err = ParseInput("3 A")
	test.ExpectFailure(t, err)
	_, _, err = ParseInput("0 A+X")
	test.ExpectFailure(t, err)
}

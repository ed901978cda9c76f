package server

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/curated"
)

// Error patterns for malformed requests.
const (
	ErrInput  = "server: bad input %q"
	ErrRange  = "server: memory range %04X+%d out of bounds"
	ErrFields = "server: missing field %q"
)

// CPUState is the snapshot returned by the CPUState call.
type CPUState struct {
	A, X, Y, SP, P byte
	PC             uint16
	Cycles         uint64
	Frame          uint64
	Scanline, Dot  int
	Flags          string
	Halted         string
	Paused         bool
	Mapper         string // iNES number and board name, as in "4 MMC3"
}

func (s CPUState) toStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"a":        int(s.A),
		"x":        int(s.X),
		"y":        int(s.Y),
		"sp":       int(s.SP),
		"p":        int(s.P),
		"pc":       int(s.PC),
		"cycles":   s.Cycles,
		"frame":    s.Frame,
		"scanline": s.Scanline,
		"dot":      s.Dot,
		"flags":    s.Flags,
		"halted":   s.Halted,
		"paused":   s.Paused,
		"mapper":   s.Mapper,
	})
}

func cpuStateFromStruct(st *structpb.Struct) CPUState {
	f := st.GetFields()
	num := func(k string) float64 {
		return f[k].GetNumberValue()
	}
	return CPUState{
		A:        byte(num("a")),
		X:        byte(num("x")),
		Y:        byte(num("y")),
		SP:       byte(num("sp")),
		P:        byte(num("p")),
		PC:       uint16(num("pc")),
		Cycles:   uint64(num("cycles")),
		Frame:    uint64(num("frame")),
		Scanline: int(num("scanline")),
		Dot:      int(num("dot")),
		Flags:    f["flags"].GetStringValue(),
		Halted:   f["halted"].GetStringValue(),
		Paused:   f["paused"].GetBoolValue(),
		Mapper:   f["mapper"].GetStringValue(),
	}
}

func memoryRequest(addr uint16, size int) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"address": int(addr),
		"size":    size,
	})
}

func parseMemoryRequest(st *structpb.Struct) (uint16, int, error) {
	f := st.GetFields()
	a, ok := f["address"]
	if !ok {
		return 0, 0, curated.Errorf(ErrFields, "address")
	}
	addr := int(a.GetNumberValue())
	size := 1
	if s, ok := f["size"]; ok {
		size = int(s.GetNumberValue())
	}
	if addr < 0 || size < 1 || addr+size > 0x10000 {
		return 0, 0, curated.Errorf(ErrRange, addr, size)
	}
	return uint16(addr), size, nil
}

// FormatInput encodes a controller state as sent on the input stream: the
// port number, a space and the pressed buttons.
//
//	0 A+START
func FormatInput(port int, buttons [8]bool) string {
	return strconv.Itoa(port) + " " + controller.FormatButtons(buttons)
}

// ParseInput decodes a message produced by FormatInput. The port may be
// omitted, in which case it is port 0.
func ParseInput(s string) (int, [8]bool, error) {
	fields := strings.Fields(s)
	port := 0
	switch len(fields) {
	case 1:
	case 2:
		switch fields[0] {
		case "0", "1":
			port = int(fields[0][0] - '0')
		default:
			return 0, [8]bool{}, curated.Errorf(ErrInput, s)
		}
		fields = fields[1:]
	default:
		return 0, [8]bool{}, curated.Errorf(ErrInput, s)
	}

	buttons, ok := controller.ParseButtons(fields[0])
	if !ok {
		return 0, [8]bool{}, curated.Errorf(ErrInput, s)
	}
	return port, buttons, nil
}

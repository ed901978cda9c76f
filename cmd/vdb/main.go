package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meadori/nescore/screenshot"
	"github.com/meadori/nescore/server"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "address of the emulator's debugger service")
	flag.Parse()

	fmt.Println("VDB - nescore debugger")
	fmt.Printf("Connecting to emulator on %s...\n", *addr)

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := server.NewClient(conn)
	fmt.Println("Connected. Type 'help' for commands.")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(vdb) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch {
		case cmd == "help" || cmd == "h":
			fmt.Println("Commands:")
			fmt.Println("  run, c          - Resume execution")
			fmt.Println("  pause, p        - Pause execution")
			fmt.Println("  step, s [n]     - Step n instructions, printing the trace")
			fmt.Println("  regs, i r       - Print CPU registers")
			fmt.Println("  x <addr>        - Examine memory (e.g. x 0000 or x/16 0000)")
			fmt.Println("  reset           - Press the reset button")
			fmt.Println("  shot <file> [n] - Save the current frame as a PNG scaled by n")
			fmt.Println("  quit, q         - Exit debugger")
		case cmd == "quit" || cmd == "q" || cmd == "exit":
			return
		case cmd == "pause" || cmd == "p":
			if err := client.Pause(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Emulator paused.")
			printRegs(ctx, client)
		case cmd == "run" || cmd == "c" || cmd == "continue":
			if err := client.Resume(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Emulator running...")
		case cmd == "step" || cmd == "s":
			n := 1
			if len(parts) > 1 {
				if v, err := strconv.Atoi(parts[1]); err == nil && v > 0 {
					n = v
				}
			}
			for i := 0; i < n; i++ {
				t, err := client.Step(ctx)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					break
				}
				fmt.Println(t)
			}
		case cmd == "regs" || (cmd == "i" && len(parts) > 1 && parts[1] == "r"):
			printRegs(ctx, client)
		case cmd == "reset":
			if err := client.Reset(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRegs(ctx, client)
		case cmd == "shot":
			if len(parts) < 2 {
				fmt.Println("Usage: shot <file> [scale]")
				continue
			}
			scale := 1
			if len(parts) > 2 {
				scale, _ = strconv.Atoi(parts[2])
			}
			if err := saveFrame(ctx, client, parts[1], scale); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "x" || strings.HasPrefix(cmd, "x/"):
			examine(ctx, client, parts)
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func examine(ctx context.Context, client *server.Client, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: x <addr> or x/<count> <addr>")
		return
	}

	count := 1
	if c, ok := strings.CutPrefix(parts[0], "x/"); ok {
		n, err := strconv.Atoi(c)
		if err == nil && n > 0 {
			count = n
		}
	}

	addrStr := strings.TrimPrefix(strings.TrimPrefix(parts[1], "0x"), "$")
	addr, err := strconv.ParseUint(addrStr, 16, 16)
	if err != nil {
		fmt.Printf("Invalid address: %s\n", parts[1])
		return
	}

	data, err := client.ReadMemory(ctx, uint16(addr), count)
	if err != nil {
		fmt.Printf("Error reading memory: %v\n", err)
		return
	}
	printHexDump(uint16(addr), data)
}

func printRegs(ctx context.Context, client *server.Client) {
	st, err := client.CPUState(ctx)
	if err != nil {
		fmt.Printf("Error getting CPU state: %v\n", err)
		return
	}
	fmt.Printf("A: %02X  X: %02X  Y: %02X  SP: %02X  PC: %04X  P: %s  CYC: %d  PPU: %3d,%3d  F: %d\n",
		st.A, st.X, st.Y, st.SP, st.PC, st.Flags, st.Cycles, st.Scanline, st.Dot, st.Frame)
	fmt.Printf("Mapper: %s\n", st.Mapper)
	if st.Halted != "" {
		fmt.Printf("Halted: %s\n", st.Halted)
	}
}

func printHexDump(startAddr uint16, data []byte) {
	for i := 0; i < len(data); i += 16 {
		fmt.Printf("%04X:", startAddr+uint16(i))
		end := min(i+16, len(data))
		for j := i; j < end; j++ {
			fmt.Printf(" %02X", data[j])
		}
		fmt.Println()
	}
}

func saveFrame(ctx context.Context, client *server.Client, path string, scale int) error {
	pix, err := client.Frame(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, screenshot.Scale(screenshot.FromPixels(pix), scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

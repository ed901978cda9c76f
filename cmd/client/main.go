package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/server"
)

// frameTime is the length of one NTSC frame.
const frameTime = time.Second * 1000 / 60098

func main() {
	scriptFile := flag.String("script", "", "Path to the recorded script file to replay")
	addr := flag.String("addr", "localhost:50051", "address of the emulator's debugger service")
	port := flag.Int("port", 0, "controller port to drive (0 or 1)")
	flag.Parse()

	if *scriptFile == "" {
		log.Fatalf("Please provide a script file using -script <file.script>")
	}

	file, err := os.Open(*scriptFile)
	if err != nil {
		log.Fatalf("Failed to open script file: %v", err)
	}
	defer file.Close()

	log.Printf("Connecting to emulator on %s...", *addr)
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	client := server.NewClient(conn)

	stream, err := client.StreamInput(context.Background())
	if err != nil {
		log.Fatalf("failed to open stream: %v", err)
	}

	log.Printf("Connected! Starting replay of %s in 2 seconds...\n", *scriptFile)
	time.Sleep(2 * time.Second)

	// each line is a frame count and the buttons held for that long:
	//
	//	120 NONE
	//	3 A+RIGHT
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			log.Printf("Skipping invalid line: %s\n", line)
			continue
		}

		frames, err := strconv.Atoi(parts[0])
		if err != nil {
			log.Printf("Invalid frame count: %s\n", parts[0])
			continue
		}

		buttons, ok := controller.ParseButtons(parts[1])
		if !ok {
			log.Printf("Skipping invalid buttons: %s\n", parts[1])
			continue
		}

		if err := stream.Send(*port, buttons); err != nil {
			log.Fatalf("failed to send state: %v", err)
		}
		time.Sleep(time.Duration(frames) * frameTime)
	}

	if err := stream.Send(*port, [8]bool{}); err != nil {
		log.Printf("failed to release buttons: %v", err)
	}
	if err := stream.Close(); err != nil {
		log.Printf("failed to close stream: %v", err)
	}

	log.Println("Replay complete. Disconnected.")
}

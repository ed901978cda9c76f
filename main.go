package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"github.com/meadori/nescore/cartridge"
	"github.com/meadori/nescore/config"
	"github.com/meadori/nescore/display"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/ppu"
	"github.com/meadori/nescore/screenshot"
	"github.com/meadori/nescore/server"
	"github.com/meadori/nescore/statsview"
	"github.com/meadori/nescore/trace"
)

func main() {
	romPath := flag.String("rom", "", "path to the iNES image (a file picker opens if omitted)")
	configPath := flag.String("config", "nescore.json", "settings file")
	grpcPort := flag.Int("grpc-port", -1, "debugger service port (overrides the settings file; 0 disables)")
	recordPath := flag.String("record", "", "record controller input to a script file")
	tracePath := flag.String("trace", "", "write an execution trace to a file")
	frames := flag.Int("frames", 60, "frames to run in headless mode")
	shotPath := flag.String("screenshot", "", "save the last frame as a PNG in headless mode")
	headless := flag.Bool("headless", false, "run without a window")
	stats := flag.Bool("statsview", false, "serve runtime statistics (requires the statsview build tag)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	if *grpcPort >= 0 {
		cfg.Server.Enabled = *grpcPort > 0
		cfg.Server.Port = *grpcPort
	}
	if *tracePath != "" {
		cfg.Debug.Trace = *tracePath
	}
	if cfg.Debug.LogEcho {
		logger.SetEcho(os.Stderr)
	}
	if *stats || cfg.Debug.Statsview {
		if !statsview.Available() {
			log.Printf("statsview not available in this build")
		}
		sv := statsview.Launch(os.Stdout, cfg.Debug.StatsviewAddr)
		defer sv.Stop()
	}

	tw, closeTrace, err := openTrace(cfg.Debug.Trace)
	if err != nil {
		log.Fatalf("Error creating trace file: %v", err)
	}
	defer closeTrace()

	if *headless {
		if err := runHeadless(*romPath, cfg, *frames, *shotPath, tw); err != nil {
			fmt.Fprintln(os.Stderr, err)
			logger.Write(os.Stderr)
			closeTrace()
			os.Exit(1)
		}
		return
	}

	if *romPath == "" {
		*romPath, err = dialog.File().Filter("iNES image", "nes").Title("Load ROM").Load()
		if err != nil && err != dialog.ErrCancelled {
			log.Printf("File dialog: %v", err)
		}
	}

	frame := ppu.NewFrame()
	runner := machine.NewRunner(nil)
	if tw != nil {
		runner.SetObserver(trace.Observer(tw))
	}

	var srv *server.GRPCServer
	if cfg.Server.Enabled {
		srv = server.NewGRPCServer(runner)
		if err := srv.Start(cfg.Server.Port); err != nil {
			log.Fatalf("Error starting debugger service: %v", err)
		}
		defer srv.Stop()
	}

	var recFile *os.File
	if *recordPath != "" {
		recFile, err = os.Create(*recordPath)
		if err != nil {
			log.Fatalf("Error creating record file: %v", err)
		}
		defer recFile.Close()
	}

	d := display.New(runner, frame, cfg, srv, recFile)
	defer d.Close()

	if *romPath != "" {
		if err := d.Load(*romPath); err != nil {
			log.Fatalf("Error loading ROM: %v", err)
		}
	}

	ebiten.SetWindowSize(d.Width(), d.Height())
	ebiten.SetWindowTitle("nescore")
	if err := ebiten.RunGame(d); err != nil {
		log.Printf("%v", err)
	}
}

// openTrace creates the trace file at path. The writer is nil when path is
// empty. The returned function flushes and closes the file and may be called
// more than once.
func openTrace(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	var once sync.Once
	return bw, func() {
		once.Do(func() {
			if err := bw.Flush(); err != nil {
				log.Printf("Error writing trace: %v", err)
			}
			f.Close()
		})
	}, nil
}

// runHeadless runs the cartridge for a number of frames without a window,
// tracing every instruction to tw when it is not nil, and optionally saving
// the final frame.
func runHeadless(romPath string, cfg *config.Config, frames int, shotPath string, tw io.Writer) error {
	if romPath == "" {
		return fmt.Errorf("headless mode needs -rom")
	}

	cart, err := cartridge.Load(romPath)
	if err != nil {
		return err
	}
	m := machine.New(cart, nil)

	var obs machine.Observer
	if tw != nil {
		obs = trace.Observer(tw)
	}
	for i := 0; i < frames; i++ {
		if err := m.RunFrameObserved(obs); err != nil {
			return err
		}
	}

	if shotPath != "" {
		return screenshot.Save(shotPath, m.Frame, int(cfg.Video.Scale+0.5))
	}
	return nil
}

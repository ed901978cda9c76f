// Package display is the interactive front end: an ebiten window showing the
// shared frame, with a menu bar and a status panel.
package display

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"github.com/meadori/nescore/cartridge"
	"github.com/meadori/nescore/config"
	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/ppu"
	"github.com/meadori/nescore/server"
)

const (
	menuBarHeight = 50
	hudHeight     = 140
	tvMargin      = 20
)

// Display represents the emulator's window.
type Display struct {
	runner *machine.Runner
	frame  *ppu.Frame
	remote *server.GRPCServer
	keys   [8]ebiten.Key
	scale  float64

	resetBlinkTimer int
	showPatterns    bool
	halted          error

	record      *controller.Recorder
	ports       [2][8]bool // buttons held this frame on each port
	romLoadChan chan string

	screen        *ebiten.Image
	screenPix     []byte
	staticPix     []byte
	scanlineImage *ebiten.Image
	patterns      [2]*ebiten.Image
	patternPix    []byte
}

// New creates a new Display. The runner may be empty, in which case the
// screen shows static until a cartridge is loaded. The remote server and
// record file are optional.
func New(r *machine.Runner, frame *ppu.Frame, cfg *config.Config, srv *server.GRPCServer, recFile *os.File) *Display {
	d := &Display{
		runner:      r,
		frame:       frame,
		remote:      srv,
		scale:       cfg.Video.Scale,
		romLoadChan: make(chan string, 1),
		screen:      ebiten.NewImage(ppu.Width, ppu.Height),
		screenPix:   make([]byte, ppu.Width*ppu.Height*4),
		staticPix:   make([]byte, ppu.Width*ppu.Height*4),
		patternPix:  make([]byte, 128*128*4),
		patterns:    [2]*ebiten.Image{ebiten.NewImage(128, 128), ebiten.NewImage(128, 128)},
	}

	for i, name := range cfg.Input.Player1.Keys() {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			logger.Logf("display", "unknown key %q for %s", name, controller.Button(i))
			continue
		}
		d.keys[i] = k
	}

	if cfg.Video.Scanlines {
		// black line every other row
		d.scanlineImage = ebiten.NewImage(ppu.Width, ppu.Height)
		for y := 0; y < ppu.Height; y += 2 {
			vector.DrawFilledRect(d.scanlineImage, 0, float32(y), ppu.Width, 1, color.RGBA{0, 0, 0, 70}, false)
		}
	}

	if recFile != nil {
		d.record = controller.NewRecorder(recFile)
	}

	return d
}

// Width is the logical width of the window.
func (d *Display) Width() int {
	return int(ppu.Width*d.scale) + 2*tvMargin
}

// Height is the logical height of the window.
func (d *Display) Height() int {
	return menuBarHeight + int(ppu.Height*d.scale) + 2*tvMargin + hudHeight
}

// Load replaces the running machine with one for the cartridge at path.
func (d *Display) Load(path string) error {
	cart, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	m := machine.New(cart, d.frame)
	m.Bus.MuteAPU(true)
	d.runner.Swap(m)
	d.runner.SetPaused(false)
	d.halted = nil
	logger.Logf("display", "loaded %s", path)
	return nil
}

// Update handles input and runs one emulated frame per tick.
func (d *Display) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		d.showPatterns = !d.showPatterns
	}

	// cartridge picked by the LOAD dialog
	select {
	case filename := <-d.romLoadChan:
		if err := d.Load(filename); err != nil {
			logger.Logf("display", "%v", err)
		}
	default:
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := d.menuClick(ebiten.CursorPosition()); err != nil {
			return err
		}
	}

	if d.resetBlinkTimer > 0 {
		d.resetBlinkTimer--
	}

	// local keyboard OR remote network input
	var remote [8]bool
	if d.remote != nil {
		remote = d.remote.Remote(0)
	}
	var buttons [8]bool
	for i, k := range d.keys {
		buttons[i] = ebiten.IsKeyPressed(k) || remote[i]
	}
	d.ports[0] = buttons
	if d.remote != nil {
		d.ports[1] = d.remote.Remote(1)
	}

	if !d.runner.Loaded() {
		for i := 0; i < len(d.staticPix); i += 4 {
			val := byte(rand.Intn(256))
			d.staticPix[i] = val
			d.staticPix[i+1] = val
			d.staticPix[i+2] = val
			d.staticPix[i+3] = 255
		}
		d.screen.WritePixels(d.staticPix)
		return nil
	}

	_ = d.runner.Do(func(m *machine.Machine) error {
		m.Bus.Controller(0).SetButtons(d.ports[0])
		m.Bus.Controller(1).SetButtons(d.ports[1])
		if d.showPatterns {
			for i := range d.patterns {
				m.PPU.PatternTable(i, 0, d.patternPix)
				d.patterns[i].WritePixels(d.patternPix)
			}
		}
		return nil
	})

	if d.record != nil {
		d.record.Frame(buttons)
	}

	if err := d.runner.Frame(); err != nil && d.halted == nil {
		d.halted = err
		logger.Logf("display", "emulation stopped: %v", err)
	}

	d.frame.Snapshot(d.screenPix)
	d.screen.WritePixels(d.screenPix)

	return nil
}

// menuClick handles a click at the cursor position.
func (d *Display) menuClick(cx, cy int) error {
	switch buttonAt(float32(cx), float32(cy)) {
	case "POWER":
		return ebiten.Termination
	case "RESET":
		_ = d.runner.Do(func(m *machine.Machine) error {
			m.Reset()
			return nil
		})
		d.halted = nil
		d.resetBlinkTimer = 30 // frames
	case "LOAD":
		go func() {
			filename, err := dialog.File().Filter("iNES image", "nes").Load()
			if err != nil {
				logger.Logf("display", "file dialog: %v", err)
				return
			}
			d.romLoadChan <- filename
		}()
	}
	return nil
}

// Draw draws the TV, the menu bar and the status panel.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{60, 60, 60, 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d.scale, d.scale)
	op.GeoM.Translate(tvMargin, menuBarHeight+tvMargin)
	screen.DrawImage(d.screen, op)
	if d.scanlineImage != nil && d.runner.Loaded() {
		screen.DrawImage(d.scanlineImage, op)
	}

	if d.showPatterns {
		for i, p := range d.patterns {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(tvMargin+i*(128+8)), menuBarHeight+tvMargin)
			screen.DrawImage(p, op)
		}
	}

	if d.halted != nil {
		msg := d.halted.Error()
		if len(msg) > 60 {
			msg = msg[:60]
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HALTED: %s", msg), tvMargin+4, menuBarHeight+tvMargin+4)
	}

	d.drawStatusPanel(screen)

	d.drawMenuBar(screen)
}

// Layout keeps the logical size fixed whatever the window size.
func (d *Display) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return d.Width(), d.Height()
}

// Close finishes the input recording, if any.
func (d *Display) Close() {
	if d.record != nil {
		d.record.Flush()
	}
}

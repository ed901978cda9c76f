package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meadori/nescore/machine"
)

// the debug font is 6x16 pixels per character
const (
	glyphW = 6
	glyphH = 16
)

const (
	buttonY = 5
	buttonW = 80
	buttonH = 40
)

type menuButton struct {
	label string
	x     float32
}

var menuButtons = []menuButton{{"POWER", 60}, {"RESET", 150}, {"LOAD", 240}}

func (b menuButton) contains(x, y float32) bool {
	return x >= b.x && x <= b.x+buttonW && y >= buttonY && y <= buttonY+buttonH
}

// buttonAt returns the label of the menu button under x, y or the empty
// string.
func buttonAt(x, y float32) string {
	for _, b := range menuButtons {
		if b.contains(x, y) {
			return b.label
		}
	}
	return ""
}

var (
	panelGrey  = color.RGBA{200, 200, 200, 255}
	stripeGrey = color.RGBA{40, 40, 40, 255}
	labelRed   = color.RGBA{200, 40, 40, 255}
	chipOff    = color.RGBA{50, 50, 50, 255}
	chipOn     = color.RGBA{230, 70, 70, 255}
)

var stateColours = map[machine.State]color.RGBA{
	machine.Empty:   {110, 110, 110, 255},
	machine.Running: {40, 150, 60, 255},
	machine.Paused:  {190, 160, 30, 255},
	machine.Halted:  {220, 110, 0, 255},
}

// button labels short enough for a chip
var chipLabels = [8]string{"A", "B", "SEL", "STA", "UP", "DN", "LT", "RT"}

// printCentred draws s centred in the rectangle x, y, w, h.
func printCentred(screen *ebiten.Image, s string, x, y, w, h float32) {
	tx := x + (w-float32(len(s)*glyphW))/2
	ty := y + (h-glyphH)/2
	ebitenutil.DebugPrintAt(screen, s, int(tx), int(ty))
}

func (d *Display) drawMenuBar(screen *ebiten.Image) {
	width := float32(d.Width())
	vector.DrawFilledRect(screen, 0, 0, width, menuBarHeight, panelGrey, false)
	vector.DrawFilledRect(screen, 0, menuBarHeight, width, 4, stripeGrey, false)

	cx, cy := ebiten.CursorPosition()
	hover := buttonAt(float32(cx), float32(cy))
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// power LED, amber when halted and blinking after a reset
	led := color.RGBA{230, 30, 30, 255}
	if d.halted != nil {
		led = color.RGBA{255, 170, 0, 255}
	}
	vector.DrawFilledRect(screen, 20, 15, 20, 20, stripeGrey, false)
	if d.resetBlinkTimer == 0 || (d.resetBlinkTimer/4)%2 == 0 {
		vector.DrawFilledCircle(screen, 30, 25, 6, led, false)
	}

	for _, b := range menuButtons {
		fill := color.RGBA{90, 90, 90, 255}
		if b.label == hover {
			fill = color.RGBA{110, 110, 110, 255}
		}
		x, y := b.x, float32(buttonY)
		if b.label == hover && down {
			x, y = x+1, y+1
		}
		vector.DrawFilledRect(screen, x, y, buttonW, buttonH, fill, false)
		vector.StrokeRect(screen, x, y, buttonW, buttonH, 2, stripeGrey, false)
		printCentred(screen, b.label, x, y, buttonW, buttonH)
	}

	ebitenutil.DebugPrintAt(screen, "nescore", int(width)-len("nescore")*glyphW-tvMargin, 17)
}

// drawStatusPanel draws the panel below the TV: the runner state,
// the active options and the buttons held on each controller port.
func (d *Display) drawStatusPanel(screen *ebiten.Image) {
	x := float32(tvMargin)
	y := float32(d.Height() - hudHeight)

	state := d.runner.State()
	vector.DrawFilledRect(screen, x, y+8, 110, 22, stateColours[state], false)
	printCentred(screen, state.String(), x, y+8, 110, 22)

	// active options
	ox := x + 120
	for _, opt := range []struct {
		label string
		on    bool
	}{
		{"PATTERNS", d.showPatterns},
		{"REC", d.record != nil},
		{"REMOTE", d.remote != nil},
	} {
		w := float32(len(opt.label)*glyphW + 12)
		if opt.on {
			vector.DrawFilledRect(screen, ox, y+8, w, 22, labelRed, false)
		} else {
			vector.StrokeRect(screen, ox, y+8, w, 22, 1, panelGrey, false)
		}
		printCentred(screen, opt.label, ox, y+8, w, 22)
		ox += w + 6
	}

	for port := range d.ports {
		row := y + 42 + float32(port)*36
		ebitenutil.DebugPrintAt(screen, []string{"P1", "P2"}[port], int(x), int(row)+4)
		for i, held := range d.ports[port] {
			cx := x + 30 + float32(i)*44
			c := chipOff
			if held {
				c = chipOn
			}
			vector.DrawFilledRect(screen, cx, row, 40, 24, c, false)
			printCentred(screen, chipLabels[i], cx, row, 40, 24)
		}
	}
}

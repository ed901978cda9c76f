package display

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/machine"
	"github.com/meadori/nescore/test"
)

func TestButtonAt(t *testing.T) {
	for _, b := range menuButtons {
		test.ExpectEquality(t, buttonAt(b.x, buttonY), b.label)
		test.ExpectEquality(t, buttonAt(b.x+buttonW/2, buttonY+buttonH/2), b.label)
		test.ExpectEquality(t, buttonAt(b.x+buttonW, buttonY+buttonH), b.label)
		test.ExpectEquality(t, buttonAt(b.x-1, buttonY), "", b.label)
	}
	test.ExpectEquality(t, buttonAt(0, 0), "")
	test.ExpectEquality(t, buttonAt(menuButtons[0].x, buttonY+buttonH+1), "")
}

func TestChipLabels(t *testing.T) {
	for i, l := range chipLabels {
		name := controller.Button(i).String()
		test.ExpectSuccess(t, len(l) <= len(name) && name[0] == l[0], name)
	}
}

func TestStateColours(t *testing.T) {
	for _, s := range []machine.State{machine.Empty, machine.Running, machine.Paused, machine.Halted} {
		_, ok := stateColours[s]
		test.ExpectSuccess(t, ok, s)
	}
}

func TestMenuClick(t *testing.T) {
	d := &Display{runner: machine.NewRunner(nil), romLoadChan: make(chan string, 1)}

	b := menuButtons[0]
	err := d.menuClick(int(b.x)+1, buttonY+1)
	test.ExpectSuccess(t, errors.Is(err, ebiten.Termination))

	d.halted = errors.New("halted")
	b = menuButtons[1]
	test.ExpectSuccess(t, d.menuClick(int(b.x)+1, buttonY+1) == nil)
	test.ExpectSuccess(t, d.halted == nil)
	test.ExpectEquality(t, d.resetBlinkTimer, 30)

	// outside every button
	d.resetBlinkTimer = 0
	test.ExpectSuccess(t, d.menuClick(0, 0) == nil)
	test.ExpectEquality(t, d.resetBlinkTimer, 0)
}

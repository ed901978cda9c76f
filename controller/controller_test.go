package controller

import (
	"testing"

	"github.com/meadori/nescore/test"
)

func TestShiftRegister(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true, false, false, true, false, false, false, true})

	c.Write(1)
	c.Write(0)

	want := []byte{1, 0, 0, 1, 0, 0, 0, 1, 1, 1}
	for i, w := range want {
		test.ExpectEquality(t, c.Peek(), w, i)
		test.ExpectEquality(t, c.Read(), w, i)
	}
}

func TestStrobeHighRepeatsA(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true})
	c.Write(1)
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, c.Read(), byte(1), i)
	}
}

func TestButtons(t *testing.T) {
	c := New()
	b := [8]bool{false, true, false, false, true}
	c.SetButtons(b)
	test.ExpectEquality(t, c.Buttons(), b)
}

func TestParseButton(t *testing.T) {
	b, ok := ParseButton(" start ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, Start)
	test.ExpectEquality(t, Right.String(), "RIGHT")

	_, ok = ParseButton("turbo")
	test.ExpectFailure(t, ok)
}

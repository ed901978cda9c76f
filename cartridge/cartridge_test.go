package cartridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/mapper"
	"github.com/meadori/nescore/test"
)

// buildImage returns an iNES image where every byte of PRG bank n (8KB
// units) is n and every byte of CHR bank n (1KB units) is 0x80|n.
func buildImage(prg16k, chr8k int, flags6, flags7 byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, byte(prg16k), byte(chr8k), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append([]byte{}, header...)
	for i := 0; i < prg16k*prgUnit; i++ {
		data = append(data, byte(i/prgBankSize))
	}
	for i := 0; i < chr8k*chrUnit; i++ {
		data = append(data, 0x80|byte(i/chrBankSize))
	}
	return data
}

func TestLoad(t *testing.T) {
	data := buildImage(2, 1, 0x01, 0x00)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cart, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.PRGROM) != 2*16384 {
		t.Errorf("Expected PRGROM size to be %d, but got %d", 2*16384, len(cart.PRGROM))
	}
	if len(cart.CHRROM) != 1*8192 {
		t.Errorf("Expected CHRROM size to be %d, but got %d", 1*8192, len(cart.CHRROM))
	}
	if cart.MapperID != 0 {
		t.Errorf("Expected mapper to be 0, but got %d", cart.MapperID)
	}
	test.ExpectEquality(t, cart.Mirror, mapper.MirrorVertical)
	test.ExpectEquality(t, cart.Mapper.String(), "NROM")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectSuccess(t, curated.Is(err, ErrLoad))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("NES"))
	test.ExpectSuccess(t, curated.Is(err, ErrBadMagic))

	_, err = Parse(append([]byte("XES\x1a"), make([]byte, 12)...))
	test.ExpectSuccess(t, curated.Is(err, ErrBadMagic))

	_, err = Parse(buildImage(0, 1, 0, 0))
	test.ExpectSuccess(t, curated.Is(err, ErrNoPRG))

	data := buildImage(2, 1, 0, 0)
	_, err = Parse(data[:len(data)-1])
	test.ExpectSuccess(t, curated.Is(err, ErrTruncated))

	_, err = Parse(data[:headerSize+100])
	test.ExpectSuccess(t, curated.Is(err, ErrTruncated))

	// mapper 1 is not supported
	_, err = Parse(buildImage(2, 1, 0x10, 0))
	test.ExpectSuccess(t, curated.Is(err, ErrUnsupportedMapper))
}

func TestMapperNumber(t *testing.T) {
	cart, err := Parse(buildImage(2, 1, 0x40, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.MapperID, 4)
	test.ExpectEquality(t, cart.Mapper.ID(), 4)
	test.ExpectEquality(t, cart.Mapper.String(), "MMC3")

	_, err = Parse(buildImage(2, 1, 0x40, 0x10))
	test.ExpectSuccess(t, curated.Is(err, ErrUnsupportedMapper))
}

func TestTrainerAndCHRRAM(t *testing.T) {
	img := buildImage(1, 0, 0x04, 0)
	trained := append([]byte{}, img[:headerSize]...)
	trained = append(trained, make([]byte, trainerSize)...)
	trained = append(trained, img[headerSize:]...)

	cart, err := Parse(trained)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.IsCHRRAM)
	test.ExpectEquality(t, len(cart.CHRROM), chrUnit)
	test.ExpectEquality(t, cart.PRGROM[prgBankSize], byte(1))
}

func TestNROM(t *testing.T) {
	cart, err := Parse(buildImage(1, 0, 0, 0))
	test.DemandSuccess(t, err)
	m := cart.Mapper
	test.ExpectEquality(t, m.ID(), 0)

	// 16KB images are mirrored
	lo, ok := m.CPURead(0x8000 + prgBankSize)
	test.ExpectSuccess(t, ok)
	hi, _ := m.CPURead(0xC000 + prgBankSize)
	test.ExpectEquality(t, lo, hi)

	_, ok = m.CPURead(0x5000)
	test.ExpectFailure(t, ok)

	// PRG RAM
	test.ExpectSuccess(t, m.CPUWrite(0x6001, 0x5A))
	v, _ := m.CPURead(0x6001)
	test.ExpectEquality(t, v, byte(0x5A))

	// ROM is not writable
	m.CPUWrite(0x8000, 0xFF)
	v, _ = m.CPURead(0x8000)
	test.ExpectEquality(t, v, byte(0))

	// CHR RAM
	test.ExpectSuccess(t, m.PPUWrite(0x0010, 0x33))
	v, _ = m.PPURead(0x0010)
	test.ExpectEquality(t, v, byte(0x33))
}

func TestNROMCHRROMReadOnly(t *testing.T) {
	cart, err := Parse(buildImage(2, 1, 0, 0))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.Mapper.PPUWrite(0x0010, 0x33))
}

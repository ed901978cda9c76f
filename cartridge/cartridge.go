package cartridge

import (
	"os"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/mapper"
)

// Error patterns returned by Parse and Load. Match them with curated.Is.
const (
	ErrBadMagic          = "cartridge: missing iNES header"
	ErrTruncated         = "cartridge: %s data is too short (need %d bytes, have %d)"
	ErrUnsupportedMapper = "cartridge: unsupported mapper: %d"
	ErrNoPRG             = "cartridge: image has no PRG ROM"
	ErrLoad              = "cartridge: %v"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgUnit     = 16384
	chrUnit     = 8192
)

// Cartridge represents an NES cartridge.
type Cartridge struct {
	PRGROM   []byte
	CHRROM   []byte
	IsCHRRAM bool

	Mirror  mapper.Mirroring
	Battery bool

	MapperID int
	Mapper   mapper.Mapper
}

// Load reads an iNES file from disk.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ErrLoad, err)
	}
	cart, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logger.Logf("cartridge", "loaded %s", path)
	return cart, nil
}

// Parse builds a cartridge from an iNES image.
func Parse(data []byte) (*Cartridge, error) {
	if len(data) < headerSize || data[0] != 'N' || data[1] != 'E' || data[2] != 'S' || data[3] != 0x1A {
		return nil, curated.Errorf(ErrBadMagic)
	}

	prgSize := int(data[4]) * prgUnit
	chrSize := int(data[5]) * chrUnit
	flags6 := data[6]
	flags7 := data[7]

	if prgSize == 0 {
		return nil, curated.Errorf(ErrNoPRG)
	}

	// Check for presence of a trainer (Bit 2 of Flag 6)
	offset := headerSize
	if flags6&0x04 != 0 {
		offset += trainerSize
	}

	c := &Cartridge{
		Battery:  flags6&0x02 != 0,
		MapperID: int(flags7&0xF0) | int(flags6>>4),
	}

	switch {
	case flags6&0x08 != 0:
		c.Mirror = mapper.MirrorFourScreen
	case flags6&0x01 != 0:
		c.Mirror = mapper.MirrorVertical
	default:
		c.Mirror = mapper.MirrorHorizontal
	}

	prgEnd := offset + prgSize
	if prgEnd > len(data) {
		return nil, curated.Errorf(ErrTruncated, "PRG ROM", prgEnd, len(data))
	}
	c.PRGROM = make([]byte, prgSize)
	copy(c.PRGROM, data[offset:prgEnd])

	if chrSize > 0 {
		chrEnd := prgEnd + chrSize
		if chrEnd > len(data) {
			return nil, curated.Errorf(ErrTruncated, "CHR ROM", chrEnd, len(data))
		}
		c.CHRROM = make([]byte, chrSize)
		copy(c.CHRROM, data[prgEnd:chrEnd])
	} else {
		c.CHRROM = make([]byte, chrUnit)
		c.IsCHRRAM = true
	}

	m, err := newMapper(c)
	if err != nil {
		return nil, err
	}
	c.Mapper = m

	logger.Logf("cartridge", "mapper %d (%s), %dKB PRG, %dKB CHR, %s mirroring", m.ID(), m, prgSize/1024, len(c.CHRROM)/1024, c.Mirror)

	return c, nil
}

// newMapper creates a Mapper instance based on the cartridge's mapper ID.
func newMapper(cart *Cartridge) (mapper.Mapper, error) {
	switch cart.MapperID {
	case 0:
		return newNROM(cart), nil
	case 4:
		return newMMC3(cart), nil
	default:
		return nil, curated.Errorf(ErrUnsupportedMapper, cart.MapperID)
	}
}

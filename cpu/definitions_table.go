package cpu

// Every opcode byte is a distinct Opcode value, one per mnemonic and addressing
// mode pair. Undocumented opcodes are included so that decoding is total.
const (
	Brk              Opcode = 0x00
	OraIndirectX     Opcode = 0x01
	Kil02            Opcode = 0x02
	SloIndirectX     Opcode = 0x03
	NopZeroPage04    Opcode = 0x04
	OraZeroPage      Opcode = 0x05
	AslZeroPage      Opcode = 0x06
	SloZeroPage      Opcode = 0x07
	Php              Opcode = 0x08
	OraImmediate     Opcode = 0x09
	AslAccumulator   Opcode = 0x0A
	AncImmediate     Opcode = 0x0B
	NopAbsolute0C    Opcode = 0x0C
	OraAbsolute      Opcode = 0x0D
	AslAbsolute      Opcode = 0x0E
	SloAbsolute      Opcode = 0x0F
	Bpl              Opcode = 0x10
	OraIndirectY     Opcode = 0x11
	Kil12            Opcode = 0x12
	SloIndirectY     Opcode = 0x13
	NopZeroPageX14   Opcode = 0x14
	OraZeroPageX     Opcode = 0x15
	AslZeroPageX     Opcode = 0x16
	SloZeroPageX     Opcode = 0x17
	Clc              Opcode = 0x18
	OraAbsoluteY     Opcode = 0x19
	Nop1A            Opcode = 0x1A
	SloAbsoluteY     Opcode = 0x1B
	NopAbsoluteX1C   Opcode = 0x1C
	OraAbsoluteX     Opcode = 0x1D
	AslAbsoluteX     Opcode = 0x1E
	SloAbsoluteX     Opcode = 0x1F
	Jsr              Opcode = 0x20
	AndIndirectX     Opcode = 0x21
	Kil22            Opcode = 0x22
	RlaIndirectX     Opcode = 0x23
	BitZeroPage      Opcode = 0x24
	AndZeroPage      Opcode = 0x25
	RolZeroPage      Opcode = 0x26
	RlaZeroPage      Opcode = 0x27
	Plp              Opcode = 0x28
	AndImmediate     Opcode = 0x29
	RolAccumulator   Opcode = 0x2A
	AncImmediate2B   Opcode = 0x2B
	BitAbsolute      Opcode = 0x2C
	AndAbsolute      Opcode = 0x2D
	RolAbsolute      Opcode = 0x2E
	RlaAbsolute      Opcode = 0x2F
	Bmi              Opcode = 0x30
	AndIndirectY     Opcode = 0x31
	Kil32            Opcode = 0x32
	RlaIndirectY     Opcode = 0x33
	NopZeroPageX34   Opcode = 0x34
	AndZeroPageX     Opcode = 0x35
	RolZeroPageX     Opcode = 0x36
	RlaZeroPageX     Opcode = 0x37
	Sec              Opcode = 0x38
	AndAbsoluteY     Opcode = 0x39
	Nop3A            Opcode = 0x3A
	RlaAbsoluteY     Opcode = 0x3B
	NopAbsoluteX3C   Opcode = 0x3C
	AndAbsoluteX     Opcode = 0x3D
	RolAbsoluteX     Opcode = 0x3E
	RlaAbsoluteX     Opcode = 0x3F
	Rti              Opcode = 0x40
	EorIndirectX     Opcode = 0x41
	Kil42            Opcode = 0x42
	SreIndirectX     Opcode = 0x43
	NopZeroPage44    Opcode = 0x44
	EorZeroPage      Opcode = 0x45
	LsrZeroPage      Opcode = 0x46
	SreZeroPage      Opcode = 0x47
	Pha              Opcode = 0x48
	EorImmediate     Opcode = 0x49
	LsrAccumulator   Opcode = 0x4A
	AlrImmediate     Opcode = 0x4B
	JmpAbsolute      Opcode = 0x4C
	EorAbsolute      Opcode = 0x4D
	LsrAbsolute      Opcode = 0x4E
	SreAbsolute      Opcode = 0x4F
	Bvc              Opcode = 0x50
	EorIndirectY     Opcode = 0x51
	Kil52            Opcode = 0x52
	SreIndirectY     Opcode = 0x53
	NopZeroPageX54   Opcode = 0x54
	EorZeroPageX     Opcode = 0x55
	LsrZeroPageX     Opcode = 0x56
	SreZeroPageX     Opcode = 0x57
	Cli              Opcode = 0x58
	EorAbsoluteY     Opcode = 0x59
	Nop5A            Opcode = 0x5A
	SreAbsoluteY     Opcode = 0x5B
	NopAbsoluteX5C   Opcode = 0x5C
	EorAbsoluteX     Opcode = 0x5D
	LsrAbsoluteX     Opcode = 0x5E
	SreAbsoluteX     Opcode = 0x5F
	Rts              Opcode = 0x60
	AdcIndirectX     Opcode = 0x61
	Kil62            Opcode = 0x62
	RraIndirectX     Opcode = 0x63
	NopZeroPage64    Opcode = 0x64
	AdcZeroPage      Opcode = 0x65
	RorZeroPage      Opcode = 0x66
	RraZeroPage      Opcode = 0x67
	Pla              Opcode = 0x68
	AdcImmediate     Opcode = 0x69
	RorAccumulator   Opcode = 0x6A
	ArrImmediate     Opcode = 0x6B
	JmpIndirect      Opcode = 0x6C
	AdcAbsolute      Opcode = 0x6D
	RorAbsolute      Opcode = 0x6E
	RraAbsolute      Opcode = 0x6F
	Bvs              Opcode = 0x70
	AdcIndirectY     Opcode = 0x71
	Kil72            Opcode = 0x72
	RraIndirectY     Opcode = 0x73
	NopZeroPageX74   Opcode = 0x74
	AdcZeroPageX     Opcode = 0x75
	RorZeroPageX     Opcode = 0x76
	RraZeroPageX     Opcode = 0x77
	Sei              Opcode = 0x78
	AdcAbsoluteY     Opcode = 0x79
	Nop7A            Opcode = 0x7A
	RraAbsoluteY     Opcode = 0x7B
	NopAbsoluteX7C   Opcode = 0x7C
	AdcAbsoluteX     Opcode = 0x7D
	RorAbsoluteX     Opcode = 0x7E
	RraAbsoluteX     Opcode = 0x7F
	NopImmediate80   Opcode = 0x80
	StaIndirectX     Opcode = 0x81
	NopImmediate82   Opcode = 0x82
	SaxIndirectX     Opcode = 0x83
	StyZeroPage      Opcode = 0x84
	StaZeroPage      Opcode = 0x85
	StxZeroPage      Opcode = 0x86
	SaxZeroPage      Opcode = 0x87
	Dey              Opcode = 0x88
	NopImmediate89   Opcode = 0x89
	Txa              Opcode = 0x8A
	XaaImmediate     Opcode = 0x8B
	StyAbsolute      Opcode = 0x8C
	StaAbsolute      Opcode = 0x8D
	StxAbsolute      Opcode = 0x8E
	SaxAbsolute      Opcode = 0x8F
	Bcc              Opcode = 0x90
	StaIndirectY     Opcode = 0x91
	Kil92            Opcode = 0x92
	AhxIndirectY     Opcode = 0x93
	StyZeroPageX     Opcode = 0x94
	StaZeroPageX     Opcode = 0x95
	StxZeroPageY     Opcode = 0x96
	SaxZeroPageY     Opcode = 0x97
	Tya              Opcode = 0x98
	StaAbsoluteY     Opcode = 0x99
	Txs              Opcode = 0x9A
	TasAbsoluteY     Opcode = 0x9B
	ShyAbsoluteX     Opcode = 0x9C
	StaAbsoluteX     Opcode = 0x9D
	ShxAbsoluteY     Opcode = 0x9E
	AhxAbsoluteY     Opcode = 0x9F
	LdyImmediate     Opcode = 0xA0
	LdaIndirectX     Opcode = 0xA1
	LdxImmediate     Opcode = 0xA2
	LaxIndirectX     Opcode = 0xA3
	LdyZeroPage      Opcode = 0xA4
	LdaZeroPage      Opcode = 0xA5
	LdxZeroPage      Opcode = 0xA6
	LaxZeroPage      Opcode = 0xA7
	Tay              Opcode = 0xA8
	LdaImmediate     Opcode = 0xA9
	Tax              Opcode = 0xAA
	LaxImmediate     Opcode = 0xAB
	LdyAbsolute      Opcode = 0xAC
	LdaAbsolute      Opcode = 0xAD
	LdxAbsolute      Opcode = 0xAE
	LaxAbsolute      Opcode = 0xAF
	Bcs              Opcode = 0xB0
	LdaIndirectY     Opcode = 0xB1
	KilB2            Opcode = 0xB2
	LaxIndirectY     Opcode = 0xB3
	LdyZeroPageX     Opcode = 0xB4
	LdaZeroPageX     Opcode = 0xB5
	LdxZeroPageY     Opcode = 0xB6
	LaxZeroPageY     Opcode = 0xB7
	Clv              Opcode = 0xB8
	LdaAbsoluteY     Opcode = 0xB9
	Tsx              Opcode = 0xBA
	LasAbsoluteY     Opcode = 0xBB
	LdyAbsoluteX     Opcode = 0xBC
	LdaAbsoluteX     Opcode = 0xBD
	LdxAbsoluteY     Opcode = 0xBE
	LaxAbsoluteY     Opcode = 0xBF
	CpyImmediate     Opcode = 0xC0
	CmpIndirectX     Opcode = 0xC1
	NopImmediateC2   Opcode = 0xC2
	DcpIndirectX     Opcode = 0xC3
	CpyZeroPage      Opcode = 0xC4
	CmpZeroPage      Opcode = 0xC5
	DecZeroPage      Opcode = 0xC6
	DcpZeroPage      Opcode = 0xC7
	Iny              Opcode = 0xC8
	CmpImmediate     Opcode = 0xC9
	Dex              Opcode = 0xCA
	AxsImmediate     Opcode = 0xCB
	CpyAbsolute      Opcode = 0xCC
	CmpAbsolute      Opcode = 0xCD
	DecAbsolute      Opcode = 0xCE
	DcpAbsolute      Opcode = 0xCF
	Bne              Opcode = 0xD0
	CmpIndirectY     Opcode = 0xD1
	KilD2            Opcode = 0xD2
	DcpIndirectY     Opcode = 0xD3
	NopZeroPageXD4   Opcode = 0xD4
	CmpZeroPageX     Opcode = 0xD5
	DecZeroPageX     Opcode = 0xD6
	DcpZeroPageX     Opcode = 0xD7
	Cld              Opcode = 0xD8
	CmpAbsoluteY     Opcode = 0xD9
	NopDA            Opcode = 0xDA
	DcpAbsoluteY     Opcode = 0xDB
	NopAbsoluteXDC   Opcode = 0xDC
	CmpAbsoluteX     Opcode = 0xDD
	DecAbsoluteX     Opcode = 0xDE
	DcpAbsoluteX     Opcode = 0xDF
	CpxImmediate     Opcode = 0xE0
	SbcIndirectX     Opcode = 0xE1
	NopImmediateE2   Opcode = 0xE2
	IscIndirectX     Opcode = 0xE3
	CpxZeroPage      Opcode = 0xE4
	SbcZeroPage      Opcode = 0xE5
	IncZeroPage      Opcode = 0xE6
	IscZeroPage      Opcode = 0xE7
	Inx              Opcode = 0xE8
	SbcImmediate     Opcode = 0xE9
	Nop              Opcode = 0xEA
	SbcImmediateEB   Opcode = 0xEB
	CpxAbsolute      Opcode = 0xEC
	SbcAbsolute      Opcode = 0xED
	IncAbsolute      Opcode = 0xEE
	IscAbsolute      Opcode = 0xEF
	Beq              Opcode = 0xF0
	SbcIndirectY     Opcode = 0xF1
	KilF2            Opcode = 0xF2
	IscIndirectY     Opcode = 0xF3
	NopZeroPageXF4   Opcode = 0xF4
	SbcZeroPageX     Opcode = 0xF5
	IncZeroPageX     Opcode = 0xF6
	IscZeroPageX     Opcode = 0xF7
	Sed              Opcode = 0xF8
	SbcAbsoluteY     Opcode = 0xF9
	NopFA            Opcode = 0xFA
	IscAbsoluteY     Opcode = 0xFB
	NopAbsoluteXFC   Opcode = 0xFC
	SbcAbsoluteX     Opcode = 0xFD
	IncAbsoluteX     Opcode = 0xFE
	IscAbsoluteX     Opcode = 0xFF
)

var opcodeNames = [256]string{
	0x00: "Brk",
	0x01: "OraIndirectX",
	0x02: "Kil02",
	0x03: "SloIndirectX",
	0x04: "NopZeroPage04",
	0x05: "OraZeroPage",
	0x06: "AslZeroPage",
	0x07: "SloZeroPage",
	0x08: "Php",
	0x09: "OraImmediate",
	0x0A: "AslAccumulator",
	0x0B: "AncImmediate",
	0x0C: "NopAbsolute0C",
	0x0D: "OraAbsolute",
	0x0E: "AslAbsolute",
	0x0F: "SloAbsolute",
	0x10: "Bpl",
	0x11: "OraIndirectY",
	0x12: "Kil12",
	0x13: "SloIndirectY",
	0x14: "NopZeroPageX14",
	0x15: "OraZeroPageX",
	0x16: "AslZeroPageX",
	0x17: "SloZeroPageX",
	0x18: "Clc",
	0x19: "OraAbsoluteY",
	0x1A: "Nop1A",
	0x1B: "SloAbsoluteY",
	0x1C: "NopAbsoluteX1C",
	0x1D: "OraAbsoluteX",
	0x1E: "AslAbsoluteX",
	0x1F: "SloAbsoluteX",
	0x20: "Jsr",
	0x21: "AndIndirectX",
	0x22: "Kil22",
	0x23: "RlaIndirectX",
	0x24: "BitZeroPage",
	0x25: "AndZeroPage",
	0x26: "RolZeroPage",
	0x27: "RlaZeroPage",
	0x28: "Plp",
	0x29: "AndImmediate",
	0x2A: "RolAccumulator",
	0x2B: "AncImmediate2B",
	0x2C: "BitAbsolute",
	0x2D: "AndAbsolute",
	0x2E: "RolAbsolute",
	0x2F: "RlaAbsolute",
	0x30: "Bmi",
	0x31: "AndIndirectY",
	0x32: "Kil32",
	0x33: "RlaIndirectY",
	0x34: "NopZeroPageX34",
	0x35: "AndZeroPageX",
	0x36: "RolZeroPageX",
	0x37: "RlaZeroPageX",
	0x38: "Sec",
	0x39: "AndAbsoluteY",
	0x3A: "Nop3A",
	0x3B: "RlaAbsoluteY",
	0x3C: "NopAbsoluteX3C",
	0x3D: "AndAbsoluteX",
	0x3E: "RolAbsoluteX",
	0x3F: "RlaAbsoluteX",
	0x40: "Rti",
	0x41: "EorIndirectX",
	0x42: "Kil42",
	0x43: "SreIndirectX",
	0x44: "NopZeroPage44",
	0x45: "EorZeroPage",
	0x46: "LsrZeroPage",
	0x47: "SreZeroPage",
	0x48: "Pha",
	0x49: "EorImmediate",
	0x4A: "LsrAccumulator",
	0x4B: "AlrImmediate",
	0x4C: "JmpAbsolute",
	0x4D: "EorAbsolute",
	0x4E: "LsrAbsolute",
	0x4F: "SreAbsolute",
	0x50: "Bvc",
	0x51: "EorIndirectY",
	0x52: "Kil52",
	0x53: "SreIndirectY",
	0x54: "NopZeroPageX54",
	0x55: "EorZeroPageX",
	0x56: "LsrZeroPageX",
	0x57: "SreZeroPageX",
	0x58: "Cli",
	0x59: "EorAbsoluteY",
	0x5A: "Nop5A",
	0x5B: "SreAbsoluteY",
	0x5C: "NopAbsoluteX5C",
	0x5D: "EorAbsoluteX",
	0x5E: "LsrAbsoluteX",
	0x5F: "SreAbsoluteX",
	0x60: "Rts",
	0x61: "AdcIndirectX",
	0x62: "Kil62",
	0x63: "RraIndirectX",
	0x64: "NopZeroPage64",
	0x65: "AdcZeroPage",
	0x66: "RorZeroPage",
	0x67: "RraZeroPage",
	0x68: "Pla",
	0x69: "AdcImmediate",
	0x6A: "RorAccumulator",
	0x6B: "ArrImmediate",
	0x6C: "JmpIndirect",
	0x6D: "AdcAbsolute",
	0x6E: "RorAbsolute",
	0x6F: "RraAbsolute",
	0x70: "Bvs",
	0x71: "AdcIndirectY",
	0x72: "Kil72",
	0x73: "RraIndirectY",
	0x74: "NopZeroPageX74",
	0x75: "AdcZeroPageX",
	0x76: "RorZeroPageX",
	0x77: "RraZeroPageX",
	0x78: "Sei",
	0x79: "AdcAbsoluteY",
	0x7A: "Nop7A",
	0x7B: "RraAbsoluteY",
	0x7C: "NopAbsoluteX7C",
	0x7D: "AdcAbsoluteX",
	0x7E: "RorAbsoluteX",
	0x7F: "RraAbsoluteX",
	0x80: "NopImmediate80",
	0x81: "StaIndirectX",
	0x82: "NopImmediate82",
	0x83: "SaxIndirectX",
	0x84: "StyZeroPage",
	0x85: "StaZeroPage",
	0x86: "StxZeroPage",
	0x87: "SaxZeroPage",
	0x88: "Dey",
	0x89: "NopImmediate89",
	0x8A: "Txa",
	0x8B: "XaaImmediate",
	0x8C: "StyAbsolute",
	0x8D: "StaAbsolute",
	0x8E: "StxAbsolute",
	0x8F: "SaxAbsolute",
	0x90: "Bcc",
	0x91: "StaIndirectY",
	0x92: "Kil92",
	0x93: "AhxIndirectY",
	0x94: "StyZeroPageX",
	0x95: "StaZeroPageX",
	0x96: "StxZeroPageY",
	0x97: "SaxZeroPageY",
	0x98: "Tya",
	0x99: "StaAbsoluteY",
	0x9A: "Txs",
	0x9B: "TasAbsoluteY",
	0x9C: "ShyAbsoluteX",
	0x9D: "StaAbsoluteX",
	0x9E: "ShxAbsoluteY",
	0x9F: "AhxAbsoluteY",
	0xA0: "LdyImmediate",
	0xA1: "LdaIndirectX",
	0xA2: "LdxImmediate",
	0xA3: "LaxIndirectX",
	0xA4: "LdyZeroPage",
	0xA5: "LdaZeroPage",
	0xA6: "LdxZeroPage",
	0xA7: "LaxZeroPage",
	0xA8: "Tay",
	0xA9: "LdaImmediate",
	0xAA: "Tax",
	0xAB: "LaxImmediate",
	0xAC: "LdyAbsolute",
	0xAD: "LdaAbsolute",
	0xAE: "LdxAbsolute",
	0xAF: "LaxAbsolute",
	0xB0: "Bcs",
	0xB1: "LdaIndirectY",
	0xB2: "KilB2",
	0xB3: "LaxIndirectY",
	0xB4: "LdyZeroPageX",
	0xB5: "LdaZeroPageX",
	0xB6: "LdxZeroPageY",
	0xB7: "LaxZeroPageY",
	0xB8: "Clv",
	0xB9: "LdaAbsoluteY",
	0xBA: "Tsx",
	0xBB: "LasAbsoluteY",
	0xBC: "LdyAbsoluteX",
	0xBD: "LdaAbsoluteX",
	0xBE: "LdxAbsoluteY",
	0xBF: "LaxAbsoluteY",
	0xC0: "CpyImmediate",
	0xC1: "CmpIndirectX",
	0xC2: "NopImmediateC2",
	0xC3: "DcpIndirectX",
	0xC4: "CpyZeroPage",
	0xC5: "CmpZeroPage",
	0xC6: "DecZeroPage",
	0xC7: "DcpZeroPage",
	0xC8: "Iny",
	0xC9: "CmpImmediate",
	0xCA: "Dex",
	0xCB: "AxsImmediate",
	0xCC: "CpyAbsolute",
	0xCD: "CmpAbsolute",
	0xCE: "DecAbsolute",
	0xCF: "DcpAbsolute",
	0xD0: "Bne",
	0xD1: "CmpIndirectY",
	0xD2: "KilD2",
	0xD3: "DcpIndirectY",
	0xD4: "NopZeroPageXD4",
	0xD5: "CmpZeroPageX",
	0xD6: "DecZeroPageX",
	0xD7: "DcpZeroPageX",
	0xD8: "Cld",
	0xD9: "CmpAbsoluteY",
	0xDA: "NopDA",
	0xDB: "DcpAbsoluteY",
	0xDC: "NopAbsoluteXDC",
	0xDD: "CmpAbsoluteX",
	0xDE: "DecAbsoluteX",
	0xDF: "DcpAbsoluteX",
	0xE0: "CpxImmediate",
	0xE1: "SbcIndirectX",
	0xE2: "NopImmediateE2",
	0xE3: "IscIndirectX",
	0xE4: "CpxZeroPage",
	0xE5: "SbcZeroPage",
	0xE6: "IncZeroPage",
	0xE7: "IscZeroPage",
	0xE8: "Inx",
	0xE9: "SbcImmediate",
	0xEA: "Nop",
	0xEB: "SbcImmediateEB",
	0xEC: "CpxAbsolute",
	0xED: "SbcAbsolute",
	0xEE: "IncAbsolute",
	0xEF: "IscAbsolute",
	0xF0: "Beq",
	0xF1: "SbcIndirectY",
	0xF2: "KilF2",
	0xF3: "IscIndirectY",
	0xF4: "NopZeroPageXF4",
	0xF5: "SbcZeroPageX",
	0xF6: "IncZeroPageX",
	0xF7: "IscZeroPageX",
	0xF8: "Sed",
	0xF9: "SbcAbsoluteY",
	0xFA: "NopFA",
	0xFB: "IscAbsoluteY",
	0xFC: "NopAbsoluteXFC",
	0xFD: "SbcAbsoluteX",
	0xFE: "IncAbsoluteX",
	0xFF: "IscAbsoluteX",
}

// Definitions is indexed by opcode byte.
var Definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: BRK, Mode: Implied, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0x01, Mnemonic: ORA, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x02, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x03, Mnemonic: SLO, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x04, Mnemonic: NOP, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: false},
	{OpCode: 0x05, Mnemonic: ORA, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x06, Mnemonic: ASL, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x07, Mnemonic: SLO, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x08, Mnemonic: PHP, Mode: Implied, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x09, Mnemonic: ORA, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x0A, Mnemonic: ASL, Mode: Accumulator, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x0B, Mnemonic: ANC, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x0C, Mnemonic: NOP, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x0D, Mnemonic: ORA, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x0E, Mnemonic: ASL, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x0F, Mnemonic: SLO, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x10, Mnemonic: BPL, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x11, Mnemonic: ORA, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0x12, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x13, Mnemonic: SLO, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x14, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x15, Mnemonic: ORA, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x16, Mnemonic: ASL, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x17, Mnemonic: SLO, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x18, Mnemonic: CLC, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x19, Mnemonic: ORA, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x1A, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x1B, Mnemonic: SLO, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x1C, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0x1D, Mnemonic: ORA, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x1E, Mnemonic: ASL, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0x1F, Mnemonic: SLO, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x20, Mnemonic: JSR, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x21, Mnemonic: AND, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x22, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x23, Mnemonic: RLA, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x24, Mnemonic: BIT, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x25, Mnemonic: AND, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x26, Mnemonic: ROL, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x27, Mnemonic: RLA, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x28, Mnemonic: PLP, Mode: Implied, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x29, Mnemonic: AND, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x2A, Mnemonic: ROL, Mode: Accumulator, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x2B, Mnemonic: ANC, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x2C, Mnemonic: BIT, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x2D, Mnemonic: AND, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x2E, Mnemonic: ROL, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x2F, Mnemonic: RLA, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x30, Mnemonic: BMI, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x31, Mnemonic: AND, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0x32, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x33, Mnemonic: RLA, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x34, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x35, Mnemonic: AND, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x36, Mnemonic: ROL, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x37, Mnemonic: RLA, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x38, Mnemonic: SEC, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x39, Mnemonic: AND, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x3A, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x3B, Mnemonic: RLA, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x3C, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0x3D, Mnemonic: AND, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x3E, Mnemonic: ROL, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0x3F, Mnemonic: RLA, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x40, Mnemonic: RTI, Mode: Implied, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x41, Mnemonic: EOR, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x42, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x43, Mnemonic: SRE, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x44, Mnemonic: NOP, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: false},
	{OpCode: 0x45, Mnemonic: EOR, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x46, Mnemonic: LSR, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x47, Mnemonic: SRE, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x48, Mnemonic: PHA, Mode: Implied, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x49, Mnemonic: EOR, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x4A, Mnemonic: LSR, Mode: Accumulator, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x4B, Mnemonic: ALR, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x4C, Mnemonic: JMP, Mode: Absolute, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x4D, Mnemonic: EOR, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x4E, Mnemonic: LSR, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x4F, Mnemonic: SRE, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x50, Mnemonic: BVC, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x51, Mnemonic: EOR, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0x52, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x53, Mnemonic: SRE, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x54, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x55, Mnemonic: EOR, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x56, Mnemonic: LSR, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x57, Mnemonic: SRE, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x58, Mnemonic: CLI, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x59, Mnemonic: EOR, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x5A, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x5B, Mnemonic: SRE, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x5C, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0x5D, Mnemonic: EOR, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x5E, Mnemonic: LSR, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0x5F, Mnemonic: SRE, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x60, Mnemonic: RTS, Mode: Implied, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x61, Mnemonic: ADC, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x62, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x63, Mnemonic: RRA, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x64, Mnemonic: NOP, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: false},
	{OpCode: 0x65, Mnemonic: ADC, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x66, Mnemonic: ROR, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x67, Mnemonic: RRA, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x68, Mnemonic: PLA, Mode: Implied, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x69, Mnemonic: ADC, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x6A, Mnemonic: ROR, Mode: Accumulator, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x6B, Mnemonic: ARR, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x6C, Mnemonic: JMP, Mode: Indirect, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x6D, Mnemonic: ADC, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x6E, Mnemonic: ROR, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x6F, Mnemonic: RRA, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x70, Mnemonic: BVS, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x71, Mnemonic: ADC, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0x72, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x73, Mnemonic: RRA, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0x74, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x75, Mnemonic: ADC, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x76, Mnemonic: ROR, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x77, Mnemonic: RRA, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x78, Mnemonic: SEI, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x79, Mnemonic: ADC, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x7A, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x7B, Mnemonic: RRA, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x7C, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0x7D, Mnemonic: ADC, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0x7E, Mnemonic: ROR, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0x7F, Mnemonic: RRA, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0x80, Mnemonic: NOP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x81, Mnemonic: STA, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x82, Mnemonic: NOP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x83, Mnemonic: SAX, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x84, Mnemonic: STY, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x85, Mnemonic: STA, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x86, Mnemonic: STX, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0x87, Mnemonic: SAX, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: false},
	{OpCode: 0x88, Mnemonic: DEY, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x89, Mnemonic: NOP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x8A, Mnemonic: TXA, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x8B, Mnemonic: XAA, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x8C, Mnemonic: STY, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x8D, Mnemonic: STA, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x8E, Mnemonic: STX, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x8F, Mnemonic: SAX, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x90, Mnemonic: BCC, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x91, Mnemonic: STA, Mode: IndirectY, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0x92, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0x93, Mnemonic: AHX, Mode: IndirectY, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0x94, Mnemonic: STY, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x95, Mnemonic: STA, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x96, Mnemonic: STX, Mode: ZeroPageY, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0x97, Mnemonic: SAX, Mode: ZeroPageY, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0x98, Mnemonic: TYA, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x99, Mnemonic: STA, Mode: AbsoluteY, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x9A, Mnemonic: TXS, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0x9B, Mnemonic: TAS, Mode: AbsoluteY, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x9C, Mnemonic: SHY, Mode: AbsoluteX, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x9D, Mnemonic: STA, Mode: AbsoluteX, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0x9E, Mnemonic: SHX, Mode: AbsoluteY, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0x9F, Mnemonic: AHX, Mode: AbsoluteY, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0xA0, Mnemonic: LDY, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xA1, Mnemonic: LDA, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xA2, Mnemonic: LDX, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xA3, Mnemonic: LAX, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0xA4, Mnemonic: LDY, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xA5, Mnemonic: LDA, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xA6, Mnemonic: LDX, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xA7, Mnemonic: LAX, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: false},
	{OpCode: 0xA8, Mnemonic: TAY, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xA9, Mnemonic: LDA, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xAA, Mnemonic: TAX, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xAB, Mnemonic: LAX, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xAC, Mnemonic: LDY, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xAD, Mnemonic: LDA, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xAE, Mnemonic: LDX, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xAF, Mnemonic: LAX, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0xB0, Mnemonic: BCS, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xB1, Mnemonic: LDA, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0xB2, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xB3, Mnemonic: LAX, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: false},
	{OpCode: 0xB4, Mnemonic: LDY, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xB5, Mnemonic: LDA, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xB6, Mnemonic: LDX, Mode: ZeroPageY, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xB7, Mnemonic: LAX, Mode: ZeroPageY, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0xB8, Mnemonic: CLV, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xB9, Mnemonic: LDA, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xBA, Mnemonic: TSX, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xBB, Mnemonic: LAS, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0xBC, Mnemonic: LDY, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xBD, Mnemonic: LDA, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xBE, Mnemonic: LDX, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xBF, Mnemonic: LAX, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0xC0, Mnemonic: CPY, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xC1, Mnemonic: CMP, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xC2, Mnemonic: NOP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xC3, Mnemonic: DCP, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0xC4, Mnemonic: CPY, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xC5, Mnemonic: CMP, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xC6, Mnemonic: DEC, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0xC7, Mnemonic: DCP, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0xC8, Mnemonic: INY, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xC9, Mnemonic: CMP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xCA, Mnemonic: DEX, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xCB, Mnemonic: AXS, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xCC, Mnemonic: CPY, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xCD, Mnemonic: CMP, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xCE, Mnemonic: DEC, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xCF, Mnemonic: DCP, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0xD0, Mnemonic: BNE, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xD1, Mnemonic: CMP, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0xD2, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xD3, Mnemonic: DCP, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0xD4, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0xD5, Mnemonic: CMP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xD6, Mnemonic: DEC, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xD7, Mnemonic: DCP, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0xD8, Mnemonic: CLD, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xD9, Mnemonic: CMP, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xDA, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xDB, Mnemonic: DCP, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0xDC, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0xDD, Mnemonic: CMP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xDE, Mnemonic: DEC, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0xDF, Mnemonic: DCP, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0xE0, Mnemonic: CPX, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xE1, Mnemonic: SBC, Mode: IndirectX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xE2, Mnemonic: NOP, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xE3, Mnemonic: ISC, Mode: IndirectX, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0xE4, Mnemonic: CPX, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xE5, Mnemonic: SBC, Mode: ZeroPage, Cycles: 3, PageSensitive: false, Official: true},
	{OpCode: 0xE6, Mnemonic: INC, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: true},
	{OpCode: 0xE7, Mnemonic: ISC, Mode: ZeroPage, Cycles: 5, PageSensitive: false, Official: false},
	{OpCode: 0xE8, Mnemonic: INX, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xE9, Mnemonic: SBC, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xEA, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xEB, Mnemonic: SBC, Mode: Immediate, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xEC, Mnemonic: CPX, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xED, Mnemonic: SBC, Mode: Absolute, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xEE, Mnemonic: INC, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xEF, Mnemonic: ISC, Mode: Absolute, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0xF0, Mnemonic: BEQ, Mode: Relative, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xF1, Mnemonic: SBC, Mode: IndirectY, Cycles: 5, PageSensitive: true, Official: true},
	{OpCode: 0xF2, Mnemonic: KIL, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xF3, Mnemonic: ISC, Mode: IndirectY, Cycles: 8, PageSensitive: false, Official: false},
	{OpCode: 0xF4, Mnemonic: NOP, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: false},
	{OpCode: 0xF5, Mnemonic: SBC, Mode: ZeroPageX, Cycles: 4, PageSensitive: false, Official: true},
	{OpCode: 0xF6, Mnemonic: INC, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: true},
	{OpCode: 0xF7, Mnemonic: ISC, Mode: ZeroPageX, Cycles: 6, PageSensitive: false, Official: false},
	{OpCode: 0xF8, Mnemonic: SED, Mode: Implied, Cycles: 2, PageSensitive: false, Official: true},
	{OpCode: 0xF9, Mnemonic: SBC, Mode: AbsoluteY, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xFA, Mnemonic: NOP, Mode: Implied, Cycles: 2, PageSensitive: false, Official: false},
	{OpCode: 0xFB, Mnemonic: ISC, Mode: AbsoluteY, Cycles: 7, PageSensitive: false, Official: false},
	{OpCode: 0xFC, Mnemonic: NOP, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: false},
	{OpCode: 0xFD, Mnemonic: SBC, Mode: AbsoluteX, Cycles: 4, PageSensitive: true, Official: true},
	{OpCode: 0xFE, Mnemonic: INC, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: true},
	{OpCode: 0xFF, Mnemonic: ISC, Mode: AbsoluteX, Cycles: 7, PageSensitive: false, Official: false},
}

package cpu6502

// AddrMode identifies one of the 6502's addressing modes.
type AddrMode uint8

const (
	IMP AddrMode = iota // Implied
	IMM                 // Immediate
	ZP0                 // Zero Page
	ZPX                 // Zero Page, X
	ZPY                 // Zero Page, Y
	ABS                 // Absolute
	ABX                 // Absolute, X
	ABY                 // Absolute, Y
	IND                 // Indirect
	IZX                 // Indexed Indirect (Indirect, X)
	IZY                 // Indirect Indexed (Indirect, Y)
	REL                 // Relative
)

var addrModeNames = [...]string{
	IMP: "IMP", IMM: "IMM", ZP0: "ZP0", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY", IND: "IND", IZX: "IZX",
	IZY: "IZY", REL: "REL",
}

func (m AddrMode) String() string { return addrModeNames[m] }

// evalAddrMode computes the effective address (or operand, for IMP/IMM)
// for the given mode, advancing PC past any operand bytes. It returns 1
// if the mode's computation crossed a page boundary and that crossing
// can cost an extra cycle, 0 otherwise.
func (cpu *CPU) evalAddrMode(mode AddrMode) uint8 {
	switch mode {
	case IMP:
		return cpu.amIMP()
	case IMM:
		return cpu.amIMM()
	case ZP0:
		return cpu.amZP0()
	case ZPX:
		return cpu.amZPX()
	case ZPY:
		return cpu.amZPY()
	case ABS:
		return cpu.amABS()
	case ABX:
		return cpu.amABX()
	case ABY:
		return cpu.amABY()
	case IND:
		return cpu.amIND()
	case IZX:
		return cpu.amIZX()
	case IZY:
		return cpu.amIZY()
	case REL:
		return cpu.amREL()
	default:
		return cpu.amIMP()
	}
}

// Implied: the operand is the accumulator. No operand bytes.
func (cpu *CPU) amIMP() uint8 {
	cpu.isImplied = true
	cpu.fetched = cpu.A
	return 0
}

// Immediate: the operand is the byte following the opcode.
func (cpu *CPU) amIMM() uint8 {
	cpu.AddrAbs = cpu.PC
	cpu.PC++
	return 0
}

// Zero Page: the operand byte addresses page zero directly.
func (cpu *CPU) amZP0() uint8 {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)) & 0x00FF
	cpu.PC++
	return 0
}

// Zero Page, X: indexed into page zero, wrapping within the page.
func (cpu *CPU) amZPX() uint8 {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)+cpu.X) & 0x00FF
	cpu.PC++
	return 0
}

// Zero Page, Y: indexed into page zero, wrapping within the page.
func (cpu *CPU) amZPY() uint8 {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)+cpu.Y) & 0x00FF
	cpu.PC++
	return 0
}

// Absolute: a full 16-bit address follows the opcode, little-endian.
func (cpu *CPU) amABS() uint8 {
	cpu.AddrAbs = cpu.readWord(cpu.PC)
	cpu.PC += 2
	return 0
}

// Absolute, X: absolute address offset by X; reports a page cross.
func (cpu *CPU) amABX() uint8 {
	addr := cpu.readWord(cpu.PC)
	cpu.PC += 2
	cpu.AddrAbs = addr + uint16(cpu.X)
	if cpu.AddrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// Absolute, Y: absolute address offset by Y; reports a page cross.
func (cpu *CPU) amABY() uint8 {
	addr := cpu.readWord(cpu.PC)
	cpu.PC += 2
	cpu.AddrAbs = addr + uint16(cpu.Y)
	if cpu.AddrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// Indirect: the operand is a pointer to the effective address.
//
// Reproduces the documented 6502 hardware bug: when the pointer's low
// byte is 0xFF, the high byte of the target is fetched from
// pointer&0xFF00 instead of pointer+1, because the CPU fails to carry
// into the high byte of the pointer itself.
func (cpu *CPU) amIND() uint8 {
	ptr := cpu.readWord(cpu.PC)
	cpu.PC += 2

	lo := cpu.read(ptr)
	var hi uint8
	if ptr&0x00FF == 0x00FF {
		hi = cpu.read(ptr & 0xFF00)
	} else {
		hi = cpu.read(ptr + 1)
	}
	cpu.AddrAbs = uint16(hi)<<8 | uint16(lo)
	return 0
}

// Indexed Indirect (Indirect, X): a zero-page pointer, indexed by X
// before dereferencing. Both pointer bytes stay within page zero.
func (cpu *CPU) amIZX() uint8 {
	t := cpu.read(cpu.PC)
	cpu.PC++

	lo := cpu.read(uint16(t+cpu.X) & 0x00FF)
	hi := cpu.read(uint16(t+cpu.X+1) & 0x00FF)
	cpu.AddrAbs = uint16(hi)<<8 | uint16(lo)
	return 0
}

// Indirect Indexed (Indirect, Y): a zero-page pointer dereferenced
// first, then offset by Y; reports a page cross.
func (cpu *CPU) amIZY() uint8 {
	t := cpu.read(cpu.PC)
	cpu.PC++

	lo := cpu.read(uint16(t) & 0x00FF)
	hi := cpu.read(uint16(t+1) & 0x00FF)
	base := uint16(hi)<<8 | uint16(lo)
	cpu.AddrAbs = base + uint16(cpu.Y)
	if cpu.AddrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// Relative: a signed 8-bit displacement used only by branches.
func (cpu *CPU) amREL() uint8 {
	offset := uint16(cpu.read(cpu.PC))
	cpu.PC++

	cpu.addrRel = offset
	if offset&0x80 != 0 {
		cpu.addrRel |= 0xFF00
	}
	return 0
}

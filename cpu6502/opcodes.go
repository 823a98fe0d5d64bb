package cpu6502

// OpKind identifies the semantic operation of an instruction, independent
// of the addressing mode used to reach its operand.
type OpKind uint8

const (
	OpADC OpKind = iota
	OpAND
	OpASL
	OpBCC
	OpBCS
	OpBEQ
	OpBIT
	OpBMI
	OpBNE
	OpBPL
	OpBRK
	OpBVC
	OpBVS
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCPX
	OpCPY
	OpDEC
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINX
	OpINY
	OpJMP
	OpJSR
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpNOP
	OpORA
	OpPHA
	OpPHP
	OpPLA
	OpPLP
	OpROL
	OpROR
	OpRTI
	OpRTS
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSTA
	OpSTX
	OpSTY
	OpTAX
	OpTAY
	OpTSX
	OpTXA
	OpTXS
	OpTYA
	OpXXX // Catch-all for illegal/unimplemented opcodes.
)

// unofficialPageCrossNOP holds the six undocumented ABX-mode NOP opcodes
// that, on real NMOS hardware, earn the same page-crossing extra cycle a
// documented ABX read would.
var unofficialPageCrossNOP = map[uint8]bool{
	0x1C: true, 0x3C: true, 0x5C: true, 0x7C: true, 0xDC: true, 0xFC: true,
}

// execute dispatches to the opcode's semantics and returns 1 if this
// operation may take an extra cycle on a page-crossing addressing mode,
// 0 otherwise. The driver ANDs this with the mode's own page-cross
// report, so only modes AND opcodes that both opt in ever add a cycle.
func (cpu *CPU) execute(op OpKind) uint8 {
	switch op {
	case OpADC:
		return cpu.opADC()
	case OpAND:
		return cpu.opAND()
	case OpASL:
		return cpu.opASL()
	case OpBCC:
		return cpu.opBCC()
	case OpBCS:
		return cpu.opBCS()
	case OpBEQ:
		return cpu.opBEQ()
	case OpBIT:
		return cpu.opBIT()
	case OpBMI:
		return cpu.opBMI()
	case OpBNE:
		return cpu.opBNE()
	case OpBPL:
		return cpu.opBPL()
	case OpBRK:
		return cpu.opBRK()
	case OpBVC:
		return cpu.opBVC()
	case OpBVS:
		return cpu.opBVS()
	case OpCLC:
		return cpu.opCLC()
	case OpCLD:
		return cpu.opCLD()
	case OpCLI:
		return cpu.opCLI()
	case OpCLV:
		return cpu.opCLV()
	case OpCMP:
		return cpu.opCMP()
	case OpCPX:
		return cpu.opCPX()
	case OpCPY:
		return cpu.opCPY()
	case OpDEC:
		return cpu.opDEC()
	case OpDEX:
		return cpu.opDEX()
	case OpDEY:
		return cpu.opDEY()
	case OpEOR:
		return cpu.opEOR()
	case OpINC:
		return cpu.opINC()
	case OpINX:
		return cpu.opINX()
	case OpINY:
		return cpu.opINY()
	case OpJMP:
		return cpu.opJMP()
	case OpJSR:
		return cpu.opJSR()
	case OpLDA:
		return cpu.opLDA()
	case OpLDX:
		return cpu.opLDX()
	case OpLDY:
		return cpu.opLDY()
	case OpLSR:
		return cpu.opLSR()
	case OpNOP:
		return cpu.opNOP()
	case OpORA:
		return cpu.opORA()
	case OpPHA:
		return cpu.opPHA()
	case OpPHP:
		return cpu.opPHP()
	case OpPLA:
		return cpu.opPLA()
	case OpPLP:
		return cpu.opPLP()
	case OpROL:
		return cpu.opROL()
	case OpROR:
		return cpu.opROR()
	case OpRTI:
		return cpu.opRTI()
	case OpRTS:
		return cpu.opRTS()
	case OpSBC:
		return cpu.opSBC()
	case OpSEC:
		return cpu.opSEC()
	case OpSED:
		return cpu.opSED()
	case OpSEI:
		return cpu.opSEI()
	case OpSTA:
		return cpu.opSTA()
	case OpSTX:
		return cpu.opSTX()
	case OpSTY:
		return cpu.opSTY()
	case OpTAX:
		return cpu.opTAX()
	case OpTAY:
		return cpu.opTAY()
	case OpTSX:
		return cpu.opTSX()
	case OpTXA:
		return cpu.opTXA()
	case OpTXS:
		return cpu.opTXS()
	case OpTYA:
		return cpu.opTYA()
	default:
		return cpu.opXXX()
	}
}

// writeResult stores a read-modify-write result either back into the
// accumulator (implied-mode shifts/rotates) or to the effective address.
func (cpu *CPU) writeResult(v uint8) {
	if cpu.isImplied {
		cpu.A = v
	} else {
		cpu.write(cpu.AddrAbs, v)
	}
}

func (cpu *CPU) setZN(v uint8) {
	cpu.setFlag(FlagZ, v == 0)
	cpu.setFlag(FlagN, v&0x80 != 0)
}

// branch shares the taken-branch cycle accounting used by all eight
// conditional branch instructions.
func (cpu *CPU) branch() {
	cpu.cyclesRemaining++

	target := cpu.PC + cpu.addrRel
	if target&0xFF00 != cpu.PC&0xFF00 {
		cpu.cyclesRemaining++
	}
	cpu.PC = target
}

// addWithCarry is the shared ADC/SBC core: SBC feeds it the bitwise
// complement of its operand so the same carry/overflow logic applies.
func (cpu *CPU) addWithCarry(m uint8) {
	result := uint16(cpu.A) + uint16(m) + uint16(cpu.GetFlag(FlagC))

	cpu.setFlag(FlagC, result > 0xFF)
	cpu.setFlag(FlagZ, uint8(result) == 0)
	cpu.setFlag(FlagN, result&0x80 != 0)
	cpu.setFlag(FlagV, (^(uint16(cpu.A)^uint16(m))&(uint16(cpu.A)^result))&0x80 != 0)

	cpu.A = uint8(result)
}

// ADC - Add with Carry. Decimal mode is never honored on the 2A03.
func (cpu *CPU) opADC() uint8 {
	cpu.addWithCarry(cpu.fetch())
	return 1
}

// AND - Logical AND
func (cpu *CPU) opAND() uint8 {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// ASL - Arithmetic Shift Left
func (cpu *CPU) opASL() uint8 {
	m := cpu.fetch()
	result := uint16(m) << 1

	cpu.setFlag(FlagC, result&0xFF00 != 0)
	cpu.setZN(uint8(result))
	cpu.writeResult(uint8(result))
	return 0
}

// BCC - Branch if Carry Clear
func (cpu *CPU) opBCC() uint8 {
	if cpu.GetFlag(FlagC) == 0 {
		cpu.branch()
	}
	return 0
}

// BCS - Branch if Carry Set
func (cpu *CPU) opBCS() uint8 {
	if cpu.GetFlag(FlagC) != 0 {
		cpu.branch()
	}
	return 0
}

// BEQ - Branch if Equal
func (cpu *CPU) opBEQ() uint8 {
	if cpu.GetFlag(FlagZ) != 0 {
		cpu.branch()
	}
	return 0
}

// BIT - Bit Test
func (cpu *CPU) opBIT() uint8 {
	m := cpu.fetch()
	result := cpu.A & m

	cpu.setFlag(FlagZ, result == 0)
	cpu.setFlag(FlagV, m&0x40 != 0)
	cpu.setFlag(FlagN, m&0x80 != 0)
	return 0
}

// BMI - Branch if Minus
func (cpu *CPU) opBMI() uint8 {
	if cpu.GetFlag(FlagN) != 0 {
		cpu.branch()
	}
	return 0
}

// BNE - Branch if Not Equal
func (cpu *CPU) opBNE() uint8 {
	if cpu.GetFlag(FlagZ) == 0 {
		cpu.branch()
	}
	return 0
}

// BPL - Branch if Positive
func (cpu *CPU) opBPL() uint8 {
	if cpu.GetFlag(FlagN) == 0 {
		cpu.branch()
	}
	return 0
}

// BRK - Force Interrupt
func (cpu *CPU) opBRK() uint8 {
	cpu.PC++

	cpu.setFlag(FlagI, true)
	cpu.pushWord(cpu.PC)
	cpu.stackPush(cpu.P | uint8(FlagB) | uint8(FlagU))
	cpu.setFlag(FlagB, false)

	cpu.PC = cpu.readWord(irqVectorAddr)
	return 0
}

// BVC - Branch if Overflow Clear
func (cpu *CPU) opBVC() uint8 {
	if cpu.GetFlag(FlagV) == 0 {
		cpu.branch()
	}
	return 0
}

// BVS - Branch if Overflow Set
func (cpu *CPU) opBVS() uint8 {
	if cpu.GetFlag(FlagV) != 0 {
		cpu.branch()
	}
	return 0
}

// CLC - Clear Carry Flag
func (cpu *CPU) opCLC() uint8 { cpu.setFlag(FlagC, false); return 0 }

// CLD - Clear Decimal Mode
func (cpu *CPU) opCLD() uint8 { cpu.setFlag(FlagD, false); return 0 }

// CLI - Clear Interrupt Disable
func (cpu *CPU) opCLI() uint8 { cpu.setFlag(FlagI, false); return 0 }

// CLV - Clear Overflow Flag
func (cpu *CPU) opCLV() uint8 { cpu.setFlag(FlagV, false); return 0 }

// compare is shared by CMP/CPX/CPY.
func (cpu *CPU) compare(reg uint8) {
	m := cpu.fetch()
	result := uint16(reg) - uint16(m)

	cpu.setFlag(FlagC, reg >= m)
	cpu.setFlag(FlagZ, uint8(result) == 0)
	cpu.setFlag(FlagN, result&0x80 != 0)
}

// CMP - Compare (Accumulator)
func (cpu *CPU) opCMP() uint8 {
	cpu.compare(cpu.A)
	return 1
}

// CPX - Compare X Register
func (cpu *CPU) opCPX() uint8 {
	cpu.compare(cpu.X)
	return 0
}

// CPY - Compare Y Register
func (cpu *CPU) opCPY() uint8 {
	cpu.compare(cpu.Y)
	return 0
}

// DEC - Decrement Memory
func (cpu *CPU) opDEC() uint8 {
	result := cpu.fetch() - 1
	cpu.write(cpu.AddrAbs, result)
	cpu.setZN(result)
	return 0
}

// DEX - Decrement X Register
func (cpu *CPU) opDEX() uint8 {
	cpu.X--
	cpu.setZN(cpu.X)
	return 0
}

// DEY - Decrement Y Register
func (cpu *CPU) opDEY() uint8 {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return 0
}

// EOR - Exclusive OR
func (cpu *CPU) opEOR() uint8 {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// INC - Increment Memory
func (cpu *CPU) opINC() uint8 {
	result := cpu.fetch() + 1
	cpu.write(cpu.AddrAbs, result)
	cpu.setZN(result)
	return 0
}

// INX - Increment X Register
func (cpu *CPU) opINX() uint8 {
	cpu.X++
	cpu.setZN(cpu.X)
	return 0
}

// INY - Increment Y Register
func (cpu *CPU) opINY() uint8 {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return 0
}

// JMP - Jump. AddrAbs already reflects the IND-mode hardware bug, if any.
func (cpu *CPU) opJMP() uint8 {
	cpu.PC = cpu.AddrAbs
	return 0
}

// JSR - Jump to Subroutine
func (cpu *CPU) opJSR() uint8 {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = cpu.AddrAbs
	return 0
}

// LDA - Load Accumulator
func (cpu *CPU) opLDA() uint8 {
	cpu.A = cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// LDX - Load X Register
func (cpu *CPU) opLDX() uint8 {
	cpu.X = cpu.fetch()
	cpu.setZN(cpu.X)
	return 1
}

// LDY - Load Y Register
func (cpu *CPU) opLDY() uint8 {
	cpu.Y = cpu.fetch()
	cpu.setZN(cpu.Y)
	return 1
}

// LSR - Logical Shift Right
func (cpu *CPU) opLSR() uint8 {
	m := cpu.fetch()
	cpu.setFlag(FlagC, m&0x01 != 0)

	result := m >> 1
	cpu.setZN(result)
	cpu.writeResult(result)
	return 0
}

// NOP - No Operation. The six undocumented ABX-addressed NOPs may still
// earn a page-crossing extra cycle; the official 0xEA NOP never does.
func (cpu *CPU) opNOP() uint8 {
	if unofficialPageCrossNOP[cpu.Opcode] {
		return 1
	}
	return 0
}

// ORA - Logical Inclusive OR
func (cpu *CPU) opORA() uint8 {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
	return 1
}

// PHA - Push Accumulator
func (cpu *CPU) opPHA() uint8 {
	cpu.stackPush(cpu.A)
	return 0
}

// PHP - Push Processor Status. The pushed byte always has B=1,U=1; B and
// U are then cleared in the live status register (Clock sets U again).
func (cpu *CPU) opPHP() uint8 {
	cpu.stackPush(cpu.P | uint8(FlagB) | uint8(FlagU))
	cpu.setFlag(FlagB, false)
	cpu.setFlag(FlagU, false)
	return 0
}

// PLA - Pull Accumulator
func (cpu *CPU) opPLA() uint8 {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
	return 0
}

// PLP - Pull Processor Status. U is forced back on regardless of what
// was pushed.
func (cpu *CPU) opPLP() uint8 {
	cpu.P = cpu.stackPop()
	cpu.setFlag(FlagU, true)
	return 0
}

// ROL - Rotate Left
func (cpu *CPU) opROL() uint8 {
	m := cpu.fetch()
	result := (uint16(m) << 1) | uint16(cpu.GetFlag(FlagC))

	cpu.setFlag(FlagC, result&0xFF00 != 0)
	cpu.setZN(uint8(result))
	cpu.writeResult(uint8(result))
	return 0
}

// ROR - Rotate Right
func (cpu *CPU) opROR() uint8 {
	m := cpu.fetch()
	result := (uint16(cpu.GetFlag(FlagC)) << 7) | uint16(m>>1)

	cpu.setFlag(FlagC, m&0x01 != 0)
	cpu.setZN(uint8(result))
	cpu.writeResult(uint8(result))
	return 0
}

// RTI - Return from Interrupt. B and U are cleared from the popped
// status before it becomes live.
func (cpu *CPU) opRTI() uint8 {
	cpu.P = cpu.stackPop()
	cpu.setFlag(FlagB, false)
	cpu.setFlag(FlagU, false)

	cpu.PC = cpu.popWord()
	return 0
}

// RTS - Return from Subroutine
func (cpu *CPU) opRTS() uint8 {
	cpu.PC = cpu.popWord() + 1
	return 0
}

// SBC - Subtract with Carry, implemented as ADC of the bitwise-inverted
// operand so the flag logic (including overflow) is shared with ADC.
func (cpu *CPU) opSBC() uint8 {
	m := cpu.fetch() ^ 0xFF
	cpu.addWithCarry(m)
	return 1
}

// SEC - Set Carry Flag
func (cpu *CPU) opSEC() uint8 { cpu.setFlag(FlagC, true); return 0 }

// SED - Set Decimal Flag
func (cpu *CPU) opSED() uint8 { cpu.setFlag(FlagD, true); return 0 }

// SEI - Set Interrupt Disable
func (cpu *CPU) opSEI() uint8 { cpu.setFlag(FlagI, true); return 0 }

// STA - Store Accumulator
func (cpu *CPU) opSTA() uint8 {
	cpu.write(cpu.AddrAbs, cpu.A)
	return 0
}

// STX - Store X Register
func (cpu *CPU) opSTX() uint8 {
	cpu.write(cpu.AddrAbs, cpu.X)
	return 0
}

// STY - Store Y Register
func (cpu *CPU) opSTY() uint8 {
	cpu.write(cpu.AddrAbs, cpu.Y)
	return 0
}

// TAX - Transfer Accumulator to X
func (cpu *CPU) opTAX() uint8 {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
	return 0
}

// TAY - Transfer Accumulator to Y
func (cpu *CPU) opTAY() uint8 {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
	return 0
}

// TSX - Transfer Stack Pointer to X
func (cpu *CPU) opTSX() uint8 {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
	return 0
}

// TXA - Transfer X to Accumulator
func (cpu *CPU) opTXA() uint8 {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
	return 0
}

// TXS - Transfer X to Stack Pointer. Touches no flags.
func (cpu *CPU) opTXS() uint8 {
	cpu.SP = cpu.X
	return 0
}

// TYA - Transfer Y to Accumulator
func (cpu *CPU) opTYA() uint8 {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
	return 0
}

// XXX - Catch-all for illegal/unimplemented opcodes. Degrades to NOP and
// logs a diagnostic; never advances PC beyond the opcode byte already
// consumed by Clock.
func (cpu *CPU) opXXX() uint8 {
	cpu.diag.logIllegalOpcode(cpu.Opcode, cpu.PC-1)
	return 0
}

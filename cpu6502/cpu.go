// Package cpu6502 implements the MOS 6502 CPU core as used in the NES's
// 2A03 (the 6502 with decimal-mode arithmetic disabled). It models the
// fetch/decode/execute loop, every documented addressing mode and
// opcode, interrupt handling, cycle accounting and a disassembler that
// shares the same instruction table. The memory bus, PPU, cartridge and
// any presentation layer are external collaborators reached only
// through the Bus interface.
package cpu6502

const stackBase uint16 = 0x0100

const (
	resetVectorAddr uint16 = 0xFFFC
	nmiVectorAddr   uint16 = 0xFFFA
	irqVectorAddr   uint16 = 0xFFFE
)

// CPU holds the architectural state of one MOS 6502. Create one with
// NewCPU and drive it with Reset followed by repeated Clock calls.
type CPU struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	SP uint8  // Stack pointer (stack lives in page 1: 0x0100+SP)
	PC uint16 // Program counter
	P  uint8  // Status flags, packed per Flag bit order

	AddrAbs uint16 // Effective absolute address last computed
	Opcode  uint8  // Last fetched instruction byte

	fetched         uint8  // ALU operand of the current instruction
	addrRel         uint16 // Sign-extended branch offset
	cyclesRemaining int    // Cycles left to retire the current instruction
	isImplied       bool   // True while the current instruction's mode is IMP

	bus  Bus
	diag *diagnostics

	instLookup [256]Instruction
}

// NewCPU builds a CPU attached to bus, with registers zeroed. Call Reset
// before the first Clock to bring it to a well-defined power-on state.
func NewCPU(bus Bus) *CPU {
	cpu := &CPU{
		bus:  bus,
		diag: newDiagnostics(),
	}
	cpu.instLookup = buildInstructionTable()
	return cpu
}

func (cpu *CPU) read(addr uint16) uint8 {
	return cpu.bus.Read(addr)
}

func (cpu *CPU) write(addr uint16, data uint8) {
	cpu.bus.Write(addr, data)
}

// readWord reads a little-endian 16-bit value starting at addr.
func (cpu *CPU) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// fetch loads fetched with the operand addressed by AddrAbs, unless the
// current instruction's mode is implied (fetched is already A then).
func (cpu *CPU) fetch() uint8 {
	if !cpu.isImplied {
		cpu.fetched = cpu.read(cpu.AddrAbs)
	}
	return cpu.fetched
}

func (cpu *CPU) stackPush(data uint8) {
	cpu.write(stackBase|uint16(cpu.SP), data)
	cpu.SP--
}

func (cpu *CPU) stackPop() uint8 {
	cpu.SP++
	return cpu.read(stackBase | uint16(cpu.SP))
}

func (cpu *CPU) pushWord(v uint16) {
	cpu.stackPush(uint8(v >> 8))
	cpu.stackPush(uint8(v))
}

func (cpu *CPU) popWord() uint16 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()
	return uint16(hi)<<8 | uint16(lo)
}

// Reset runs the unconditional RESET sequence: PC loads from the reset
// vector, registers clear, SP goes to 0xFD and U is forced on.
func (cpu *CPU) Reset() {
	cpu.AddrAbs = resetVectorAddr
	cpu.PC = cpu.readWord(resetVectorAddr)

	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.P = uint8(FlagU)

	cpu.fetched = 0
	cpu.addrRel = 0
	cpu.isImplied = false

	cpu.cyclesRemaining = 8
}

// IRQ requests a maskable interrupt. Ignored while the I flag is set.
func (cpu *CPU) IRQ() {
	if cpu.GetFlag(FlagI) == 1 {
		return
	}
	cpu.pushWord(cpu.PC)

	cpu.setFlag(FlagB, false)
	cpu.setFlag(FlagU, true)
	cpu.setFlag(FlagI, true)
	cpu.stackPush(cpu.P)

	cpu.PC = cpu.readWord(irqVectorAddr)
	cpu.cyclesRemaining = 7
}

// NMI requests a non-maskable interrupt. Always serviced.
func (cpu *CPU) NMI() {
	cpu.pushWord(cpu.PC)

	cpu.setFlag(FlagB, false)
	cpu.setFlag(FlagU, true)
	cpu.setFlag(FlagI, true)
	cpu.stackPush(cpu.P)

	cpu.PC = cpu.readWord(nmiVectorAddr)
	cpu.cyclesRemaining = 8
}

// Clock advances the CPU by one master tick. When the cycle budget for
// the previous instruction is exhausted it fetches, decodes and
// executes exactly one new instruction, loading cyclesRemaining with
// its base cost plus any page-cross penalty earned by both the
// addressing mode and the opcode.
func (cpu *CPU) Clock() {
	if cpu.cyclesRemaining == 0 {
		cpu.Opcode = cpu.read(cpu.PC)
		cpu.setFlag(FlagU, true)
		cpu.PC++

		inst := cpu.instLookup[cpu.Opcode]
		cpu.cyclesRemaining = int(inst.Cycles)

		cpu.isImplied = false
		extra1 := cpu.evalAddrMode(inst.Mode)
		extra2 := cpu.execute(inst.Op)

		cpu.cyclesRemaining += int(extra1 & extra2)

		cpu.setFlag(FlagU, true)
	}

	cpu.cyclesRemaining--
}

// Complete reports whether the last instruction has fully retired.
func (cpu *CPU) Complete() bool {
	return cpu.cyclesRemaining == 0
}

// Step runs Clock until the current instruction completes, always
// executing at least one full instruction.
func (cpu *CPU) Step() {
	cpu.Clock()
	for !cpu.Complete() {
		cpu.Clock()
	}
}

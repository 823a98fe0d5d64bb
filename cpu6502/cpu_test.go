package cpu6502

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestResetEstablishesPowerOnState(t *testing.T) {
	bus, err := newFlatBus(1 << 16)
	assert.NoError(t, err)
	bus.Write(resetVectorAddr, 0x00)
	bus.Write(resetVectorAddr+1, 0x80)

	cpu := NewCPU(bus)
	cpu.Reset()

	assert.Equal(t, uint8(0xFD), cpu.SP)
	assert.Equal(t, uint16(0x8000), cpu.PC)
	assert.Equal(t, uint8(0), cpu.A)
	assert.Equal(t, uint8(0), cpu.X)
	assert.Equal(t, uint8(0), cpu.Y)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagU), "U flag must be observed as 1 after reset")
}

func TestNewFlatBusRejectsInvalidSizes(t *testing.T) {
	_, err := newFlatBus(3) // not a power of 2
	assert.Error(t, err)

	_, err = newFlatBus(1 << 17) // bigger than 64k
	assert.Error(t, err)

	bus, err := newFlatBus(1 << 10)
	assert.NoError(t, err)
	assert.Len(t, bus.ram, 1<<10)
}

// Scenario 1 (spec.md §8): multiply 10 * 3 by repeated addition and
// stash the result and the terminal loop counter.
func TestMultiplyByTenProgram(t *testing.T) {
	code := []uint8{
		0xA2, 0x0A, // LDX #$0A
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,       // CLC
		0x6D, 0x01, 0x00, // ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE (back to ADC $0001)
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}
	cpu, bus := newTestCPU(code, 0x8000)

	// Step instructions until the three trailing NOPs are reached (PC
	// parked at or past the NOP run means the loop has terminated).
	for i := 0; i < 200 && cpu.PC < 0x801A; i++ {
		cpu.Step()
	}

	assert.Equal(t, uint8(0x1E), bus.Read(0x0002), "expected 10*3=30 at $0002;\nstate: %s", spew.Sdump(cpu))
	assert.Equal(t, uint8(0), cpu.Y)
}

// Scenario 2 (spec.md §8): ADC overflow into negative with carry clear.
func TestADCOverflow(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0x69, 0x01}, 0x8000) // ADC #$01
	cpu.A = 0x7F
	cpu.setFlag(FlagC, false)

	cpu.Step()

	assert.Equal(t, uint8(0x80), cpu.A)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagN))
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagV))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagZ))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagC))
}

// Scenario 3 (spec.md §8) exercises A=0x50, M=0xF0, C=1 through SBC.
// The resulting accumulator value (0x60) matches the scenario; its
// stated carry-out of 1 does not match the canonical SBC formula the
// same section defines (SBC as ADC of the one's-complemented operand)
// — unsigned 0x50 < 0xF0 means the subtraction borrows, so carry must
// clear. See DESIGN.md for this resolution.
func TestSBCBorrowChain(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xE9, 0xF0}, 0x8000) // SBC #$F0
	cpu.A = 0x50
	cpu.setFlag(FlagC, true)

	cpu.Step()

	assert.Equal(t, uint8(0x60), cpu.A)
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagC), "0x50 < 0xF0 unsigned: subtraction borrows, carry clears")
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagV))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagZ))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagN))
}

// Scenario 4 (spec.md §8): BIT sets Z/N/V from the memory operand and
// leaves A untouched.
func TestBIT(t *testing.T) {
	cpu, bus := newTestCPU([]uint8{0x24, 0x10}, 0x8000) // BIT $10
	bus.Write(0x10, 0xC0)
	cpu.A = 0xC0

	cpu.Step()

	assert.Equal(t, uint8(0), cpu.GetFlag(FlagZ))
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagN))
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagV))
	assert.Equal(t, uint8(0xC0), cpu.A)
}

// Scenario 5 (spec.md §8): the indirect-JMP page-wrap hardware bug.
func TestIndirectJMPPageWrapBug(t *testing.T) {
	cpu, bus := newTestCPU([]uint8{0x6C, 0xFF, 0x10}, 0x8000) // JMP ($10FF)
	bus.Write(0x10FF, 0x34)
	bus.Write(0x1100, 0xAB) // must NOT be read for the high byte
	bus.Write(0x1000, 0x12) // high byte comes from here instead

	cpu.Step()

	assert.Equal(t, uint16(0x1234), cpu.PC)
}

// Scenario 6 (spec.md §8): IRQ masked while I=1, then serviced once
// cleared.
func TestIRQMaskedThenServed(t *testing.T) {
	cpu, bus := newTestCPU(nil, 0x8000)
	bus.Write(irqVectorAddr, 0x78)
	bus.Write(irqVectorAddr+1, 0x56)

	cpu.setFlag(FlagI, true)
	pcBefore := cpu.PC
	spBefore := cpu.SP

	cpu.IRQ()
	assert.Equal(t, pcBefore, cpu.PC, "IRQ must be ignored while I=1")
	assert.Equal(t, spBefore, cpu.SP)

	cpu.setFlag(FlagI, false)
	cpu.IRQ()

	assert.Equal(t, uint16(0x5678), cpu.PC)
	assert.Equal(t, uint8(spBefore-3), cpu.SP)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagI))
}

// Clock-cycle conservation (spec.md §8): Complete() becomes true exactly
// base_cycles-1 further Clock calls after a fresh instruction starts.
func TestCycleConservationForNonPageCrossingLoad(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xA9, 0x42}, 0x8000) // LDA #$42, 2 base cycles

	cpu.Clock() // fetch/decode/execute happens here; cyclesRemaining ends at 1
	assert.False(t, cpu.Complete())
	cpu.Clock()
	assert.True(t, cpu.Complete())
	assert.Equal(t, uint8(0x42), cpu.A)
}

func TestBranchNotTakenAdvancesPCByTwoOnly(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xF0, 0x10}, 0x8000) // BEQ +16, Z currently 0
	cpu.setFlag(FlagZ, false)
	start := cpu.PC

	cpu.Step()

	assert.Equal(t, start+2, cpu.PC)
}

func TestBranchTakenWithoutPageCrossCostsOneExtraCycle(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xF0, 0x10}, 0x8010) // BEQ +16 -> 0x8022, same page
	cpu.setFlag(FlagZ, true)

	cpu.Clock()
	ticks := 1
	for !cpu.Complete() {
		cpu.Clock()
		ticks++
	}
	assert.Equal(t, 3, ticks) // base 2 + 1 taken, no page cross
	assert.Equal(t, uint16(0x8022), cpu.PC)
}

func TestBranchTakenWithPageCrossCostsTwoExtraCycles(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xF0, 0x7F}, 0x80F0) // BEQ +127 -> 0x8171, crosses page
	cpu.setFlag(FlagZ, true)

	cpu.Clock()
	ticks := 1
	for !cpu.Complete() {
		cpu.Clock()
		ticks++
	}
	assert.Equal(t, 4, ticks) // base 2 + 1 taken + 1 page cross
	assert.Equal(t, uint16(0x8171), cpu.PC)
}

func TestFlagIdempotence(t *testing.T) {
	cpu, _ := newTestCPU(nil, 0x8000)

	cpu.setFlag(FlagC, false)
	cpu.setFlag(FlagC, true)
	cpu.setFlag(FlagC, false)
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagC))

	cpu.setFlag(FlagD, true)
	cpu.setFlag(FlagD, false)
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagD))

	cpu.setFlag(FlagI, false)
	cpu.setFlag(FlagI, true)
	cpu.setFlag(FlagI, true)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagI))

	cpu.setFlag(FlagV, true)
	cpu.setFlag(FlagV, true)
	assert.Equal(t, uint8(1), cpu.GetFlag(FlagV))
}

func TestIllegalOpcodeLogsAndActsAsNOP(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0x02, 0xEA}, 0x8000) // 0x02 is an undocumented hole
	pcStart := cpu.PC

	cpu.Step()

	assert.Equal(t, pcStart+1, cpu.PC, "illegal opcode consumes only its own byte")
	diag := cpu.Diagnostics()
	assert.Len(t, diag, 1)
	assert.Contains(t, diag[0], "illegal opcode $02")
}

func TestPHPPushesBAndUSetAndLeavesLiveBClear(t *testing.T) {
	cpu, bus := newTestCPU([]uint8{0x08}, 0x8000) // PHP
	cpu.setFlag(FlagB, false)
	cpu.setFlag(FlagU, false)
	spBefore := cpu.SP

	cpu.Step()

	pushed := bus.Read(stackBase | uint16(spBefore))
	assert.NotEqual(t, uint8(0), pushed&uint8(FlagB))
	assert.NotEqual(t, uint8(0), pushed&uint8(FlagU))
	assert.Equal(t, uint8(0), cpu.GetFlag(FlagB), "live B stays clear after PHP")
}

func TestPLPForcesUFlagOn(t *testing.T) {
	cpu, bus := newTestCPU([]uint8{0x28}, 0x8000) // PLP
	bus.Write(stackBase|uint16(cpu.SP+1), 0x00)    // pushed status with U cleared

	cpu.Step()

	assert.Equal(t, uint8(1), cpu.GetFlag(FlagU))
}

package cpu6502

import "fmt"

// flatBus is a minimal in-memory Bus used only by this package's tests:
// a flat array with no mirroring, mapper dispatch or PPU routing — all of
// which are the real bus implementation's job, out of scope for the CPU
// core under test. Mirrors the teacher repo's own NewBus(), which is
// likewise a trivial flat-RAM fixture.
type flatBus struct {
	ram []uint8
}

// newFlatBus allocates a flat RAM bus of size bytes, guarded the same way
// jmchacon-6502's memory.New8BitRAMBank guards its own RAM bank: size
// must be a power of 2 and must not exceed the 64K address space a
// uint16 address can reach.
func newFlatBus(size int) (*flatBus, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &flatBus{ram: make([]uint8, size)}, nil
}

func (b *flatBus) Read(addr uint16) uint8 {
	return b.ram[int(addr)&(len(b.ram)-1)]
}

func (b *flatBus) Write(addr uint16, data uint8) {
	b.ram[int(addr)&(len(b.ram)-1)] = data
}

// newTestCPU writes code starting at loadAddr and points the reset vector
// at it, returning a freshly reset CPU ready to run it.
func newTestCPU(code []uint8, loadAddr uint16) (*CPU, *flatBus) {
	bus, err := newFlatBus(1 << 16)
	if err != nil {
		panic(err)
	}
	for i, b := range code {
		bus.Write(loadAddr+uint16(i), b)
	}
	bus.Write(resetVectorAddr, uint8(loadAddr))
	bus.Write(resetVectorAddr+1, uint8(loadAddr>>8))

	cpu := NewCPU(bus)
	cpu.Reset()
	// Reset leaves cyclesRemaining at 8 to model the real RESET latency;
	// drain it so tests can Step instructions one at a time.
	for !cpu.Complete() {
		cpu.Clock()
	}
	return cpu, bus
}

package cpu6502

// Instruction is one entry of the fixed 256-opcode lookup table: a
// mnemonic for disassembly, the operation kind, the addressing mode,
// and the base cycle count charged before any page-cross extras.
type Instruction struct {
	Mnemonic string
	Op       OpKind
	Mode     AddrMode
	Cycles   uint8
}

// buildInstructionTable constructs the canonical 6502 opcode map. Holes
// in the documented map are filled with (XXX, IMP, 2) entries: every
// illegal opcode costs a flat 2 cycles, not the per-opcode timing real
// hardware has for those opcodes. Six undocumented opcodes
// (0x1C/0x3C/0x5C/0x7C/0xDC/0xFC) are special-cased as NOP-with-ABX so
// their page-crossing extra cycle is modeled, per the known behavior of
// those illegal opcodes on NMOS 6502 silicon.
func buildInstructionTable() [256]Instruction {
	return [256]Instruction{
		0x00: {"BRK", OpBRK, IMP, 7},
		0x01: {"ORA", OpORA, IZX, 6},
		0x02: {"XXX", OpXXX, IMP, 2},
		0x03: {"XXX", OpXXX, IMP, 2},
		0x04: {"XXX", OpXXX, IMP, 2},
		0x05: {"ORA", OpORA, ZP0, 3},
		0x06: {"ASL", OpASL, ZP0, 5},
		0x07: {"XXX", OpXXX, IMP, 2},
		0x08: {"PHP", OpPHP, IMP, 3},
		0x09: {"ORA", OpORA, IMM, 2},
		0x0A: {"ASL", OpASL, IMP, 2},
		0x0B: {"XXX", OpXXX, IMP, 2},
		0x0C: {"XXX", OpXXX, IMP, 2},
		0x0D: {"ORA", OpORA, ABS, 4},
		0x0E: {"ASL", OpASL, ABS, 6},
		0x0F: {"XXX", OpXXX, IMP, 2},
		0x10: {"BPL", OpBPL, REL, 2},
		0x11: {"ORA", OpORA, IZY, 5},
		0x12: {"XXX", OpXXX, IMP, 2},
		0x13: {"XXX", OpXXX, IMP, 2},
		0x14: {"XXX", OpXXX, IMP, 2},
		0x15: {"ORA", OpORA, ZPX, 4},
		0x16: {"ASL", OpASL, ZPX, 6},
		0x17: {"XXX", OpXXX, IMP, 2},
		0x18: {"CLC", OpCLC, IMP, 2},
		0x19: {"ORA", OpORA, ABY, 4},
		0x1A: {"XXX", OpXXX, IMP, 2},
		0x1B: {"XXX", OpXXX, IMP, 2},
		0x1C: {"NOP", OpNOP, ABX, 4},
		0x1D: {"ORA", OpORA, ABX, 4},
		0x1E: {"ASL", OpASL, ABX, 7},
		0x1F: {"XXX", OpXXX, IMP, 2},
		0x20: {"JSR", OpJSR, ABS, 6},
		0x21: {"AND", OpAND, IZX, 6},
		0x22: {"XXX", OpXXX, IMP, 2},
		0x23: {"XXX", OpXXX, IMP, 2},
		0x24: {"BIT", OpBIT, ZP0, 3},
		0x25: {"AND", OpAND, ZP0, 3},
		0x26: {"ROL", OpROL, ZP0, 5},
		0x27: {"XXX", OpXXX, IMP, 2},
		0x28: {"PLP", OpPLP, IMP, 4},
		0x29: {"AND", OpAND, IMM, 2},
		0x2A: {"ROL", OpROL, IMP, 2},
		0x2B: {"XXX", OpXXX, IMP, 2},
		0x2C: {"BIT", OpBIT, ABS, 4},
		0x2D: {"AND", OpAND, ABS, 4},
		0x2E: {"ROL", OpROL, ABS, 6},
		0x2F: {"XXX", OpXXX, IMP, 2},
		0x30: {"BMI", OpBMI, REL, 2},
		0x31: {"AND", OpAND, IZY, 5},
		0x32: {"XXX", OpXXX, IMP, 2},
		0x33: {"XXX", OpXXX, IMP, 2},
		0x34: {"XXX", OpXXX, IMP, 2},
		0x35: {"AND", OpAND, ZPX, 4},
		0x36: {"ROL", OpROL, ZPX, 6},
		0x37: {"XXX", OpXXX, IMP, 2},
		0x38: {"SEC", OpSEC, IMP, 2},
		0x39: {"AND", OpAND, ABY, 4},
		0x3A: {"XXX", OpXXX, IMP, 2},
		0x3B: {"XXX", OpXXX, IMP, 2},
		0x3C: {"NOP", OpNOP, ABX, 4},
		0x3D: {"AND", OpAND, ABX, 4},
		0x3E: {"ROL", OpROL, ABX, 7},
		0x3F: {"XXX", OpXXX, IMP, 2},
		0x40: {"RTI", OpRTI, IMP, 6},
		0x41: {"EOR", OpEOR, IZX, 6},
		0x42: {"XXX", OpXXX, IMP, 2},
		0x43: {"XXX", OpXXX, IMP, 2},
		0x44: {"XXX", OpXXX, IMP, 2},
		0x45: {"EOR", OpEOR, ZP0, 3},
		0x46: {"LSR", OpLSR, ZP0, 5},
		0x47: {"XXX", OpXXX, IMP, 2},
		0x48: {"PHA", OpPHA, IMP, 3},
		0x49: {"EOR", OpEOR, IMM, 2},
		0x4A: {"LSR", OpLSR, IMP, 2},
		0x4B: {"XXX", OpXXX, IMP, 2},
		0x4C: {"JMP", OpJMP, ABS, 3},
		0x4D: {"EOR", OpEOR, ABS, 4},
		0x4E: {"LSR", OpLSR, ABS, 6},
		0x4F: {"XXX", OpXXX, IMP, 2},
		0x50: {"BVC", OpBVC, REL, 2},
		0x51: {"EOR", OpEOR, IZY, 5},
		0x52: {"XXX", OpXXX, IMP, 2},
		0x53: {"XXX", OpXXX, IMP, 2},
		0x54: {"XXX", OpXXX, IMP, 2},
		0x55: {"EOR", OpEOR, ZPX, 4},
		0x56: {"LSR", OpLSR, ZPX, 6},
		0x57: {"XXX", OpXXX, IMP, 2},
		0x58: {"CLI", OpCLI, IMP, 2},
		0x59: {"EOR", OpEOR, ABY, 4},
		0x5A: {"XXX", OpXXX, IMP, 2},
		0x5B: {"XXX", OpXXX, IMP, 2},
		0x5C: {"NOP", OpNOP, ABX, 4},
		0x5D: {"EOR", OpEOR, ABX, 4},
		0x5E: {"LSR", OpLSR, ABX, 7},
		0x5F: {"XXX", OpXXX, IMP, 2},
		0x60: {"RTS", OpRTS, IMP, 6},
		0x61: {"ADC", OpADC, IZX, 6},
		0x62: {"XXX", OpXXX, IMP, 2},
		0x63: {"XXX", OpXXX, IMP, 2},
		0x64: {"XXX", OpXXX, IMP, 2},
		0x65: {"ADC", OpADC, ZP0, 3},
		0x66: {"ROR", OpROR, ZP0, 5},
		0x67: {"XXX", OpXXX, IMP, 2},
		0x68: {"PLA", OpPLA, IMP, 4},
		0x69: {"ADC", OpADC, IMM, 2},
		0x6A: {"ROR", OpROR, IMP, 2},
		0x6B: {"XXX", OpXXX, IMP, 2},
		0x6C: {"JMP", OpJMP, IND, 5},
		0x6D: {"ADC", OpADC, ABS, 4},
		0x6E: {"ROR", OpROR, ABS, 6},
		0x6F: {"XXX", OpXXX, IMP, 2},
		0x70: {"BVS", OpBVS, REL, 2},
		0x71: {"ADC", OpADC, IZY, 5},
		0x72: {"XXX", OpXXX, IMP, 2},
		0x73: {"XXX", OpXXX, IMP, 2},
		0x74: {"XXX", OpXXX, IMP, 2},
		0x75: {"ADC", OpADC, ZPX, 4},
		0x76: {"ROR", OpROR, ZPX, 6},
		0x77: {"XXX", OpXXX, IMP, 2},
		0x78: {"SEI", OpSEI, IMP, 2},
		0x79: {"ADC", OpADC, ABY, 4},
		0x7A: {"XXX", OpXXX, IMP, 2},
		0x7B: {"XXX", OpXXX, IMP, 2},
		0x7C: {"NOP", OpNOP, ABX, 4},
		0x7D: {"ADC", OpADC, ABX, 4},
		0x7E: {"ROR", OpROR, ABX, 7},
		0x7F: {"XXX", OpXXX, IMP, 2},
		0x80: {"XXX", OpXXX, IMP, 2},
		0x81: {"STA", OpSTA, IZX, 6},
		0x82: {"XXX", OpXXX, IMP, 2},
		0x83: {"XXX", OpXXX, IMP, 2},
		0x84: {"STY", OpSTY, ZP0, 3},
		0x85: {"STA", OpSTA, ZP0, 3},
		0x86: {"STX", OpSTX, ZP0, 3},
		0x87: {"XXX", OpXXX, IMP, 2},
		0x88: {"DEY", OpDEY, IMP, 2},
		0x89: {"XXX", OpXXX, IMP, 2},
		0x8A: {"TXA", OpTXA, IMP, 2},
		0x8B: {"XXX", OpXXX, IMP, 2},
		0x8C: {"STY", OpSTY, ABS, 4},
		0x8D: {"STA", OpSTA, ABS, 4},
		0x8E: {"STX", OpSTX, ABS, 4},
		0x8F: {"XXX", OpXXX, IMP, 2},
		0x90: {"BCC", OpBCC, REL, 2},
		0x91: {"STA", OpSTA, IZY, 6},
		0x92: {"XXX", OpXXX, IMP, 2},
		0x93: {"XXX", OpXXX, IMP, 2},
		0x94: {"STY", OpSTY, ZPX, 4},
		0x95: {"STA", OpSTA, ZPX, 4},
		0x96: {"STX", OpSTX, ZPY, 4},
		0x97: {"XXX", OpXXX, IMP, 2},
		0x98: {"TYA", OpTYA, IMP, 2},
		0x99: {"STA", OpSTA, ABY, 5},
		0x9A: {"TXS", OpTXS, IMP, 2},
		0x9B: {"XXX", OpXXX, IMP, 2},
		0x9C: {"XXX", OpXXX, IMP, 2},
		0x9D: {"STA", OpSTA, ABX, 5},
		0x9E: {"XXX", OpXXX, IMP, 2},
		0x9F: {"XXX", OpXXX, IMP, 2},
		0xA0: {"LDY", OpLDY, IMM, 2},
		0xA1: {"LDA", OpLDA, IZX, 6},
		0xA2: {"LDX", OpLDX, IMM, 2},
		0xA3: {"XXX", OpXXX, IMP, 2},
		0xA4: {"LDY", OpLDY, ZP0, 3},
		0xA5: {"LDA", OpLDA, ZP0, 3},
		0xA6: {"LDX", OpLDX, ZP0, 3},
		0xA7: {"XXX", OpXXX, IMP, 2},
		0xA8: {"TAY", OpTAY, IMP, 2},
		0xA9: {"LDA", OpLDA, IMM, 2},
		0xAA: {"TAX", OpTAX, IMP, 2},
		0xAB: {"XXX", OpXXX, IMP, 2},
		0xAC: {"LDY", OpLDY, ABS, 4},
		0xAD: {"LDA", OpLDA, ABS, 4},
		0xAE: {"LDX", OpLDX, ABS, 4},
		0xAF: {"XXX", OpXXX, IMP, 2},
		0xB0: {"BCS", OpBCS, REL, 2},
		0xB1: {"LDA", OpLDA, IZY, 5},
		0xB2: {"XXX", OpXXX, IMP, 2},
		0xB3: {"XXX", OpXXX, IMP, 2},
		0xB4: {"LDY", OpLDY, ZPX, 4},
		0xB5: {"LDA", OpLDA, ZPX, 4},
		0xB6: {"LDX", OpLDX, ZPY, 4},
		0xB7: {"XXX", OpXXX, IMP, 2},
		0xB8: {"CLV", OpCLV, IMP, 2},
		0xB9: {"LDA", OpLDA, ABY, 4},
		0xBA: {"TSX", OpTSX, IMP, 2},
		0xBB: {"XXX", OpXXX, IMP, 2},
		0xBC: {"LDY", OpLDY, ABX, 4},
		0xBD: {"LDA", OpLDA, ABX, 4},
		0xBE: {"LDX", OpLDX, ABY, 4},
		0xBF: {"XXX", OpXXX, IMP, 2},
		0xC0: {"CPY", OpCPY, IMM, 2},
		0xC1: {"CMP", OpCMP, IZX, 6},
		0xC2: {"XXX", OpXXX, IMP, 2},
		0xC3: {"XXX", OpXXX, IMP, 2},
		0xC4: {"CPY", OpCPY, ZP0, 3},
		0xC5: {"CMP", OpCMP, ZP0, 3},
		0xC6: {"DEC", OpDEC, ZP0, 5},
		0xC7: {"XXX", OpXXX, IMP, 2},
		0xC8: {"INY", OpINY, IMP, 2},
		0xC9: {"CMP", OpCMP, IMM, 2},
		0xCA: {"DEX", OpDEX, IMP, 2},
		0xCB: {"XXX", OpXXX, IMP, 2},
		0xCC: {"CPY", OpCPY, ABS, 4},
		0xCD: {"CMP", OpCMP, ABS, 4},
		0xCE: {"DEC", OpDEC, ABS, 6},
		0xCF: {"XXX", OpXXX, IMP, 2},
		0xD0: {"BNE", OpBNE, REL, 2},
		0xD1: {"CMP", OpCMP, IZY, 5},
		0xD2: {"XXX", OpXXX, IMP, 2},
		0xD3: {"XXX", OpXXX, IMP, 2},
		0xD4: {"XXX", OpXXX, IMP, 2},
		0xD5: {"CMP", OpCMP, ZPX, 4},
		0xD6: {"DEC", OpDEC, ZPX, 6},
		0xD7: {"XXX", OpXXX, IMP, 2},
		0xD8: {"CLD", OpCLD, IMP, 2},
		0xD9: {"CMP", OpCMP, ABY, 4},
		0xDA: {"XXX", OpXXX, IMP, 2},
		0xDB: {"XXX", OpXXX, IMP, 2},
		0xDC: {"NOP", OpNOP, ABX, 4},
		0xDD: {"CMP", OpCMP, ABX, 4},
		0xDE: {"DEC", OpDEC, ABX, 7},
		0xDF: {"XXX", OpXXX, IMP, 2},
		0xE0: {"CPX", OpCPX, IMM, 2},
		0xE1: {"SBC", OpSBC, IZX, 6},
		0xE2: {"XXX", OpXXX, IMP, 2},
		0xE3: {"XXX", OpXXX, IMP, 2},
		0xE4: {"CPX", OpCPX, ZP0, 3},
		0xE5: {"SBC", OpSBC, ZP0, 3},
		0xE6: {"INC", OpINC, ZP0, 5},
		0xE7: {"XXX", OpXXX, IMP, 2},
		0xE8: {"INX", OpINX, IMP, 2},
		0xE9: {"SBC", OpSBC, IMM, 2},
		0xEA: {"NOP", OpNOP, IMP, 2},
		0xEB: {"XXX", OpXXX, IMP, 2},
		0xEC: {"CPX", OpCPX, ABS, 4},
		0xED: {"SBC", OpSBC, ABS, 4},
		0xEE: {"INC", OpINC, ABS, 6},
		0xEF: {"XXX", OpXXX, IMP, 2},
		0xF0: {"BEQ", OpBEQ, REL, 2},
		0xF1: {"SBC", OpSBC, IZY, 5},
		0xF2: {"XXX", OpXXX, IMP, 2},
		0xF3: {"XXX", OpXXX, IMP, 2},
		0xF4: {"XXX", OpXXX, IMP, 2},
		0xF5: {"SBC", OpSBC, ZPX, 4},
		0xF6: {"INC", OpINC, ZPX, 6},
		0xF7: {"XXX", OpXXX, IMP, 2},
		0xF8: {"SED", OpSED, IMP, 2},
		0xF9: {"SBC", OpSBC, ABY, 4},
		0xFA: {"XXX", OpXXX, IMP, 2},
		0xFB: {"XXX", OpXXX, IMP, 2},
		0xFC: {"NOP", OpNOP, ABX, 4},
		0xFD: {"SBC", OpSBC, ABX, 4},
		0xFE: {"INC", OpINC, ABX, 7},
		0xFF: {"XXX", OpXXX, IMP, 2},
	}
}

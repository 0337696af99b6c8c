package cpu

// AddressingMode identifies one of the operand-fetching rules a decoded
// opcode uses to locate its data.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirectX // (zp,X)
	IndirectIndexedY // (zp),Y
)

// AddressKind distinguishes the four shapes an Address resolves to.
type AddressKind int

const (
	// KindNone resolves to nothing: the Implied addressing mode.
	KindNone AddressKind = iota
	// KindAccumulator targets the accumulator register directly.
	KindAccumulator
	// KindMemory targets a 16-bit memory address.
	KindMemory
	// KindRelative carries a sign-extended displacement, used only by
	// conditional branches.
	KindRelative
)

// Address is the operand location produced by the addressing resolver.
type Address struct {
	Kind  AddressKind
	Value uint16 // memory address for KindMemory, displacement for KindRelative
}

// readWord performs a little-endian 16-bit read: the low byte is at the
// lower address.
func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.Memory.Read(addr))
	hi := uint16(c.Memory.Read(addr + 1))
	return hi<<8 | lo
}

// resolve maps the given addressing mode to an Address, advancing PC past
// whatever operand bytes it consumes.
func (c *CPU) resolve(mode AddressingMode) Address {
	switch mode {

	case Implied:
		return Address{Kind: KindNone}

	case Accumulator:
		return Address{Kind: KindAccumulator}

	case Immediate:
		addr := c.PC
		c.PC++
		return Address{Kind: KindMemory, Value: addr}

	case ZeroPage:
		addr := uint16(c.Memory.Read(c.PC))
		c.PC++
		return Address{Kind: KindMemory, Value: addr}

	case ZeroPageX:
		zp := c.Memory.Read(c.PC) + c.X
		c.PC++
		return Address{Kind: KindMemory, Value: uint16(zp)}

	case ZeroPageY:
		zp := c.Memory.Read(c.PC) + c.Y
		c.PC++
		return Address{Kind: KindMemory, Value: uint16(zp)}

	case Relative:
		rel := int8(c.Memory.Read(c.PC))
		c.PC++
		return Address{Kind: KindRelative, Value: uint16(int16(rel))}

	case Absolute:
		addr := c.readWord(c.PC)
		c.PC += 2
		return Address{Kind: KindMemory, Value: addr}

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		return Address{Kind: KindMemory, Value: base + uint16(c.X)}

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		return Address{Kind: KindMemory, Value: base + uint16(c.Y)}

	case Indirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		// Hardware bug: the high byte of the target is fetched from
		// (ptr & 0xFF00) | ((ptr + 1) & 0x00FF) -- the low byte of the
		// pointer wraps within its own page instead of carrying into
		// the next page.
		lo := c.Memory.Read(ptr)
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := c.Memory.Read(hiAddr)
		addr := uint16(hi)<<8 | uint16(lo)
		return Address{Kind: KindMemory, Value: addr}

	case IndexedIndirectX:
		zp := c.Memory.Read(c.PC) + c.X
		c.PC++
		lo := uint16(c.Memory.Read(uint16(zp)))
		hi := uint16(c.Memory.Read(uint16(zp + 1)))
		return Address{Kind: KindMemory, Value: hi<<8 | lo}

	case IndirectIndexedY:
		zp := c.Memory.Read(c.PC)
		c.PC++
		lo := uint16(c.Memory.Read(uint16(zp)))
		hi := uint16(c.Memory.Read(uint16(zp + 1)))
		base := hi<<8 | lo
		return Address{Kind: KindMemory, Value: base + uint16(c.Y)}
	}

	panic("unreachable addressing mode")
}

// load reads the byte at addr, for Accumulator or Memory addresses. It is
// not meaningful for KindNone or KindRelative.
func (c *CPU) load(addr Address) byte {
	switch addr.Kind {
	case KindAccumulator:
		return c.A
	case KindMemory:
		return c.Memory.Read(addr.Value)
	default:
		panic("load called on a non-operand Address")
	}
}

// store writes v to addr, for Accumulator or Memory addresses.
func (c *CPU) store(addr Address, v byte) {
	switch addr.Kind {
	case KindAccumulator:
		c.A = v
	case KindMemory:
		c.Memory.Write(addr.Value, v)
	default:
		panic("store called on a non-operand Address")
	}
}

package i2csim

// Memory is a 24Cxx-style memory slave: the first byte of a write sets the
// word pointer, following bytes are stored at the pointer, reads return data
// from the pointer. The pointer auto-increments and wraps at the end of Mem.
// With PageSize set, writes wrap inside the current page like a real EEPROM.
type Memory struct {
	Addr     uint8
	Mem      []byte
	PageSize int
	// Refuse NACKs the address while positive and counts down on each
	// attempt, like an EEPROM busy with its write cycle.
	Refuse int

	ptr        int
	gotPointer bool
	writes     int
}

// NewMemory returns a memory slave of size bytes filled with fill.
func NewMemory(addr uint8, size int, fill byte) *Memory {
	m := &Memory{Addr: addr, Mem: make([]byte, size)}
	for i := range m.Mem {
		m.Mem[i] = fill
	}
	return m
}

func (m *Memory) Address() uint8 { return m.Addr }

func (m *Memory) Begin(read bool) bool {
	if m.Refuse > 0 {
		m.Refuse--
		return false
	}
	m.gotPointer = read
	return true
}

func (m *Memory) Write(b byte) bool {
	if !m.gotPointer {
		m.ptr = int(b) % len(m.Mem)
		m.gotPointer = true
		return true
	}
	m.Mem[m.ptr] = b
	m.writes++
	next := m.ptr + 1
	if m.PageSize > 0 && next%m.PageSize == 0 {
		next -= m.PageSize
	}
	m.ptr = next % len(m.Mem)
	return true
}

func (m *Memory) Read() byte {
	b := m.Mem[m.ptr]
	m.ptr = (m.ptr + 1) % len(m.Mem)
	return b
}

func (m *Memory) End() {}

// Pointer returns the current word pointer.
func (m *Memory) Pointer() int { return m.ptr }

// Writes counts stored data bytes.
func (m *Memory) Writes() int { return m.writes }

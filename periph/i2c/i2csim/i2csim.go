// Package i2csim simulates an STM32F411 I2C unit in master mode together with
// the slaves on its bus.
//
// The simulation works at register level: setting CR1.START raises SR1.SB,
// writing the address to DR raises SR1.ADDR (or SR1.AF when nobody answers),
// reading SR2 releases ADDR, and so on. Faults can be injected to make flags
// never appear or error flags latch. Every bus-level action is recorded as an
// Event.
package i2csim

import (
	"fmt"

	"f411hal/device/stm32f411"
	"f411hal/mmio"
	"f411hal/periph/i2c"
)

// Kind is the type of a recorded bus event.
type Kind uint8

const (
	Start Kind = iota
	Address
	Write
	Read
	Stop
)

// Event is one recorded bus action.
type Event struct {
	Kind Kind
	Byte byte // address byte (with R/W bit), written or read byte
	Ack  bool // Write: slave ACKed; Read: master ACKed
}

func (e Event) String() string {
	switch e.Kind {
	case Start:
		return "START"
	case Address:
		return fmt.Sprintf("ADDR %#02x ack %v", e.Byte, e.Ack)
	case Write:
		return fmt.Sprintf("WRITE %#02x ack %v", e.Byte, e.Ack)
	case Read:
		return fmt.Sprintf("READ %#02x ack %v", e.Byte, e.Ack)
	case Stop:
		return "STOP"
	}
	return "unknown event"
}

// Slave is a device on the simulated bus.
type Slave interface {
	// Address is the 7-bit address the slave answers to.
	Address() uint8
	// Begin starts a transfer after the slave was addressed. Returning
	// false NACKs the address.
	Begin(read bool) bool
	// Write receives a byte from the master; false NACKs it.
	Write(b byte) bool
	// Read supplies the next byte to the master.
	Read() byte
	// End is called on STOP or repeated START.
	End()
}

// Faults make the simulated unit misbehave.
type Faults struct {
	NoStart   bool   // SB never sets
	NoAddress bool   // neither ADDR nor AF sets after the address byte
	StallTX   bool   // TXE/BTF never set in a write
	StallRX   bool   // RXNE never sets in a read
	OnAddress uint32 // SR1 error flags latched instead of ADDR
	OnWrite   uint32 // SR1 error flags latched instead of BTF after a data byte
}

type phase uint8

const (
	idle phase = iota
	started
	transmitting
	receiving
	dead // address phase failed; waiting for STOP/START
)

const (
	rCR1 = iota
	rCR2
	rOAR1
	rOAR2
	rDR
	rSR1
	rSR2
	rCCR
	rTRISE
	numRegs
)

var (
	cr1PE    = mmio.Bit(stm32f411.I2C_CR1_PE)
	cr1START = mmio.Bit(stm32f411.I2C_CR1_START)
	cr1STOP  = mmio.Bit(stm32f411.I2C_CR1_STOP)
	cr1ACK   = mmio.Bit(stm32f411.I2C_CR1_ACK)

	sr1SB   = mmio.Bit(stm32f411.I2C_SR1_SB)
	sr1ADDR = mmio.Bit(stm32f411.I2C_SR1_ADDR)
	sr1BTF  = mmio.Bit(stm32f411.I2C_SR1_BTF)
	sr1RXNE = mmio.Bit(stm32f411.I2C_SR1_RXNE)
	sr1TXE  = mmio.Bit(stm32f411.I2C_SR1_TXE)
	sr1AF   = mmio.Bit(stm32f411.I2C_SR1_AF)

	// Error flags are rc_w0.
	sr1Errors = mmio.Bit(stm32f411.I2C_SR1_BERR) | mmio.Bit(stm32f411.I2C_SR1_ARLO) |
		sr1AF | mmio.Bit(stm32f411.I2C_SR1_OVR)

	// Address byte on the wire: direction in bit 0, 7-bit address above.
	wireDir  = mmio.Field{Pos: 0, Width: 1}
	wireAddr = mmio.Field{Pos: 1, Width: 7}
	oar1Addr = mmio.Field{Pos: stm32f411.I2C_OAR1_ADD7_Pos, Width: 7}

	sr2MSL  = mmio.Bit(stm32f411.I2C_SR2_MSL)
	sr2BUSY = mmio.Bit(stm32f411.I2C_SR2_BUSY)
	sr2TRA  = mmio.Bit(stm32f411.I2C_SR2_TRA)
)

// Peripheral is a simulated I2C unit.
type Peripheral struct {
	Faults Faults

	raw    [numRegs]uint32
	slaves []Slave
	cur    Slave
	phase  phase

	events   []Event
	data     []byte // bytes written to DR after the address phase
	drWrites int
	sr1Reads int
	sr2Reads int
}

// New returns an idle unit with the given slaves on its bus.
func New(slaves ...Slave) *Peripheral {
	return &Peripheral{slaves: slaves}
}

// Registers returns the register set to hand to i2c.New.
func (p *Peripheral) Registers() i2c.Registers {
	r := func(id int) mmio.Register32 { return &reg{p: p, id: id} }
	return i2c.Registers{
		CR1:   r(rCR1),
		CR2:   r(rCR2),
		OAR1:  r(rOAR1),
		OAR2:  r(rOAR2),
		DR:    r(rDR),
		SR1:   r(rSR1),
		SR2:   r(rSR2),
		CCR:   r(rCCR),
		TRISE: r(rTRISE),
	}
}

// Events returns the recorded bus actions.
func (p *Peripheral) Events() []Event { return p.events }

// DataWrites returns the bytes written to DR outside the address phase.
func (p *Peripheral) DataWrites() []byte { return p.data }

// DRWrites counts every DR write, address bytes included.
func (p *Peripheral) DRWrites() int { return p.drWrites }

// StatusReads returns how often SR1 and SR2 were read.
func (p *Peripheral) StatusReads() (sr1, sr2 int) { return p.sr1Reads, p.sr2Reads }

// Reset clears the event log and counters, keeping register contents.
func (p *Peripheral) Reset() {
	p.events = nil
	p.data = nil
	p.drWrites = 0
	p.sr1Reads = 0
	p.sr2Reads = 0
}

// Raw register values, without read side effects.
func (p *Peripheral) CR1() uint32   { return p.raw[rCR1] }
func (p *Peripheral) CR2() uint32   { return p.raw[rCR2] }
func (p *Peripheral) OAR1() uint32  { return p.raw[rOAR1] }
func (p *Peripheral) SR1() uint32   { return p.raw[rSR1] }
func (p *Peripheral) SR2() uint32   { return p.raw[rSR2] }
func (p *Peripheral) CCR() uint32   { return p.raw[rCCR] }
func (p *Peripheral) TRISE() uint32 { return p.raw[rTRISE] }

// OwnAddress decodes the 7-bit address programmed into OAR1.
func (p *Peripheral) OwnAddress() uint8 { return mmio.Of[uint8](oar1Addr, p.raw[rOAR1]) }

func (p *Peripheral) log(e Event) { p.events = append(p.events, e) }

func (p *Peripheral) find(addr uint8) Slave {
	for _, s := range p.slaves {
		if s.Address() == addr {
			return s
		}
	}
	return nil
}

func (p *Peripheral) endSlave() {
	if p.cur != nil {
		p.cur.End()
		p.cur = nil
	}
}

func (p *Peripheral) load(id int) uint32 {
	switch id {
	case rSR1:
		p.sr1Reads++
	case rSR2:
		p.sr2Reads++
		p.releaseAddr()
		return p.raw[rSR2]
	case rDR:
		return uint32(p.readData())
	}
	return p.raw[id]
}

func (p *Peripheral) store(id int, v uint32) {
	switch id {
	case rCR1:
		p.writeCR1(v)
	case rDR:
		p.writeData(byte(v))
	case rSR1:
		p.raw[rSR1] &= v | ^sr1Errors
	case rSR2:
		// read-only
	default:
		p.raw[id] = v
	}
}

func (p *Peripheral) writeCR1(v uint32) {
	p.raw[rCR1] = v &^ (cr1START | cr1STOP)
	if v&cr1PE == 0 {
		// PE=0 resets the unit's state machine and clears ACK.
		p.endSlave()
		p.phase = idle
		p.raw[rCR1] &^= cr1ACK
		p.raw[rSR1] = 0
		p.raw[rSR2] = 0
		return
	}
	if v&cr1START != 0 {
		p.endSlave()
		p.log(Event{Kind: Start})
		p.raw[rSR1] &^= sr1TXE | sr1BTF | sr1RXNE | sr1ADDR
		p.phase = started
		if !p.Faults.NoStart {
			p.raw[rSR1] |= sr1SB
			p.raw[rSR2] |= sr2MSL | sr2BUSY
		}
	}
	if v&cr1STOP != 0 {
		p.endSlave()
		p.log(Event{Kind: Stop})
		p.phase = idle
		p.raw[rSR1] &^= sr1SB | sr1ADDR | sr1TXE | sr1BTF | sr1RXNE
		p.raw[rSR2] &^= sr2MSL | sr2BUSY | sr2TRA
	}
}

func (p *Peripheral) writeData(b byte) {
	p.drWrites++
	switch p.phase {
	case started:
		p.addressPhase(b)
	case transmitting:
		p.data = append(p.data, b)
		p.raw[rSR1] &^= sr1TXE | sr1BTF
		if p.Faults.OnWrite != 0 {
			p.log(Event{Kind: Write, Byte: b})
			p.raw[rSR1] |= p.Faults.OnWrite
			return
		}
		ack := p.cur.Write(b)
		p.log(Event{Kind: Write, Byte: b, Ack: ack})
		switch {
		case !ack:
			p.raw[rSR1] |= sr1AF
		case !p.Faults.StallTX:
			p.raw[rSR1] |= sr1TXE | sr1BTF
		}
	default:
		p.data = append(p.data, b)
	}
}

func (p *Peripheral) addressPhase(b byte) {
	p.raw[rSR1] &^= sr1SB
	read := mmio.Of[uint8](wireDir, uint32(b)) == 1
	s := p.find(mmio.Of[uint8](wireAddr, uint32(b)))
	switch {
	case p.Faults.NoAddress:
		p.log(Event{Kind: Address, Byte: b})
		p.phase = dead
		return
	case p.Faults.OnAddress != 0:
		p.log(Event{Kind: Address, Byte: b})
		p.raw[rSR1] |= p.Faults.OnAddress
		p.phase = dead
		return
	case s == nil || !s.Begin(read):
		p.log(Event{Kind: Address, Byte: b})
		p.raw[rSR1] |= sr1AF
		p.phase = dead
		return
	}
	p.log(Event{Kind: Address, Byte: b, Ack: true})
	p.cur = s
	p.raw[rSR1] |= sr1ADDR
	if read {
		p.phase = receiving
		p.raw[rSR2] &^= sr2TRA
	} else {
		p.phase = transmitting
		p.raw[rSR2] |= sr2TRA
	}
}

// releaseAddr models the SR1-then-SR2 read sequence that clears ADDR.
func (p *Peripheral) releaseAddr() {
	if p.raw[rSR1]&sr1ADDR == 0 {
		return
	}
	p.raw[rSR1] &^= sr1ADDR
	switch p.phase {
	case transmitting:
		if !p.Faults.StallTX {
			p.raw[rSR1] |= sr1TXE
		}
	case receiving:
		if !p.Faults.StallRX {
			p.raw[rSR1] |= sr1RXNE
		}
	}
}

func (p *Peripheral) readData() byte {
	if p.phase != receiving || p.raw[rSR1]&sr1RXNE == 0 {
		return 0
	}
	b := p.cur.Read()
	ack := p.raw[rCR1]&cr1ACK != 0
	p.log(Event{Kind: Read, Byte: b, Ack: ack})
	p.raw[rSR1] &^= sr1RXNE
	if ack && !p.Faults.StallRX {
		p.raw[rSR1] |= sr1RXNE
	}
	return b
}

// reg is one register of the simulated unit. Read-modify-write helpers work
// on the raw value so they never trigger read side effects.
type reg struct {
	p  *Peripheral
	id int
}

func (r *reg) Get() uint32           { return r.p.load(r.id) }
func (r *reg) Set(v uint32)          { r.p.store(r.id, v) }
func (r *reg) SetBits(v uint32)      { r.p.store(r.id, r.p.raw[r.id]|v) }
func (r *reg) ClearBits(v uint32)    { r.p.store(r.id, r.p.raw[r.id]&^v) }
func (r *reg) HasBits(v uint32) bool { return r.Get()&v != 0 }
func (r *reg) ReplaceBits(v, mask uint32, pos uint8) {
	r.p.store(r.id, mmio.Replace(r.p.raw[r.id], v, mask, pos))
}

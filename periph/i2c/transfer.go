package i2c

import "f411hal/errcode"

const (
	dirWrite = 0
	dirRead  = 1
)

// Address runs the address phase after Start: the 7-bit addr goes out with
// the direction bit, and ADDR is waited for and released. For a read, n is
// the number of bytes the caller will fetch with ReadByte; a single-byte read
// is NACKed from the start. On failure the caller still owns the bus and
// should Stop.
func (b *Bus) Address(addr uint8, read bool, n int) error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	dir := uint32(dirWrite)
	if read {
		dir = dirRead
	}
	return b.address(addr, dir, n)
}

// address sends the 7-bit address with the direction bit and completes the
// address phase. n is the number of bytes a read will fetch: a single-byte
// read must have ACK cleared before ADDR is released.
func (b *Bus) address(addr uint8, dir uint32, n int) error {
	b.regs.DR.Set(uint32(addr&0x7F)<<1 | dir)
	if err := b.wait(sr1ADDR); err != nil {
		return err
	}
	if dir == dirRead {
		b.regs.setAck(n > 1)
	}
	b.regs.clearAddr()
	return nil
}

func (b *Bus) send(p []byte) error {
	for _, c := range p {
		if err := b.writeByte(c); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) receive(p []byte) error {
	last := len(p) - 1
	for i := range p {
		c, err := b.readByte(i != last)
		if err != nil {
			return err
		}
		p[i] = c
	}
	return nil
}

// finish closes a transfer whose START succeeded. A failed transfer still
// gets its STOP unless KeepBusOnAbort is set.
func (b *Bus) finish(err error) error {
	if err == nil || !b.cfg.KeepBusOnAbort {
		b.regs.generateStop()
	}
	return err
}

// WriteBulk writes p to the slave at addr in one transaction:
// START, address+W, p..., STOP. An empty p probes the address.
// The first failing step ends the transfer and its status is returned.
func (b *Bus) WriteBulk(addr uint8, p []byte) error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	if err := b.start(); err != nil {
		return err
	}
	err := b.address(addr, dirWrite, 0)
	if err == nil {
		err = b.send(p)
	}
	return b.finish(err)
}

// ReadBulk fills p from the slave at addr in one transaction:
// START, address+R, len(p)-1 ACKed reads, one NACKed read, STOP.
func (b *Bus) ReadBulk(addr uint8, p []byte) error {
	if !b.enabled {
		return errcode.NotEnabled
	}
	if len(p) == 0 {
		return errcode.InvalidParams
	}
	if err := b.start(); err != nil {
		return err
	}
	err := b.address(addr, dirRead, len(p))
	if err == nil {
		err = b.receive(p)
	}
	return b.finish(err)
}

// WriteRead writes w and then, after a repeated START, reads into r without
// releasing the bus in between. Either buffer may be empty.
func (b *Bus) WriteRead(addr uint8, w, r []byte) error {
	switch {
	case len(r) == 0:
		return b.WriteBulk(addr, w)
	case len(w) == 0:
		return b.ReadBulk(addr, r)
	}
	if !b.enabled {
		return errcode.NotEnabled
	}
	if err := b.start(); err != nil {
		return err
	}
	err := b.address(addr, dirWrite, 0)
	if err == nil {
		err = b.send(w)
	}
	if err == nil {
		err = b.start()
	}
	if err == nil {
		err = b.address(addr, dirRead, len(r))
	}
	if err == nil {
		err = b.receive(r)
	}
	return b.finish(err)
}

// Tx performs a write-then-read transaction with a 7-bit address. It is the
// transfer shape tinygo.org/x/drivers and periph.io device drivers expect.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return errcode.Unsupported
	}
	return b.WriteRead(uint8(addr), w, r)
}

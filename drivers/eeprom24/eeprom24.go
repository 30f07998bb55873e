// Package eeprom24 drives 24Cxx serial EEPROMs (24C02 through 24C16) over any
// tinygo.org/x/drivers I2C bus.
//
// The array is exposed as an io.ReadWriteSeeker. Parts larger than 256 bytes
// answer on consecutive device addresses, one per 256-byte block, and Device
// switches address as the position crosses a block. Writes are split at page
// boundaries; after each page the chip is busy with its internal write cycle
// and Device waits for it, either by sleeping or by ACK polling.
//
//	d := eeprom24.New(bus)
//	d.Configure(eeprom24.Config{Part: eeprom24.C04})
//	d.Seek(0x1F0, io.SeekStart)
//	_, err := d.Write(data)
package eeprom24

import (
	"errors"
	"io"
	"time"

	"tinygo.org/x/drivers"
)

// Address is the base device address with all block bits clear.
const Address = 0x50

// Part describes the geometry of one EEPROM type.
type Part struct {
	Size     int
	PageSize int
}

// Common parts.
var (
	C02 = Part{Size: 256, PageSize: 8}
	C04 = Part{Size: 512, PageSize: 16}
	C08 = Part{Size: 1024, PageSize: 16}
	C16 = Part{Size: 2048, PageSize: 16}
)

const blockSize = 256

// Errors returned by the driver.
var (
	ErrTimeout = errors.New("eeprom24: write cycle did not finish")
	ErrWhence  = errors.New("eeprom24: invalid whence")
	ErrOffset  = errors.New("eeprom24: position outside the array")
	ErrConfig  = errors.New("eeprom24: invalid part geometry")
)

// Config controls the device geometry and write-cycle handling. All fields
// are optional.
type Config struct {
	// Address defaults to 0x50.
	Address uint16
	// Part defaults to C02.
	Part Part
	// WriteCycle is the time the chip needs to commit a page. Default 5 ms.
	WriteCycle time.Duration
	// PollAttempts enables ACK polling: after a page write the chip is probed
	// up to this many times, sleeping PollInterval between probes, instead of
	// sleeping a full WriteCycle.
	PollAttempts int
	// PollInterval defaults to 500 µs.
	PollInterval time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Device is one 24Cxx EEPROM.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	pos int
	buf []byte // word address + one page
}

// New returns a Device for a 24C02 at the base address. The bus must already
// be configured; New does not touch the chip.
func New(bus drivers.I2C) Device {
	d := Device{bus: bus, Address: Address}
	d.Configure()
	return d
}

// Configure applies optional config and resets the position to 0.
func (d *Device) Configure(cfgs ...Config) error {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address == 0 {
		c.Address = d.Address
	}
	if c.Part == (Part{}) {
		c.Part = C02
	}
	if !c.Part.valid() {
		return ErrConfig
	}
	if c.WriteCycle <= 0 {
		c.WriteCycle = 5 * time.Millisecond
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Microsecond
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	d.Address = c.Address
	d.cfg = c
	d.pos = 0
	d.buf = make([]byte, 1+c.Part.PageSize)
	return nil
}

// valid reports whether p fits the 24Cxx addressing scheme: a power-of-two
// page no larger than a block, and at most eight blocks.
func (p Part) valid() bool {
	return p.PageSize > 0 && p.PageSize <= blockSize && p.PageSize&(p.PageSize-1) == 0 &&
		p.Size > 0 && p.Size <= 8*blockSize && p.Size%p.PageSize == 0
}

// Size returns the array size in bytes.
func (d *Device) Size() int { return d.cfg.Part.Size }

// locate returns the device address and word address of pos.
func (d *Device) locate(pos int) (uint16, byte) {
	return d.Address + uint16(pos/blockSize), byte(pos % blockSize)
}

// Read reads from the current position. It never crosses a block boundary in
// one transfer and returns io.EOF at the end of the array.
func (d *Device) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if d.pos >= d.Size() {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && d.pos < d.Size() {
		addr, word := d.locate(d.pos)
		chunk := min(len(p)-n, blockSize-int(word), d.Size()-d.pos)
		d.buf[0] = word
		if err := d.bus.Tx(addr, d.buf[:1], p[n:n+chunk]); err != nil {
			return n, err
		}
		n += chunk
		d.pos += chunk
	}
	return n, nil
}

// Write writes p at the current position, one page at a time, and waits for
// each page's write cycle. Writing past the end of the array stops there and
// returns io.EOF.
func (d *Device) Write(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if d.pos >= d.Size() {
			return n, io.EOF
		}
		addr, word := d.locate(d.pos)
		page := d.cfg.Part.PageSize
		chunk := min(len(p)-n, page-d.pos%page)
		d.buf[0] = word
		copy(d.buf[1:], p[n:n+chunk])
		if err := d.bus.Tx(addr, d.buf[:1+chunk], nil); err != nil {
			return n, err
		}
		n += chunk
		d.pos += chunk
		if err := d.waitWrite(addr); err != nil {
			return n, err
		}
	}
	return n, nil
}

// waitWrite blocks until the chip finished committing a page. While busy, the
// chip does not acknowledge its address.
func (d *Device) waitWrite(addr uint16) error {
	if d.cfg.PollAttempts <= 0 {
		d.cfg.Sleep(d.cfg.WriteCycle)
		return nil
	}
	for i := 0; i < d.cfg.PollAttempts; i++ {
		if d.bus.Tx(addr, nil, nil) == nil {
			return nil
		}
		d.cfg.Sleep(d.cfg.PollInterval)
	}
	return ErrTimeout
}

// Seek sets the position for the next Read or Write. Positions beyond the end
// of the array are rejected; the end itself is allowed.
func (d *Device) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(d.pos)
	case io.SeekEnd:
		base = int64(d.Size())
	default:
		return int64(d.pos), ErrWhence
	}
	next := base + offset
	if next < 0 || next > int64(d.Size()) {
		return int64(d.pos), ErrOffset
	}
	d.pos = int(next)
	return next, nil
}

var _ io.ReadWriteSeeker = (*Device)(nil)

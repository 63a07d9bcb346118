// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/relabs-tech/devices/common"
)

// Mode is the power/operating mode stored in bits 7-5 of CTRL_REG1. The low
// power modes fix the output data rate; in normal mode the rate is taken from
// the DataRate field instead.
type Mode byte

// DataRate is the output data rate used in normal mode, stored in bits 4-3
// of CTRL_REG1.
type DataRate byte

// Range is the full-scale range stored in bit 4 of CTRL_REG4. The 7-bit
// signed sample range is scaled to ±100g or ±200g.
type Range byte

// Axis selects one of the three measurement axes.
type Axis int

const (
	// DefaultAddress is the I²C address with the SA0 pad pulled high. With
	// SA0 low the device answers at 0x18.
	DefaultAddress uint16 = 0x19

	chipID byte = 0x32

	ModePowerDown         Mode = 0b000
	ModeNormal            Mode = 0b001
	ModeLowPowerHalfHertz Mode = 0b010
	ModeLowPowerOneHertz  Mode = 0b011
	ModeLowPowerTwoHertz  Mode = 0b100
	ModeLowPowerFiveHertz Mode = 0b101
	ModeLowPowerTenHertz  Mode = 0b110

	Rate50Hertz   DataRate = 0b00
	Rate100Hertz  DataRate = 0b01
	Rate400Hertz  DataRate = 0b10
	Rate1000Hertz DataRate = 0b11

	Range100G Range = 0b0
	Range200G Range = 0b1

	// Register addresses. The chip has more registers (interrupts, filters,
	// status) than are modeled here.
	regWhoAmI byte = 0x0F
	regCtrl1  byte = 0x20
	regCtrl4  byte = 0x23
	regOutX   byte = 0x29
	regOutY   byte = 0x2B
	regOutZ   byte = 0x2D

	// CTRL_REG1: |PM2|PM1|PM0|DR1|DR0|Zen|Yen|Xen|
	modeMask  byte = 0b111
	modeShift uint = 5
	rateMask  byte = 0b11
	rateShift uint = 3

	// CTRL_REG4: bit 4 selects the full-scale range.
	fsMask  byte = 0b1
	fsShift uint = 4

	// Samples are left justified with bit 6 as the sign, so the usable
	// resolution is 7 bits and a full-range count is 128.
	sampleBits  uint    = 7
	sampleRange float64 = 128
)

// The axis value doubles as the position of its enable bit in CTRL_REG1.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (m Mode) valid() bool {
	return m <= ModeLowPowerTenHertz
}

func (m Mode) String() string {
	switch m {
	case ModePowerDown:
		return "power-down"
	case ModeNormal:
		return "normal"
	case ModeLowPowerHalfHertz:
		return "low-power 0.5Hz"
	case ModeLowPowerOneHertz:
		return "low-power 1Hz"
	case ModeLowPowerTwoHertz:
		return "low-power 2Hz"
	case ModeLowPowerFiveHertz:
		return "low-power 5Hz"
	case ModeLowPowerTenHertz:
		return "low-power 10Hz"
	}
	return fmt.Sprintf("invalid mode %#02x", byte(m))
}

func (r DataRate) valid() bool {
	return r <= Rate1000Hertz
}

// Frequency returns the output data rate as a physic.Frequency. The rate only
// applies in normal mode; the low power modes carry their own fixed rate.
func (r DataRate) Frequency() physic.Frequency {
	switch r {
	case Rate50Hertz:
		return 50 * physic.Hertz
	case Rate100Hertz:
		return 100 * physic.Hertz
	case Rate400Hertz:
		return 400 * physic.Hertz
	case Rate1000Hertz:
		return physic.KiloHertz
	}
	return 0
}

func (r DataRate) String() string {
	return r.Frequency().String()
}

func (r Range) valid() bool {
	return r <= Range200G
}

// fullScale returns the acceleration in g that a full 7-bit count maps to.
func (r Range) fullScale() float64 {
	if r == Range200G {
		return 200
	}
	return 100
}

func (r Range) String() string {
	return fmt.Sprintf("±%.0fg", r.fullScale())
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// shift returns the position of the axis enable bit in CTRL_REG1.
func (a Axis) shift() uint {
	return uint(a)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("invalid axis %d", int(a))
}

// Acceleration is one sample for the three axes, in g.
type Acceleration struct {
	X float64
	Y float64
	Z float64
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%+.3fg Y:%+.3fg Z:%+.3fg", a.X, a.Y, a.Z)
}

// Opts holds the configuration options applied when the device is opened.
type Opts struct {
	// Addr is the I²C address. Leave 0 to use DefaultAddress.
	Addr uint16
	// Mode is the operating mode to enter on startup.
	Mode Mode
	// Rate is the output data rate used while in normal mode.
	Rate DataRate
}

// DefaultOpts wakes the device into normal mode at the slowest data rate.
var DefaultOpts = Opts{Addr: DefaultAddress, Mode: ModeNormal, Rate: Rate50Hertz}

// Dev represents an H3LIS200DL accelerometer.
type Dev struct {
	d  *i2c.Dev
	mu sync.Mutex
	// scale mirrors the full-scale bit of CTRL_REG4. Readings are scaled
	// from the mirror so a sample costs three bus reads, not four.
	scale Range
}

// NewI2C returns a driver for the H3LIS200DL on the given bus. The device
// identity is verified before anything is written; a mismatch returns a
// *DeviceNotFoundError and leaves the device untouched. On success the
// requested mode and data rate are applied in a single read-modify-write of
// CTRL_REG1, preserving the axis-enable bits (all enabled after reset).
// Opts can be nil, in which case DefaultOpts is used.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddress
	}
	if !opts.Mode.valid() {
		return nil, &InvalidValueError{Setting: "operation mode", Value: byte(opts.Mode)}
	}
	if !opts.Rate.valid() {
		return nil, &InvalidValueError{Setting: "data rate", Value: byte(opts.Rate)}
	}

	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}
	id, err := d.readRegister(regWhoAmI)
	if err != nil {
		return nil, err
	}
	if id != chipID {
		return nil, &DeviceNotFoundError{Addr: addr, ID: id}
	}

	ctrl, err := d.readRegister(regCtrl1)
	if err != nil {
		return nil, err
	}
	ctrl = common.ReplaceBits(ctrl, byte(opts.Mode), modeMask, modeShift)
	ctrl = common.ReplaceBits(ctrl, byte(opts.Rate), rateMask, rateShift)
	if err := d.writeRegister(regCtrl1, ctrl); err != nil {
		return nil, err
	}

	// Seed the scale mirror from the range register itself rather than
	// trusting a reset default; the chip keeps its configuration across a
	// host restart.
	ctrl4, err := d.readRegister(regCtrl4)
	if err != nil {
		return nil, err
	}
	d.scale = Range(common.ExtractBits(ctrl4, fsMask, fsShift))
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("H3LIS200DL{%s}", d.d)
}

// Mode returns the operating mode currently programmed in CTRL_REG1.
func (d *Dev) Mode() (Mode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ctrl, err := d.readRegister(regCtrl1)
	if err != nil {
		return ModePowerDown, err
	}
	return Mode(common.ExtractBits(ctrl, modeMask, modeShift)), nil
}

// SetMode changes the operating mode. The undefined code 0b111 and anything
// wider is rejected before the bus is touched.
func (d *Dev) SetMode(m Mode) error {
	if !m.valid() {
		return &InvalidValueError{Setting: "operation mode", Value: byte(m)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(regCtrl1, byte(m), modeMask, modeShift)
}

// DataRate returns the normal-mode output data rate from CTRL_REG1.
func (d *Dev) DataRate() (DataRate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ctrl, err := d.readRegister(regCtrl1)
	if err != nil {
		return Rate50Hertz, err
	}
	return DataRate(common.ExtractBits(ctrl, rateMask, rateShift)), nil
}

// SetDataRate changes the normal-mode output data rate.
func (d *Dev) SetDataRate(r DataRate) error {
	if !r.valid() {
		return &InvalidValueError{Setting: "data rate", Value: byte(r)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(regCtrl1, byte(r), rateMask, rateShift)
}

// Range returns the full-scale range currently programmed in CTRL_REG4.
func (d *Dev) Range() (Range, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ctrl, err := d.readRegister(regCtrl4)
	if err != nil {
		return Range100G, err
	}
	return Range(common.ExtractBits(ctrl, fsMask, fsShift)), nil
}

// SetRange changes the full-scale range and the mirror used to scale
// readings. Both change under the same lock, so a concurrent Acceleration
// call can never scale a sample with a range the hardware no longer uses.
// The mirror is only updated once the register write succeeded.
func (d *Dev) SetRange(r Range) error {
	if !r.valid() {
		return &InvalidValueError{Setting: "full scale range", Value: byte(r)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.updateBits(regCtrl4, byte(r), fsMask, fsShift); err != nil {
		return err
	}
	d.scale = r
	return nil
}

// AxisEnabled reports whether the given axis contributes measurements.
func (d *Dev) AxisEnabled(a Axis) (bool, error) {
	if !a.valid() {
		return false, &InvalidValueError{Setting: "axis", Value: byte(a)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ctrl, err := d.readRegister(regCtrl1)
	if err != nil {
		return false, err
	}
	return common.ExtractBits(ctrl, 1, a.shift()) == 1, nil
}

// SetAxisEnabled enables or disables measurement of a single axis. Disabling
// unused axes lowers power consumption; all axes are enabled after reset.
// The other enable bits and the mode/rate fields are preserved.
func (d *Dev) SetAxisEnabled(a Axis, enabled bool) error {
	if !a.valid() {
		return &InvalidValueError{Setting: "axis", Value: byte(a)}
	}
	var bit byte
	if enabled {
		bit = 1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(regCtrl1, bit, 1, a.shift())
}

// Acceleration reads one sample and returns it in g, scaled by the mirrored
// full-scale range. The three axes are read in three independent one-byte
// transactions; the lock keeps a concurrent SetRange out, but the axes are
// still sampled at slightly different times, which can tear a fast-changing
// signal across axes.
func (d *Dev) Acceleration() (Acceleration, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var acc Acceleration
	var err error
	if acc.X, err = d.readAxis(regOutX); err != nil {
		return Acceleration{}, err
	}
	if acc.Y, err = d.readAxis(regOutY); err != nil {
		return Acceleration{}, err
	}
	if acc.Z, err = d.readAxis(regOutZ); err != nil {
		return Acceleration{}, err
	}
	return acc, nil
}

// Halt puts the device in power-down mode. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateBits(regCtrl1, byte(ModePowerDown), modeMask, modeShift)
}

// readAxis reads one output register and converts the left-justified
// two's-complement count to g. Callers must hold d.mu.
func (d *Dev) readAxis(reg byte) (float64, error) {
	raw, err := d.readRegister(reg)
	if err != nil {
		return 0, err
	}
	return float64(common.SignExtend(raw, sampleBits)) * d.scale.fullScale() / sampleRange, nil
}

// updateBits read-modify-writes one field of a control register, leaving the
// sibling bits untouched. Callers must hold d.mu.
func (d *Dev) updateBits(reg, value, mask byte, shift uint) error {
	cur, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	return d.writeRegister(reg, common.ReplaceBits(cur, value, mask, shift))
}

func (d *Dev) readRegister(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (d *Dev) writeRegister(reg, value byte) error {
	return d.d.Tx([]byte{reg, value}, nil)
}

var _ conn.Resource = &Dev{}

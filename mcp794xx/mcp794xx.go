// Package mcp794xx implements a driver for the MCP794xx family of I2C
// Real-Time Clock/Calendar chips: timekeeping, two alarms, power-fail
// timestamps, digital trimming, square wave output, battery-backed SRAM
// and, on the MCP794x0/1/2 variants, EEPROM with a factory unique ID.
//
// The family members differ only in which blocks they carry, so the
// driver is a single Device parameterized by a Model describing the
// features of the part on the bus. Calling an operation the part does
// not support fails with ErrUnsupported before any bus traffic.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/20005010F.pdf
package mcp794xx

import (
	"tinygo.org/x/drivers"
)

// Feature is a set of optional chip capabilities.
type Feature uint8

const (
	FeatureBatteryBackup Feature = 1 << iota
	FeaturePowerFail
	FeatureSRAM
	FeatureEEPROM
	FeatureUniqueID
	FeatureSecondAlarm
)

// Model describes one member of the family. Use one of the package
// variables below; a custom Model is only useful for testing.
type Model struct {
	Name     string
	Features Feature
	// UniqueIDLen is the factory ID size in bytes: 6 for EUI-48 parts,
	// 8 for EUI-64 parts, 0 when there is none.
	UniqueIDLen uint8
}

var (
	MCP7940N = Model{Name: "MCP7940N", Features: featBase}
	MCP7940M = Model{Name: "MCP7940M", Features: FeatureSRAM | FeatureSecondAlarm}
	MCP79400 = Model{Name: "MCP79400", Features: featBase | FeatureEEPROM}
	MCP79401 = Model{Name: "MCP79401", Features: featBase | FeatureEEPROM | FeatureUniqueID, UniqueIDLen: 6}
	MCP79402 = Model{Name: "MCP79402", Features: featBase | FeatureEEPROM | FeatureUniqueID, UniqueIDLen: 8}
	MCP79410 = Model{Name: "MCP79410", Features: featBase | FeatureEEPROM}
	MCP79411 = Model{Name: "MCP79411", Features: featBase | FeatureEEPROM | FeatureUniqueID, UniqueIDLen: 6}
	MCP79412 = Model{Name: "MCP79412", Features: featBase | FeatureEEPROM | FeatureUniqueID, UniqueIDLen: 8}
)

const featBase = FeatureBatteryBackup | FeaturePowerFail | FeatureSRAM | FeatureSecondAlarm

// Device wraps an I2C connection to an MCP794xx chip.
type Device struct {
	bus           drivers.I2C
	Address       uint8
	EEPROMAddress uint8
	model         Model
}

// New creates a new driver instance for the given model on a
// preconfigured I2C bus. The chips support up to 400 kHz.
//
// This function only creates the Device object, it does not touch the
// device.
func New(bus drivers.I2C, model Model) Device {
	return Device{
		bus:           bus,
		Address:       Address,
		EEPROMAddress: EEPROMAddress,
		model:         model,
	}
}

// Model returns the model descriptor the device was created with.
func (d *Device) Model() Model {
	return d.model
}

// require rejects operations the model cannot honor, before any bus
// traffic happens.
func (d *Device) require(f Feature) error {
	if d.model.Features&f != f {
		return ErrUnsupported
	}
	return nil
}

// readRegister fetches a single register byte.
func (d *Device) readRegister(reg uint8) (uint8, error) {
	var buf [1]byte
	err := d.bus.ReadRegister(d.Address, reg, buf[:])
	return buf[0], err
}

// writeRegister stores a single register byte.
func (d *Device) writeRegister(reg, value uint8) error {
	return d.bus.WriteRegister(d.Address, reg, []byte{value})
}

// updateRegister read-modify-writes the masked bits of a register
// without disturbing the rest of the byte.
func (d *Device) updateRegister(reg, mask uint8, on bool) error {
	v, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	return d.writeRegister(reg, setBit(v, mask, on))
}

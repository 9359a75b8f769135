package mcp794xx

import "errors"

// Errors reported by the driver itself. Bus errors from the underlying
// I2C implementation are returned unchanged.
var (
	// ErrInvalidValue means a caller-supplied field is outside the range
	// the chip can represent. Nothing is written when this is returned.
	ErrInvalidValue = errors.New("mcp794xx: value out of range")
	// ErrOscillatorStopped means the time was requested while the
	// oscillator is not running, so the counters are not advancing.
	ErrOscillatorStopped = errors.New("mcp794xx: oscillator not running")
	// ErrUnsupported means the selected model does not have the feature.
	ErrUnsupported = errors.New("mcp794xx: feature not supported by this model")
	// ErrOutOfRange means a memory offset or length falls outside the
	// SRAM or EEPROM region.
	ErrOutOfRange = errors.New("mcp794xx: address out of range")
	// ErrWriteProtected means the EEPROM block protection covers the
	// target bytes. Clear the protection first with SetEEPROMProtection.
	ErrWriteProtected = errors.New("mcp794xx: EEPROM block is write protected")
)

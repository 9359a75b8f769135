package mcp794xx

// EEPROMProtection selects which EEPROM rows the chip refuses to write.
type EEPROMProtection uint8

const (
	ProtectNone         EEPROMProtection = 0x0
	ProtectUpperQuarter EEPROMProtection = 0x1 // 0x60-0x7F
	ProtectUpperHalf    EEPROMProtection = 0x2 // 0x40-0x7F
	ProtectAll          EEPROMProtection = 0x3
)

// protectedFrom returns the first protected EEPROM offset, or eepromSize
// when nothing is protected.
func (p EEPROMProtection) protectedFrom() int {
	switch p {
	case ProtectUpperQuarter:
		return eepromSize - eepromSize/4
	case ProtectUpperHalf:
		return eepromSize / 2
	case ProtectAll:
		return 0
	default:
		return eepromSize
	}
}

// ReadSRAM reads len(buf) bytes of battery-backed SRAM starting at
// offset. The SRAM is 64 bytes; reads beyond it fail with ErrOutOfRange
// rather than wrapping.
func (d *Device) ReadSRAM(offset uint8, buf []byte) error {
	if err := d.require(FeatureSRAM); err != nil {
		return err
	}
	if int(offset)+len(buf) > sramSize {
		return ErrOutOfRange
	}
	return d.bus.ReadRegister(d.Address, regSRAM+offset, buf)
}

// WriteSRAM writes data to battery-backed SRAM starting at offset, in a
// single bus transaction.
func (d *Device) WriteSRAM(offset uint8, data []byte) error {
	if err := d.require(FeatureSRAM); err != nil {
		return err
	}
	if int(offset)+len(data) > sramSize {
		return ErrOutOfRange
	}
	return d.bus.WriteRegister(d.Address, regSRAM+offset, data)
}

// ReadEEPROM reads len(buf) bytes of EEPROM starting at offset. The
// array is 128 bytes.
func (d *Device) ReadEEPROM(offset uint8, buf []byte) error {
	if err := d.require(FeatureEEPROM); err != nil {
		return err
	}
	if int(offset)+len(buf) > eepromSize {
		return ErrOutOfRange
	}
	return d.bus.ReadRegister(d.EEPROMAddress, offset, buf)
}

// WriteEEPROM writes data to EEPROM starting at offset. The block
// protection is checked first: if any target byte falls in a protected
// row the write fails with ErrWriteProtected and nothing is written.
func (d *Device) WriteEEPROM(offset uint8, data []byte) error {
	if err := d.require(FeatureEEPROM); err != nil {
		return err
	}
	if int(offset)+len(data) > eepromSize {
		return ErrOutOfRange
	}
	p, err := d.EEPROMProtection()
	if err != nil {
		return err
	}
	if int(offset)+len(data) > p.protectedFrom() {
		return ErrWriteProtected
	}
	return d.bus.WriteRegister(d.EEPROMAddress, offset, data)
}

// EEPROMProtection reads the active block protection setting.
func (d *Device) EEPROMProtection() (EEPROMProtection, error) {
	if err := d.require(FeatureEEPROM); err != nil {
		return ProtectNone, err
	}
	var buf [1]byte
	if err := d.bus.ReadRegister(d.EEPROMAddress, regEEStatus, buf[:]); err != nil {
		return ProtectNone, err
	}
	return EEPROMProtection(buf[0] & maskBlockProtect >> shiftBlockProtect), nil
}

// SetEEPROMProtection configures which EEPROM rows the chip rejects
// writes to.
func (d *Device) SetEEPROMProtection(p EEPROMProtection) error {
	if err := d.require(FeatureEEPROM); err != nil {
		return err
	}
	if p > ProtectAll {
		return ErrInvalidValue
	}
	var buf [1]byte
	if err := d.bus.ReadRegister(d.EEPROMAddress, regEEStatus, buf[:]); err != nil {
		return err
	}
	buf[0] = buf[0]&^uint8(maskBlockProtect) | uint8(p)<<shiftBlockProtect
	return d.bus.WriteRegister(d.EEPROMAddress, regEEStatus, buf[:])
}

// ReadUniqueID returns the factory-programmed unique ID: 6 bytes on
// EUI-48 parts and 8 bytes on EUI-64 parts. The ID lives at the top of
// the unique ID block, so EUI-48 parts are read from its tail.
func (d *Device) ReadUniqueID() ([]byte, error) {
	if err := d.require(FeatureUniqueID); err != nil {
		return nil, err
	}
	n := d.model.UniqueIDLen
	id := make([]byte, n)
	err := d.bus.ReadRegister(d.EEPROMAddress, regEUI+(8-n), id)
	if err != nil {
		return nil, err
	}
	return id, nil
}

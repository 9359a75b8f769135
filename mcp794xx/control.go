package mcp794xx

// SquareWaveRate selects the frequency driven on the output pin while
// the square wave is enabled.
type SquareWaveRate uint8

const (
	SquareWave1Hz     SquareWaveRate = 0x0
	SquareWave4096Hz  SquareWaveRate = 0x1
	SquareWave8192Hz  SquareWaveRate = 0x2
	SquareWave32768Hz SquareWaveRate = 0x3
)

// TrimRange is the magnitude limit of the digital trim value.
const TrimRange = 127

// EnableOscillator sets the start bit so the clock begins counting.
// The oscillator needs time to lock; poll OscillatorRunning for a
// confirmed-running guarantee.
func (d *Device) EnableOscillator() error {
	return d.updateRegister(regSeconds, bitStart, true)
}

// DisableOscillator clears the start bit, freezing the counters. This
// is the power-on default.
func (d *Device) DisableOscillator() error {
	return d.updateRegister(regSeconds, bitStart, false)
}

// OscillatorRunning reports the hardware confirmation that the
// oscillator is locked and the counters are advancing. It may lag the
// start command briefly.
func (d *Device) OscillatorRunning() (bool, error) {
	v, err := d.readRegister(regWeekday)
	if err != nil {
		return false, err
	}
	return v&bitOscRun != 0, nil
}

// SetBatteryBackup enables or disables switching to the backup supply
// when main power is lost.
func (d *Device) SetBatteryBackup(enable bool) error {
	if err := d.require(FeatureBatteryBackup); err != nil {
		return err
	}
	return d.updateRegister(regWeekday, bitVBatEn, enable)
}

// BatteryBackupEnabled reads back the battery backup enable bit.
func (d *Device) BatteryBackupEnabled() (bool, error) {
	if err := d.require(FeatureBatteryBackup); err != nil {
		return false, err
	}
	v, err := d.readRegister(regWeekday)
	if err != nil {
		return false, err
	}
	return v&bitVBatEn != 0, nil
}

// SetTrim sets the digital trim to value clock cycles added (positive)
// or subtracted (negative) per trim window, compensating crystal drift.
// The range is -127 to 127; zero disables trimming.
func (d *Device) SetTrim(value int) error {
	if value < -TrimRange || value > TrimRange {
		return ErrInvalidValue
	}
	var b uint8
	if value < 0 {
		b = uint8(-value)
	} else if value > 0 {
		b = uint8(value) | bitTrimSign
	}
	return d.writeRegister(regOscTrim, b)
}

// Trim reads back the configured digital trim value.
func (d *Device) Trim() (int, error) {
	v, err := d.readRegister(regOscTrim)
	if err != nil {
		return 0, err
	}
	mag := int(v &^ uint8(bitTrimSign))
	if v&bitTrimSign != 0 {
		return mag, nil
	}
	return -mag, nil
}

// EnableCoarseTrim makes the trim value apply every second instead of
// every minute, for crystals far off nominal. The trim signal is also
// visible on the output pin while square wave output is enabled.
func (d *Device) EnableCoarseTrim() error {
	return d.updateRegister(regControl, bitCrsTrim, true)
}

// DisableCoarseTrim returns trimming to the fine, once-per-minute mode.
func (d *Device) DisableCoarseTrim() error {
	return d.updateRegister(regControl, bitCrsTrim, false)
}

// EnableSquareWave drives the selected frequency on the output pin.
func (d *Device) EnableSquareWave(rate SquareWaveRate) error {
	if rate > SquareWave32768Hz {
		return ErrInvalidValue
	}
	v, err := d.readRegister(regControl)
	if err != nil {
		return err
	}
	v = v&^uint8(maskSQWFS) | uint8(rate) | bitSQWEn
	return d.writeRegister(regControl, v)
}

// DisableSquareWave stops the square wave; the output pin falls back to
// alarm signaling or the static level set with SetOutput.
func (d *Device) DisableSquareWave() error {
	return d.updateRegister(regControl, bitSQWEn, false)
}

// SetOutput drives the output pin to a static level. It only takes
// effect while the square wave and both alarms are disabled.
func (d *Device) SetOutput(high bool) error {
	return d.updateRegister(regControl, bitOut, high)
}

// EnableExternalOscillator bypasses the crystal driver and clocks the
// chip from a signal on the X1 pin.
func (d *Device) EnableExternalOscillator() error {
	return d.updateRegister(regControl, bitExtOsc, true)
}

// DisableExternalOscillator returns the chip to the crystal input.
func (d *Device) DisableExternalOscillator() error {
	return d.updateRegister(regControl, bitExtOsc, false)
}

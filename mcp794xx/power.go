package mcp794xx

// PowerFailTime is a reduced-resolution timestamp captured by the chip
// at a power transition. The hardware records minute through month only;
// seconds and year are never captured.
type PowerFailTime struct {
	Minute  int
	Hour    int
	Weekday int
	Day     int
	Month   int
	Mode    HourMode
	PM      bool
}

// PowerFailEvent is one captured power-down/power-up cycle. Down and Up
// are only meaningful while Valid is set.
type PowerFailEvent struct {
	Down  PowerFailTime
	Up    PowerFailTime
	Valid bool
}

// PowerFailed reports whether a power-fail event has been captured since
// the last ClearPowerFail.
func (d *Device) PowerFailed() (bool, error) {
	if err := d.require(FeaturePowerFail); err != nil {
		return false, err
	}
	v, err := d.readRegister(regWeekday)
	if err != nil {
		return false, err
	}
	return v&bitPowerFail != 0, nil
}

// ReadPowerFail returns the captured power-down and power-up timestamps
// without clearing them, so a caller can log the event before
// acknowledging it with ClearPowerFail.
func (d *Device) ReadPowerFail() (PowerFailEvent, error) {
	valid, err := d.PowerFailed()
	if err != nil {
		return PowerFailEvent{}, err
	}

	var buf [8]byte
	if err := d.bus.ReadRegister(d.Address, regPowerDn, buf[:]); err != nil {
		return PowerFailEvent{}, err
	}
	return PowerFailEvent{
		Down:  decodePowerFailTime(buf[0:4]),
		Up:    decodePowerFailTime(buf[4:8]),
		Valid: valid,
	}, nil
}

// ClearPowerFail acknowledges a captured event and re-arms the capture
// hardware. The valid flag is sticky: until it is cleared the chip will
// not record a new event.
func (d *Device) ClearPowerFail() error {
	if err := d.require(FeaturePowerFail); err != nil {
		return err
	}
	return d.updateRegister(regWeekday, bitPowerFail, false)
}

// decodePowerFailTime unpacks one 4-byte timestamp block. The month
// register multiplexes the weekday in its top three bits.
func decodePowerFailTime(buf []byte) PowerFailTime {
	mode, hour, pm := decodeHours(buf[1])
	return PowerFailTime{
		Minute:  decodeBCD(buf[0]),
		Hour:    hour,
		Mode:    mode,
		PM:      pm,
		Day:     decodeBCD(buf[2]),
		Weekday: int(buf[3] >> 5),
		Month:   decodeBCD(buf[3] & 0x1F),
	}
}

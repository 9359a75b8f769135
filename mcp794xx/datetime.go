package mcp794xx

// DateTime is one full reading of the clock and calendar counters.
//
// Hour is 0-23 when Mode is Mode24h and 1-12 with PM when Mode is
// Mode12h. Weekday is a 1-7 tag with caller-defined numbering; the chip
// only increments it at midnight and never derives it from the date, so
// the driver does not cross-check it either.
type DateTime struct {
	Year    int // 2000-2099
	Month   int // 1-12
	Day     int // 1-31, bounded by month and leap year
	Weekday int // 1-7
	Hour    int
	Minute  int // 0-59
	Second  int // 0-59
	Mode    HourMode
	PM      bool
}

// daysInMonth returns the day count of a month in the 2000-2099 window,
// where the divisible-by-100 leap year exception never applies.
func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func (dt DateTime) validate() error {
	if dt.Year < 2000 || dt.Year > 2099 {
		return ErrInvalidValue
	}
	if dt.Month < 1 || dt.Month > 12 {
		return ErrInvalidValue
	}
	if dt.Day < 1 || dt.Day > daysInMonth(dt.Month, dt.Year) {
		return ErrInvalidValue
	}
	if dt.Weekday < 1 || dt.Weekday > 7 {
		return ErrInvalidValue
	}
	if dt.Minute < 0 || dt.Minute > 59 || dt.Second < 0 || dt.Second > 59 {
		return ErrInvalidValue
	}
	_, err := encodeHours(dt.Mode, dt.Hour, dt.PM)
	return err
}

// ReadTime reads the full date and time in a single bus transaction, so
// a rollover between bytes can never produce a torn reading. It fails
// with ErrOscillatorStopped when the oscillator-running flag is clear,
// since the counters would be frozen; use ReadTimeRaw to read anyway.
func (d *Device) ReadTime() (DateTime, error) {
	dt, wkday, err := d.readTime()
	if err != nil {
		return DateTime{}, err
	}
	if wkday&bitOscRun == 0 {
		return DateTime{}, ErrOscillatorStopped
	}
	return dt, nil
}

// ReadTimeRaw reads the date and time without the oscillator guard.
func (d *Device) ReadTimeRaw() (DateTime, error) {
	dt, _, err := d.readTime()
	return dt, err
}

func (d *Device) readTime() (DateTime, uint8, error) {
	var buf [7]byte
	if err := d.bus.ReadRegister(d.Address, regSeconds, buf[:]); err != nil {
		return DateTime{}, 0, err
	}

	mode, hour, pm := decodeHours(buf[regHours])
	dt := DateTime{
		Second:  decodeBCD(buf[regSeconds] &^ uint8(bitStart)),
		Minute:  decodeBCD(buf[regMinutes]),
		Hour:    hour,
		Mode:    mode,
		PM:      pm,
		Weekday: int(buf[regWeekday] & maskWeekday),
		Day:     decodeBCD(buf[regDate]),
		Month:   decodeBCD(buf[regMonth] & 0x1F),
		Year:    2000 + decodeBCD(buf[regYear]),
	}
	return dt, buf[regWeekday], nil
}

// SetTime validates dt and writes all seven counters in a single bus
// transaction. A validation failure leaves the chip untouched.
//
// The oscillator start bit lives in the seconds register and the
// battery backup enable in the weekday register; both are read first
// and carried over unchanged, so setting the time never silently stops
// the clock or drops battery backup. Use EnableOscillator and
// SetBatteryBackup to change them.
func (d *Device) SetTime(dt DateTime) error {
	if err := dt.validate(); err != nil {
		return err
	}

	var buf [7]byte
	if err := d.bus.ReadRegister(d.Address, regSeconds, buf[:]); err != nil {
		return err
	}

	sec, _ := encodeBCD(dt.Second)
	min, _ := encodeBCD(dt.Minute)
	hour, _ := encodeHours(dt.Mode, dt.Hour, dt.PM)
	day, _ := encodeBCD(dt.Day)
	month, _ := encodeBCD(dt.Month)
	year, _ := encodeBCD(dt.Year - 2000)

	buf[regSeconds] = buf[regSeconds]&bitStart | sec
	buf[regMinutes] = min
	buf[regHours] = hour
	buf[regWeekday] = buf[regWeekday]&^uint8(maskWeekday) | uint8(dt.Weekday)
	buf[regDate] = day
	buf[regMonth] = month
	buf[regYear] = year

	return d.bus.WriteRegister(d.Address, regSeconds, buf[:])
}

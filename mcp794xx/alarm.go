package mcp794xx

// AlarmMatch selects which fields of an alarm the chip compares against
// the running clock.
type AlarmMatch uint8

const (
	MatchSeconds AlarmMatch = 0 // seconds equal
	MatchMinutes AlarmMatch = 1 // minutes equal
	MatchHours   AlarmMatch = 2 // hours equal
	MatchWeekday AlarmMatch = 3 // weekday equal
	MatchDate    AlarmMatch = 4 // day of month equal
	MatchAll     AlarmMatch = 7 // seconds through month all equal
)

// Alarm configures one of the two alarms. Every field is written to the
// chip regardless of Match, so reconfiguring with a different match
// type behaves deterministically, but only the fields Match selects are
// compared. Hour follows the same Mode/PM convention as DateTime and
// should use the mode the clock itself runs in, since the chip compares
// the hour register bytes directly.
type Alarm struct {
	Match        AlarmMatch
	Second       int // 0-59
	Minute       int // 0-59
	Hour         int
	Weekday      int // 1-7
	Day          int // 1-31
	Month        int // 1-12
	Mode         HourMode
	PM           bool
	PolarityHigh bool // output level driven while matched
}

func alarmBase(alarm int) uint8 {
	if alarm == 0 {
		return regAlarm0
	}
	return regAlarm1
}

func alarmEnableBit(alarm int) uint8 {
	if alarm == 0 {
		return bitAlarm0En
	}
	return bitAlarm1En
}

// checkAlarm gates the alarm index on the model capabilities.
func (d *Device) checkAlarm(alarm int) error {
	switch alarm {
	case 0:
		return nil
	case 1:
		return d.require(FeatureSecondAlarm)
	default:
		return ErrInvalidValue
	}
}

// SetAlarm validates and writes the full configuration of one alarm in
// a single bus transaction, clears its match flag, and enables it. The
// alarm then fires (sets its sticky match flag and drives the output to
// PolarityHigh) whenever the fields selected by Match equal the running
// clock.
func (d *Device) SetAlarm(alarm int, a Alarm) error {
	if err := d.checkAlarm(alarm); err != nil {
		return err
	}
	switch a.Match {
	case MatchSeconds, MatchMinutes, MatchHours, MatchWeekday, MatchDate, MatchAll:
	default:
		return ErrInvalidValue
	}
	if a.Second < 0 || a.Second > 59 || a.Minute < 0 || a.Minute > 59 {
		return ErrInvalidValue
	}
	if a.Weekday < 1 || a.Weekday > 7 {
		return ErrInvalidValue
	}
	if a.Day < 1 || a.Day > 31 || a.Month < 1 || a.Month > 12 {
		return ErrInvalidValue
	}
	hour, err := encodeHours(a.Mode, a.Hour, a.PM)
	if err != nil {
		return err
	}

	sec, _ := encodeBCD(a.Second)
	min, _ := encodeBCD(a.Minute)
	day, _ := encodeBCD(a.Day)
	month, _ := encodeBCD(a.Month)

	wkday := uint8(a.Weekday) | uint8(a.Match)<<shiftAlarmCfg
	if a.PolarityHigh {
		wkday |= bitAlarmPol
	}

	buf := [6]byte{sec, min, hour, wkday, day, month}
	if err := d.bus.WriteRegister(d.Address, alarmBase(alarm), buf[:]); err != nil {
		return err
	}
	return d.EnableAlarm(alarm)
}

// EnableAlarm turns an alarm on without altering its configured target.
func (d *Device) EnableAlarm(alarm int) error {
	if err := d.checkAlarm(alarm); err != nil {
		return err
	}
	return d.updateRegister(regControl, alarmEnableBit(alarm), true)
}

// DisableAlarm turns an alarm off, leaving its target configured.
func (d *Device) DisableAlarm(alarm int) error {
	if err := d.checkAlarm(alarm); err != nil {
		return err
	}
	return d.updateRegister(regControl, alarmEnableBit(alarm), false)
}

// AlarmMatched reports whether the alarm has fired since it was last
// cleared. Reading has no side effects; the flag stays set until
// ClearAlarmMatched is called.
func (d *Device) AlarmMatched(alarm int) (bool, error) {
	if err := d.checkAlarm(alarm); err != nil {
		return false, err
	}
	v, err := d.readRegister(alarmBase(alarm) + regWeekday)
	if err != nil {
		return false, err
	}
	return v&bitAlarmIF != 0, nil
}

// ClearAlarmMatched acknowledges a fired alarm. The match flag is
// sticky, so this is the only way to re-arm the alarm for the next
// match.
func (d *Device) ClearAlarmMatched(alarm int) error {
	if err := d.checkAlarm(alarm); err != nil {
		return err
	}
	return d.updateRegister(alarmBase(alarm)+regWeekday, bitAlarmIF, false)
}

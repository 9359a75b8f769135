package mcp794xx

import (
	"tinygo.org/x/drivers"
)

// busSim simulates the chip's two register banks (RTCC/SRAM at Address,
// EEPROM at EEPROMAddress) behind the drivers.I2C interface. It counts
// transactions so tests can assert that an operation produced no bus
// traffic at all.
type busSim struct {
	rtc    [256]uint8
	eeprom [256]uint8
	tx     int
}

var _ drivers.I2C = (*busSim)(nil)

func newTestDevice(model Model) (*Device, *busSim) {
	bus := &busSim{}
	d := New(bus, model)
	return &d, bus
}

func (b *busSim) bank(addr uint8) *[256]uint8 {
	if addr == EEPROMAddress {
		return &b.eeprom
	}
	return &b.rtc
}

func (b *busSim) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	b.tx++
	copy(buf, b.bank(addr)[reg:])
	return nil
}

func (b *busSim) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	b.tx++
	copy(b.bank(addr)[reg:], buf)
	return nil
}

func (b *busSim) Tx(addr uint16, w, r []byte) error {
	b.tx++
	return nil
}

// matchAlarms mimics the chip's alarm comparators: for every enabled
// alarm whose selected fields equal the clock registers, the sticky
// match flag is raised.
func (b *busSim) matchAlarms() {
	for alarm := 0; alarm < 2; alarm++ {
		if b.rtc[regControl]&alarmEnableBit(alarm) == 0 {
			continue
		}
		base := alarmBase(alarm)
		match := AlarmMatch(b.rtc[base+regWeekday] & maskAlarmCfg >> shiftAlarmCfg)

		equal := func(areg, creg, mask uint8) bool {
			return b.rtc[areg]&mask == b.rtc[creg]&mask
		}
		ok := false
		switch match {
		case MatchSeconds:
			ok = equal(base+regSeconds, regSeconds, 0x7F)
		case MatchMinutes:
			ok = equal(base+regMinutes, regMinutes, 0x7F)
		case MatchHours:
			ok = equal(base+regHours, regHours, 0x7F)
		case MatchWeekday:
			ok = equal(base+regWeekday, regWeekday, maskWeekday)
		case MatchDate:
			ok = equal(base+regDate, regDate, 0x3F)
		case MatchAll:
			ok = equal(base+regSeconds, regSeconds, 0x7F) &&
				equal(base+regMinutes, regMinutes, 0x7F) &&
				equal(base+regHours, regHours, 0x7F) &&
				equal(base+regWeekday, regWeekday, maskWeekday) &&
				equal(base+regDate, regDate, 0x3F) &&
				equal(base+regMonth, regMonth, 0x1F)
		}
		if ok {
			b.rtc[base+regWeekday] |= bitAlarmIF
		}
	}
}

// powerCycle mimics the chip losing and regaining main power, capturing
// the reduced-resolution timestamps and raising the sticky fail flag.
// A pending uncleared event blocks a new capture, as on hardware.
func (b *busSim) powerCycle(down, up [4]uint8) {
	if b.rtc[regWeekday]&bitPowerFail != 0 {
		return
	}
	copy(b.rtc[regPowerDn:], down[:])
	copy(b.rtc[regPowerUp:], up[:])
	b.rtc[regWeekday] |= bitPowerFail
}

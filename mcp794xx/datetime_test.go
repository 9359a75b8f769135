package mcp794xx

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func validTime() DateTime {
	return DateTime{
		Year: 2018, Month: 8, Day: 13, Weekday: 2,
		Hour: 23, Minute: 59, Second: 58,
	}
}

func TestDaysInMonth(t *testing.T) {
	c := qt.New(t)
	c.Assert(daysInMonth(1, 2021), qt.Equals, 31)
	c.Assert(daysInMonth(4, 2021), qt.Equals, 30)
	c.Assert(daysInMonth(2, 2000), qt.Equals, 29)
	c.Assert(daysInMonth(2, 2001), qt.Equals, 28)
	c.Assert(daysInMonth(2, 2004), qt.Equals, 29)
	c.Assert(daysInMonth(12, 2099), qt.Equals, 31)
}

func TestSetTimeRoundTrip24h(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice(MCP7940N)
	bus.rtc[regWeekday] = bitOscRun

	want := validTime()
	c.Assert(d.SetTime(want), qt.IsNil)

	got, err := d.ReadTime()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, want)
}

func TestSetTimeRoundTrip12h(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice(MCP7940N)
	bus.rtc[regWeekday] = bitOscRun

	want := validTime()
	want.Mode = Mode12h
	want.Hour = 1
	want.PM = true
	c.Assert(d.SetTime(want), qt.IsNil)

	got, err := d.ReadTime()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, want)
}

func TestSetTimeRejectsBadFieldsWithoutBusTraffic(t *testing.T) {
	c := qt.New(t)
	bad := []DateTime{
		{Year: 1999, Month: 1, Day: 1, Weekday: 1},
		{Year: 2100, Month: 1, Day: 1, Weekday: 1},
		{Year: 2018, Month: 0, Day: 1, Weekday: 1},
		{Year: 2018, Month: 13, Day: 1, Weekday: 1},
		{Year: 2018, Month: 4, Day: 31, Weekday: 1},
		{Year: 2018, Month: 2, Day: 29, Weekday: 1},
		{Year: 2018, Month: 1, Day: 1, Weekday: 0},
		{Year: 2018, Month: 1, Day: 1, Weekday: 8},
		{Year: 2018, Month: 1, Day: 1, Weekday: 1, Hour: 24},
		{Year: 2018, Month: 1, Day: 1, Weekday: 1, Minute: 60},
		{Year: 2018, Month: 1, Day: 1, Weekday: 1, Second: 60},
		{Year: 2018, Month: 1, Day: 1, Weekday: 1, Mode: Mode12h, Hour: 0},
	}
	for _, dt := range bad {
		d, bus := newTestDevice(MCP7940N)
		c.Assert(d.SetTime(dt), qt.Equals, ErrInvalidValue, qt.Commentf("%+v", dt))
		c.Assert(bus.tx, qt.Equals, 0, qt.Commentf("%+v", dt))
	}
}

func TestSetTimeAcceptsLeapDay(t *testing.T) {
	c := qt.New(t)
	d, _ := newTestDevice(MCP7940N)
	dt := DateTime{Year: 2004, Month: 2, Day: 29, Weekday: 1}
	c.Assert(d.SetTime(dt), qt.IsNil)
}

func TestSetTimePreservesOscillatorAndBattery(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice(MCP7940N)
	bus.rtc[regSeconds] = bitStart | 0x42
	bus.rtc[regWeekday] = bitOscRun | bitVBatEn | 0x03

	c.Assert(d.SetTime(validTime()), qt.IsNil)
	c.Assert(bus.rtc[regSeconds]&bitStart, qt.Equals, uint8(bitStart))
	c.Assert(bus.rtc[regWeekday]&bitVBatEn, qt.Equals, uint8(bitVBatEn))
	c.Assert(bus.rtc[regWeekday]&maskWeekday, qt.Equals, uint8(2))

	// and a stopped clock stays stopped
	bus.rtc[regSeconds] = 0x42
	c.Assert(d.SetTime(validTime()), qt.IsNil)
	c.Assert(bus.rtc[regSeconds]&bitStart, qt.Equals, uint8(0))
}

func TestReadTimeRequiresRunningOscillator(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice(MCP7940N)
	c.Assert(d.SetTime(validTime()), qt.IsNil)

	_, err := d.ReadTime()
	c.Assert(err, qt.Equals, ErrOscillatorStopped)

	// the raw escape hatch still decodes the frozen counters
	got, err := d.ReadTimeRaw()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, validTime())

	bus.rtc[regWeekday] |= bitOscRun
	_, err = d.ReadTime()
	c.Assert(err, qt.IsNil)
}

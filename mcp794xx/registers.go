package mcp794xx

const (
	// Address is the I2C address of the RTCC and SRAM block. It is the
	// same for every variant in the family.
	Address = 0x6F
	// EEPROMAddress is the separate I2C address of the EEPROM block on
	// EEPROM-equipped variants.
	EEPROMAddress = 0x57
)

// Timekeeping and configuration registers, at Address.
const (
	regSeconds  = 0x00 // seconds BCD, bit 7 is the oscillator start bit
	regMinutes  = 0x01 // minutes BCD
	regHours    = 0x02 // hours BCD plus 12/24 and AM/PM bits
	regWeekday  = 0x03 // weekday plus OSCRUN, PWRFAIL and VBATEN status
	regDate     = 0x04 // day of month BCD
	regMonth    = 0x05 // month BCD, bit 5 is the read-only leap year flag
	regYear     = 0x06 // two-digit year BCD
	regControl  = 0x07 // output, square wave and alarm enable bits
	regOscTrim  = 0x08 // digital trim, sign-magnitude
	regAlarm0   = 0x0A // start of alarm 0 block (seconds..month)
	regAlarm1   = 0x11 // start of alarm 1 block (seconds..month)
	regPowerDn  = 0x18 // power-down timestamp (minute, hour, date, month)
	regPowerUp  = 0x1C // power-up timestamp (minute, hour, date, month)
	regSRAM     = 0x20 // start of the battery-backed SRAM window
	sramSize    = 64
	eepromSize  = 128
	regEUI      = 0xF0 // unique ID block at EEPROMAddress, 8 bytes
	regEEStatus = 0xFF // EEPROM status register, holds block protect bits
)

// Bit masks.
const (
	bitStart     = 1 << 7 // regSeconds: oscillator start
	bit12h       = 1 << 6 // regHours: 12-hour mode when set
	bitPM        = 1 << 5 // regHours: PM when in 12-hour mode
	bitOscRun    = 1 << 5 // regWeekday: oscillator running (read-only)
	bitPowerFail = 1 << 4 // regWeekday: power fail captured (sticky)
	bitVBatEn    = 1 << 3 // regWeekday: battery backup enable
	maskWeekday  = 0x07   // regWeekday and alarm weekday registers

	bitOut      = 1 << 7 // regControl: static output level
	bitSQWEn    = 1 << 6 // regControl: square wave enable
	bitAlarm1En = 1 << 5 // regControl: alarm 1 enable
	bitAlarm0En = 1 << 4 // regControl: alarm 0 enable
	bitExtOsc   = 1 << 3 // regControl: external oscillator input
	bitCrsTrim  = 1 << 2 // regControl: coarse trim mode
	maskSQWFS   = 0x03   // regControl: square wave frequency select

	bitAlarmPol   = 1 << 7 // alarm weekday register: output polarity
	bitAlarmIF    = 1 << 3 // alarm weekday register: match flag (sticky)
	maskAlarmCfg  = 0x70   // alarm weekday register: match type bits
	shiftAlarmCfg = 4

	bitTrimSign = 1 << 7 // regOscTrim: subtract clock cycles when clear

	maskBlockProtect  = 0x0C // regEEStatus: BP1:BP0
	shiftBlockProtect = 2
)

package mcp794xx

// HourMode selects between the chip's 24-hour and 12-hour clock modes.
// The mode is a property of the hour register, so it travels with every
// DateTime rather than being a per-call option.
type HourMode uint8

const (
	Mode24h HourMode = iota
	Mode12h
)

// encodeBCD packs a 0-99 value into two 4-bit BCD nibbles.
func encodeBCD(value int) (uint8, error) {
	if value < 0 || value > 99 {
		return 0, ErrInvalidValue
	}
	return uint8(((value / 10) << 4) | (value % 10)), nil
}

// decodeBCD is the exact inverse of encodeBCD for all valid inputs.
func decodeBCD(value uint8) int {
	return int(value>>4)*10 + int(value&0x0F)
}

// encodeHours packs an hour into the register layout shared by the clock
// and alarm hour registers. 24-hour mode accepts 0-23 and 12-hour mode
// accepts 1-12 with pm selecting the AM/PM bit.
func encodeHours(mode HourMode, hour int, pm bool) (uint8, error) {
	switch mode {
	case Mode24h:
		if hour < 0 || hour > 23 {
			return 0, ErrInvalidValue
		}
		return encodeBCD(hour)
	case Mode12h:
		if hour < 1 || hour > 12 {
			return 0, ErrInvalidValue
		}
		b, _ := encodeBCD(hour)
		b |= bit12h
		if pm {
			b |= bitPM
		}
		return b, nil
	default:
		return 0, ErrInvalidValue
	}
}

// decodeHours unpacks an hour register byte, reporting which mode the
// byte was encoded in.
func decodeHours(value uint8) (mode HourMode, hour int, pm bool) {
	if value&bit12h == 0 {
		return Mode24h, decodeBCD(value & 0x3F), false
	}
	return Mode12h, decodeBCD(value &^ uint8(bit12h | bitPM)), value&bitPM != 0
}

// setBit returns reg with the masked bits set or cleared, leaving the
// rest of the byte untouched.
func setBit(reg, mask uint8, on bool) uint8 {
	if on {
		return reg | mask
	}
	return reg &^ mask
}

package steadylog

import "time"

// formatterForLayout returns a hand-rolled formatter for the layouts wall
// clocks use most, or nil to fall back to time.Format.
func formatterForLayout(layout string) func(time.Time) string {
	switch layout {
	case time.TimeOnly:
		return formatTimeOnly
	case time.DateTime:
		return formatDateTime
	case time.RFC3339:
		return formatRFC3339
	default:
		return nil
	}
}

func formatTimeOnly(t time.Time) string {
	buf := make([]byte, 0, 8)
	return string(appendClock(buf, t))
}

func formatDateTime(t time.Time) string {
	year, _, _ := t.Date()
	if year < 0 || year > 9999 {
		return t.Format(time.DateTime)
	}
	buf := make([]byte, 0, 19)
	buf = appendDate(buf, t)
	buf = append(buf, ' ')
	return string(appendClock(buf, t))
}

func formatRFC3339(t time.Time) string {
	year, _, _ := t.Date()
	if year < 0 || year > 9999 {
		return t.Format(time.RFC3339)
	}
	_, offset := t.Zone()
	if offset < -(18*3600) || offset > 18*3600 {
		return t.Format(time.RFC3339)
	}
	buf := make([]byte, 0, 25)
	buf = appendDate(buf, t)
	buf = append(buf, 'T')
	buf = appendClock(buf, t)
	if offset == 0 {
		buf = append(buf, 'Z')
		return string(buf)
	}
	if offset < 0 {
		buf = append(buf, '-')
		offset = -offset
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwoDigits(buf, offset/3600)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, (offset%3600)/60)
	return string(buf)
}

func appendDate(buf []byte, t time.Time) []byte {
	year, month, day := t.Date()
	buf = appendTwoDigits(buf, year/100)
	buf = appendTwoDigits(buf, year%100)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, int(month))
	buf = append(buf, '-')
	return appendTwoDigits(buf, day)
}

func appendClock(buf []byte, t time.Time) []byte {
	hour, min, sec := t.Clock()
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	return appendTwoDigits(buf, sec)
}

func appendTwoDigits(buf []byte, value int) []byte {
	return append(buf, byte('0'+value/10), byte('0'+value%10))
}

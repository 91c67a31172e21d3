package cleaning

import (
	"strings"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// FormatPhone reduces a raw phone number to DDD-DDD-DDDD.
// An 11-digit number with a leading 1 loses the country code.
// It returns false when the digits do not form a 10-digit number.
func FormatPhone(raw string) (string, bool) {
	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return "", false
	}
	return d[0:3] + "-" + d[3:6] + "-" + d[6:10], true
}

// cleanPhoneNumbers formats every phone and counts the ones that became absent.
func cleanPhoneNumbers(t *orders.Table, _ Env) (*orders.Table, int) {
	invalid := 0
	for i := range t.Orders {
		phone := &t.Orders[i].Phone
		if !phone.Valid {
			continue
		}
		formatted, ok := FormatPhone(phone.String)
		if !ok {
			phone.String, phone.Valid = "", false
			invalid++
			continue
		}
		phone.String = formatted
	}
	return t, invalid
}

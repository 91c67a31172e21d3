package cleaning

import (
	"regexp"
	"strings"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// emailRegex must match the whole lower-cased address.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s is a well-formed address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// standardizeEmails lower-cases emails and drops the ones that do not match.
func standardizeEmails(t *orders.Table, _ Env) (*orders.Table, int) {
	invalid := 0
	for i := range t.Orders {
		email := &t.Orders[i].Email
		if !email.Valid {
			continue
		}
		email.String = strings.ToLower(email.String)
		if !ValidEmail(email.String) {
			email.String, email.Valid = "", false
			invalid++
		}
	}
	return t, invalid
}

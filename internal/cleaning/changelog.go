package cleaning

// StepName identifies a cleaning step in the change log.
type StepName string

const (
	StepRemoveDuplicates      StepName = "remove_duplicates"
	StepCleanWhitespace       StepName = "clean_whitespace"
	StepStandardizeEmails     StepName = "standardize_emails"
	StepCleanPhoneNumbers     StepName = "clean_phone_numbers"
	StepStandardizeDates      StepName = "standardize_dates"
	StepCleanPrices           StepName = "clean_prices"
	StepCleanQuantities       StepName = "clean_quantities"
	StepStandardizeCategories StepName = "standardize_categories"
	StepStandardizeStatus     StepName = "standardize_status"
)

// Entry records what one step changed.
type Entry struct {
	Step        StepName `json:"step"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
}

// ChangeLog is an append-only, ordered record of step outcomes.
// The zero value is an empty log.
type ChangeLog struct {
	entries []Entry
}

// Append adds an entry to the end of the log.
func (l *ChangeLog) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the entries in the order they were appended.
func (l *ChangeLog) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *ChangeLog) Len() int {
	return len(l.entries)
}

// Total sums the counts of every entry.
func (l *ChangeLog) Total() int {
	n := 0
	for _, e := range l.entries {
		n += e.Count
	}
	return n
}

// Count returns the count logged for step, or 0 if the step logged nothing.
func (l *ChangeLog) Count(step StepName) int {
	for _, e := range l.entries {
		if e.Step == step {
			return e.Count
		}
	}
	return 0
}

package types

import "time"

// DateKeyLayout is the month-day-year token used both as a grouping key and
// as a directory name at the library root.
const DateKeyLayout = "01-02-2006"

// FormatDateKey renders a timestamp as a date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a directory name as a date key. A non-nil error means
// the name is not a date directory.
func ParseDateKey(name string) (time.Time, error) {
	return time.Parse(DateKeyLayout, name)
}

// IsDateKey reports whether name parses as a date key.
func IsDateKey(name string) bool {
	_, err := ParseDateKey(name)
	return err == nil
}

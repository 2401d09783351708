package domain

import (
	"fmt"
	"strings"
)

// Day is a day of the week, stored as a lowercase three-letter code
type Day string

const (
	Monday    Day = "mon"
	Tuesday   Day = "tue"
	Wednesday Day = "wed"
	Thursday  Day = "thu"
	Friday    Day = "fri"
	Saturday  Day = "sat"
	Sunday    Day = "sun"
)

// Week is the fixed display order of the schedule columns
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayTitles = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Valid reports whether d is one of the seven week days
func (d Day) Valid() bool {
	_, ok := dayTitles[d]
	return ok
}

// Index returns the column index of the day (0 = Monday), or -1
func (d Day) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

// Title returns the full day name
func (d Day) Title() string {
	if t, ok := dayTitles[d]; ok {
		return t
	}
	return string(d)
}

// Short returns the capitalized three-letter label
func (d Day) Short() string {
	if !d.Valid() {
		return string(d)
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// String returns the display string
func (d Day) String() string {
	return string(d)
}

// ParseDay accepts "mon", "Mon", "monday" and similar spellings
func ParseDay(s string) (Day, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		d := Day(s[:3])
		if d.Valid() && (len(s) == 3 || strings.ToLower(d.Title()) == s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

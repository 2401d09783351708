package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TaskID uniquely identifies a task within the collection
type TaskID string

// String returns the id as a plain string
func (id TaskID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string ids and the numeric timestamp ids
// written by older versions of the planner.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = TaskID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = TaskID(n.String())
	return nil
}

// Task is a single scheduled block of time on one day of the week
type Task struct {
	ID         TaskID   `json:"id"`
	Title      string   `json:"title"`
	Day        Day      `json:"day"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Category   Category `json:"category"`
	IsComplete bool     `json:"isComplete"`
}

// TimeRange returns the task's interval formatted for display
func (t Task) TimeRange() string {
	return t.StartTime + " - " + t.EndTime
}

// Overlaps reports whether the half-open intervals [start, end) of two
// tasks on the same day intersect. Tasks on different days never overlap.
func (t Task) Overlaps(other Task) bool {
	if t.Day != other.Day {
		return false
	}
	return t.StartTime < other.EndTime && t.EndTime > other.StartTime
}

// Validate checks the field-level invariants of a task
func (t Task) Validate() error {
	return Draft{
		Title:     t.Title,
		Day:       t.Day,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Category:  t.Category,
	}.Validate()
}

// Draft is the user-supplied payload for a new task, without an id
type Draft struct {
	Title     string
	Day       Day
	StartTime string
	EndTime   string
	Category  Category
}

// Normalize trims the title and defaults an empty category
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.StartTime = strings.TrimSpace(d.StartTime)
	d.EndTime = strings.TrimSpace(d.EndTime)
	if d.Category == "" {
		d.Category = CategoryOther
	}
	return d
}

// Validate checks title, day, clock format and time ordering
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !d.Day.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, d.Day)
	}
	if !ValidClock(d.StartTime) {
		return fmt.Errorf("%w: start %q", ErrInvalidTime, d.StartTime)
	}
	if !ValidClock(d.EndTime) {
		return fmt.Errorf("%w: end %q", ErrInvalidTime, d.EndTime)
	}
	if d.StartTime >= d.EndTime {
		return fmt.Errorf("%w: %s - %s", ErrInvalidRange, d.StartTime, d.EndTime)
	}
	return nil
}

// Task builds a task from the draft with the given id
func (d Draft) Task(id TaskID) Task {
	return Task{
		ID:        id,
		Title:     d.Title,
		Day:       d.Day,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Category:  d.Category,
	}
}

// Patch holds optional field changes. Nil fields are left untouched.
type Patch struct {
	Title     *string
	Day       *Day
	StartTime *string
	EndTime   *string
	Category  *Category
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Title == nil && p.Day == nil && p.StartTime == nil && p.EndTime == nil && p.Category == nil
}

// Apply returns a copy of t with the patch merged in
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Day != nil {
		t.Day = *p.Day
	}
	if p.StartTime != nil {
		t.StartTime = strings.TrimSpace(*p.StartTime)
	}
	if p.EndTime != nil {
		t.EndTime = strings.TrimSpace(*p.EndTime)
	}
	if p.Category != nil {
		t.Category = *p.Category
		if t.Category == "" {
			t.Category = CategoryOther
		}
	}
	return t
}

// PatchFromDraft builds a patch that sets every field of the draft
func PatchFromDraft(d Draft) Patch {
	return Patch{
		Title:     &d.Title,
		Day:       &d.Day,
		StartTime: &d.StartTime,
		EndTime:   &d.EndTime,
		Category:  &d.Category,
	}
}

// ValidClock reports whether s is a zero-padded 24h "HH:MM" time
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh < 24 && mm < 60
}

// Category classifies a task for display
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLeisure  Category = "leisure"
	CategoryOther    Category = "other"
)

// Categories lists the known categories in display order
var Categories = []Category{
	CategoryStudy,
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryLeisure,
	CategoryOther,
}

// Known reports whether c is one of the predefined categories
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory accepts a known category in any case. Empty means other.
// Stored tasks may still carry unknown categories; this only guards input.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryOther, nil
	}
	if !c.Known() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidCategory, s, joinCategories())
	}
	return c, nil
}

func joinCategories() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// String returns the display string
func (c Category) String() string {
	return string(c)
}

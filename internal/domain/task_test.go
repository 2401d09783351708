package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09-30", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ValidClock(tt.in); got != tt.want {
				t.Errorf("ValidClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDraft_Validate(t *testing.T) {
	base := Draft{Title: "Gym", Day: Monday, StartTime: "09:00", EndTime: "10:00"}

	tests := []struct {
		name   string
		mutate func(d *Draft)
		want   error
	}{
		{"valid", func(d *Draft) {}, nil},
		{"blank title", func(d *Draft) { d.Title = "   " }, ErrEmptyTitle},
		{"bad day", func(d *Draft) { d.Day = "xyz" }, ErrInvalidDay},
		{"bad start", func(d *Draft) { d.StartTime = "9am" }, ErrInvalidTime},
		{"bad end", func(d *Draft) { d.EndTime = "25:00" }, ErrInvalidTime},
		{"equal times", func(d *Draft) { d.EndTime = "09:00" }, ErrInvalidRange},
		{"reversed", func(d *Draft) { d.StartTime = "11:00" }, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			err := d.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestDraft_Normalize(t *testing.T) {
	d := Draft{Title: "  Read  ", StartTime: " 08:00", EndTime: "09:00 "}.Normalize()

	assert.Equal(t, "Read", d.Title)
	assert.Equal(t, "08:00", d.StartTime)
	assert.Equal(t, "09:00", d.EndTime)
	assert.Equal(t, CategoryOther, d.Category)
}

func TestPatch_Apply(t *testing.T) {
	task := Task{ID: "1", Title: "Old", Day: Monday, StartTime: "09:00", EndTime: "10:00", Category: CategoryWork}
	title := " New "
	day := Friday

	got := Patch{Title: &title, Day: &day}.Apply(task)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, Friday, got.Day)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, CategoryWork, got.Category)
	assert.Equal(t, "Old", task.Title, "original must not change")
	assert.True(t, Patch{}.Empty())
	assert.False(t, Patch{Day: &day}.Empty())
}

func TestTask_Overlaps(t *testing.T) {
	a := Task{Day: Monday, StartTime: "09:00", EndTime: "10:00"}

	tests := []struct {
		name  string
		other Task
		want  bool
	}{
		{"touching after", Task{Day: Monday, StartTime: "10:00", EndTime: "11:00"}, false},
		{"touching before", Task{Day: Monday, StartTime: "08:00", EndTime: "09:00"}, false},
		{"partial", Task{Day: Monday, StartTime: "09:30", EndTime: "10:30"}, true},
		{"contained", Task{Day: Monday, StartTime: "09:15", EndTime: "09:45"}, true},
		{"containing", Task{Day: Monday, StartTime: "08:00", EndTime: "12:00"}, true},
		{"other day", Task{Day: Tuesday, StartTime: "09:00", EndTime: "10:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TaskID
	}{
		{"string", `"0192f3a4-aaaa"`, "0192f3a4-aaaa"},
		{"legacy number", `1712345678901`, "1712345678901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id TaskID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id TaskID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{ID: "a", Title: "T", Day: Wednesday, StartTime: "07:00", EndTime: "08:00", Category: CategoryHealth, IsComplete: true}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "title", "day", "startTime", "endTime", "category", "isComplete"} {
		assert.Contains(t, raw, key)
	}
}

func TestCategory_Known(t *testing.T) {
	assert.True(t, CategoryStudy.Known())
	assert.False(t, Category("gaming").Known())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"work", CategoryWork, false},
		{" Health ", CategoryHealth, false},
		{"", CategoryOther, false},
		{"fitness", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

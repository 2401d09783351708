package editor

import (
	"testing"

	"github.com/riordanpawley/weekplan/internal/domain"
)

func TestNewService(t *testing.T) {
	svc := NewService()

	if svc.GetMode() != ModeNormal {
		t.Errorf("expected ModeNormal, got %v", svc.GetMode())
	}
	if svc.GetFilter() == nil {
		t.Fatal("expected filter to be initialized")
	}
	if svc.Carried() != nil {
		t.Error("expected nothing carried")
	}
}

func TestModeTransitions(t *testing.T) {
	svc := NewService()

	svc.EnterSearch()
	if !svc.IsSearch() {
		t.Error("expected search mode")
	}

	if !svc.ExitMode() {
		t.Error("ExitMode should report a change")
	}
	if !svc.IsNormal() {
		t.Error("expected normal mode after ExitMode")
	}
	if svc.ExitMode() {
		t.Error("ExitMode in normal mode should report no change")
	}
}

func TestCarry(t *testing.T) {
	svc := NewService()

	svc.PickUp("t1", 2)
	if !svc.IsMove() {
		t.Fatal("expected move mode after PickUp")
	}

	svc.ShiftTarget(1)
	svc.ShiftTarget(1)
	if got := svc.Carried().Target; got != 4 {
		t.Errorf("Target = %d, want 4", got)
	}

	svc.ShiftTarget(10)
	if got := svc.Carried().Target; got != 6 {
		t.Errorf("Target = %d, want clamp to 6", got)
	}

	svc.SetTarget(-3)
	if got := svc.Carried().Target; got != 0 {
		t.Errorf("Target = %d, want clamp to 0", got)
	}

	c := svc.Drop()
	if c == nil || c.TaskID != "t1" || c.From != 2 || c.Target != 0 {
		t.Errorf("Drop() = %+v", c)
	}
	if !svc.IsNormal() || svc.Carried() != nil {
		t.Error("Drop should return to normal mode with nothing carried")
	}
}

func TestExitModeCancelsCarry(t *testing.T) {
	svc := NewService()
	svc.PickUp("t1", 0)

	svc.ExitMode()

	if svc.Carried() != nil {
		t.Error("expected carry to be cleared")
	}
}

func TestTargetWithoutCarryIsNoop(t *testing.T) {
	svc := NewService()
	svc.ShiftTarget(1)
	svc.SetTarget(3)
	if svc.Carried() != nil {
		t.Error("expected nothing carried")
	}
}

func TestFilterManagement(t *testing.T) {
	svc := NewService()
	tasks := []domain.Task{
		{ID: "1", Title: "Gym", Category: domain.CategoryHealth},
		{ID: "2", Title: "Report", Category: domain.CategoryWork, IsComplete: true},
		{ID: "3", Title: "Read", Category: domain.CategoryLeisure},
	}

	if svc.IsFilterActive() {
		t.Error("new filter should be inactive")
	}

	svc.SetSearchQuery("re")
	if got := len(svc.ApplyFilter(tasks)); got != 2 {
		t.Errorf("search filter kept %d tasks, want 2", got)
	}

	svc.ToggleHideComplete()
	if got := len(svc.ApplyFilter(tasks)); got != 1 {
		t.Errorf("hide complete kept %d tasks, want 1", got)
	}

	svc.ClearSearch()
	svc.ToggleCategoryFilter(domain.CategoryHealth)
	filtered := svc.ApplyFilter(tasks)
	if len(filtered) != 1 || filtered[0].ID != "1" {
		t.Errorf("category filter = %+v", filtered)
	}

	svc.ClearFilters()
	if svc.IsFilterActive() {
		t.Error("expected filters cleared")
	}
}

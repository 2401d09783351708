package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/weekplan/internal/domain"
)

func TestNewFilterMenu(t *testing.T) {
	filter := domain.NewFilter()
	menu := NewFilterMenu(filter, testStyles())

	if menu.filter != filter {
		t.Error("FilterMenu should reference the provided filter")
	}
	if menu.mode != filterModeNormal {
		t.Errorf("Expected mode to be normal, got %v", menu.mode)
	}
	if menu.Title() != "Filter Tasks" {
		t.Errorf("Expected title 'Filter Tasks', got %q", menu.Title())
	}
}

func TestFilterMenu_CategoryToggle(t *testing.T) {
	filter := domain.NewFilter()
	menu := NewFilterMenu(filter, testStyles())

	menu.Update(runeKey("c"))
	if menu.mode != filterModeCategory {
		t.Fatalf("Expected category mode, got %v", menu.mode)
	}

	menu.Update(runeKey("w"))
	if !filter.Categories[domain.CategoryWork] {
		t.Error("Expected work category to be selected")
	}
	if menu.mode != filterModeNormal {
		t.Error("Expected return to normal mode after a toggle")
	}

	menu.Update(runeKey("c"))
	menu.Update(runeKey("w"))
	if filter.Categories[domain.CategoryWork] {
		t.Error("Expected work category to be toggled off")
	}
}

func TestFilterMenu_DayToggle(t *testing.T) {
	filter := domain.NewFilter()
	menu := NewFilterMenu(filter, testStyles())

	menu.Update(runeKey("d"))
	menu.Update(runeKey("3"))

	if !filter.Days[domain.Wednesday] {
		t.Error("Expected Wednesday to be selected")
	}

	// Keys outside 1-7 keep day mode
	menu.Update(runeKey("d"))
	menu.Update(runeKey("9"))
	if menu.mode != filterModeDay {
		t.Error("Expected to stay in day mode on an unknown key")
	}
	menu.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if menu.mode != filterModeNormal {
		t.Error("Esc should leave day mode")
	}
}

func TestFilterMenu_HideCompleteAndReset(t *testing.T) {
	filter := domain.NewFilter()
	menu := NewFilterMenu(filter, testStyles())

	menu.Update(runeKey("x"))
	if !filter.HideComplete {
		t.Error("Expected HideComplete to be on")
	}

	filter.SearchQuery = "gym"
	menu.Update(runeKey("r"))
	if filter.IsActive() {
		t.Error("Expected reset to clear every filter")
	}
}

func TestFilterMenu_Close(t *testing.T) {
	menu := NewFilterMenu(domain.NewFilter(), testStyles())

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyEnter}, runeKey("q")} {
		_, cmd := menu.Update(key)
		if cmd == nil {
			t.Fatalf("Expected close command for %q", key.String())
		}
		if _, ok := cmd().(CloseOverlayMsg); !ok {
			t.Errorf("Expected CloseOverlayMsg for %q", key.String())
		}
	}
}

func TestFilterMenuView_DisplaysFilterState(t *testing.T) {
	filter := domain.NewFilter()
	filter.ToggleCategory(domain.CategoryHealth)
	filter.Days[domain.Friday] = true
	filter.HideComplete = true
	filter.SearchQuery = "run"

	view := ansi.Strip(NewFilterMenu(filter, testStyles()).View())

	for _, want := range []string{"Category:", "Day:", "[●h=health]", "[●5=Fri]", "[ 1=Mon]", "[●] Hide completed", `Title contains "run"`} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q\n%s", want, view)
		}
	}
}

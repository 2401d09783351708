package storage

import (
	"errors"
	"strings"

	"github.com/riordanpawley/weekplan/internal/types"
)

// ThemeRepo persists the light/dark preference in the theme slot
type ThemeRepo struct {
	kv KV
}

// NewThemeRepo creates a theme repo over kv
func NewThemeRepo(kv KV) *ThemeRepo {
	return &ThemeRepo{kv: kv}
}

// Load returns the stored theme, or fallback when none is stored or the
// stored value is not recognized.
func (r *ThemeRepo) Load(fallback types.Theme) types.Theme {
	raw, err := r.kv.Get(ThemeKey)
	if err != nil {
		return fallback
	}
	theme := types.Theme(strings.TrimSpace(string(raw)))
	if !theme.Valid() {
		return fallback
	}
	return theme
}

// Save writes the theme
func (r *ThemeRepo) Save(theme types.Theme) error {
	if !theme.Valid() {
		return errors.New("invalid theme " + string(theme))
	}
	return r.kv.Set(ThemeKey, []byte(theme))
}

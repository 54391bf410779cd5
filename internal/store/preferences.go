package store

import (
	"slices"

	"github.com/openhire/mobile-core/internal/domain/model"
)

// Preferences container intents. The preferences container is
// synchronous-only: every mutation applies immediately and idempotently.

// ThemeChanged selects the client color scheme.
type ThemeChanged struct {
	Theme model.Theme
}

// LocaleChanged sets the BCP 47 locale tag.
type LocaleChanged struct {
	Locale string
}

// NotificationsToggled flips the global notification switch.
type NotificationsToggled struct{}

// AlertConfigChanged updates the job-alert enabled flag and frequency
// without touching the keyword/location sets.
type AlertConfigChanged struct {
	Enabled   bool
	Frequency model.AlertFrequency
}

// AlertKeywordAdded adds a keyword to the job-alert set. Adding a keyword
// that is already present is a no-op.
type AlertKeywordAdded struct {
	Keyword string
}

// AlertKeywordRemoved removes a keyword from the job-alert set. Removing
// an absent keyword is a no-op.
type AlertKeywordRemoved struct {
	Keyword string
}

// AlertLocationAdded adds a location to the job-alert set.
type AlertLocationAdded struct {
	Location string
}

// AlertLocationRemoved removes a location from the job-alert set.
type AlertLocationRemoved struct {
	Location string
}

// DisplaySettingsChanged replaces the display settings.
type DisplaySettingsChanged struct {
	Display model.DisplaySettings
}

// PreferencesReset restores every preference field to its documented
// default. The inert lifecycle fields are left untouched.
type PreferencesReset struct{}

func (ThemeChanged) slice() Slice           { return SlicePreferences }
func (LocaleChanged) slice() Slice          { return SlicePreferences }
func (NotificationsToggled) slice() Slice   { return SlicePreferences }
func (AlertConfigChanged) slice() Slice     { return SlicePreferences }
func (AlertKeywordAdded) slice() Slice      { return SlicePreferences }
func (AlertKeywordRemoved) slice() Slice    { return SlicePreferences }
func (AlertLocationAdded) slice() Slice     { return SlicePreferences }
func (AlertLocationRemoved) slice() Slice   { return SlicePreferences }
func (DisplaySettingsChanged) slice() Slice { return SlicePreferences }
func (PreferencesReset) slice() Slice       { return SlicePreferences }

// reducePreferences is the pure update function for the preferences slice.
func reducePreferences(prev PreferencesState, intent Intent) (PreferencesState, bool) {
	next := prev
	switch in := intent.(type) {
	case ThemeChanged:
		if !in.Theme.Valid() || in.Theme == prev.Prefs.Theme {
			return prev, false
		}
		next.Prefs.Theme = in.Theme

	case LocaleChanged:
		if in.Locale == "" || in.Locale == prev.Prefs.Locale {
			return prev, false
		}
		next.Prefs.Locale = in.Locale

	case NotificationsToggled:
		next.Prefs.NotificationsEnabled = !prev.Prefs.NotificationsEnabled

	case AlertConfigChanged:
		if !in.Frequency.Valid() {
			return prev, false
		}
		if in.Enabled == prev.Prefs.JobAlerts.Enabled && in.Frequency == prev.Prefs.JobAlerts.Frequency {
			return prev, false
		}
		next.Prefs.JobAlerts.Enabled = in.Enabled
		next.Prefs.JobAlerts.Frequency = in.Frequency

	case AlertKeywordAdded:
		added, ok := addToSet(prev.Prefs.JobAlerts.Keywords, in.Keyword)
		if !ok {
			return prev, false
		}
		next.Prefs.JobAlerts.Keywords = added

	case AlertKeywordRemoved:
		removed, ok := removeFromSet(prev.Prefs.JobAlerts.Keywords, in.Keyword)
		if !ok {
			return prev, false
		}
		next.Prefs.JobAlerts.Keywords = removed

	case AlertLocationAdded:
		added, ok := addToSet(prev.Prefs.JobAlerts.Locations, in.Location)
		if !ok {
			return prev, false
		}
		next.Prefs.JobAlerts.Locations = added

	case AlertLocationRemoved:
		removed, ok := removeFromSet(prev.Prefs.JobAlerts.Locations, in.Location)
		if !ok {
			return prev, false
		}
		next.Prefs.JobAlerts.Locations = removed

	case DisplaySettingsChanged:
		if in.Display == prev.Prefs.Display {
			return prev, false
		}
		next.Prefs.Display = in.Display

	case PreferencesReset:
		next.Prefs = model.DefaultPreferences()

	default:
		return prev, false
	}

	next.Revision = prev.Revision + 1
	return next, true
}

// addToSet returns a new slice with value appended, or ok=false when the
// value is empty or already present.
func addToSet(set []string, value string) ([]string, bool) {
	if value == "" || slices.Contains(set, value) {
		return nil, false
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	out = append(out, value)
	return out, true
}

// removeFromSet returns a new slice without value, or ok=false when the
// value was absent.
func removeFromSet(set []string, value string) ([]string, bool) {
	idx := slices.Index(set, value)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, 0, len(set)-1)
	out = append(out, set[:idx]...)
	out = append(out, set[idx+1:]...)
	return out, true
}

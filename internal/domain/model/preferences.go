package model

// Theme selects the client color scheme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Valid returns true if the Theme is a known value.
func (t Theme) Valid() bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// AlertFrequency controls how often job-alert digests are assembled.
type AlertFrequency string

const (
	AlertFrequencyInstant AlertFrequency = "instant"
	AlertFrequencyDaily   AlertFrequency = "daily"
	AlertFrequencyWeekly  AlertFrequency = "weekly"
)

// Valid returns true if the AlertFrequency is a known value.
func (f AlertFrequency) Valid() bool {
	return f == AlertFrequencyInstant || f == AlertFrequencyDaily || f == AlertFrequencyWeekly
}

// SortOrder is the default ordering applied to listing views.
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortBySalary SortOrder = "salary"
)

// JobAlertConfig configures saved job alerts. Keywords and Locations are
// deduplicated sets: adding a present entry or removing an absent one is a
// no-op.
type JobAlertConfig struct {
	Enabled   bool           `json:"enabled"`
	Frequency AlertFrequency `json:"frequency"`
	Keywords  []string       `json:"keywords,omitempty"`
	Locations []string       `json:"locations,omitempty"`
}

// DisplaySettings groups purely cosmetic listing-view options.
type DisplaySettings struct {
	CompactView bool      `json:"compact_view"`
	ShowSalary  bool      `json:"show_salary"`
	DefaultSort SortOrder `json:"default_sort"`
}

// Preferences is the entirely client-local preference record. It is never
// fetched from the platform and is mutated synchronously by user action.
type Preferences struct {
	Theme                Theme           `json:"theme"`
	NotificationsEnabled bool            `json:"notifications_enabled"`
	Locale               string          `json:"locale"`
	JobAlerts            JobAlertConfig  `json:"job_alerts"`
	Display              DisplaySettings `json:"display"`
}

// DefaultPreferences returns the documented default preference record.
// Resetting preferences restores exactly this value.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                ThemeSystem,
		NotificationsEnabled: true,
		Locale:               "en-US",
		JobAlerts: JobAlertConfig{
			Enabled:   false,
			Frequency: AlertFrequencyDaily,
		},
		Display: DisplaySettings{
			CompactView: false,
			ShowSalary:  true,
			DefaultSort: SortByDate,
		},
	}
}

// ABOUTME: Block configuration supplied by the host at construction time.
// ABOUTME: Everything defaults; missing fields never cause an error.

package block

// DefaultSettingsTags is the fixed option menu shown in the settings panel.
// The labels are arbitrary configuration, not derived from data.
var DefaultSettingsTags = []string{"feature", "persona", "irrelevant"}

type Config struct {
	// Placeholder is shown in the empty editable region, after translation.
	Placeholder string

	// PreserveBlank keeps blocks whose text is blank from being dropped
	// at validation time.
	PreserveBlank bool

	// SettingsTags is the list of tags offered as toggles in the settings
	// panel. Empty means DefaultSettingsTags.
	SettingsTags []string
}

func (c Config) withDefaults() Config {
	if len(c.SettingsTags) == 0 {
		c.SettingsTags = DefaultSettingsTags
	}
	return c
}

// ABOUTME: Settings panel rendering and tag toggling.
// ABOUTME: One toggle per configured settings tag; active state mirrors membership.

package block

import "github.com/deathau/editorjs-playground/internal/dom"

// ToggleTag flips membership of name in the tag strip and returns true if the
// tag is now present. Toggling an absent tag adds it exactly once.
func (b *Block) ToggleTag(name string) bool {
	if b.hasTag(name) {
		b.removeTag(name)
		return false
	}
	b.addTag(name)
	return true
}

// RenderSettings builds the settings panel: one button per configured settings
// tag. Clicking toggles the tag and flips the button's active class to match.
func (b *Block) RenderSettings() *dom.Element {
	panel := dom.NewElement("div")

	for _, name := range b.config.SettingsTags {
		name := name

		item := dom.NewElement("div")
		item.AddClass(b.api.Styles.SettingsButton)
		item.SetTextContent(b.api.Translate(name))
		if b.hasTag(name) {
			item.AddClass(b.api.Styles.SettingsButtonActive)
		}

		item.OnClick(func() {
			if b.ToggleTag(name) {
				item.AddClass(b.api.Styles.SettingsButtonActive)
			} else {
				item.RemoveClass(b.api.Styles.SettingsButtonActive)
			}
		})

		panel.AppendChild(item)
	}
	return panel
}

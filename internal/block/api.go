// ABOUTME: Host services handed to a block: i18n translation and style lookup.
// ABOUTME: DefaultAPI supplies identity translation and the stock class names.

package block

// Styles is the host's class-name lookup for pieces of block chrome.
type Styles struct {
	Block                string
	Input                string
	SettingsButton       string
	SettingsButtonActive string
}

type API struct {
	// Translate localizes UI strings. Never nil after DefaultAPI or
	// withDefaults; identity by default.
	Translate func(string) string

	Styles Styles
}

func DefaultAPI() *API {
	return &API{
		Translate: func(s string) string { return s },
		Styles: Styles{
			Block:                "ce-block__content",
			Input:                "cdx-input",
			SettingsButton:       "cdx-settings-button",
			SettingsButtonActive: "cdx-settings-button--active",
		},
	}
}

func (a *API) withDefaults() *API {
	if a == nil {
		return DefaultAPI()
	}
	if a.Translate == nil {
		a.Translate = func(s string) string { return s }
	}
	return a
}

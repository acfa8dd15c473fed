// ABOUTME: Markup policy for block text crossing the data boundary.
// ABOUTME: Allows only line breaks; everything else is stripped, text retained.

package sanitize

import "github.com/microcosm-cc/bluemonday"

// Rule is the declarative allow-list form consumed by the host at
// registration time: tag name to allowed.
type Rule map[string]bool

// TextRule is the rule applied to block text: line breaks only.
var TextRule = Rule{"br": true}

var textPolicy = buildPolicy(TextRule)

func buildPolicy(rule Rule) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	for tag, allowed := range rule {
		if allowed {
			p.AllowElements(tag)
		}
	}
	return p
}

// Text sanitizes inline markup under TextRule. Disallowed tags are removed
// with their text content kept; script and style bodies are dropped entirely.
func Text(markup string) string {
	return textPolicy.Sanitize(markup)
}

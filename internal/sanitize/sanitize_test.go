// ABOUTME: Tests for the markup policy.
// ABOUTME: Verifies line breaks survive and everything else is stripped.

package sanitize

import "testing"

func TestTextKeepsLineBreaks(t *testing.T) {
	if got := Text("one<br>two"); got != "one<br>two" {
		t.Errorf("expected line break kept, got %q", got)
	}
}

func TestTextStripsTagsKeepsContent(t *testing.T) {
	if got := Text("<p>pasted</p>"); got != "pasted" {
		t.Errorf("expected tag stripped with content kept, got %q", got)
	}
	if got := Text("<b>bold</b> and <i>italic</i>"); got != "bold and italic" {
		t.Errorf("expected inline formatting stripped, got %q", got)
	}
}

func TestTextDropsScriptBodies(t *testing.T) {
	if got := Text(`<script>alert("x")</script>ok`); got != "ok" {
		t.Errorf("expected script body dropped, got %q", got)
	}
}

func TestTextDropsAttributes(t *testing.T) {
	if got := Text(`<br class="x" onload="evil()">`); got != "<br>" {
		t.Errorf("expected bare line break, got %q", got)
	}
}

func TestTextEmptyInput(t *testing.T) {
	if got := Text(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

// ABOUTME: Tests for the block lifecycle controller and data synchronizer.
// ABOUTME: Covers render idempotence, round-trips, merge, validation, and paste.

package block

import (
	"reflect"
	"testing"

	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/models"
)

func newBlock(data *models.BlockData) *Block {
	return New(data, Config{}, DefaultAPI(), false)
}

func TestRenderIsIdempotent(t *testing.T) {
	b := newBlock(nil)

	first := b.Render()
	second := b.Render()
	if first != second {
		t.Error("expected reference-identical roots from repeated Render calls")
	}
}

func TestDataRoundTrip(t *testing.T) {
	b := newBlock(nil)

	in := models.BlockData{Text: "hello<br>world", Tags: []string{"y", "x"}}
	b.SetData(&in)

	got := b.Data()
	if got.Text != in.Text {
		t.Errorf("expected text %q, got %q", in.Text, got.Text)
	}
	if !reflect.DeepEqual(got.Tags, in.Tags) {
		t.Errorf("expected tags %v, got %v", in.Tags, got.Tags)
	}
}

func TestSetDataNilMeansEmpty(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "old", Tags: []string{"y"}})

	b.SetData(nil)
	got := b.Data()
	if got.Text != "" || len(got.Tags) != 0 {
		t.Errorf("expected empty record, got %+v", got)
	}
}

func TestSetDataDropsDuplicateTags(t *testing.T) {
	b := newBlock(nil)

	b.SetData(&models.BlockData{Tags: []string{"y", "y", "x"}})
	got := b.Data()
	if !reflect.DeepEqual(got.Tags, []string{"y", "x"}) {
		t.Errorf("expected [y x], got %v", got.Tags)
	}
}

func TestToggleTagTwiceRestoresMembership(t *testing.T) {
	b := newBlock(&models.BlockData{Tags: []string{"y"}})

	if now := b.ToggleTag("x"); !now {
		t.Error("expected toggle of absent tag to add it")
	}
	if now := b.ToggleTag("x"); now {
		t.Error("expected second toggle to remove the tag")
	}
	if got := b.Data().Tags; !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("expected original membership, got %v", got)
	}
}

func TestRapidToggleAddsOnce(t *testing.T) {
	b := newBlock(nil)

	b.ToggleTag("x")
	b.addTag("x")
	b.addTag("x")
	if got := b.Data().Tags; !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("expected a single insertion, got %v", got)
	}
}

func TestMergeConcatenatesTextAndUnionsTags(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "A", Tags: []string{"y"}})

	b.Merge(models.BlockData{Text: "B", Tags: []string{"x"}})
	got := b.Data()
	if got.Text != "AB" {
		t.Errorf("expected %q, got %q", "AB", got.Text)
	}
	if !reflect.DeepEqual(got.Tags, []string{"y", "x"}) {
		t.Errorf("expected [y x], got %v", got.Tags)
	}
}

func TestMergeDoesNotDuplicateTags(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "A", Tags: []string{"y"}})

	b.Merge(models.BlockData{Text: "", Tags: []string{"y"}})
	got := b.Data()
	if got.Text != "A" {
		t.Errorf("expected %q, got %q", "A", got.Text)
	}
	if !reflect.DeepEqual(got.Tags, []string{"y"}) {
		t.Errorf("expected [y], got %v", got.Tags)
	}
}

func TestValidateBoundary(t *testing.T) {
	b := newBlock(nil)
	if b.Validate(models.BlockData{Text: "   "}) {
		t.Error("expected blank text rejected by default")
	}
	if !b.Validate(models.BlockData{Text: "hello"}) {
		t.Error("expected non-blank text accepted")
	}

	preserving := New(nil, Config{PreserveBlank: true}, DefaultAPI(), false)
	if !preserving.Validate(models.BlockData{Text: "   "}) {
		t.Error("expected blank text accepted with PreserveBlank")
	}
	if !preserving.Validate(models.BlockData{Text: "hello"}) {
		t.Error("expected non-blank text accepted with PreserveBlank")
	}
}

func TestValidateIgnoresTags(t *testing.T) {
	b := newBlock(nil)
	if b.Validate(models.BlockData{Text: "", Tags: []string{"y"}}) {
		t.Error("expected tags not to rescue a blank block")
	}
}

func TestOnPastePreservesTags(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "old", Tags: []string{"y"}})

	pasted := dom.NewElement("p")
	pasted.SetInnerHTML("pasted")
	b.OnPaste(PasteEvent{Node: pasted})

	got := b.Data()
	if got.Text != "pasted" {
		t.Errorf("expected %q, got %q", "pasted", got.Text)
	}
	if !reflect.DeepEqual(got.Tags, []string{"y"}) {
		t.Errorf("expected tags untouched, got %v", got.Tags)
	}
}

func TestOnPasteSanitizesMarkup(t *testing.T) {
	b := newBlock(nil)

	pasted := dom.NewElement("p")
	pasted.SetInnerHTML(`<b>bold</b><br><script>x()</script>rest`)
	b.OnPaste(PasteEvent{Node: pasted})

	if got := b.Data().Text; got != "bold<br>rest" {
		t.Errorf("expected sanitized paste, got %q", got)
	}
}

func TestBackspaceEmptyCleanup(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "x"})

	// Simulate the browser leaving a stray line break after the last
	// character is deleted.
	b.textEl.SetInnerHTML("<br>")
	b.textEl.FireKeyUp(dom.KeyBackspace)

	if got := b.Data().Text; got != "" {
		t.Errorf("expected exactly empty markup, got %q", got)
	}
}

func TestKeyUpLeavesNonEmptyRegionAlone(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "keep"})

	b.textEl.FireKeyUp(dom.KeyBackspace)
	if got := b.Data().Text; got != "keep" {
		t.Errorf("expected text untouched, got %q", got)
	}

	b.textEl.FireKeyUp(dom.Key(65))
	if got := b.Data().Text; got != "keep" {
		t.Errorf("expected non-delete keys ignored, got %q", got)
	}
}

func TestSaveReadsFromRenderedRoot(t *testing.T) {
	b := newBlock(&models.BlockData{Text: "hello", Tags: []string{"y", "x"}})

	got := b.Save(b.Render())
	if got.Text != "hello" {
		t.Errorf("expected %q, got %q", "hello", got.Text)
	}
	if !reflect.DeepEqual(got.Tags, []string{"y", "x"}) {
		t.Errorf("expected [y x], got %v", got.Tags)
	}
}

func TestSaveOfEmptyRootDefaults(t *testing.T) {
	b := newBlock(nil)

	got := b.Save(dom.NewElement("div"))
	if got.Text != "" || len(got.Tags) != 0 {
		t.Errorf("expected empty record from bare root, got %+v", got)
	}
}

func TestReadOnlyRender(t *testing.T) {
	b := New(&models.BlockData{Text: "x"}, Config{}, DefaultAPI(), true)

	textEl := b.Render().FindByClass(ClassText)
	if textEl == nil {
		t.Fatal("expected text region present")
	}
	if textEl.ContentEditable() {
		t.Error("expected editing disabled in read-only mode")
	}
	if textEl.HasKeyUpHandler() {
		t.Error("expected no key-up listener in read-only mode")
	}
}

func TestPlaceholderIsTranslated(t *testing.T) {
	api := DefaultAPI()
	api.Translate = func(s string) string { return "[" + s + "]" }
	b := New(nil, Config{Placeholder: "Type here"}, api, false)

	textEl := b.Render().FindByClass(ClassText)
	if got := textEl.Attribute("data-placeholder"); got != "[Type here]" {
		t.Errorf("expected translated placeholder, got %q", got)
	}
}

func TestRenderSettingsReflectsMembership(t *testing.T) {
	b := New(&models.BlockData{Tags: []string{"persona"}}, Config{}, DefaultAPI(), false)

	panel := b.RenderSettings()
	items := panel.ChildElements()
	if len(items) != len(DefaultSettingsTags) {
		t.Fatalf("expected %d settings items, got %d", len(DefaultSettingsTags), len(items))
	}

	active := b.api.Styles.SettingsButtonActive
	for i, name := range DefaultSettingsTags {
		want := name == "persona"
		if got := items[i].HasClass(active); got != want {
			t.Errorf("item %q: expected active=%v, got %v", name, want, got)
		}
	}
}

func TestSettingsClickTogglesTagAndState(t *testing.T) {
	b := newBlock(nil)

	panel := b.RenderSettings()
	item := panel.ChildElements()[0]
	name := DefaultSettingsTags[0]
	active := b.api.Styles.SettingsButtonActive

	item.Click()
	if !b.hasTag(name) || !item.HasClass(active) {
		t.Error("expected click to add the tag and mark the item active")
	}

	item.Click()
	if b.hasTag(name) || item.HasClass(active) {
		t.Error("expected second click to remove the tag and clear the state")
	}
}

func TestCapabilities(t *testing.T) {
	if !IsReadOnlySupported() {
		t.Error("expected read-only support declared")
	}
	if got := PasteConfig().Tags; !reflect.DeepEqual(got, []string{"P"}) {
		t.Errorf("expected paste tags [P], got %v", got)
	}
	conv := ConversionConfig()
	if conv.Export != "text" || conv.Import != "text" {
		t.Errorf("expected text conversion keys, got %+v", conv)
	}
	rules := SanitizeRules()
	if !rules["text"]["br"] {
		t.Error("expected line breaks allowed in text")
	}
	if Toolbox().Title == "" || Toolbox().Icon == "" {
		t.Error("expected toolbox metadata populated")
	}
}

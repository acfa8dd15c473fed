// ABOUTME: BlockData is the record exchanged between a block and the host editor.
// ABOUTME: Holds sanitized inline markup plus an ordered, deduplicated tag list.

package models

type BlockData struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

// NewBlockData builds a record with the tag list deduplicated in append order.
func NewBlockData(text string, tags []string) BlockData {
	return BlockData{
		Text: text,
		Tags: NewTagList(tags...).Names(),
	}
}

// Clone returns a copy whose tag slice shares no storage with the original.
func (d BlockData) Clone() BlockData {
	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)
	return BlockData{Text: d.Text, Tags: tags}
}

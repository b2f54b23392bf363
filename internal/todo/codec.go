package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Encode serializes items in the persisted record format.
func Encode(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a persisted list. Anything that is not a well-formed list of
// records satisfying the item invariants is an error.
func Decode(b []byte) ([]model.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var items []model.Item
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("json unmarshal: trailing data")
	}

	ids := make(map[int]bool, len(items))
	texts := make(map[string]bool, len(items))
	for i, it := range items {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			return nil, fmt.Errorf("item %d: empty text", i)
		}
		if ids[it.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %d", i, it.ID)
		}
		key := strings.ToLower(text)
		if texts[key] {
			return nil, fmt.Errorf("item %d: duplicate text %q", i, it.Text)
		}
		ids[it.ID] = true
		texts[key] = true
		items[i].Text = text
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

package model

import (
	"fmt"
	"strings"
)

// Item is the domain model for a todo entry.
// The JSON shape is the persisted record format.
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Filter selects which items a view shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

var filterNames = [...]string{"all", "active", "completed"}

func (f Filter) String() string {
	if f < FilterAll || f > FilterCompleted {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter maps "all", "active" or "completed" (any case) to a Filter.
func ParseFilter(s string) (Filter, error) {
	for i, name := range filterNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Filter(i), nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q: must be one of %s", s, strings.Join(filterNames[:], ", "))
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	return (f + 1) % Filter(len(filterNames))
}

// Match reports whether it belongs in a view under f.
func (f Filter) Match(it Item) bool {
	switch f {
	case FilterActive:
		return !it.Completed
	case FilterCompleted:
		return it.Completed
	default:
		return true
	}
}

package model

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// List holds one page of a list endpoint. Both the paginated envelope
// ({"count", "next", "previous", "results"}) and a bare JSON array decode
// into it; for a bare array Count is the number of results.
type List[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = List[T]{}
	res := gjson.ParseBytes(data)
	raw := res
	var count gjson.Result
	switch {
	case res.IsArray():
	case res.IsObject():
		raw = res.Get("results")
		if !raw.IsArray() {
			return fmt.Errorf("list response has no results array")
		}
		count = res.Get("count")
		l.Next = res.Get("next").String()
		l.Previous = res.Get("previous").String()
	default:
		return fmt.Errorf("unexpected list response: %.40s", res.Raw)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw.Raw), &items); err != nil {
		return fmt.Errorf("failed to decode list results: %w", err)
	}
	l.Results = items
	if count.Exists() {
		l.Count = int(count.Int())
	} else {
		l.Count = len(items)
	}
	return nil
}

// HasNext reports whether the server advertised a following page.
func (l *List[T]) HasNext() bool {
	return l.Next != ""
}

func (l *List[T]) HasPrevious() bool {
	return l.Previous != ""
}

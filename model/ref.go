package model

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Ref points at a related record. The API serializes relations either as the
// bare primary key or as a nested object; both forms decode into a Ref.
type Ref struct {
	Id    string
	Label string
}

func (r Ref) IsZero() bool {
	return r.Id == ""
}

func (r Ref) String() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Id
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	switch {
	case res.Type == gjson.Null:
		*r = Ref{}
	case res.Type == gjson.String, res.Type == gjson.Number:
		*r = Ref{Id: res.String()}
	case res.IsObject():
		id := res.Get("id")
		if !id.Exists() {
			id = res.Get("pk")
		}
		if !id.Exists() {
			id = res.Get("classname")
		}
		*r = Ref{Id: id.String(), Label: res.Get("label").String()}
	default:
		return fmt.Errorf("unsupported reference: %.40s", res.Raw)
	}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.Id)
}

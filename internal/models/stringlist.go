package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a set of strings as a single JSON column, replacing
// the hand-rolled stringify/parse the data used to go through.
type StringList []string

func (StringList) GormDataType() string { return "json" }

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// Intersects reports whether the list shares at least one entry with
// wanted, comparing exact values.
func (l StringList) Intersects(wanted []string) bool {
	for _, w := range wanted {
		for _, have := range l {
			if have == w {
				return true
			}
		}
	}
	return false
}

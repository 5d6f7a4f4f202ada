package model

import (
	"bytes"
	"encoding/json"
)

// FailureKind - why a generation produced no artifact
type FailureKind string

const (
	FailureNone     FailureKind = ""
	FailureInput    FailureKind = "input"    // malformed base64 / image
	FailureUpstream FailureKind = "upstream" // model call or re-encoding failed
	FailureEmpty    FailureKind = "empty"    // model answered without a usable part
)

// Text accepts any JSON value and keeps it as a string.
// Fields are never type-checked: 19.99 becomes "19.99", null becomes "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// ProductInfo - product metadata shared by the poster and caption routes
type ProductInfo struct {
	ProductName Text `json:"product_name"`
	Price       Text `json:"price"`
	Description Text `json:"description"`
	Location    Text `json:"location"`
	Industry    Text `json:"industry"`
}

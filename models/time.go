package models

import (
	"encoding/json"
	"strings"
	"time"
)

// IST is the fixed display zone for every date on a slip, whatever
// offset the value was stored with.
var IST = time.FixedZone("IST", 5*3600+30*60)

const displayLayout = "02-01-2006 15:04"

// FormatIST renders a stored timestamp as DD-MM-YYYY HH:MM in IST.
// Nil or zero times render as an empty string.
func FormatIST(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(IST).Format(displayLayout)
}

// ISTTime decodes the loose date strings the form sends. Naive values
// are taken as IST wall-clock time; zoned values are converted to IST.
// Blank or unparsable input decodes to the zero time.
type ISTTime struct {
	time.Time
}

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func (t *ISTTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range parseLayouts {
		parsed, err := time.ParseInLocation(layout, s, IST)
		if err == nil {
			t.Time = parsed.In(IST)
			return nil
		}
	}

	t.Time = time.Time{}
	return nil
}

func (t ISTTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.In(IST).Format(time.RFC3339))
}

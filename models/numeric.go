package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric is a float64 that tolerates whatever the slip form sends:
// plain numbers, quoted numbers, blank or whitespace strings, null and
// unparsable junk all decode to 0 instead of failing the request.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Numeric(f)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

func (n Numeric) Float64() float64 {
	return float64(n)
}

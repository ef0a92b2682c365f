package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"ricemill/models"
)

func TestISTTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantZero bool
		want     string // expected display format when not zero
	}{
		{"date only", `"2024-03-15"`, false, "15-03-2024 00:00"},
		{"date and time", `"2024-03-15 14:30"`, false, "15-03-2024 14:30"},
		{"date time seconds", `"2024-03-15 14:30:45"`, false, "15-03-2024 14:30"},
		{"iso with T", `"2024-03-15T14:30:00"`, false, "15-03-2024 14:30"},
		{"utc converts to IST", `"2024-03-15T09:00:00Z"`, false, "15-03-2024 14:30"},
		{"blank", `""`, true, ""},
		{"whitespace", `"  "`, true, ""},
		{"garbage", `"not-a-date"`, true, ""},
		{"null", `null`, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts models.ISTTime
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if ts.IsZero() != tt.wantZero {
				t.Fatalf("Unmarshal(%s).IsZero() = %v, want %v", tt.in, ts.IsZero(), tt.wantZero)
			}
			if !tt.wantZero {
				got := models.FormatIST(&ts.Time)
				if got != tt.want {
					t.Errorf("Unmarshal(%s) displays as %q, want %q", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestFormatIST(t *testing.T) {
	utc := time.Date(2024, 1, 1, 18, 45, 0, 0, time.UTC)
	if got := models.FormatIST(&utc); got != "02-01-2024 00:15" {
		t.Errorf("FormatIST(18:45 UTC) = %q, want crossing midnight into 02-01-2024 00:15", got)
	}

	if got := models.FormatIST(nil); got != "" {
		t.Errorf("FormatIST(nil) = %q, want empty", got)
	}

	var zero time.Time
	if got := models.FormatIST(&zero); got != "" {
		t.Errorf("FormatIST(zero) = %q, want empty", got)
	}
}

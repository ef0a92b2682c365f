package models_test

import (
	"encoding/json"
	"testing"

	"ricemill/models"
)

func TestNumericUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `12.5`, 12.5},
		{"integer", `40`, 40},
		{"negative", `-3.25`, -3.25},
		{"quoted number", `"2000"`, 2000},
		{"quoted decimal", `"47.5"`, 47.5},
		{"quoted with spaces", `"  19.99  "`, 19.99},
		{"empty string", `""`, 0},
		{"whitespace string", `"   "`, 0},
		{"null", `null`, 0},
		{"non-numeric text", `"abc"`, 0},
		{"boolean", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n models.Numeric
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if n.Float64() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, n.Float64(), tt.want)
			}
		})
	}
}

func TestNumericUnmarshalInsideStruct(t *testing.T) {
	var form models.SlipForm
	payload := `{"net_weight_kg":"1000","gunny_weight_kg":"","bags":"junk","rate_value":2000}`
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		t.Fatalf("decoding form: %v", err)
	}

	if form.NetWeightKG == nil || form.NetWeightKG.Float64() != 1000 {
		t.Errorf("net_weight_kg = %v, want 1000", form.NetWeightKG)
	}
	if form.GunnyWeightKG == nil || form.GunnyWeightKG.Float64() != 0 {
		t.Errorf("blank gunny_weight_kg should coerce to 0, got %v", form.GunnyWeightKG)
	}
	if form.Bags == nil || form.Bags.Float64() != 0 {
		t.Errorf("junk bags should coerce to 0, got %v", form.Bags)
	}
	if form.RateBasis != nil {
		t.Errorf("absent rate_basis should stay nil, got %v", *form.RateBasis)
	}
}

func TestNumericMarshal(t *testing.T) {
	out, err := json.Marshal(models.Numeric(47.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "47.5" {
		t.Errorf("Marshal = %s, want 47.5", out)
	}
}

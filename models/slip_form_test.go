package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"ricemill/models"
)

func decodeForm(t *testing.T, payload string) models.SlipForm {
	t.Helper()
	var form models.SlipForm
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		t.Fatalf("decoding form: %v", err)
	}
	return form
}

func TestSlipFormApply_Create(t *testing.T) {
	form := decodeForm(t, `{
		"party_name": "Shree Traders",
		"net_weight_kg": "1000",
		"gunny_weight_kg": 50,
		"bags": 20,
		"rate_basis": "Quintal",
		"rate_value": 2000,
		"date": "2024-03-15",
		"instalment_1_amount": "500",
		"instalment_1_payment_method": "NEFT"
	}`)

	slip := &models.Slip{}
	form.Apply(slip)

	if slip.PartyName != "Shree Traders" {
		t.Errorf("party_name = %q", slip.PartyName)
	}
	if slip.NetWeightKG != 1000 || slip.GunnyWeightKG != 50 || slip.Bags != 20 {
		t.Errorf("weights not applied: net=%v gunny=%v bags=%v", slip.NetWeightKG, slip.GunnyWeightKG, slip.Bags)
	}
	if slip.Date == nil || models.FormatIST(slip.Date) != "15-03-2024 00:00" {
		t.Errorf("date = %v", slip.Date)
	}
	if slip.Instalment1Amount != 500 || slip.Instalment1PaymentMethod != "NEFT" {
		t.Errorf("instalment 1 not applied: %v %q", slip.Instalment1Amount, slip.Instalment1PaymentMethod)
	}
}

func TestSlipFormApply_PartialUpdateKeepsStoredValues(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, models.IST)
	stored := &models.Slip{
		ID:            7,
		BillNo:        42,
		PartyName:     "Shree Traders",
		NetWeightKG:   1000,
		GunnyWeightKG: 50,
		RateBasis:     models.RateBasisQuintal,
		RateValue:     2000,
		Date:          &date,
	}

	form := decodeForm(t, `{"gunny_weight_kg": 100}`)
	form.Apply(stored)

	if stored.GunnyWeightKG != 100 {
		t.Errorf("gunny_weight_kg = %v, want 100", stored.GunnyWeightKG)
	}
	if stored.PartyName != "Shree Traders" || stored.NetWeightKG != 1000 || stored.RateValue != 2000 {
		t.Errorf("untouched fields changed: %+v", stored)
	}
	if stored.ID != 7 || stored.BillNo != 42 {
		t.Errorf("identity changed: id=%d bill_no=%d", stored.ID, stored.BillNo)
	}
	if stored.Date == nil {
		t.Error("date cleared by a payload that never mentioned it")
	}
}

func TestSlipFormApply_BlankDateClears(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, models.IST)
	stored := &models.Slip{Instalment2Date: &date}

	form := decodeForm(t, `{"instalment_2_date": ""}`)
	form.Apply(stored)

	if stored.Instalment2Date != nil {
		t.Errorf("blank instalment_2_date should clear the stored date, got %v", stored.Instalment2Date)
	}
}

func TestSlipFormApply_EmptyPayloadIsNoop(t *testing.T) {
	stored := &models.Slip{PartyName: "X", NetWeightKG: 12.5, RateBasis: "Khandi"}
	before := *stored

	form := decodeForm(t, `{}`)
	form.Apply(stored)

	if *stored != before {
		t.Errorf("empty payload changed the slip:\nbefore %+v\nafter  %+v", before, *stored)
	}
}

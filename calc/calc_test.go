package calc_test

import (
	"math"
	"testing"

	"ricemill/calc"
	"ricemill/models"
)

func TestRecalculate_QuintalScenario(t *testing.T) {
	s := &models.Slip{
		NetWeightKG:   1000,
		GunnyWeightKG: 50,
		Bags:          20,
		RateBasis:     models.RateBasisQuintal,
		RateValue:     2000,
	}
	calc.Recalculate(s)

	if s.FinalWeightKG != 950 {
		t.Errorf("final_weight_kg = %v, want 950", s.FinalWeightKG)
	}
	if s.WeightQuintal != 9.5 {
		t.Errorf("weight_quintal = %v, want 9.5", s.WeightQuintal)
	}
	if s.AvgBagWeight != 47.5 {
		t.Errorf("avg_bag_weight = %v, want 47.5", s.AvgBagWeight)
	}
	if s.TotalPurchaseAmount != 19000 {
		t.Errorf("total_purchase_amount = %v, want 19000", s.TotalPurchaseAmount)
	}
	if s.PayableAmount != 19000 {
		t.Errorf("payable_amount = %v, want 19000 with no deductions", s.PayableAmount)
	}
}

func TestRecalculate_DalaliUsesNetWeight(t *testing.T) {
	s := &models.Slip{
		NetWeightKG:   1000,
		GunnyWeightKG: 50,
		Bags:          20,
		RateBasis:     models.RateBasisQuintal,
		RateValue:     2000,
		DalaliRate:    5,
	}
	calc.Recalculate(s)

	// (1000/100)*5, off net weight rather than final weight.
	if s.Dalali != 50 {
		t.Errorf("dalali = %v, want 50", s.Dalali)
	}
	if s.TotalDeduction != 50 {
		t.Errorf("total_deduction = %v, want 50", s.TotalDeduction)
	}
	if s.PayableAmount != 18950 {
		t.Errorf("payable_amount = %v, want 18950", s.PayableAmount)
	}
}

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name string
		slip models.Slip
		want models.Slip
	}{
		{
			name: "gunny heavier than net clamps final weight to zero",
			slip: models.Slip{NetWeightKG: 40, GunnyWeightKG: 100, RateBasis: "Quintal", RateValue: 2000},
			want: models.Slip{FinalWeightKG: 0, WeightQuintal: 0, WeightKhandi: 0, TotalPurchaseAmount: 0, PayableAmount: 0},
		},
		{
			name: "zero bags gives zero average, not a division error",
			slip: models.Slip{NetWeightKG: 500, Bags: 0},
			want: models.Slip{FinalWeightKG: 500, WeightQuintal: 5, WeightKhandi: 3.333, AvgBagWeight: 0},
		},
		{
			name: "khandi basis prices off 150kg units",
			slip: models.Slip{NetWeightKG: 1500, RateBasis: "Khandi", RateValue: 3000},
			want: models.Slip{FinalWeightKG: 1500, WeightQuintal: 15, WeightKhandi: 10, TotalPurchaseAmount: 30000, PayableAmount: 30000},
		},
		{
			name: "unknown rate basis prices at zero",
			slip: models.Slip{NetWeightKG: 1000, RateBasis: "Tonne", RateValue: 2000},
			want: models.Slip{FinalWeightKG: 1000, WeightQuintal: 10, WeightKhandi: 6.667, TotalPurchaseAmount: 0, PayableAmount: 0},
		},
		{
			name: "zero batav percent suppresses batav even with purchase amount",
			slip: models.Slip{NetWeightKG: 1000, RateBasis: "Quintal", RateValue: 2000, BatavPercent: 0},
			want: models.Slip{FinalWeightKG: 1000, WeightQuintal: 10, WeightKhandi: 6.667, TotalPurchaseAmount: 20000, Batav: 0, PayableAmount: 20000},
		},
		{
			name: "negative percent and rate inputs suppress their deductions",
			slip: models.Slip{NetWeightKG: 1000, RateBasis: "Quintal", RateValue: 2000, BatavPercent: -2, ShortagePercent: -1, DalaliRate: -5, HammaliRate: -3},
			want: models.Slip{FinalWeightKG: 1000, WeightQuintal: 10, WeightKhandi: 6.667, TotalPurchaseAmount: 20000, Batav: 0, Shortage: 0, Dalali: 0, Hammali: 0, PayableAmount: 20000},
		},
		{
			name: "all eleven deduction components sum into total",
			slip: models.Slip{
				NetWeightKG: 1000, RateBasis: "Quintal", RateValue: 2000,
				BankCommission: 10, Postage: 20, BatavPercent: 1, ShortagePercent: 2,
				DalaliRate: 5, HammaliRate: 3, Freight: 100, RateDiff: 50,
				QualityDiff: 30, MoistureDed: 40, TDS: 25,
			},
			want: models.Slip{
				FinalWeightKG: 1000, WeightQuintal: 10, WeightKhandi: 6.667,
				TotalPurchaseAmount: 20000,
				// batav 200, shortage 400, dalali 50, hammali 30
				Batav: 200, Shortage: 400, Dalali: 50, Hammali: 30,
				TotalDeduction: 955, PayableAmount: 19045,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.slip
			calc.Recalculate(&s)

			checks := []struct {
				field string
				got   float64
				want  float64
			}{
				{"final_weight_kg", s.FinalWeightKG, tt.want.FinalWeightKG},
				{"weight_quintal", s.WeightQuintal, tt.want.WeightQuintal},
				{"weight_khandi", s.WeightKhandi, tt.want.WeightKhandi},
				{"avg_bag_weight", s.AvgBagWeight, tt.want.AvgBagWeight},
				{"total_purchase_amount", s.TotalPurchaseAmount, tt.want.TotalPurchaseAmount},
				{"batav", s.Batav, tt.want.Batav},
				{"shortage", s.Shortage, tt.want.Shortage},
				{"dalali", s.Dalali, tt.want.Dalali},
				{"hammali", s.Hammali, tt.want.Hammali},
				{"total_deduction", s.TotalDeduction, tt.want.TotalDeduction},
				{"payable_amount", s.PayableAmount, tt.want.PayableAmount},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	s := &models.Slip{
		NetWeightKG:   1234.56,
		GunnyWeightKG: 78.9,
		Bags:          31,
		RateBasis:     models.RateBasisKhandi,
		RateValue:     2750,
		BatavPercent:  1.5,
		DalaliRate:    4,
		Freight:       320,
		TDS:           12.34,
	}
	calc.Recalculate(s)
	first := *s
	calc.Recalculate(s)

	if *s != first {
		t.Errorf("second recalculation changed derived fields:\nfirst  %+v\nsecond %+v", first, *s)
	}

	if diff := s.PayableAmount - (s.TotalPurchaseAmount - s.TotalDeduction); math.Abs(diff) > 1e-9 {
		t.Errorf("payable_amount %v != purchase %v - deduction %v",
			s.PayableAmount, s.TotalPurchaseAmount, s.TotalDeduction)
	}
}

func TestRecalculate_DefaultsRateBasis(t *testing.T) {
	s := &models.Slip{NetWeightKG: 100, RateValue: 500}
	calc.Recalculate(s)
	if s.RateBasis != models.RateBasisQuintal {
		t.Errorf("rate_basis = %q, want default %q", s.RateBasis, models.RateBasisQuintal)
	}
	if s.TotalPurchaseAmount != 500 {
		t.Errorf("total_purchase_amount = %v, want 500", s.TotalPurchaseAmount)
	}
}

func TestPaymentTotals(t *testing.T) {
	tests := []struct {
		name        string
		payable     float64
		instalments [5]float64
		wantPaid    float64
		wantBalance float64
	}{
		{"two instalments paid", 1000, [5]float64{500, 300, 0, 0, 0}, 800, 200},
		{"nothing paid", 1500.50, [5]float64{}, 0, 1500.50},
		{"all five slots", 100, [5]float64{20, 20, 20, 20, 20}, 100, 0},
		{"overpaid goes negative", 100, [5]float64{80, 80, 0, 0, 0}, 160, -60},
		{"fractional amounts round once", 10, [5]float64{3.333, 3.333, 3.333, 0, 0}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, balance := calc.PaymentTotals(tt.payable, tt.instalments)
			if paid != tt.wantPaid {
				t.Errorf("totalPaid = %v, want %v", paid, tt.wantPaid)
			}
			if balance != tt.wantBalance {
				t.Errorf("balance = %v, want %v", balance, tt.wantBalance)
			}
		})
	}
}

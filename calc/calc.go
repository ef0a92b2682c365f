// Package calc derives the financial fields of a purchase slip from
// its raw inputs. Everything here is pure: no storage, clock or
// network access, and no input ever produces an error — missing or
// junk numbers have already been coerced to zero at the boundary.
package calc

import (
	"github.com/shopspring/decimal"

	"ricemill/models"
)

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Recalculate computes every derived field on the slip, in order, each
// step rounding its own output before the next step consumes it. It is
// run in full on create and after every update merge, so derived
// values are always fresh, never patched incrementally.
func Recalculate(s *models.Slip) {
	if s.RateBasis == "" {
		s.RateBasis = models.RateBasisQuintal
	}

	final := s.NetWeightKG - s.GunnyWeightKG
	if final < 0 {
		final = 0
	}
	s.FinalWeightKG = round(final, 2)
	s.WeightQuintal = round(s.FinalWeightKG/100, 3)
	s.WeightKhandi = round(s.FinalWeightKG/150, 3)

	if s.Bags > 0 {
		s.AvgBagWeight = round(s.FinalWeightKG/s.Bags, 2)
	} else {
		s.AvgBagWeight = 0
	}

	switch s.RateBasis {
	case models.RateBasisQuintal:
		s.TotalPurchaseAmount = round(s.WeightQuintal*s.RateValue, 2)
	case models.RateBasisKhandi:
		s.TotalPurchaseAmount = round(s.WeightKhandi*s.RateValue, 2)
	default:
		s.TotalPurchaseAmount = 0
	}

	s.Batav = 0
	if s.BatavPercent > 0 {
		s.Batav = round(s.TotalPurchaseAmount*s.BatavPercent/100, 2)
	}
	s.Shortage = 0
	if s.ShortagePercent > 0 {
		s.Shortage = round(s.TotalPurchaseAmount*s.ShortagePercent/100, 2)
	}

	// Dalali and hammali are charged per 100kg of net weight, not
	// final weight.
	s.Dalali = 0
	if s.DalaliRate > 0 {
		s.Dalali = round(s.NetWeightKG/100*s.DalaliRate, 2)
	}
	s.Hammali = 0
	if s.HammaliRate > 0 {
		s.Hammali = round(s.NetWeightKG/100*s.HammaliRate, 2)
	}

	s.TotalDeduction = round(
		s.BankCommission+s.Postage+s.Batav+s.Shortage+s.Dalali+s.Hammali+
			s.Freight+s.RateDiff+s.QualityDiff+s.MoistureDed+s.TDS, 2)
	s.PayableAmount = round(s.TotalPurchaseAmount-s.TotalDeduction, 2)
}

// PaymentTotals sums the five instalment slots against the payable
// amount. The same function runs on fresh payloads and on rows read
// back from storage, with the same rounding.
func PaymentTotals(payable float64, instalments [5]float64) (totalPaid, balance float64) {
	for _, amt := range instalments {
		totalPaid += amt
	}
	totalPaid = round(totalPaid, 2)
	balance = round(payable-totalPaid, 2)
	return totalPaid, balance
}

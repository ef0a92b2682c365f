package models

import "time"

// SlipForm is the raw create/update payload. Every field is optional:
// nil means the client did not send it, so Apply leaves the stored
// value alone. Numbers and dates go through the tolerant Numeric and
// ISTTime decoders, which is the only coercion layer in the system.
type SlipForm struct {
	CompanyName     *string  `json:"company_name"`
	CompanyAddress  *string  `json:"company_address"`
	DocumentType    *string  `json:"document_type"`
	VehicleNo       *string  `json:"vehicle_no"`
	Date            *ISTTime `json:"date"`
	PartyName       *string  `json:"party_name"`
	MobileNumber    *string  `json:"mobile_number"`
	MaterialName    *string  `json:"material_name"`
	TicketNo        *string  `json:"ticket_no"`
	Broker          *string  `json:"broker"`
	TermsOfDelivery *string  `json:"terms_of_delivery"`
	SupInvNo        *string  `json:"sup_inv_no"`
	GSTNo           *string  `json:"gst_no"`

	Bags          *Numeric `json:"bags"`
	NetWeightKG   *Numeric `json:"net_weight_kg"`
	GunnyWeightKG *Numeric `json:"gunny_weight_kg"`

	RateBasis *string  `json:"rate_basis"`
	RateValue *Numeric `json:"rate_value"`

	BankCommission     *Numeric `json:"bank_commission"`
	Postage            *Numeric `json:"postage"`
	BatavPercent       *Numeric `json:"batav_percent"`
	ShortagePercent    *Numeric `json:"shortage_percent"`
	DalaliRate         *Numeric `json:"dalali_rate"`
	HammaliRate        *Numeric `json:"hammali_rate"`
	Freight            *Numeric `json:"freight"`
	RateDiff           *Numeric `json:"rate_diff"`
	QualityDiff        *Numeric `json:"quality_diff"`
	QualityDiffComment *string  `json:"quality_diff_comment"`
	MoistureDed        *Numeric `json:"moisture_ded"`
	MoistureDedComment *string  `json:"moisture_ded_comment"`
	TDS                *Numeric `json:"tds"`

	Instalment1Date               *ISTTime `json:"instalment_1_date"`
	Instalment1Amount             *Numeric `json:"instalment_1_amount"`
	Instalment1PaymentMethod      *string  `json:"instalment_1_payment_method"`
	Instalment1PaymentBankAccount *string  `json:"instalment_1_payment_bank_account"`
	Instalment1Comment            *string  `json:"instalment_1_comment"`

	Instalment2Date               *ISTTime `json:"instalment_2_date"`
	Instalment2Amount             *Numeric `json:"instalment_2_amount"`
	Instalment2PaymentMethod      *string  `json:"instalment_2_payment_method"`
	Instalment2PaymentBankAccount *string  `json:"instalment_2_payment_bank_account"`
	Instalment2Comment            *string  `json:"instalment_2_comment"`

	Instalment3Date               *ISTTime `json:"instalment_3_date"`
	Instalment3Amount             *Numeric `json:"instalment_3_amount"`
	Instalment3PaymentMethod      *string  `json:"instalment_3_payment_method"`
	Instalment3PaymentBankAccount *string  `json:"instalment_3_payment_bank_account"`
	Instalment3Comment            *string  `json:"instalment_3_comment"`

	Instalment4Date               *ISTTime `json:"instalment_4_date"`
	Instalment4Amount             *Numeric `json:"instalment_4_amount"`
	Instalment4PaymentMethod      *string  `json:"instalment_4_payment_method"`
	Instalment4PaymentBankAccount *string  `json:"instalment_4_payment_bank_account"`
	Instalment4Comment            *string  `json:"instalment_4_comment"`

	Instalment5Date               *ISTTime `json:"instalment_5_date"`
	Instalment5Amount             *Numeric `json:"instalment_5_amount"`
	Instalment5PaymentMethod      *string  `json:"instalment_5_payment_method"`
	Instalment5PaymentBankAccount *string  `json:"instalment_5_payment_bank_account"`
	Instalment5Comment            *string  `json:"instalment_5_comment"`

	PreparedBy      *string `json:"prepared_by"`
	AuthorisedSign  *string `json:"authorised_sign"`
	UnloadingGodown *string `json:"paddy_unloading_godown"`
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNum(dst *float64, v *Numeric) {
	if v != nil {
		*dst = v.Float64()
	}
}

func setDate(dst **time.Time, v *ISTTime) {
	if v == nil {
		return
	}
	if v.IsZero() {
		*dst = nil
		return
	}
	t := v.Time
	*dst = &t
}

// Apply overlays the provided fields onto a slip. On create the target
// is a zero slip; on update it is the stored row, so untouched fields
// keep their previous values and the caller recomputes every derived
// field afterwards.
func (f *SlipForm) Apply(s *Slip) {
	setStr(&s.CompanyName, f.CompanyName)
	setStr(&s.CompanyAddress, f.CompanyAddress)
	setStr(&s.DocumentType, f.DocumentType)
	setStr(&s.VehicleNo, f.VehicleNo)
	setDate(&s.Date, f.Date)
	setStr(&s.PartyName, f.PartyName)
	setStr(&s.MobileNumber, f.MobileNumber)
	setStr(&s.MaterialName, f.MaterialName)
	setStr(&s.TicketNo, f.TicketNo)
	setStr(&s.Broker, f.Broker)
	setStr(&s.TermsOfDelivery, f.TermsOfDelivery)
	setStr(&s.SupInvNo, f.SupInvNo)
	setStr(&s.GSTNo, f.GSTNo)

	setNum(&s.Bags, f.Bags)
	setNum(&s.NetWeightKG, f.NetWeightKG)
	setNum(&s.GunnyWeightKG, f.GunnyWeightKG)

	setStr(&s.RateBasis, f.RateBasis)
	setNum(&s.RateValue, f.RateValue)

	setNum(&s.BankCommission, f.BankCommission)
	setNum(&s.Postage, f.Postage)
	setNum(&s.BatavPercent, f.BatavPercent)
	setNum(&s.ShortagePercent, f.ShortagePercent)
	setNum(&s.DalaliRate, f.DalaliRate)
	setNum(&s.HammaliRate, f.HammaliRate)
	setNum(&s.Freight, f.Freight)
	setNum(&s.RateDiff, f.RateDiff)
	setNum(&s.QualityDiff, f.QualityDiff)
	setStr(&s.QualityDiffComment, f.QualityDiffComment)
	setNum(&s.MoistureDed, f.MoistureDed)
	setStr(&s.MoistureDedComment, f.MoistureDedComment)
	setNum(&s.TDS, f.TDS)

	setDate(&s.Instalment1Date, f.Instalment1Date)
	setNum(&s.Instalment1Amount, f.Instalment1Amount)
	setStr(&s.Instalment1PaymentMethod, f.Instalment1PaymentMethod)
	setStr(&s.Instalment1PaymentBankAccount, f.Instalment1PaymentBankAccount)
	setStr(&s.Instalment1Comment, f.Instalment1Comment)

	setDate(&s.Instalment2Date, f.Instalment2Date)
	setNum(&s.Instalment2Amount, f.Instalment2Amount)
	setStr(&s.Instalment2PaymentMethod, f.Instalment2PaymentMethod)
	setStr(&s.Instalment2PaymentBankAccount, f.Instalment2PaymentBankAccount)
	setStr(&s.Instalment2Comment, f.Instalment2Comment)

	setDate(&s.Instalment3Date, f.Instalment3Date)
	setNum(&s.Instalment3Amount, f.Instalment3Amount)
	setStr(&s.Instalment3PaymentMethod, f.Instalment3PaymentMethod)
	setStr(&s.Instalment3PaymentBankAccount, f.Instalment3PaymentBankAccount)
	setStr(&s.Instalment3Comment, f.Instalment3Comment)

	setDate(&s.Instalment4Date, f.Instalment4Date)
	setNum(&s.Instalment4Amount, f.Instalment4Amount)
	setStr(&s.Instalment4PaymentMethod, f.Instalment4PaymentMethod)
	setStr(&s.Instalment4PaymentBankAccount, f.Instalment4PaymentBankAccount)
	setStr(&s.Instalment4Comment, f.Instalment4Comment)

	setDate(&s.Instalment5Date, f.Instalment5Date)
	setNum(&s.Instalment5Amount, f.Instalment5Amount)
	setStr(&s.Instalment5PaymentMethod, f.Instalment5PaymentMethod)
	setStr(&s.Instalment5PaymentBankAccount, f.Instalment5PaymentBankAccount)
	setStr(&s.Instalment5Comment, f.Instalment5Comment)

	setStr(&s.PreparedBy, f.PreparedBy)
	setStr(&s.AuthorisedSign, f.AuthorisedSign)
	setStr(&s.UnloadingGodown, f.UnloadingGodown)
}

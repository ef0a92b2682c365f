package models

import "time"

// Rate basis values. Anything else prices the purchase at zero.
const (
	RateBasisQuintal = "Quintal"
	RateBasisKhandi  = "Khandi"
)

const DefaultDocumentType = "Purchase Slip"

// Slip is one paddy purchase transaction: the raw form fields plus
// every derived amount, stored as a single flat row. ID and BillNo are
// assigned on insert and never change.
type Slip struct {
	ID     int64 `json:"id" db:"id" bson:"_id"`
	BillNo int64 `json:"bill_no" db:"bill_no" bson:"bill_no"`

	CompanyName     string     `json:"company_name" db:"company_name" bson:"company_name"`
	CompanyAddress  string     `json:"company_address" db:"company_address" bson:"company_address"`
	DocumentType    string     `json:"document_type" db:"document_type" bson:"document_type"`
	VehicleNo       string     `json:"vehicle_no" db:"vehicle_no" bson:"vehicle_no"`
	Date            *time.Time `json:"date" db:"date" bson:"date"`
	PartyName       string     `json:"party_name" db:"party_name" bson:"party_name"`
	MobileNumber    string     `json:"mobile_number" db:"mobile_number" bson:"mobile_number"`
	MaterialName    string     `json:"material_name" db:"material_name" bson:"material_name"`
	TicketNo        string     `json:"ticket_no" db:"ticket_no" bson:"ticket_no"`
	Broker          string     `json:"broker" db:"broker" bson:"broker"`
	TermsOfDelivery string     `json:"terms_of_delivery" db:"terms_of_delivery" bson:"terms_of_delivery"`
	SupInvNo        string     `json:"sup_inv_no" db:"sup_inv_no" bson:"sup_inv_no"`
	GSTNo           string     `json:"gst_no" db:"gst_no" bson:"gst_no"`

	Bags          float64 `json:"bags" db:"bags" bson:"bags"`
	AvgBagWeight  float64 `json:"avg_bag_weight" db:"avg_bag_weight" bson:"avg_bag_weight"`
	NetWeightKG   float64 `json:"net_weight_kg" db:"net_weight_kg" bson:"net_weight_kg"`
	GunnyWeightKG float64 `json:"gunny_weight_kg" db:"gunny_weight_kg" bson:"gunny_weight_kg"`
	FinalWeightKG float64 `json:"final_weight_kg" db:"final_weight_kg" bson:"final_weight_kg"`
	WeightQuintal float64 `json:"weight_quintal" db:"weight_quintal" bson:"weight_quintal"`
	WeightKhandi  float64 `json:"weight_khandi" db:"weight_khandi" bson:"weight_khandi"`

	RateBasis           string  `json:"rate_basis" db:"rate_basis" bson:"rate_basis"`
	RateValue           float64 `json:"rate_value" db:"rate_value" bson:"rate_value"`
	TotalPurchaseAmount float64 `json:"total_purchase_amount" db:"total_purchase_amount" bson:"total_purchase_amount"`

	BankCommission     float64 `json:"bank_commission" db:"bank_commission" bson:"bank_commission"`
	Postage            float64 `json:"postage" db:"postage" bson:"postage"`
	BatavPercent       float64 `json:"batav_percent" db:"batav_percent" bson:"batav_percent"`
	Batav              float64 `json:"batav" db:"batav" bson:"batav"`
	ShortagePercent    float64 `json:"shortage_percent" db:"shortage_percent" bson:"shortage_percent"`
	Shortage           float64 `json:"shortage" db:"shortage" bson:"shortage"`
	DalaliRate         float64 `json:"dalali_rate" db:"dalali_rate" bson:"dalali_rate"`
	Dalali             float64 `json:"dalali" db:"dalali" bson:"dalali"`
	HammaliRate        float64 `json:"hammali_rate" db:"hammali_rate" bson:"hammali_rate"`
	Hammali            float64 `json:"hammali" db:"hammali" bson:"hammali"`
	Freight            float64 `json:"freight" db:"freight" bson:"freight"`
	RateDiff           float64 `json:"rate_diff" db:"rate_diff" bson:"rate_diff"`
	QualityDiff        float64 `json:"quality_diff" db:"quality_diff" bson:"quality_diff"`
	QualityDiffComment string  `json:"quality_diff_comment" db:"quality_diff_comment" bson:"quality_diff_comment"`
	MoistureDed        float64 `json:"moisture_ded" db:"moisture_ded" bson:"moisture_ded"`
	MoistureDedComment string  `json:"moisture_ded_comment" db:"moisture_ded_comment" bson:"moisture_ded_comment"`
	TDS                float64 `json:"tds" db:"tds" bson:"tds"`
	TotalDeduction     float64 `json:"total_deduction" db:"total_deduction" bson:"total_deduction"`
	PayableAmount      float64 `json:"payable_amount" db:"payable_amount" bson:"payable_amount"`

	Instalment1Date               *time.Time `json:"instalment_1_date" db:"instalment_1_date" bson:"instalment_1_date"`
	Instalment1Amount             float64    `json:"instalment_1_amount" db:"instalment_1_amount" bson:"instalment_1_amount"`
	Instalment1PaymentMethod      string     `json:"instalment_1_payment_method" db:"instalment_1_payment_method" bson:"instalment_1_payment_method"`
	Instalment1PaymentBankAccount string     `json:"instalment_1_payment_bank_account" db:"instalment_1_payment_bank_account" bson:"instalment_1_payment_bank_account"`
	Instalment1Comment            string     `json:"instalment_1_comment" db:"instalment_1_comment" bson:"instalment_1_comment"`

	Instalment2Date               *time.Time `json:"instalment_2_date" db:"instalment_2_date" bson:"instalment_2_date"`
	Instalment2Amount             float64    `json:"instalment_2_amount" db:"instalment_2_amount" bson:"instalment_2_amount"`
	Instalment2PaymentMethod      string     `json:"instalment_2_payment_method" db:"instalment_2_payment_method" bson:"instalment_2_payment_method"`
	Instalment2PaymentBankAccount string     `json:"instalment_2_payment_bank_account" db:"instalment_2_payment_bank_account" bson:"instalment_2_payment_bank_account"`
	Instalment2Comment            string     `json:"instalment_2_comment" db:"instalment_2_comment" bson:"instalment_2_comment"`

	Instalment3Date               *time.Time `json:"instalment_3_date" db:"instalment_3_date" bson:"instalment_3_date"`
	Instalment3Amount             float64    `json:"instalment_3_amount" db:"instalment_3_amount" bson:"instalment_3_amount"`
	Instalment3PaymentMethod      string     `json:"instalment_3_payment_method" db:"instalment_3_payment_method" bson:"instalment_3_payment_method"`
	Instalment3PaymentBankAccount string     `json:"instalment_3_payment_bank_account" db:"instalment_3_payment_bank_account" bson:"instalment_3_payment_bank_account"`
	Instalment3Comment            string     `json:"instalment_3_comment" db:"instalment_3_comment" bson:"instalment_3_comment"`

	Instalment4Date               *time.Time `json:"instalment_4_date" db:"instalment_4_date" bson:"instalment_4_date"`
	Instalment4Amount             float64    `json:"instalment_4_amount" db:"instalment_4_amount" bson:"instalment_4_amount"`
	Instalment4PaymentMethod      string     `json:"instalment_4_payment_method" db:"instalment_4_payment_method" bson:"instalment_4_payment_method"`
	Instalment4PaymentBankAccount string     `json:"instalment_4_payment_bank_account" db:"instalment_4_payment_bank_account" bson:"instalment_4_payment_bank_account"`
	Instalment4Comment            string     `json:"instalment_4_comment" db:"instalment_4_comment" bson:"instalment_4_comment"`

	Instalment5Date               *time.Time `json:"instalment_5_date" db:"instalment_5_date" bson:"instalment_5_date"`
	Instalment5Amount             float64    `json:"instalment_5_amount" db:"instalment_5_amount" bson:"instalment_5_amount"`
	Instalment5PaymentMethod      string     `json:"instalment_5_payment_method" db:"instalment_5_payment_method" bson:"instalment_5_payment_method"`
	Instalment5PaymentBankAccount string     `json:"instalment_5_payment_bank_account" db:"instalment_5_payment_bank_account" bson:"instalment_5_payment_bank_account"`
	Instalment5Comment            string     `json:"instalment_5_comment" db:"instalment_5_comment" bson:"instalment_5_comment"`

	PreparedBy       string `json:"prepared_by" db:"prepared_by" bson:"prepared_by"`
	AuthorisedSign   string `json:"authorised_sign" db:"authorised_sign" bson:"authorised_sign"`
	UnloadingGodown  string `json:"paddy_unloading_godown" db:"paddy_unloading_godown" bson:"paddy_unloading_godown"`

	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`

	// Computed on read, never stored.
	TotalPaidAmount float64 `json:"total_paid_amount" db:"-" bson:"-"`
	BalanceAmount   float64 `json:"balance_amount" db:"-" bson:"-"`

	// Display strings filled in for responses and print views.
	DateFormatted            string `json:"date_formatted,omitempty" db:"-" bson:"-"`
	Instalment1DateFormatted string `json:"instalment_1_date_formatted,omitempty" db:"-" bson:"-"`
	Instalment2DateFormatted string `json:"instalment_2_date_formatted,omitempty" db:"-" bson:"-"`
	Instalment3DateFormatted string `json:"instalment_3_date_formatted,omitempty" db:"-" bson:"-"`
	Instalment4DateFormatted string `json:"instalment_4_date_formatted,omitempty" db:"-" bson:"-"`
	Instalment5DateFormatted string `json:"instalment_5_date_formatted,omitempty" db:"-" bson:"-"`
}

// InstalmentAmounts returns the five fixed payment slots.
func (s *Slip) InstalmentAmounts() [5]float64 {
	return [5]float64{
		s.Instalment1Amount,
		s.Instalment2Amount,
		s.Instalment3Amount,
		s.Instalment4Amount,
		s.Instalment5Amount,
	}
}

// FormatDates fills the IST display strings for every date field.
func (s *Slip) FormatDates() {
	s.DateFormatted = FormatIST(s.Date)
	s.Instalment1DateFormatted = FormatIST(s.Instalment1Date)
	s.Instalment2DateFormatted = FormatIST(s.Instalment2Date)
	s.Instalment3DateFormatted = FormatIST(s.Instalment3Date)
	s.Instalment4DateFormatted = FormatIST(s.Instalment4Date)
	s.Instalment5DateFormatted = FormatIST(s.Instalment5Date)
}

// SlipSummary is the trimmed row shape the paginated list returns.
type SlipSummary struct {
	ID                int64      `json:"id" db:"id" bson:"_id"`
	BillNo            int64      `json:"bill_no" db:"bill_no" bson:"bill_no"`
	Date              *time.Time `json:"date" db:"date" bson:"date"`
	PartyName         string     `json:"party_name" db:"party_name" bson:"party_name"`
	FinalWeightKG     float64    `json:"final_weight_kg" db:"final_weight_kg" bson:"final_weight_kg"`
	RateBasis         string     `json:"rate_basis" db:"rate_basis" bson:"rate_basis"`
	PayableAmount     float64    `json:"payable_amount" db:"payable_amount" bson:"payable_amount"`
	Instalment1Amount float64    `json:"instalment_1_amount" db:"instalment_1_amount" bson:"instalment_1_amount"`
	Instalment2Amount float64    `json:"instalment_2_amount" db:"instalment_2_amount" bson:"instalment_2_amount"`
	Instalment3Amount float64    `json:"instalment_3_amount" db:"instalment_3_amount" bson:"instalment_3_amount"`
	Instalment4Amount float64    `json:"instalment_4_amount" db:"instalment_4_amount" bson:"instalment_4_amount"`
	Instalment5Amount float64    `json:"instalment_5_amount" db:"instalment_5_amount" bson:"instalment_5_amount"`

	TotalPaidAmount float64 `json:"total_paid_amount" db:"-" bson:"-"`
	BalanceAmount   float64 `json:"balance_amount" db:"-" bson:"-"`
	DateFormatted   string  `json:"date_formatted,omitempty" db:"-" bson:"-"`
}

func (s *SlipSummary) InstalmentAmounts() [5]float64 {
	return [5]float64{
		s.Instalment1Amount,
		s.Instalment2Amount,
		s.Instalment3Amount,
		s.Instalment4Amount,
		s.Instalment5Amount,
	}
}

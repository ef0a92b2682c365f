package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ricemill/models"
)

type PostgresSlipRepo struct {
	DB *sql.DB
}

func NewPostgresSlipRepo(db *sql.DB) *PostgresSlipRepo {
	return &PostgresSlipRepo{DB: db}
}

// slipCols lists every writable column in insert/update order. id and
// bill_no stay out: id is generated, bill_no comes from the bill
// sequence on insert and is immutable afterwards.
var slipCols = []string{
	"company_name", "company_address", "document_type", "vehicle_no", "date",
	"party_name", "mobile_number", "material_name", "ticket_no", "broker",
	"terms_of_delivery", "sup_inv_no", "gst_no",
	"bags", "avg_bag_weight",
	"net_weight_kg", "gunny_weight_kg", "final_weight_kg",
	"weight_quintal", "weight_khandi",
	"rate_basis", "rate_value", "total_purchase_amount",
	"bank_commission", "postage", "batav_percent", "batav",
	"shortage_percent", "shortage", "dalali_rate", "dalali",
	"hammali_rate", "hammali", "freight", "rate_diff",
	"quality_diff", "quality_diff_comment", "moisture_ded", "moisture_ded_comment",
	"tds", "total_deduction", "payable_amount",
	"instalment_1_date", "instalment_1_amount", "instalment_1_payment_method", "instalment_1_payment_bank_account", "instalment_1_comment",
	"instalment_2_date", "instalment_2_amount", "instalment_2_payment_method", "instalment_2_payment_bank_account", "instalment_2_comment",
	"instalment_3_date", "instalment_3_amount", "instalment_3_payment_method", "instalment_3_payment_bank_account", "instalment_3_comment",
	"instalment_4_date", "instalment_4_amount", "instalment_4_payment_method", "instalment_4_payment_bank_account", "instalment_4_comment",
	"instalment_5_date", "instalment_5_amount", "instalment_5_payment_method", "instalment_5_payment_bank_account", "instalment_5_comment",
	"prepared_by", "authorised_sign", "paddy_unloading_godown",
	"created_at",
}

// slipArgs returns the values matching slipCols, same order.
func slipArgs(s *models.Slip) []interface{} {
	return []interface{}{
		s.CompanyName, s.CompanyAddress, s.DocumentType, s.VehicleNo, s.Date,
		s.PartyName, s.MobileNumber, s.MaterialName, s.TicketNo, s.Broker,
		s.TermsOfDelivery, s.SupInvNo, s.GSTNo,
		s.Bags, s.AvgBagWeight,
		s.NetWeightKG, s.GunnyWeightKG, s.FinalWeightKG,
		s.WeightQuintal, s.WeightKhandi,
		s.RateBasis, s.RateValue, s.TotalPurchaseAmount,
		s.BankCommission, s.Postage, s.BatavPercent, s.Batav,
		s.ShortagePercent, s.Shortage, s.DalaliRate, s.Dalali,
		s.HammaliRate, s.Hammali, s.Freight, s.RateDiff,
		s.QualityDiff, s.QualityDiffComment, s.MoistureDed, s.MoistureDedComment,
		s.TDS, s.TotalDeduction, s.PayableAmount,
		s.Instalment1Date, s.Instalment1Amount, s.Instalment1PaymentMethod, s.Instalment1PaymentBankAccount, s.Instalment1Comment,
		s.Instalment2Date, s.Instalment2Amount, s.Instalment2PaymentMethod, s.Instalment2PaymentBankAccount, s.Instalment2Comment,
		s.Instalment3Date, s.Instalment3Amount, s.Instalment3PaymentMethod, s.Instalment3PaymentBankAccount, s.Instalment3Comment,
		s.Instalment4Date, s.Instalment4Amount, s.Instalment4PaymentMethod, s.Instalment4PaymentBankAccount, s.Instalment4Comment,
		s.Instalment5Date, s.Instalment5Amount, s.Instalment5PaymentMethod, s.Instalment5PaymentBankAccount, s.Instalment5Comment,
		s.PreparedBy, s.AuthorisedSign, s.UnloadingGodown,
		s.CreatedAt,
	}
}

// slipDests returns scan targets for id, bill_no followed by slipCols.
func slipDests(s *models.Slip) []interface{} {
	return []interface{}{
		&s.ID, &s.BillNo,
		&s.CompanyName, &s.CompanyAddress, &s.DocumentType, &s.VehicleNo, &s.Date,
		&s.PartyName, &s.MobileNumber, &s.MaterialName, &s.TicketNo, &s.Broker,
		&s.TermsOfDelivery, &s.SupInvNo, &s.GSTNo,
		&s.Bags, &s.AvgBagWeight,
		&s.NetWeightKG, &s.GunnyWeightKG, &s.FinalWeightKG,
		&s.WeightQuintal, &s.WeightKhandi,
		&s.RateBasis, &s.RateValue, &s.TotalPurchaseAmount,
		&s.BankCommission, &s.Postage, &s.BatavPercent, &s.Batav,
		&s.ShortagePercent, &s.Shortage, &s.DalaliRate, &s.Dalali,
		&s.HammaliRate, &s.Hammali, &s.Freight, &s.RateDiff,
		&s.QualityDiff, &s.QualityDiffComment, &s.MoistureDed, &s.MoistureDedComment,
		&s.TDS, &s.TotalDeduction, &s.PayableAmount,
		&s.Instalment1Date, &s.Instalment1Amount, &s.Instalment1PaymentMethod, &s.Instalment1PaymentBankAccount, &s.Instalment1Comment,
		&s.Instalment2Date, &s.Instalment2Amount, &s.Instalment2PaymentMethod, &s.Instalment2PaymentBankAccount, &s.Instalment2Comment,
		&s.Instalment3Date, &s.Instalment3Amount, &s.Instalment3PaymentMethod, &s.Instalment3PaymentBankAccount, &s.Instalment3Comment,
		&s.Instalment4Date, &s.Instalment4Amount, &s.Instalment4PaymentMethod, &s.Instalment4PaymentBankAccount, &s.Instalment4Comment,
		&s.Instalment5Date, &s.Instalment5Amount, &s.Instalment5PaymentMethod, &s.Instalment5PaymentBankAccount, &s.Instalment5Comment,
		&s.PreparedBy, &s.AuthorisedSign, &s.UnloadingGodown,
		&s.CreatedAt,
	}
}

func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ",")
}

func (r *PostgresSlipRepo) Insert(slip *models.Slip) error {
	if slip.CreatedAt.IsZero() {
		slip.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO purchase_slips (%s)
		VALUES (%s)
		RETURNING id, bill_no
	`, strings.Join(slipCols, ","), placeholders(len(slipCols)))

	return r.DB.QueryRow(query, slipArgs(slip)...).Scan(&slip.ID, &slip.BillNo)
}

func (r *PostgresSlipRepo) Update(slip *models.Slip) error {
	sets := make([]string, len(slipCols))
	for i, col := range slipCols {
		sets[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}
	query := fmt.Sprintf(`
		UPDATE purchase_slips SET %s WHERE id=$%d
	`, strings.Join(sets, ","), len(slipCols)+1)

	args := append(slipArgs(slip), slip.ID)
	_, err := r.DB.Exec(query, args...)
	return err
}

func (r *PostgresSlipRepo) GetByID(id int64) (*models.Slip, error) {
	query := fmt.Sprintf(`
		SELECT id, bill_no, %s FROM purchase_slips WHERE id=$1
	`, strings.Join(slipCols, ","))

	slip := &models.Slip{}
	err := r.DB.QueryRow(query, id).Scan(slipDests(slip)...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return slip, nil
}

func (r *PostgresSlipRepo) ListPage(offset, limit int) ([]*models.SlipSummary, int, error) {
	rows, err := r.DB.Query(`
		SELECT id, bill_no, date, party_name, final_weight_kg, rate_basis,
		       payable_amount, instalment_1_amount, instalment_2_amount,
		       instalment_3_amount, instalment_4_amount, instalment_5_amount
		FROM purchase_slips
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var slips []*models.SlipSummary
	for rows.Next() {
		s := &models.SlipSummary{}
		err := rows.Scan(
			&s.ID, &s.BillNo, &s.Date, &s.PartyName, &s.FinalWeightKG, &s.RateBasis,
			&s.PayableAmount, &s.Instalment1Amount, &s.Instalment2Amount,
			&s.Instalment3Amount, &s.Instalment4Amount, &s.Instalment5Amount,
		)
		if err != nil {
			return nil, 0, err
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM purchase_slips`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return slips, total, nil
}

func (r *PostgresSlipRepo) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM purchase_slips WHERE id=$1`, id)
	return err
}

package repository

import (
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"ricemill/models"
)

func TestSlipColumnOrderConsistent(t *testing.T) {
	s := &models.Slip{}
	if got, want := len(slipArgs(s)), len(slipCols); got != want {
		t.Fatalf("slipArgs returns %d values for %d columns", got, want)
	}
	if got, want := len(slipDests(s)), len(slipCols)+2; got != want {
		t.Fatalf("slipDests returns %d targets, want %d (id, bill_no + columns)", got, want)
	}
}

func TestPostgresSlipRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO purchase_slips").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bill_no"}).AddRow(int64(12), int64(1041)))

	repo := NewPostgresSlipRepo(db)
	slip := &models.Slip{PartyName: "Shree Traders", RateBasis: models.RateBasisQuintal}
	if err := repo.Insert(slip); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if slip.ID != 12 || slip.BillNo != 1041 {
		t.Errorf("id=%d bill_no=%d, want 12 and 1041", slip.ID, slip.BillNo)
	}
	if slip.CreatedAt.IsZero() {
		t.Error("Insert should stamp created_at when unset")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresSlipRepoGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, bill_no, .+ FROM purchase_slips WHERE id=").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresSlipRepo(db)
	slip, err := repo.GetByID(99)
	if err != nil {
		t.Fatalf("GetByID on a missing row should not error, got %v", err)
	}
	if slip != nil {
		t.Errorf("GetByID on a missing row = %+v, want nil", slip)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresSlipRepoListPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	defer db.Close()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, models.IST)
	cols := []string{
		"id", "bill_no", "date", "party_name", "final_weight_kg", "rate_basis",
		"payable_amount", "instalment_1_amount", "instalment_2_amount",
		"instalment_3_amount", "instalment_4_amount", "instalment_5_amount",
	}
	mock.ExpectQuery("SELECT id, bill_no, date, party_name").
		WithArgs(2, 4).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(8), int64(1040), date, "Shree Traders", 950.0, "Quintal", 19000.0, 500.0, 0.0, 0.0, 0.0, 0.0).
			AddRow(int64(7), int64(1039), nil, "Mahadev Agro", 480.0, "Khandi", 6400.0, 0.0, 0.0, 0.0, 0.0, 0.0))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	repo := NewPostgresSlipRepo(db)
	slips, total, err := repo.ListPage(4, 2)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6", total)
	}
	if len(slips) != 2 {
		t.Fatalf("got %d rows, want 2", len(slips))
	}
	if slips[0].ID != 8 || slips[0].PartyName != "Shree Traders" {
		t.Errorf("first row = %+v", slips[0])
	}
	if slips[1].Date != nil {
		t.Errorf("second row date = %v, want nil", slips[1].Date)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresSlipRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM purchase_slips WHERE id=").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresSlipRepo(db)
	if err := repo.Delete(5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

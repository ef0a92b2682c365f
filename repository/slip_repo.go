package repository

import (
	"ricemill/models"
)

// SlipRepository is the record store for purchase slips. Insert assigns
// ID and BillNo on the slip; GetByID returns (nil, nil) when absent.
type SlipRepository interface {
	Insert(slip *models.Slip) error
	Update(slip *models.Slip) error
	GetByID(id int64) (*models.Slip, error)
	ListPage(offset, limit int) ([]*models.SlipSummary, int, error)
	Delete(id int64) error
}

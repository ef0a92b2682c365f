package repository

import (
	"ricemill/models"
)

// PDFRepository provides the data needed to render a slip document.
type PDFRepository struct {
	SlipRepo SlipRepository
}

func NewPDFRepository(slipRepo SlipRepository) *PDFRepository {
	return &PDFRepository{SlipRepo: slipRepo}
}

// GetSlipForPDF fetches a single slip by ID for rendering.
func (r *PDFRepository) GetSlipForPDF(id int64) (*models.Slip, error) {
	return r.SlipRepo.GetByID(id)
}

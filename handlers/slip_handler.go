package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"ricemill/calc"
	"ricemill/models"
	"ricemill/repository"
)

type SlipHandler struct {
	Repo repository.SlipRepository
}

type slipCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SlipID  int64  `json:"slip_id"`
	BillNo  int64  `json:"bill_no"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type slipListResponse struct {
	Success    bool                  `json:"success"`
	Slips      []*models.SlipSummary `json:"slips"`
	Pagination pagination            `json:"pagination"`
}

type slipResponse struct {
	Success bool         `json:"success"`
	Slip    *models.Slip `json:"slip"`
}

// CreateSlip accepts a raw slip payload, derives every computed field
// and inserts the record. The bill number comes from the store's
// monotonic sequence.
func (h *SlipHandler) CreateSlip(w http.ResponseWriter, r *http.Request) {
	var form models.SlipForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	slip := &models.Slip{DocumentType: models.DefaultDocumentType}
	form.Apply(slip)
	calc.Recalculate(slip)

	if slip.Date == nil {
		now := time.Now().In(models.IST)
		slip.Date = &now
	}

	if err := h.Repo.Insert(slip); err != nil {
		log.Printf("Error adding slip: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, slipCreatedResponse{
		Success: true,
		Message: "Purchase slip saved successfully",
		SlipID:  slip.ID,
		BillNo:  slip.BillNo,
	})
}

// ListSlips returns one page of slip summaries, newest first, with the
// payment totals recomputed from the stored instalment amounts.
func (h *SlipHandler) ListSlips(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 50
	}
	offset := (page - 1) * limit

	slips, total, err := h.Repo.ListPage(offset, limit)
	if err != nil {
		log.Printf("Error fetching slips: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if slips == nil {
		slips = []*models.SlipSummary{}
	}

	for _, s := range slips {
		s.TotalPaidAmount, s.BalanceAmount = calc.PaymentTotals(s.PayableAmount, s.InstalmentAmounts())
		s.DateFormatted = models.FormatIST(s.Date)
	}

	writeJSON(w, http.StatusOK, slipListResponse{
		Success: true,
		Slips:   slips,
		Pagination: pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	})
}

// GetSlipByID returns the full record with payment totals and
// formatted dates; 404 when absent.
func (h *SlipHandler) GetSlipByID(w http.ResponseWriter, r *http.Request, id string) {
	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid slip ID"})
		return
	}

	slip, err := h.Repo.GetByID(slipID)
	if err != nil {
		log.Printf("Error fetching slip: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if slip == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Slip not found"})
		return
	}

	slip.TotalPaidAmount, slip.BalanceAmount = calc.PaymentTotals(slip.PayableAmount, slip.InstalmentAmounts())
	slip.FormatDates()

	writeJSON(w, http.StatusOK, slipResponse{Success: true, Slip: slip})
}

// UpdateSlip merges a partial payload over the stored record and
// recomputes every derived field from the merged raw inputs. Last
// write wins; id and bill_no never change.
func (h *SlipHandler) UpdateSlip(w http.ResponseWriter, r *http.Request, id string) {
	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid slip ID"})
		return
	}

	var form models.SlipForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	slip, err := h.Repo.GetByID(slipID)
	if err != nil {
		log.Printf("Error updating slip: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if slip == nil {
		slip = &models.Slip{ID: slipID}
	}

	form.Apply(slip)
	calc.Recalculate(slip)

	if err := h.Repo.Update(slip); err != nil {
		log.Printf("Error updating slip: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, slipCreatedResponse{
		Success: true,
		Message: "Purchase slip updated successfully",
		SlipID:  slip.ID,
		BillNo:  slip.BillNo,
	})
}

// DeleteSlip removes a record by identity. No soft delete, no cascade.
func (h *SlipHandler) DeleteSlip(w http.ResponseWriter, r *http.Request, id string) {
	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid slip ID"})
		return
	}

	if err := h.Repo.Delete(slipID); err != nil {
		log.Printf("Error deleting slip: %v", err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Slip deleted successfully"})
}

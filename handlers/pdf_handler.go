package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"ricemill/repository"
	"ricemill/utils"
)

type PDFHandler struct {
	Repo *repository.PDFRepository
	// Supported is resolved once at startup: false when no headless
	// Chrome binary exists on the host.
	Supported bool
	SavePath  string
}

// SlipPDF generates the slip document and streams it as a download.
// The on-disk copy is transient and removed after the response is
// sent, whatever the outcome of the send.
func (h *PDFHandler) SlipPDF(w http.ResponseWriter, r *http.Request, id string) {
	if !h.Supported {
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{
			Success: false,
			Message: utils.ErrPDFUnavailable.Error(),
		})
		return
	}

	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid slip ID"})
		return
	}

	pdfBytes, err := utils.GenerateSlipPDF(h.Repo, slipID)
	if err != nil {
		log.Printf("Error generating PDF for slip %d: %v", slipID, err)
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if pdfBytes == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "Slip not found"})
		return
	}

	tmpPDF, err := os.CreateTemp("", "purchase_slip_*.pdf")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	tmpPath := tmpPDF.Name()
	defer func() {
		// Cleanup failures must not mask the response.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpPDF.Write(pdfBytes); err != nil {
		tmpPDF.Close()
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	tmpPDF.Close()

	if h.SavePath != "" {
		if err := os.MkdirAll(h.SavePath, os.ModePerm); err == nil {
			saved := filepath.Join(h.SavePath, fmt.Sprintf("purchase_slip_%d.pdf", slipID))
			if err := os.WriteFile(saved, pdfBytes, 0644); err != nil {
				log.Printf("failed to save PDF copy for slip %d: %v", slipID, err)
			}
		}
	}

	if utils.R2Configured() {
		if url, err := utils.UploadToR2(pdfBytes, fmt.Sprintf("purchase_slip_%d.pdf", slipID), "application/pdf"); err != nil {
			log.Printf("failed to upload PDF for slip %d: %v", slipID, err)
		} else {
			log.Printf("uploaded slip %d PDF to %s", slipID, url)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="purchase_slip_%d.pdf"`, slipID))
	http.ServeFile(w, r, tmpPath)
}

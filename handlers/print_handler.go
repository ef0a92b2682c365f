package handlers

import (
	"log"
	"net/http"
	"strconv"

	"ricemill/repository"
	"ricemill/utils"
)

type PrintHandler struct {
	Repo repository.SlipRepository
}

// PrintSlip renders the server-side HTML print view with every
// computed and formatted field resolved.
func (h *PrintHandler) PrintSlip(w http.ResponseWriter, r *http.Request, id string) {
	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid slip ID", http.StatusBadRequest)
		return
	}

	slip, err := h.Repo.GetByID(slipID)
	if err != nil {
		log.Printf("Error rendering print view: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if slip == nil {
		http.Error(w, "Slip not found", http.StatusNotFound)
		return
	}

	html, err := utils.RenderSlipHTML(slip)
	if err != nil {
		log.Printf("Error rendering print view: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"ricemill/models"
	"ricemill/repository"
)

type GodownHandler struct {
	Repo repository.GodownRepository
}

type godownListResponse struct {
	Success bool                     `json:"success"`
	Godowns []models.UnloadingGodown `json:"godowns"`
}

type godownAddedResponse struct {
	Success bool                     `json:"success"`
	Godown  *models.UnloadingGodown  `json:"godown"`
	Godowns []models.UnloadingGodown `json:"godowns,omitempty"`
	Message string                   `json:"message"`
}

// ListGodowns returns every godown name for the dropdown, name ASC.
func (h *GodownHandler) ListGodowns(w http.ResponseWriter, r *http.Request) {
	godowns, err := h.Repo.ListAll()
	if err != nil {
		log.Printf("Error fetching unloading godowns: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if godowns == nil {
		godowns = []models.UnloadingGodown{}
	}

	writeJSON(w, http.StatusOK, godownListResponse{Success: true, Godowns: godowns})
}

// AddGodown creates a godown name on demand. Re-adding an existing
// name (exact, case-sensitive match) returns the existing entry
// instead of erroring.
func (h *GodownHandler) AddGodown(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Godown name is required"})
		return
	}

	existing, err := h.Repo.FindByName(name)
	if err != nil {
		log.Printf("Error adding unloading godown: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, godownAddedResponse{
			Success: true,
			Godown:  existing,
			Message: "Godown already exists",
		})
		return
	}

	godown, err := h.Repo.Insert(name)
	if err != nil {
		log.Printf("Error adding unloading godown: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	godowns, err := h.Repo.ListAll()
	if err != nil {
		log.Printf("Error refreshing unloading godowns: %v", err)
		writeJSON(w, http.StatusInternalServerError, ApiResponse{Success: false, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, godownAddedResponse{
		Success: true,
		Godown:  godown,
		Godowns: godowns,
		Message: "Godown added successfully",
	})
}

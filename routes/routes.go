package routes

import (
	"net/http"
	"strings"

	"ricemill/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, h http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	slipHandler *handlers.SlipHandler,
	godownHandler *handlers.GodownHandler,
	pdfHandler *handlers.PDFHandler,
	printHandler *handlers.PrintHandler,
	backupHandler *handlers.BackupHandler,
) {
	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	// Slip routes
	handle("/api/add-slip", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		slipHandler.CreateSlip(w, r)
	})

	handle("/api/slips", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		slipHandler.ListSlips(w, r)
	})

	// Get / update / delete slip by ID, plus the PDF download
	handle("/api/slip/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/slip/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if rest, ok := strings.CutSuffix(id, "/pdf"); ok {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			pdfHandler.SlipPDF(w, r, rest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			slipHandler.GetSlipByID(w, r, id)
		case http.MethodPut:
			slipHandler.UpdateSlip(w, r, id)
		case http.MethodDelete:
			slipHandler.DeleteSlip(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Print view
	handle("/print/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/print/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		printHandler.PrintSlip(w, r, id)
	})

	// Unloading godown dropdown
	handle("/api/unloading-godowns", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			godownHandler.ListGodowns(w, r)
		case http.MethodPost:
			godownHandler.AddGodown(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Database backup
	handle("/api/backup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		backupHandler.Backup(w, r)
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/backup"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/config"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/inventory"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/middleware"
)

// Router wraps the mux router and the service layer
type Router struct {
	*mux.Router
	svc    *inventory.Service
	backup *backup.Manager
	cfg    *config.Config
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(svc *inventory.Service, bm *backup.Manager, cfg *config.Config) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		svc:    svc,
		backup: bm,
		cfg:    cfg,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	// Assets
	api.HandleFunc("/assets", r.listAssets).Methods("GET")
	api.HandleFunc("/assets", r.createAsset).Methods("POST")
	api.HandleFunc("/assets/next-code", r.nextAssetCode).Methods("GET")
	api.HandleFunc("/assets/{id}", r.getAsset).Methods("GET")
	api.HandleFunc("/assets/{id}", r.updateAsset).Methods("PUT")
	api.HandleFunc("/assets/{id}", r.deleteAsset).Methods("DELETE")
	api.HandleFunc("/assets/{id}/depreciation", r.assetDepreciation).Methods("GET")

	// Dependencies
	api.HandleFunc("/dependencies", r.listDependencies).Methods("GET")
	api.HandleFunc("/dependencies", r.saveDependency).Methods("POST")
	api.HandleFunc("/dependencies/{id}", r.getDependency).Methods("GET")
	api.HandleFunc("/dependencies/{id}", r.updateDependency).Methods("PUT")
	api.HandleFunc("/dependencies/{id}", r.deleteDependency).Methods("DELETE")

	// Custodians
	api.HandleFunc("/custodians", r.listCustodians).Methods("GET")
	api.HandleFunc("/custodians", r.saveCustodian).Methods("POST")
	api.HandleFunc("/custodians/{id}", r.getCustodian).Methods("GET")
	api.HandleFunc("/custodians/{id}", r.updateCustodian).Methods("PUT")
	api.HandleFunc("/custodians/{id}", r.deleteCustodian).Methods("DELETE")

	// Catalogs (singleton collections)
	api.HandleFunc("/brands", r.listBrands).Methods("GET")
	api.HandleFunc("/brands", r.addBrand).Methods("POST")
	api.HandleFunc("/brands/{name}", r.removeBrand).Methods("DELETE")
	api.HandleFunc("/asset-names", r.listAssetNames).Methods("GET")
	api.HandleFunc("/asset-names", r.addAssetName).Methods("POST")
	api.HandleFunc("/asset-names/{name}", r.removeAssetName).Methods("DELETE")
	api.HandleFunc("/groups", r.listGroups).Methods("GET")
	api.HandleFunc("/groups", r.saveGroup).Methods("POST")
	api.HandleFunc("/groups/{code}", r.removeGroup).Methods("DELETE")

	// Circulars
	api.HandleFunc("/circulars", r.listCirculars).Methods("GET")
	api.HandleFunc("/circulars", r.createCircular).Methods("POST")
	api.HandleFunc("/circulars/{number}/advance", r.advanceCircular).Methods("POST")
	api.HandleFunc("/circulars/{number}", r.deleteCircular).Methods("DELETE")

	// Company config
	api.HandleFunc("/company", r.getCompanyConfig).Methods("GET")
	api.HandleFunc("/company", r.saveCompanyConfig).Methods("PUT")

	// Backup
	api.HandleFunc("/backup/export", r.exportBackup).Methods("GET")
	api.HandleFunc("/backup/import", r.importBackup).Methods("POST")

	// Reports
	api.HandleFunc("/reports/inventory.pdf", r.inventoryReport).Methods("GET")
	api.HandleFunc("/labels/assets.pdf", r.assetLabels).Methods("GET")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

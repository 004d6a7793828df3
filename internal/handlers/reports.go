package handlers

import (
	"net/http"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/services/labels"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/services/reports"
)

// inventoryReport renders the asset inventory with depreciation as PDF
func (r *Router) inventoryReport(w http.ResponseWriter, req *http.Request) {
	asOf := time.Now()
	assets := r.svc.ListAssets()

	rows := make([]reports.Row, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, reports.Row{
			Asset:        a,
			Depreciation: r.svc.Depreciation(&a, asOf),
		})
	}

	company, err := r.svc.GetCompanyConfig()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := reports.GenerateInventoryPDF(company, rows, asOf)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=inventory.pdf")
	w.Write(pdf)
}

// assetLabels renders QR label sheets for every asset
func (r *Router) assetLabels(w http.ResponseWriter, req *http.Request) {
	pdf, err := labels.GenerateAssetLabelsPDF(labels.DefaultSheet, r.svc.ListAssets())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=asset-labels.pdf")
	w.Write(pdf)
}

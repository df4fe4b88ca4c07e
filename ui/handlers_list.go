package ui

import (
	"net/http"

	"showroom/app"
	"showroom/internal/profiling"
)

const (
	msgListLoadFailed = "Failed to load vehicles. Please try again later."
	msgListEmpty      = "No vehicles available at this time."
)

type page struct {
	Page   string
	Title  string
	Status string
}

type listPage struct {
	page
	Cards   []app.Card
	Empty   string
	Summary *app.SummaryView
}

// handleList renders one card per inventory record in spreadsheet order
func (a *App) handleList(w http.ResponseWriter, r *http.Request) {
	data := listPage{page: page{Page: pageList, Title: "Inventory"}}

	records, err := a.inventory.Records(r.Context())
	if err != nil {
		a.logger.Error("[handleList] inventory load failed: %v", err)
		data.Status = msgListLoadFailed
		a.renderTemplate(w, http.StatusInternalServerError, listTemplate, data)
		return
	}

	if len(records) == 0 {
		data.Empty = msgListEmpty
		a.renderTemplate(w, http.StatusOK, listTemplate, data)
		return
	}

	data.Cards = a.presenter.Cards(records)
	summary := a.presenter.Summary(profiling.SummarizeInventory(records, a.inventory.Schema()))
	data.Summary = &summary
	a.logger.Debug("[handleList] rendering %d vehicles", len(data.Cards))
	a.renderTemplate(w, http.StatusOK, listTemplate, data)
}

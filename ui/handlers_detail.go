package ui

import (
	"net/http"
	"strings"

	"showroom/app"
	"showroom/internal/errors"
)

const (
	msgNoVehicle        = "No vehicle specified."
	msgVehicleNotFound  = "Vehicle not found."
	msgDetailLoadFailed = "Failed to load vehicle details."
	detailFallbackTitle = "Vehicle"
)

type detailPage struct {
	page
	Vehicle *app.Detail
}

// handleDetail renders one vehicle selected by the id query parameter
func (a *App) handleDetail(w http.ResponseWriter, r *http.Request) {
	data := detailPage{page: page{Page: pageDetail, Title: detailFallbackTitle}}

	id := strings.TrimSpace(r.URL.Query().Get(app.DetailParam))
	if id == "" {
		data.Status = msgNoVehicle
		a.renderTemplate(w, http.StatusBadRequest, detailTemplate, data)
		return
	}

	record, err := a.inventory.Find(r.Context(), id)
	if err != nil {
		if errors.HasCode(err, errors.CodeNotFound) {
			a.logger.Info("[handleDetail] no vehicle matches %q", id)
			data.Status = msgVehicleNotFound
			a.renderTemplate(w, http.StatusNotFound, detailTemplate, data)
			return
		}
		a.logger.Error("[handleDetail] inventory load failed: %v", err)
		data.Status = msgDetailLoadFailed
		a.renderTemplate(w, http.StatusInternalServerError, detailTemplate, data)
		return
	}

	detail := a.presenter.Detail(record)
	data.Vehicle = &detail
	if detail.Title != "" {
		data.Title = detail.Title
	}
	a.renderTemplate(w, http.StatusOK, detailTemplate, data)
}

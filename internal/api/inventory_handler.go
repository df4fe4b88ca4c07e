package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"showroom/app"
	"showroom/internal"
	"showroom/internal/errors"
	"showroom/internal/profiling"
	"showroom/ports"
)

// InventoryHandler serves the inventory as JSON
type InventoryHandler struct {
	inventory ports.InventoryReader
	presenter *app.Presenter
	logger    *internal.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory ports.InventoryReader, presenter *app.Presenter, logger *internal.Logger) *InventoryHandler {
	if presenter == nil {
		presenter = app.NewPresenter(inventory.Schema(), nil, nil)
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &InventoryHandler{inventory: inventory, presenter: presenter, logger: logger}
}

// ListVehicles returns every card in spreadsheet order
func (h *InventoryHandler) ListVehicles(c *gin.Context) {
	records, err := h.inventory.Records(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	cards := h.presenter.Cards(records)
	c.JSON(http.StatusOK, gin.H{
		"vehicles": cards,
		"count":    len(cards),
	})
}

// GetVehicle returns the detail projection for one identifier
func (h *InventoryHandler) GetVehicle(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		h.writeError(c, errors.MissingParameter("id"))
		return
	}

	record, err := h.inventory.Find(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presenter.Detail(record))
}

// Summary returns price and mileage statistics for the whole inventory
func (h *InventoryHandler) Summary(c *gin.Context) {
	records, err := h.inventory.Records(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	summary := profiling.SummarizeInventory(records, h.inventory.Schema())
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": h.presenter.Summary(summary),
	})
}

// Health reports liveness and, when available, the cache fill time
func (h *InventoryHandler) Health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if loaded, ok := h.inventory.(interface{ LoadedAt() time.Time }); ok {
		if at := loaded.LoadedAt(); !at.IsZero() {
			body["loaded_at"] = at.UTC().Format(time.RFC3339)
		}
	}
	c.JSON(http.StatusOK, body)
}

func (h *InventoryHandler) writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := StatusFor(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("[api] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	message := errors.GetMessage(err)
	if message == "" {
		message = "Internal error"
	}

	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": c.GetString(requestIDKey),
	})
}

// StatusFor maps an error code to its HTTP status
func StatusFor(code string) int {
	switch code {
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeLoadFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

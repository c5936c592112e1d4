package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/align4/internal/service/game"
)

type WatchHandler struct {
	Tables *game.Manager
}

func NewWatchHandler(tables *game.Manager) *WatchHandler {
	return &WatchHandler{Tables: tables}
}

type tablesResponse struct {
	Count  int                 `json:"count"`
	Tables []game.TableSummary `json:"tables"`
}

// ListTables returns a summary of every open table, most recently active first
func (h *WatchHandler) ListTables(c *gin.Context) {
	tables := h.Tables.ListTables()
	c.JSON(http.StatusOK, tablesResponse{Count: len(tables), Tables: tables})
}

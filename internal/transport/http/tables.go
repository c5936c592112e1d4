package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/align4/internal/domain"
	"github.com/iamasit07/align4/internal/service/game"
	"github.com/iamasit07/align4/pkg/auth"
	"github.com/iamasit07/align4/pkg/uid"
	"github.com/rs/zerolog/log"
)

type TableHandler struct {
	Tables *game.Manager
	Tokens *auth.TokenIssuer
}

func NewTableHandler(tables *game.Manager, tokens *auth.TokenIssuer) *TableHandler {
	return &TableHandler{Tables: tables, Tokens: tokens}
}

type createTableResponse struct {
	Token string        `json:"token"`
	Table game.Snapshot `json:"table"`
}

type dropRequest struct {
	Column *int `json:"column" binding:"required"`
}

type dropResponse struct {
	Outcome domain.DropOutcome `json:"outcome"`
	Table   game.Snapshot      `json:"table"`
}

type errorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Table   *game.Snapshot `json:"table,omitempty"`
}

// GetConfig exposes the board constants renderers need before creating a table.
func (h *TableHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.Tables.Dimensions())
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	table, err := h.Tables.CreateTable()
	if err != nil {
		writeError(c, err, nil)
		return
	}

	token, err := h.Tokens.GenerateTableToken(table.ID)
	if err != nil {
		log.Error().Err(err).Str("component", "http").Str("table_id", table.ID).Msg("failed to sign table token")
		h.Tables.RemoveTable(table.ID)
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, createTableResponse{Token: token, Table: table.Snapshot()})
}

func (h *TableHandler) GetTable(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, table.Snapshot())
}

func (h *TableHandler) Drop(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}

	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "body must be {\"column\": <int>}"})
		return
	}

	outcome, snap, err := table.Drop(*req.Column)
	if err != nil {
		writeError(c, err, &snap)
		return
	}
	c.JSON(http.StatusOK, dropResponse{Outcome: outcome, Table: snap})
}

func (h *TableHandler) NewGame(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}

	snap, err := table.NewGame()
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *TableHandler) GetTally(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}
	tally := table.Tally()
	c.JSON(http.StatusOK, gin.H{
		"playerA": tally.PlayerA,
		"playerB": tally.PlayerB,
		"draw":    tally.Draw,
		"total":   tally.Total(),
	})
}

func (h *TableHandler) DeleteTable(c *gin.Context) {
	tableID := c.Param("id")
	if !uid.IsTableID(tableID) {
		writeError(c, game.ErrTableNotFound, nil)
		return
	}
	if err := h.Tables.RemoveTable(tableID); err != nil {
		writeError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TableHandler) table(c *gin.Context) (*game.Table, bool) {
	tableID := c.Param("id")
	if !uid.IsTableID(tableID) {
		writeError(c, game.ErrTableNotFound, nil)
		return nil, false
	}
	table, err := h.Tables.GetTable(tableID)
	if err != nil {
		writeError(c, err, nil)
		return nil, false
	}
	return table, true
}

// writeError maps service and engine errors to a status and a stable code.
// Rejected drops carry the unchanged table so renderers can resync.
func writeError(c *gin.Context, err error, snap *game.Snapshot) {
	code := game.ErrorCode(err)
	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := errorResponse{Error: code, Message: err.Error()}
	if snap != nil && snap.TableID != "" {
		resp.Table = snap
	}
	c.JSON(status, resp)
}

var errorStatus = map[string]int{
	"invalid_column":  http.StatusBadRequest,
	"column_full":     http.StatusConflict,
	"game_over":       http.StatusConflict,
	"table_not_found": http.StatusNotFound,
	"table_closed":    http.StatusGone,
	"too_many_tables": http.StatusServiceUnavailable,
}

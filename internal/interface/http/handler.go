package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/svatek/internal/domain/dashboard"
	"github.com/yanqian/svatek/pkg/metrics"
)

// Board is the dashboard surface the transport needs.
type Board interface {
	Refresh(ctx context.Context, trigger string) (dashboard.State, error)
	Current(ctx context.Context) (dashboard.State, error)
	DismissAlert(ctx context.Context) (dashboard.State, error)
	History(ctx context.Context, limit int) ([]dashboard.LogEntry, error)
	Stats() metrics.RefreshStats
}

// Handler wires the HTTP transport to the dashboard board.
type Handler struct {
	board  Board
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(board Board, logger *slog.Logger) *Handler {
	return &Handler{
		board:  board,
		logger: logger.With("component", "http.handler"),
	}
}

// CurrentBoard returns the display and any pending alert.
func (h *Handler) CurrentBoard(c *gin.Context) {
	state, err := h.board.Current(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "board_unavailable", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, state)
}

// RefreshBoard runs the refresh operation ("refresh now").
func (h *Handler) RefreshBoard(c *gin.Context) {
	state, err := h.board.Refresh(c.Request.Context(), dashboard.TriggerManual)
	if err != nil {
		abortWithError(c, refreshFailure(err, state))
		return
	}
	c.JSON(http.StatusOK, state)
}

// DismissAlert acknowledges the error dialog.
func (h *Handler) DismissAlert(c *gin.Context) {
	state, err := h.board.DismissAlert(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "board_unavailable", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, state)
}

// RefreshHistory lists recent refresh attempts.
func (h *Handler) RefreshHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", err))
			return
		}
		limit = parsed
	}
	entries, err := h.board.History(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_unavailable", errMessage(err), err))
		return
	}
	if entries == nil {
		entries = []dashboard.LogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"refreshes": entries})
}

// RefreshStats reports refresh counters.
func (h *Handler) RefreshStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Stats())
}

// Health reports that the process is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

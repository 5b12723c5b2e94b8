package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/svatek/internal/domain/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Page renders the board as HTML with the refresh button.
func (h *Handler) Page(c *gin.Context) {
	state, err := h.board.Current(c.Request.Context())
	if err != nil {
		h.logger.Error("load board for page failed", "error", err)
		c.String(http.StatusInternalServerError, "board unavailable")
		return
	}
	c.HTML(http.StatusOK, "board.html", state)
}

// PageRefresh handles the form button and redirects back to the board.
// A failed refresh surfaces as the alert on the redirected page.
func (h *Handler) PageRefresh(c *gin.Context) {
	if _, err := h.board.Refresh(c.Request.Context(), dashboard.TriggerManual); err != nil {
		h.logger.Warn("page refresh failed", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// PageDismiss closes the alert from the HTML page.
func (h *Handler) PageDismiss(c *gin.Context) {
	if _, err := h.board.DismissAlert(c.Request.Context()); err != nil {
		h.logger.Warn("dismiss alert failed", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

//go:embed templates/*.html
var templateFiles embed.FS

// viewTemplates parses the embedded page templates.
func viewTemplates() *template.Template {
	funcs := template.FuncMap{
		"billions": func(v float64) float64 { return v / 1e9 },
		"millions": func(v float64) float64 { return v / 1e6 },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html"))
}

type dashboardPage struct {
	Title   string
	Summary models.MarketSummary
}

// Index renders the landing page with the current market summary.
func (h *Handler) Index(c *gin.Context) {
	h.renderSummary(c, "index.html", "Stock Market Analysis")
}

// Dashboard renders the dashboard page with the current market summary.
func (h *Handler) Dashboard(c *gin.Context) {
	h.renderSummary(c, "dashboard.html", "Market Dashboard")
}

// HeatmapPage renders the treemap page; data is fetched client-side from
// /api/v1/heatmap/detailed.
func (h *Handler) HeatmapPage(c *gin.Context) {
	c.HTML(http.StatusOK, "heatmap.html", gin.H{"Title": "Sector Heatmap"})
}

func (h *Handler) renderSummary(c *gin.Context, name, title string) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.HTML(http.StatusOK, name, dashboardPage{Title: title, Summary: summary})
}

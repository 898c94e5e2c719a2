package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"stockboard/internal/charts"
	"stockboard/internal/core"
	applog "stockboard/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Categories   []core.Category
		Units        []string
		StoneVisible bool
	}{
		Categories:   []core.Category{core.CategoryCement, core.CategorySand, core.CategorySteel, core.CategoryStone},
		Units:        core.UnitsFor(core.CategoryCement),
		StoneVisible: false,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed",
			applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type tableRow struct {
	Product    string
	Inventory  string
	UnitsSold  string
	Revenue    string
	Badge      string
	BadgeClass string
}

type tableData struct {
	Rows           []tableRow
	Empty          bool
	Count          int
	TotalRevenue   string
	TotalUnitsSold string
	TotalInventory string
}

// handleTable renders the filtered, sorted table partial with its
// aggregate footer. Rendered partials are cached by normalized query.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	q := ParseQuery(r.URL.Query())
	key := QueryCacheKey(q)
	if html, ok := s.tableCache.Get(key); ok {
		if s.metrics != nil {
			s.metrics.CacheHits.Inc()
		}
		_, _ = w.Write([]byte(html))
		return
	}
	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	dataset, err := s.records.Records(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record source error", applog.FieldError, err)
		InternalServerError("Could not load inventory records").Write(w)
		return
	}

	start := time.Now()
	view := core.ComputeView(dataset, q)
	if s.metrics != nil {
		s.metrics.ViewComputeTime.Observe(time.Since(start).Seconds())
	}

	data := tableData{
		Empty:          len(view.Rows) == 0,
		Count:          view.Totals.Count,
		TotalRevenue:   formatRupees(view.Totals.Revenue),
		TotalUnitsSold: formatGrouped(view.Totals.UnitsSold),
		TotalInventory: formatGrouped(view.Totals.Inventory),
	}
	for _, row := range view.Rows {
		data.Rows = append(data.Rows, tableRow{
			Product:    row.Product,
			Inventory:  formatGrouped(row.Inventory),
			UnitsSold:  formatGrouped(row.UnitsSold),
			Revenue:    formatRupees(row.Revenue),
			Badge:      string(row.Badge),
			BadgeClass: badgeClass(row.Badge),
		})
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "table.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Table template execution failed",
			applog.FieldError, err, "template", "table.html")
		InternalServerError("Could not render the table").Write(w)
		return
	}

	s.tableCache.Set(key, buf.String())
	s.logger.DebugContext(r.Context(), "Table partial rendered",
		applog.FieldOperation, applog.OpRender,
		applog.FieldRowCount, len(data.Rows))
	_, _ = w.Write(buf.Bytes())
}

// handleTiles renders the summary tiles. The headline figures come from
// the summary source and are independent of the table's dataset; only
// the top-product tile is derived from the records.
func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	summary, err := s.summaries.Summary(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Summary source error", applog.FieldError, err)
		InternalServerError("Could not load summary figures").Write(w)
		return
	}

	data := struct {
		TotalRevenue   string
		TotalProducts  string
		StockAvailable string
		MonthlyGrowth  string
		TopProduct     string
		TopRevenue     string
		HasTop         bool
	}{
		TotalRevenue:   formatRupees(summary.TotalRevenue),
		TotalProducts:  formatGrouped(summary.TotalProducts),
		StockAvailable: formatGrouped(summary.StockAvailable),
		MonthlyGrowth:  formatGrowth(summary.MonthlyGrowthPercent),
	}
	if dataset, err := s.records.Records(r.Context()); err == nil {
		if top, ok := core.TopByRevenue(dataset); ok {
			data.HasTop = true
			data.TopProduct = top.Product
			data.TopRevenue = formatRupees(top.Revenue)
		}
	}

	if err := s.templates.ExecuteTemplate(w, "tiles.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Tiles template execution failed",
			applog.FieldError, err, "template", "tiles.html")
		InternalServerError("Could not render the summary tiles").Write(w)
	}
}

func (s *Server) handleRevenueChart(w http.ResponseWriter, r *http.Request) {
	s.writeSeries(w, r, charts.MonthlyRevenue())
}

func (s *Server) handleSalesChart(w http.ResponseWriter, r *http.Request) {
	s.writeSeries(w, r, charts.ProductSales())
}

func (s *Server) writeSeries(w http.ResponseWriter, r *http.Request, series charts.Series) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(series); err != nil {
		s.logger.ErrorContext(r.Context(), "Series encoding failed",
			applog.FieldError, err, "series", series.Title)
	}
}

// handleExport downloads the currently filtered record set. The same
// query parameters as /ui/table apply, so the download matches what the
// table shows.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := ParseQuery(r.URL.Query())
	if err := q.Validate(); err != nil {
		http.Error(w, "invalid query: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	dataset, err := s.records.Records(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record source error", applog.FieldError, err)
		http.Error(w, "could not load inventory records", http.StatusInternalServerError)
		return
	}

	view := core.ComputeView(dataset, q)
	records := make([]core.Record, 0, len(view.Rows))
	for _, row := range view.Rows {
		records = append(records, row.Record)
	}

	var (
		payload     []byte
		contentType string
		filename    string
	)
	switch format := r.URL.Query().Get("format"); format {
	case "csv":
		payload, err = core.ExportCSV(records)
		contentType = "text/csv; charset=utf-8"
		filename = "inventory.csv"
	case "", "json":
		payload, err = core.ExportJSON(records)
		contentType = "application/json"
		filename = "inventory.json"
	default:
		http.Error(w, "unsupported format: "+format, http.StatusBadRequest)
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Export encoding failed",
			applog.FieldOperation, applog.OpExport,
			applog.FieldError, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(payload)

	s.logger.InfoContext(r.Context(), "Export served",
		applog.FieldOperation, applog.OpExport,
		applog.FieldRowCount, len(records),
		"filename", filename)
}

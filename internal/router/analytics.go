package router

import (
	"net/http"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/report"
)

const (
	defaultTrendMonths  = 12
	defaultTopItemLimit = 50
)

func (rt *router) monthlyTrendsHandler(w http.ResponseWriter, r *http.Request) {
	months := intParam(r, "months", defaultTrendMonths)

	trends, err := report.GetMonthlyTrends(rt.db, months)
	if err != nil {
		rt.logger.Error("computing monthly trends", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute monthly trends")
		return
	}

	rt.writeJSON(w, http.StatusOK, trends)
}

func (rt *router) categoryBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	var start, end time.Time

	if value := r.URL.Query().Get("start_date"); value != "" {
		t, err := parseDateParam(value)
		if err != nil {
			rt.writeError(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		start = t
	}

	if value := r.URL.Query().Get("end_date"); value != "" {
		t, err := parseDateParam(value)
		if err != nil {
			rt.writeError(w, http.StatusBadRequest, "invalid end_date")
			return
		}
		end = t
	}

	breakdown, err := report.GetCategoryBreakdown(rt.db, rt.classifier, start, end)
	if err != nil {
		rt.logger.Error("computing category breakdown", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute category breakdown")
		return
	}

	rt.writeJSON(w, http.StatusOK, breakdown)
}

func (rt *router) topItemsHandler(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", defaultTopItemLimit)

	items, err := report.GetTopItems(rt.db, limit)
	if err != nil {
		rt.logger.Error("computing top items", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute top items")
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (rt *router) storeComparisonHandler(w http.ResponseWriter, _ *http.Request) {
	comparison, err := report.GetStoreComparison(rt.db)
	if err != nil {
		rt.logger.Error("computing store comparison", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute store comparison")
		return
	}

	rt.writeJSON(w, http.StatusOK, comparison)
}

func (rt *router) shoppingFrequencyHandler(w http.ResponseWriter, _ *http.Request) {
	frequency, err := report.GetShoppingFrequency(rt.db)
	if err != nil {
		rt.logger.Error("computing shopping frequency", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute shopping frequency")
		return
	}

	rt.writeJSON(w, http.StatusOK, frequency)
}

func (rt *router) priceTrendsHandler(w http.ResponseWriter, r *http.Request) {
	trends, err := report.GetPriceTrends(rt.db, r.URL.Query().Get("item"))
	if err != nil {
		rt.logger.Error("computing price trends", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute price trends")
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{"trends": trends})
}

func (rt *router) summaryHandler(w http.ResponseWriter, _ *http.Request) {
	summary, err := report.GetSummary(rt.db)
	if err != nil {
		rt.logger.Error("computing summary", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute summary")
		return
	}

	rt.writeJSON(w, http.StatusOK, summary)
}

func (rt *router) wasteInsightsHandler(w http.ResponseWriter, _ *http.Request) {
	insights, err := report.GetWasteInsights(rt.db)
	if err != nil {
		rt.logger.Error("computing waste insights", "error", err.Error())
		rt.writeError(w, http.StatusInternalServerError, "unable to compute waste insights")
		return
	}

	rt.writeJSON(w, http.StatusOK, map[string]interface{}{"insights": insights})
}

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/raffopenssh/inspire-austria/internal/catalog"
	"github.com/raffopenssh/inspire-austria/internal/service"
)

type handler struct {
	query   *service.QueryService
	combine *service.CombineService
	logger  *slog.Logger
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		h.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	province := r.URL.Query().Get("province")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.query.Search(r.Context(), q, province, limit)
	if err != nil {
		h.logger.Error("search failed", "query", q, "error", err)
		h.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"count":   len(results),
		"results": results,
	})
}

func (h *handler) datasetSchema(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := h.query.Schema(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, http.StatusNotFound, "dataset not found")
			return
		}
		h.logger.Error("schema lookup failed", "dataset", id, "error", err)
		h.writeError(w, http.StatusInternalServerError, "schema lookup failed")
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) field(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	report, err := h.query.Field(r.Context(), name)
	if err != nil {
		h.logger.Error("field lookup failed", "field", name, "error", err)
		h.writeError(w, http.StatusInternalServerError, "field lookup failed")
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) concepts(w http.ResponseWriter, _ *http.Request) {
	type conceptResponse struct {
		ID     string `json:"id"`
		NameDE string `json:"name_de"`
		NameEN string `json:"name_en"`
	}

	all := catalog.AllConcepts()
	out := make([]conceptResponse, 0, len(all))
	for _, c := range all {
		out = append(out, conceptResponse{ID: c.ID, NameDE: c.NameDE, NameEN: c.NameEN})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"concepts": out})
}

func (h *handler) combineReport(w http.ResponseWriter, r *http.Request) {
	concept := r.URL.Query().Get("concept")
	idsParam := r.URL.Query().Get("ids")

	switch {
	case concept != "":
		report, err := h.combine.ByConcept(r.Context(), concept)
		if err != nil {
			h.logger.Error("combine failed", "concept", concept, "error", err)
			h.writeError(w, http.StatusInternalServerError, "combine analysis failed")
			return
		}
		h.writeJSON(w, http.StatusOK, report)
	case idsParam != "":
		ids := strings.Split(idsParam, ",")
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
		report, err := h.combine.ByIDs(r.Context(), ids)
		if err != nil {
			h.logger.Error("combine failed", "ids", idsParam, "error", err)
			h.writeError(w, http.StatusInternalServerError, "combine analysis failed")
			return
		}
		h.writeJSON(w, http.StatusOK, report)
	default:
		h.writeError(w, http.StatusBadRequest, "provide concept or ids")
	}
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/export"
	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/obs"
	"github.com/cleared-dev/ledger/internal/workspace"
)

func (a *API) view(r *http.Request) (ledger.Query, ledger.View, error) {
	q, err := parseQuery(r.URL.Query(), a.ws.Config.View.DefaultYear)
	if err != nil {
		return q, ledger.View{}, err
	}
	v := ledger.Build(a.ws.Chart.Categories(), a.ws.Journal.Snapshot(), q)
	a.metrics.ViewBuilt()
	return q, v, nil
}

// Ledger returns the computed view for the query parameters.
func (a *API) Ledger(w http.ResponseWriter, r *http.Request) {
	_, v, err := a.view(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Export renders the view as a file download.
func (a *API) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q, v, err := a.view(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report := export.Report{
		Business:    a.ws.Config.Business.Name,
		Period:      q.Filter.Period,
		GeneratedAt: a.now(),
		View:        v,
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, format, report); err != nil {
		a.logger.Error("export failed", zap.String("format", string(format)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ledger-%s.%s"`, report.PeriodLabel(), format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Accounts returns the chart of accounts.
func (a *API) Accounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": a.ws.Chart.Categories()})
}

// Entry returns one journal entry.
func (a *API) Entry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, ok := a.ws.Journal.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("entry %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type crossedRequest struct {
	Crossed *bool  `json:"crossed"`
	Actor   string `json:"actor,omitempty"`
}

// SetCrossed sets the reconciliation flag of one entry.
func (a *API) SetCrossed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req crossedRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Crossed == nil {
		writeError(w, http.StatusBadRequest, "crossed is required")
		return
	}
	actor := req.Actor
	if actor == "" {
		actor = r.Header.Get("X-Actor")
	}
	if actor == "" {
		actor = "anonymous"
	}

	e, event, err := a.ws.Cross(id, *req.Crossed, actor, "http")
	switch {
	case errors.Is(err, workspace.ErrCommit):
		a.logger.Warn("toggle saved but not committed", zap.String("entry_id", id), zap.Error(err))
	case errors.Is(err, ledger.ErrEntryNotFound):
		a.metrics.CrossingToggled(obs.ResultNotFound)
		writeError(w, http.StatusNotFound, fmt.Sprintf("entry %s not found", id))
		return
	case err != nil:
		a.metrics.CrossingToggled(obs.ResultError)
		a.logger.Error("crossing failed", zap.String("entry_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "crossing failed")
		return
	}

	a.metrics.CrossingToggled(obs.ResultOK)
	a.logger.Info("entry crossed",
		zap.String("entry_id", id),
		zap.Bool("crossed", e.IsCrossed),
		zap.String("actor", actor),
		zap.Stringer("event_id", event.EventID),
	)
	writeJSON(w, http.StatusOK, e)
}

// Crossings returns the reconciliation log.
func (a *API) Crossings(w http.ResponseWriter, _ *http.Request) {
	events, err := a.ws.Events()
	if err != nil {
		a.logger.Error("reading crossing log", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "reading crossing log failed")
		return
	}
	if events == nil {
		writeJSON(w, http.StatusOK, map[string]any{"events": []any{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

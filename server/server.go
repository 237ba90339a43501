// Package server exposes the basal pipeline as a small JSON-over-HTTP render
// service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/util"
)

const maxBodyBytes = 8 << 20

// Server answers render requests using the chart defaults from cfg.
type Server struct {
	cfg     config.Config
	metrics *Metrics
	mux     *http.ServeMux
}

// New builds a server and its routes.
func New(cfg config.Config) *Server {
	s := &Server{cfg: cfg, metrics: NewMetrics(), mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	s.mux.HandleFunc("POST /v1/sequences", s.metrics.instrument("sequences", s.handleSequences))
	s.mux.HandleFunc("POST /v1/groups", s.metrics.instrument("groups", s.handleGroups))
	s.mux.HandleFunc("POST /v1/paths", s.metrics.instrument("paths", s.handlePaths))
	s.mux.HandleFunc("POST /v1/chart", s.metrics.instrument("chart", s.handleChart))
	s.mux.HandleFunc("POST /v1/stats", s.metrics.instrument("stats", s.handleStats))
	if cfg.Server.Metrics {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests for up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("basalviz: render service listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("basalviz: render service stopped")
	return nil
}

// request is the body shared by every render endpoint. Zero chart fields
// fall back to the server config.
type request struct {
	Events            []model.BasalEvent `json:"events"`
	Sequence          model.Sequence     `json:"sequence"`
	Start             *int64             `json:"start,omitempty"`
	End               *int64             `json:"end,omitempty"`
	Width             float64            `json:"width,omitempty"`
	Height            float64            `json:"height,omitempty"`
	RateMax           float64            `json:"rateMax,omitempty"`
	FlushBottomOffset *float64           `json:"flushBottomOffset,omitempty"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, bool) {
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), -1)
		return req, false
	}
	s.metrics.events.Add(float64(len(req.Events) + len(req.Sequence)))
	return req, true
}

func (s *Server) chartOptions(req request) render.ChartOptions {
	c := s.cfg.Chart
	opts := render.ChartOptions{
		Width:             c.Width,
		Height:            c.Height,
		RateMax:           c.RateMax,
		FlushBottomOffset: c.FlushBottomOffset,
		MarkerRadius:      c.MarkerRadius,
		Labels:            s.cfg.ClassLabels(),
	}
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}
	if req.RateMax > 0 {
		opts.RateMax = req.RateMax
	}
	if req.FlushBottomOffset != nil {
		opts.FlushBottomOffset = *req.FlushBottomOffset
	}
	return opts
}

// window resolves the request's time bounds. Without explicit bounds it
// covers the UTC day holding the first event.
func window(req request, events []model.BasalEvent) (start, end int64) {
	if len(events) > 0 {
		start = util.DayStart(events[0].UTC)
	}
	if req.Start != nil {
		start = *req.Start
	}
	end = start + util.MsPerDay
	if req.End != nil {
		end = *req.End
	}
	return start, end
}

func (s *Server) handleSequences(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sequences": engine.GetBasalSequences(req.Events),
	})
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	groups := engine.GetBasalPathGroups(req.Events)
	markers := engine.GroupMarkers(groups)
	if markers == nil {
		markers = []model.Marker{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"groups":  groups,
		"markers": markers,
	})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	opts := s.chartOptions(req)

	var peak float64
	for _, e := range req.Sequence {
		peak = max(peak, e.Rate)
		if ref := e.Suppressed.Reference(); ref != nil {
			peak = max(peak, ref.Rate)
		}
	}
	start, end := window(req, req.Sequence)
	if req.Start == nil && req.End == nil && len(req.Sequence) > 0 {
		start, end = req.Sequence[0].UTC, req.Sequence[len(req.Sequence)-1].End()
	}
	x, y := opts.Scales(start, end, peak)

	paths, err := render.GetBasalSequencePaths(req.Sequence, x, y, render.SequencePathOptions{
		FlushBottomOffset: opts.FlushBottomOffset,
	})
	if err != nil {
		s.rejectSequence(w, err)
		return
	}
	s.countPaths(paths)
	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	engine.Normalize(req.Events)
	start, end := window(req, req.Events)
	if end <= start {
		writeError(w, http.StatusBadRequest, "end must be after start", -1)
		return
	}

	chart, err := render.DrawReport(engine.BuildReport(req.Events, start, end), s.chartOptions(req))
	if err != nil {
		s.rejectSequence(w, err)
		return
	}
	s.countPaths(chart.Paths)
	writeJSON(w, http.StatusOK, chart)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	engine.Normalize(req.Events)
	start, end := window(req, req.Events)
	if end <= start {
		writeError(w, http.StatusBadRequest, "end must be after start", -1)
		return
	}
	rep := engine.BuildReport(req.Events, start, end)
	writeJSON(w, http.StatusOK, map[string]any{
		"start":     rep.Start,
		"end":       rep.End,
		"total":     rep.Total,
		"durations": rep.Durations,
		"endpoints": rep.Endpoints,
		"labels":    rep.Labels,
		"markers":   rep.Markers,
	})
}

func (s *Server) rejectSequence(w http.ResponseWriter, err error) {
	var seqErr *render.SequenceError
	if !errors.As(err, &seqErr) {
		writeError(w, http.StatusInternalServerError, err.Error(), -1)
		return
	}
	reason := "mixed_subtypes"
	if errors.Is(err, render.ErrUnknownSubType) {
		reason = "unknown_subtype"
	}
	s.metrics.sequenceErrors.WithLabelValues(reason).Inc()
	writeError(w, http.StatusUnprocessableEntity, err.Error(), seqErr.Index)
}

func (s *Server) countPaths(paths []model.PathDescriptor) {
	for _, p := range paths {
		s.metrics.paths.WithLabelValues(p.Type).Inc()
	}
}

type errorBody struct {
	Error string `json:"error"`
	Index *int   `json:"index,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg string, index int) {
	body := errorBody{Error: msg}
	if index >= 0 {
		body.Index = &index
	}
	writeJSON(w, code, body)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("basalviz: warning: encode response: %v", err)
	}
}

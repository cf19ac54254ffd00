// Package server exposes the simulation core over a JSON HTTP API for the
// quotation and reporting layers.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PSJ84/jssolar-project-portal-sub001/internal/kepco"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/metrics"
	"github.com/PSJ84/jssolar-project-portal-sub001/internal/simulation"
	"github.com/PSJ84/jssolar-project-portal-sub001/pkg/constants"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Options configures the API handler. The default settings snapshot is used
// for simulate requests that do not carry their own.
type Options struct {
	MaxRequestBytes    int64
	RateLimitPerSecond int
	Version            string

	DefaultSettings  simulation.Settings
	FinancingPolicy  simulation.FinancingPolicy
	ChargeSchedule   kepco.ChargeSchedule
	InstallmentTerms kepco.InstallmentTerms
}

type handler struct {
	logger  *zap.Logger
	limiter *rate.Limiter
	opts    Options
}

// NewHandler constructs the HTTP handler serving the simulation API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = constants.DefaultMaxRequestBytes
	}
	if opts.RateLimitPerSecond <= 0 {
		opts.RateLimitPerSecond = constants.DefaultRateLimitPerSecond
	}
	if strings.TrimSpace(opts.Version) == "" {
		opts.Version = "dev"
	}

	h := &handler{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimitPerSecond), opts.RateLimitPerSecond*2),
		opts:    opts,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/simulate", h.handleSimulate)
	mux.HandleFunc("/api/kepco/charge", h.handleCharge)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type simulateRequest struct {
	Input    simulation.AnalysisInput `json:"input"`
	Settings *simulation.Settings     `json:"settings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}

	var req simulateRequest
	if err := h.decode(w, r, &req); err != nil {
		metrics.SimulationsTotal.WithLabelValues(string(req.Input.Variant), "bad_request").Inc()
		return
	}

	settings := h.opts.DefaultSettings
	if req.Settings != nil {
		settings = *req.Settings
	}

	result, err := simulation.Simulate(h.logger, req.Input, settings, h.opts.FinancingPolicy)
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues(string(req.Input.Variant), "invalid").Inc()
		h.logger.Warn("simulation rejected",
			zap.String("op", "server.handleSimulate"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	metrics.SimulationsTotal.WithLabelValues(string(req.Input.Variant), "ok").Inc()
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleCharge(w http.ResponseWriter, r *http.Request) {
	if !h.admit(w, r) {
		return
	}

	var input kepco.ChargeInput
	if err := h.decode(w, r, &input); err != nil {
		metrics.ChargeCalculationsTotal.WithLabelValues(string(input.Payment), "bad_request").Inc()
		return
	}

	result, err := kepco.Calculate(h.logger, input, h.opts.ChargeSchedule, h.opts.InstallmentTerms)
	if err != nil {
		metrics.ChargeCalculationsTotal.WithLabelValues(string(input.Payment), "invalid").Inc()
		h.logger.Warn("charge calculation rejected",
			zap.String("op", "server.handleCharge"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	metrics.ChargeCalculationsTotal.WithLabelValues(string(input.Payment), "ok").Inc()
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.opts.Version})
}

// admit applies the method check and the token-bucket rate limit shared by
// the calculation endpoints.
func (h *handler) admit(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return false
	}
	if !h.limiter.Allow() {
		h.logger.Warn("request rate limited",
			zap.String("op", "server.admit"),
			zap.String("path", r.URL.Path),
		)
		h.writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		return false
	}
	return true
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxRequestBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %s", err))
		return err
	}
	return nil
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

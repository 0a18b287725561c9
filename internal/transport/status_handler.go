// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"errors"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// StatusPath is the REST route served by StatusHandler.
const StatusPath = "/v1/status"

// Status is the importer state reported over REST.
type Status struct {
	Health     string `json:"health"`
	Index      int64  `json:"index"`
	Hash       string `json:"hash"`
	PreGenesis bool   `json:"pre_genesis"`
	Error      string `json:"error,omitempty"`
}

// StatusHandler reports the current fingerprint and health of the importer.
type StatusHandler struct {
	fingerprints FingerprintSource
	health       HealthChecker
	service      string
	marshaler    gwruntime.Marshaler
	logger       *zap.Logger
}

// NewStatusHandler returns a StatusHandler checking health of service.
func NewStatusHandler(logger *zap.Logger, fingerprints FingerprintSource, health HealthChecker, service string) (*StatusHandler, error) {
	if fingerprints == nil || health == nil {
		return nil, errors.New("fingerprint source and health checker are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusHandler{
		fingerprints: fingerprints,
		health:       health,
		service:      service,
		marshaler:    &gwruntime.JSONBuiltin{},
		logger:       logger.Named("status"),
	}, nil
}

// Register mounts the handler on a gateway mux.
func (h *StatusHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodGet, StatusPath, h.serve)
}

func (h *StatusHandler) serve(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	status := Status{Health: grpc_health_v1.HealthCheckResponse_UNKNOWN.String()}
	code := http.StatusOK

	resp, err := h.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: h.service})
	switch {
	case err != nil:
		status.Error = err.Error()
		code = http.StatusServiceUnavailable
	case resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING:
		status.Health = resp.GetStatus().String()
		code = http.StatusServiceUnavailable
	default:
		status.Health = resp.GetStatus().String()
	}

	fp, err := h.fingerprints.Fingerprint(ctx)
	if err != nil {
		status.Error = err.Error()
		code = http.StatusServiceUnavailable
	} else {
		status.Index = fp.Index
		status.Hash = fp.Hash
		status.PreGenesis = fp.IsPreGenesis()
	}

	body, err := h.marshaler.Marshal(status)
	if err != nil {
		h.logger.Error("marshal status", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(status))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write status response", zap.Error(err))
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"
)

const (
	healthOK            = "ok"
	healthDegraded      = "degraded"
	depHealthy          = "healthy"
	depConfigured       = "configured"
	depNotConfigured    = "not configured"
	healthCheckDeadline = 2 * time.Second
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// BrokerState reports whether the AMQP connection has dropped.
type BrokerState interface {
	IsClosed() bool
}

type HealthHandler struct {
	DB             Pinger
	Broker         BrokerState
	MailConfigured bool
	Version        string
	StartTime      time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db Pinger, broker BrokerState, mailConfigured bool, version string) *HealthHandler {
	return &HealthHandler{
		DB:             db,
		Broker:         broker,
		MailConfigured: mailConfigured,
		Version:        version,
		StartTime:      time.Now(),
	}
}

// Handle (GET /healthcheck)
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckDeadline)
	defer cancel()

	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			deps["database"] = "unhealthy: " + err.Error()
		} else {
			deps["database"] = depHealthy
		}
	} else {
		deps["database"] = depNotConfigured
	}

	if h.Broker != nil {
		if h.Broker.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = depHealthy
		}
	} else {
		deps["rabbitmq"] = depNotConfigured
	}

	if h.MailConfigured {
		deps["smtp"] = depConfigured
	} else {
		deps["smtp"] = depNotConfigured
	}

	status := healthOK
	for _, v := range deps {
		if v != depHealthy && v != depConfigured && v != depNotConfigured {
			status = healthDegraded
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == healthDegraded {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

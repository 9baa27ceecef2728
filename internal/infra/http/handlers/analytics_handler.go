package handlers

import (
	"net"
	"net/http"
	"strings"

	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

type AnalyticsHandler struct {
	CreateEventUC *usecase.CreateAnalyticsEventUseCase
}

func NewAnalyticsHandler(uc *usecase.CreateAnalyticsEventUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{CreateEventUC: uc}
}

// Handle (POST /createAnalyticsEvent). user_agent and ip_address fall back to
// the request when the body leaves them out.
func (h *AnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAnalyticsEventInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if input.UserAgent == nil {
		if ua := r.UserAgent(); ua != "" {
			input.UserAgent = &ua
		}
	}
	if input.IPAddress == nil {
		if ip := getClientIP(r); ip != "" {
			input.IPAddress = &ip
		}
	}

	event, err := h.CreateEventUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	middleware.RecordAnalyticsEvent(event.EventType)
	writeJSON(w, http.StatusCreated, event)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

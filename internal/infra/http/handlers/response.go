package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

const (
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidQuery       = "INVALID_QUERY"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeInternal           = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Fields  []usecase.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, CodeInvalidJSON, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// writeUseCaseError maps use case failures onto status codes. Anything it does
// not recognise is logged and hidden behind INTERNAL_ERROR.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *usecase.DomainError
	switch {
	case errors.As(err, &domainErr) && domainErr.Code == usecase.CodeValidation:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
			Fields:  domainErr.Fields,
		})
	case errors.As(err, &domainErr):
		writeErrorResponse(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message)
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		writeErrorResponse(w, http.StatusConflict, CodeEmailAlreadyExists, entity.ErrEmailAlreadyExists.Error())
	case errors.Is(err, entity.ErrLeadNotFound):
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeLeadNotFound, entity.ErrLeadNotFound.Error())
	case errors.Is(err, entity.ErrSubscriptionNotFound):
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeSubscriptionNotFound, entity.ErrSubscriptionNotFound.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeLeadNotFound, usecase.CodeSubscriptionNotFound:
		return http.StatusNotFound
	case usecase.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

type ContactFormHandler struct {
	CreateContactFormUC *usecase.CreateContactFormUseCase
}

func NewContactFormHandler(uc *usecase.CreateContactFormUseCase) *ContactFormHandler {
	return &ContactFormHandler{CreateContactFormUC: uc}
}

// Handle (POST /createContactForm)
func (h *ContactFormHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactFormInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.CreateContactFormUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	middleware.RecordContactForm(string(output.Resolution))
	writeJSON(w, http.StatusCreated, output.ContactForm)
}

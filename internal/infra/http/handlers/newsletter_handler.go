package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

type NewsletterHandler struct {
	SubscribeUC   *usecase.CreateNewsletterSubscriptionUseCase
	UnsubscribeUC *usecase.UnsubscribeNewsletterUseCase
	ListUC        *usecase.GetNewsletterSubscriptionsUseCase
}

func NewNewsletterHandler(
	subscribeUC *usecase.CreateNewsletterSubscriptionUseCase,
	unsubscribeUC *usecase.UnsubscribeNewsletterUseCase,
	listUC *usecase.GetNewsletterSubscriptionsUseCase,
) *NewsletterHandler {
	return &NewsletterHandler{
		SubscribeUC:   subscribeUC,
		UnsubscribeUC: unsubscribeUC,
		ListUC:        listUC,
	}
}

// Subscribe (POST /createNewsletterSubscription)
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.NewsletterEmailInput
	if !decodeJSON(w, r, &input) {
		return
	}

	sub, err := h.SubscribeUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	middleware.RecordNewsletter("subscribe", string(sub.Status))
	writeJSON(w, http.StatusOK, sub)
}

// Unsubscribe (POST /unsubscribeNewsletter)
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.NewsletterEmailInput
	if !decodeJSON(w, r, &input) {
		return
	}

	sub, err := h.UnsubscribeUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	middleware.RecordNewsletter("unsubscribe", string(sub.Status))
	writeJSON(w, http.StatusOK, sub)
}

// List (GET /getNewsletterSubscriptions)
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}

	if subs == nil {
		subs = []entity.NewsletterSubscription{}
	}
	writeJSON(w, http.StatusOK, subs)
}

package sandbox

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sendpost/sendpost-go/api"
	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/types"
)

type handler struct {
	store         *MemoryStore
	accountApiKey string
	logger        logger.Logger
}

type ctxKey int

const subAccountKey ctxKey = iota

func (h *handler) routes(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.Use(h.accountAuth)

		r.Get("/subaccount/", h.listSubAccounts)
		r.Post("/subaccount/", h.createSubAccount)
		r.Get("/subaccount/stat/{id}", h.subAccountStats)
		r.Get("/subaccount/stat/{id}/aggregate", h.subAccountAggregateStats)

		r.Get("/webhook/", h.listWebhooks)
		r.Post("/webhook/", h.createWebhook)

		r.Get("/message/{id}", h.getMessage)
		r.Get("/stat/", h.accountStats)

		r.Get("/ip/", h.listIPs)
		r.Get("/ippool/", h.listIPPools)
		r.Post("/ippool/", h.createIPPool)
	})

	r.Route("/subaccount", func(r chi.Router) {
		r.Use(h.subAccountAuth)

		r.Get("/domain/", h.listDomains)
		r.Post("/domain/", h.createDomain)
		r.Post("/email/", h.sendEmail)
	})
}

func (h *handler) accountAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(api.HeaderAccountApiKey)
		if key == "" || (h.accountApiKey != "" && key != h.accountApiKey) {
			writeError(w, http.StatusUnauthorized, "Invalid or missing "+api.HeaderAccountApiKey)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) subAccountAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sa, ok := h.store.subAccountByKey(r.Header.Get(api.HeaderSubAccountApiKey))
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid or missing "+api.HeaderSubAccountApiKey)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subAccountKey, sa)))
	})
}

func subAccountFrom(r *http.Request) types.SubAccount {
	sa, _ := r.Context().Value(subAccountKey).(types.SubAccount)
	return sa
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, types.ErrorResponse{Error: message})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/aoe-ads/internal/infra/http/middleware"
	"github.com/xavierca1/aoe-ads/internal/usecase"
)

// Interfaces mínimas dos use cases para o handler ser testável com mock.
type AdEmailSender interface {
	Execute(ctx context.Context, input usecase.SendAdEmailInput) (*usecase.SendAdEmailOutput, error)
}

type AdPageRenderer interface {
	Execute(ctx context.Context, requestID string) (string, error)
}

type AdHandler struct {
	SendAdUC   AdEmailSender
	RenderAdUC AdPageRenderer
}

func NewAdHandler(sendAdUC AdEmailSender, renderAdUC AdPageRenderer) *AdHandler {
	return &AdHandler{SendAdUC: sendAdUC, RenderAdUC: renderAdUC}
}

// HandleSendAdEmail → POST /send-ad-email
func (h *AdHandler) HandleSendAdEmail(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendAdEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if input.RequestID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_REQUEST_ID", "request_id is required")
		return
	}

	output, err := h.SendAdUC.Execute(r.Context(), input)
	if err != nil {
		switch usecase.DomainCode(err) {
		case usecase.CodeLeadNotFound:
			middleware.RecordAdEmail("not_found")
			writeErrorResponse(w, http.StatusNotFound, usecase.CodeLeadNotFound, "Lead not found.")
		case usecase.CodeDeliveryFailed:
			middleware.RecordAdEmail("delivery_failed")
			middleware.RecordIntegrationError("smtp")
			writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeDeliveryFailed, "Failed to send personalized ad email.")
		default:
			// Erro técnico: detalhe só no log, nunca na resposta.
			log.Error().Err(err).Str("request_id", input.RequestID).Msg("unexpected error sending ad email")
			middleware.RecordAdEmail("internal_error")
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.")
		}
		return
	}

	middleware.RecordAdEmail("success")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}

// HandleAdPage → GET /ad?id=<request_id>. Respostas sempre em HTML, é uma
// página aberta no browser do lead.
func (h *AdHandler) HandleAdPage(w http.ResponseWriter, r *http.Request) {
	requestID := r.URL.Query().Get("id")
	if requestID == "" {
		writeHTMLError(w, http.StatusBadRequest, "<h1>Error: Missing lead ID.</h1>")
		return
	}

	html, err := h.RenderAdUC.Execute(r.Context(), requestID)
	if err != nil {
		if usecase.DomainCode(err) == usecase.CodeLeadNotFound {
			writeHTMLError(w, http.StatusNotFound, "<h1>Error: Lead not found.</h1>")
			return
		}
		log.Error().Err(err).Str("request_id", requestID).Msg("unexpected error rendering ad page")
		writeHTMLError(w, http.StatusInternalServerError,
			"<h1>Internal Server Error</h1><p>Failed to generate the personalized ad. Please try again later.</p>")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}

func writeHTMLError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/entity"
)

// Imagem genérica quando o veículo do lead não tem fotos no catálogo.
const placeholderImageURL = "https://placehold.co/600x338/1F2937/D1D5DB?text=AOE+Motors"

// SendAdEmailUseCase envia o email de anúncio personalizado: busca o
// lead, monta o corpo apontando para a landing page e dispara via SMTP
// uma única vez. Não há retry nem chave de idempotência: dois POSTs
// concorrentes com o mesmo request_id podem gerar dois emails, e a
// palavra final sobre reenvio é de quem opera o dashboard.
type SendAdEmailUseCase struct {
	Leads        LeadRepository
	Interactions InteractionRepository
	Mail         MailSender
	Catalog      *catalog.Catalog
	AdBaseURL    string

	// Now é injetável para os testes fixarem o timestamp do evento.
	Now func() time.Time
}

func NewSendAdEmailUseCase(
	leads LeadRepository,
	interactions InteractionRepository,
	mail MailSender,
	cat *catalog.Catalog,
	adBaseURL string,
) *SendAdEmailUseCase {
	return &SendAdEmailUseCase{
		Leads:        leads,
		Interactions: interactions,
		Mail:         mail,
		Catalog:      cat,
		AdBaseURL:    adBaseURL,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

func (uc *SendAdEmailUseCase) Execute(ctx context.Context, input SendAdEmailInput) (*SendAdEmailOutput, error) {
	// 1. Busca o lead. Não encontrado é terminal, sem retry.
	lead, err := uc.Leads.FindByRequestID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "Lead not found."}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to fetch lead: " + err.Error()}
	}

	// 2. Primeira imagem do catálogo, com placeholder de fallback.
	imageURL := uc.Catalog.FirstImage(lead.Vehicle)
	if imageURL == "" {
		imageURL = placeholderImageURL
	}

	// 3. Link da landing page.
	adPageURL := fmt.Sprintf("%s/ad?id=%s", strings.TrimRight(uc.AdBaseURL, "/"), url.QueryEscape(lead.RequestID))

	subject := fmt.Sprintf("A special message for you about the %s!", lead.Vehicle)
	body, err := composeAdEmailBody(lead, imageURL, adPageURL)
	if err != nil {
		return nil, &TechnicalError{Code: "TEMPLATE_ERROR", Message: "failed to compose email body: " + err.Error()}
	}

	// 4. Envio único. Falha aqui é terminal e visível para o caller.
	if err := uc.Mail.Send(lead.Email, subject, body); err != nil {
		log.Error().Err(err).Str("request_id", lead.RequestID).Msg("failed to send personalized ad email")
		return nil, &DomainError{Code: CodeDeliveryFailed, Message: "Failed to send personalized ad email."}
	}

	// 5. Pós-envio é best-effort: o email já saiu, então falha de
	// persistência vira warning e não muda o resultado reportado.
	if err := uc.Leads.UpdateActionStatus(ctx, lead.RequestID, entity.StatusAdSent); err != nil {
		log.Warn().Err(err).Str("request_id", lead.RequestID).Msg("email sent but action_status update failed")
	}

	event := &entity.InteractionEvent{
		ID:        uuid.New().String(),
		RequestID: lead.RequestID,
		EventType: entity.EventAdEmailSent,
		Timestamp: uc.Now(),
	}
	if err := uc.Interactions.Append(ctx, event); err != nil {
		log.Warn().Err(err).Str("request_id", lead.RequestID).Msg("email sent but interaction log failed")
	}

	log.Info().Str("request_id", lead.RequestID).Str("vehicle", lead.Vehicle).Msg("personalized ad email sent")

	return &SendAdEmailOutput{
		Status:  "success",
		Message: "Personalized ad email sent successfully.",
	}, nil
}

type adEmailData struct {
	FullName  string
	Vehicle   string
	ImageURL  string
	AdPageURL string
}

func composeAdEmailBody(lead *entity.Lead, imageURL, adPageURL string) (string, error) {
	var buf bytes.Buffer
	err := adEmailTmpl.Execute(&buf, adEmailData{
		FullName:  lead.FullName,
		Vehicle:   lead.Vehicle,
		ImageURL:  imageURL,
		AdPageURL: adPageURL,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var adEmailTmpl = template.Must(template.New("ad_email").Parse(`<!DOCTYPE html>
<html>
<body>
  <p>Hello {{.FullName}},</p>
  <p>We saw you were interested in the {{.Vehicle}}. Our team has a personalized message for you.</p>
  <p>Take a look at the stunning {{.Vehicle}}:</p>
  <img src="{{.ImageURL}}" alt="Image of {{.Vehicle}}" style="max-width: 100%; height: auto; border-radius: 8px;">
  <p>To view your personal message, click the button below:</p>
  <a href="{{.AdPageURL}}" style="display:inline-block; padding:10px 20px; color:#ffffff; background-color:#14b8a6; text-decoration:none; border-radius:8px;">Listen to Your Ad</a>
  <p>Sincerely,</p>
  <p>Your AOE Motors Team</p>
</body>
</html>
`))

package usecase

import (
	"context"

	"github.com/xavierca1/aoe-ads/internal/entity"
)

type LeadRepository interface {
	FindByRequestID(ctx context.Context, requestID string) (*entity.Lead, error)
	UpdateActionStatus(ctx context.Context, requestID, status string) error
}

type InteractionRepository interface {
	Append(ctx context.Context, event *entity.InteractionEvent) error
}

// SpeechSynthesizer nunca devolve erro: esgotou as tentativas, volta nil
// e o pipeline segue sem áudio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, name, vehicle, tagline string) *entity.AudioClip
}

type MailSender interface {
	Send(to, subject, bodyHTML string) error
}

type SendAdEmailInput struct {
	RequestID string `json:"request_id"`
}

type SendAdEmailOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

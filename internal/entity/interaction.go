package entity

import "time"

// EventAdEmailSent é o único event_type que este pipeline grava.
const EventAdEmailSent = "personalized_ad_email_sent"

// InteractionEvent é um fato append-only na tabela email_interactions.
// Nunca é atualizado nem deletado por este serviço.
type InteractionEvent struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

package entity

import "errors"

// Lead é a linha da tabela bookings que este serviço enxerga. O ciclo de
// vida (criação/remoção) acontece no dashboard; aqui só lemos e pedimos
// atualização do action_status.
type Lead struct {
	RequestID    string `json:"request_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Vehicle      string `json:"vehicle"`
	ActionStatus string `json:"action_status,omitempty"`
}

// Status gravado depois do envio do anúncio personalizado.
const StatusAdSent = "Personalized Ad Sent"

var ErrLeadNotFound = errors.New("lead not found")

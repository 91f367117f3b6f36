package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/entity"
)

func voltLead() *entity.Lead {
	return &entity.Lead{
		RequestID: "R1",
		FullName:  "Jane Doe",
		Vehicle:   "AOE Volt",
		Email:     "jane@example.com",
	}
}

func newSendAdUC(leads *MockLeadRepository, interactions *MockInteractionRepository, mailer *MockMailSender) *SendAdEmailUseCase {
	uc := NewSendAdEmailUseCase(leads, interactions, mailer, catalog.Default(), "https://ads.aoemotors.com")
	uc.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestSendAdEmailSuccess(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInteractions := new(MockInteractionRepository)
	mockMailer := new(MockMailSender)

	mockLeads.On("FindByRequestID", ctx, "R1").Return(voltLead(), nil)
	mockMailer.On("Send",
		"jane@example.com",
		"A special message for you about the AOE Volt!",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "https://ads.aoemotors.com/ad?id=R1") &&
				strings.Contains(body, "Hello Jane Doe") &&
				strings.Contains(body, "AOE%20Volt.jpg")
		}),
	).Return(nil)
	mockLeads.On("UpdateActionStatus", ctx, "R1", entity.StatusAdSent).Return(nil)
	mockInteractions.On("Append", ctx, mock.MatchedBy(func(ev *entity.InteractionEvent) bool {
		return ev.RequestID == "R1" &&
			ev.EventType == entity.EventAdEmailSent &&
			ev.Timestamp.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) &&
			ev.ID != ""
	})).Return(nil)

	uc := newSendAdUC(mockLeads, mockInteractions, mockMailer)

	output, err := uc.Execute(ctx, SendAdEmailInput{RequestID: "R1"})

	assert.NoError(t, err)
	assert.Equal(t, "success", output.Status)
	mockMailer.AssertNumberOfCalls(t, "Send", 1)
	mockLeads.AssertNumberOfCalls(t, "UpdateActionStatus", 1)
	mockInteractions.AssertNumberOfCalls(t, "Append", 1)
}

func TestSendAdEmailLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInteractions := new(MockInteractionRepository)
	mockMailer := new(MockMailSender)

	mockLeads.On("FindByRequestID", ctx, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := newSendAdUC(mockLeads, mockInteractions, mockMailer)

	output, err := uc.Execute(ctx, SendAdEmailInput{RequestID: "missing"})

	assert.Nil(t, output)
	assert.Equal(t, CodeLeadNotFound, DomainCode(err))
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendAdEmailDeliveryFailure(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInteractions := new(MockInteractionRepository)
	mockMailer := new(MockMailSender)

	mockLeads.On("FindByRequestID", ctx, "R1").Return(voltLead(), nil)
	mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp refused"))

	uc := newSendAdUC(mockLeads, mockInteractions, mockMailer)

	output, err := uc.Execute(ctx, SendAdEmailInput{RequestID: "R1"})

	assert.Nil(t, output)
	assert.Equal(t, CodeDeliveryFailed, DomainCode(err))
	// Falha de entrega é terminal: nada de status nem evento.
	mockLeads.AssertNotCalled(t, "UpdateActionStatus", mock.Anything, mock.Anything, mock.Anything)
	mockInteractions.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSendAdEmailInteractionLogFailureDoesNotChangeOutcome(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInteractions := new(MockInteractionRepository)
	mockMailer := new(MockMailSender)

	mockLeads.On("FindByRequestID", ctx, "R1").Return(voltLead(), nil)
	mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockLeads.On("UpdateActionStatus", ctx, "R1", entity.StatusAdSent).Return(nil)
	mockInteractions.On("Append", ctx, mock.Anything).Return(errors.New("insert failed"))

	uc := newSendAdUC(mockLeads, mockInteractions, mockMailer)

	output, err := uc.Execute(ctx, SendAdEmailInput{RequestID: "R1"})

	// O email já saiu; falha no log de interação vira warning, não erro.
	assert.NoError(t, err)
	assert.Equal(t, "success", output.Status)
}

func TestSendAdEmailUnknownVehicleUsesPlaceholderImage(t *testing.T) {
	ctx := context.Background()

	lead := &entity.Lead{
		RequestID: "R9",
		FullName:  "John Roe",
		Vehicle:   "AOE Phantom",
		Email:     "john@example.com",
	}

	mockLeads := new(MockLeadRepository)
	mockInteractions := new(MockInteractionRepository)
	mockMailer := new(MockMailSender)

	mockLeads.On("FindByRequestID", ctx, "R9").Return(lead, nil)
	mockMailer.On("Send", "john@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "placehold.co")
	})).Return(nil)
	mockLeads.On("UpdateActionStatus", ctx, "R9", entity.StatusAdSent).Return(nil)
	mockInteractions.On("Append", ctx, mock.Anything).Return(nil)

	uc := newSendAdUC(mockLeads, mockInteractions, mockMailer)

	_, err := uc.Execute(ctx, SendAdEmailInput{RequestID: "R9"})

	assert.NoError(t, err)
	mockMailer.AssertExpectations(t)
}

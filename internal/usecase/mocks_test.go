package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/aoe-ads/internal/entity"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.Lead, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateActionStatus(ctx context.Context, requestID, status string) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Append(ctx context.Context, event *entity.InteractionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(to, subject, bodyHTML string) error {
	args := m.Called(to, subject, bodyHTML)
	return args.Error(0)
}

type MockSpeechSynthesizer struct {
	mock.Mock
}

func (m *MockSpeechSynthesizer) Synthesize(ctx context.Context, name, vehicle, tagline string) *entity.AudioClip {
	args := m.Called(ctx, name, vehicle, tagline)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entity.AudioClip)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/entity"
)

func TestRenderAdPageWithoutAudio(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockSynth := new(MockSpeechSynthesizer)

	mockLeads.On("FindByRequestID", ctx, "R1").Return(voltLead(), nil)
	// TTS indisponível: síntese absorve a falha e devolve nil.
	mockSynth.On("Synthesize", ctx, "Jane Doe", "AOE Volt",
		"Drive the future. Electrify your journey with groundbreaking technology.").Return(nil)

	uc := NewRenderAdPageUseCase(mockLeads, mockSynth, catalog.Default())

	html, err := uc.Execute(ctx, "R1")

	assert.NoError(t, err)
	assert.Contains(t, html, "Hello Jane Doe")
	assert.Contains(t, html, "Drive the future. Electrify your journey with groundbreaking technology.")
	assert.Contains(t, html, `src=""`)
}

func TestRenderAdPageEmbedsSynthesizedAudio(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockSynth := new(MockSpeechSynthesizer)

	clip := &entity.AudioClip{Data: []byte("pcm"), MIMEType: "audio/wav"}
	mockLeads.On("FindByRequestID", ctx, "R1").Return(voltLead(), nil)
	mockSynth.On("Synthesize", ctx, mock.Anything, mock.Anything, mock.Anything).Return(clip)

	uc := NewRenderAdPageUseCase(mockLeads, mockSynth, catalog.Default())

	html, err := uc.Execute(ctx, "R1")

	assert.NoError(t, err)
	assert.Contains(t, html, "data:audio/wav;base64,")
}

func TestRenderAdPageLeadNotFoundSkipsSynthesizer(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockSynth := new(MockSpeechSynthesizer)

	mockLeads.On("FindByRequestID", ctx, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := NewRenderAdPageUseCase(mockLeads, mockSynth, catalog.Default())

	html, err := uc.Execute(ctx, "missing")

	assert.Empty(t, html)
	assert.Equal(t, CodeLeadNotFound, DomainCode(err))
	mockSynth.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRenderAdPageDatabaseErrorIsTechnical(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockSynth := new(MockSpeechSynthesizer)

	mockLeads.On("FindByRequestID", ctx, "R1").Return(nil, errors.New("connection reset"))

	uc := NewRenderAdPageUseCase(mockLeads, mockSynth, catalog.Default())

	_, err := uc.Execute(ctx, "R1")

	assert.True(t, IsTechnicalError(err))
	mockSynth.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

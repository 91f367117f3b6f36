package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/entity"
	"github.com/xavierca1/aoe-ads/internal/render"
)

// RenderAdPageUseCase monta a landing page do anúncio: lead + catálogo +
// áudio sintetizado. Falha de síntese é absorvida (página sai muda);
// lead inexistente é o único erro de negócio.
type RenderAdPageUseCase struct {
	Leads   LeadRepository
	Synth   SpeechSynthesizer
	Catalog *catalog.Catalog
}

func NewRenderAdPageUseCase(leads LeadRepository, synth SpeechSynthesizer, cat *catalog.Catalog) *RenderAdPageUseCase {
	return &RenderAdPageUseCase{Leads: leads, Synth: synth, Catalog: cat}
}

func (uc *RenderAdPageUseCase) Execute(ctx context.Context, requestID string) (string, error) {
	lead, err := uc.Leads.FindByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return "", &DomainError{Code: CodeLeadNotFound, Message: "Lead not found."}
		}
		return "", &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to fetch lead: " + err.Error()}
	}

	entry := uc.Catalog.Lookup(lead.Vehicle)
	tagline := uc.Catalog.Tagline(entry.Category)

	// clip pode voltar nil; o renderer trata como src vazio.
	clip := uc.Synth.Synthesize(ctx, lead.FullName, lead.Vehicle, tagline)

	return render.LandingPage(lead, entry, tagline, clip), nil
}

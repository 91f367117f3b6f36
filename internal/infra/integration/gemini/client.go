package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/aoe-ads/internal/entity"
)

var (
	synthesisAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tts_synthesis_attempts_total",
		Help: "Total number of TTS provider calls attempted",
	})

	synthesisExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tts_synthesis_exhausted_total",
		Help: "Total number of synthesis requests that exhausted all retries",
	})
)

const (
	maxAttempts    = 3
	requestTimeout = 30 * time.Second
)

// Client fala com o endpoint de TTS do Gemini. Uma chamada por tentativa,
// no máximo maxAttempts tentativas, backoff exponencial entre elas.
type Client struct {
	baseURL string
	apiKey  string
	voice   string
	http    *http.Client

	// Injetáveis para os testes rodarem o retry inteiro sem esperar.
	sleep       func(time.Duration)
	backoffUnit time.Duration
}

func NewClient(apiKey, baseURL, voice string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		voice:       voice,
		http:        &http.Client{Timeout: requestTimeout},
		sleep:       time.Sleep,
		backoffUnit: time.Second,
	}
}

// Synthesize converte o prompt falado em áudio. Falha aqui nunca vira
// erro para o caller: depois de esgotar as tentativas devolve nil e a
// página sai sem áudio.
func (c *Client) Synthesize(ctx context.Context, name, vehicle, tagline string) *entity.AudioClip {
	prompt := spokenPrompt(name, vehicle, tagline)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		synthesisAttempts.Inc()

		clip, err := c.call(ctx, prompt)
		if err == nil {
			return clip
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Str("vehicle", vehicle).
			Msg("tts attempt failed")

		// 2^attempt unidades: 1, 2, 4
		c.sleep(c.backoffUnit << attempt)
	}

	synthesisExhausted.Inc()
	log.Error().Str("vehicle", vehicle).Msg("failed to generate audio after multiple retries")
	return nil
}

func spokenPrompt(name, vehicle, tagline string) string {
	return fmt.Sprintf(
		"Say cheerfully: Hello %s, we saw you were interested in the %s. %s "+
			"Our team is ready for you to take a test drive. Please call us at "+
			"(800) 555-0199 or reply to this email to schedule a new appointment.",
		name, vehicle, tagline,
	)
}

// call faz uma única tentativa. Qualquer problema (transporte, status
// não-2xx, JSON inválido, payload de áudio vazio) é a mesma classe de
// falha e volta como erro para o loop de retry.
func (c *Client) call(ctx context.Context, prompt string) (*entity.AudioClip, error) {
	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: c.voice},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal payload tts: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gemini rejeitou (status %d)", resp.StatusCode)
	}

	var response generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode gemini: %w", err)
	}

	data, mimeType := extractInlineAudio(response)
	if data == "" {
		return nil, fmt.Errorf("no audio data received from API")
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("payload de áudio inválido: %w", err)
	}

	if mimeType == "" {
		mimeType = "audio/wav"
	}
	return &entity.AudioClip{Data: raw, MIMEType: mimeType}, nil
}

func extractInlineAudio(resp generateContentResponse) (data, mimeType string) {
	if len(resp.Candidates) == 0 {
		return "", ""
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return p.InlineData.Data, p.InlineData.MIMEType
		}
	}
	return "", ""
}

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/xavierca1/aoe-ads/internal/catalog"
	"github.com/xavierca1/aoe-ads/internal/entity"
)

// pageData é o que o template enxerga. Tudo que vem do lead passa pelo
// escaping contextual do html/template.
type pageData struct {
	FullName string
	Vehicle  string
	Tagline  string
	Images   []string
	Features []string
	AudioSrc template.URL
}

// LandingPage gera o HTML completo da página de anúncio. Função pura e
// total: qualquer combinação de entradas (veículo desconhecido, listas
// vazias, clip nil) produz um documento válido.
func LandingPage(lead *entity.Lead, entry catalog.Entry, tagline string, clip *entity.AudioClip) string {
	data := pageData{
		FullName: lead.FullName,
		Vehicle:  lead.Vehicle,
		Tagline:  tagline,
		Images:   entry.Images,
		Features: entry.Features,
		AudioSrc: audioDataURL(clip),
	}

	var buf bytes.Buffer
	if err := landingTmpl.Execute(&buf, data); err != nil {
		// Inalcançável com o template compilado via Must e dados planos;
		// se acontecer é defeito nosso, não do caller.
		return fallbackPage
	}
	return buf.String()
}

// audioDataURL monta o data URL inline do áudio. Clip ausente vira src
// vazio: o player do browser trata como no-op silencioso.
func audioDataURL(clip *entity.AudioClip) template.URL {
	if clip == nil || len(clip.Data) == 0 {
		return ""
	}
	mime := clip.MIMEType
	if mime == "" {
		mime = "audio/wav"
	}
	encoded := base64.StdEncoding.EncodeToString(clip.Data)
	return template.URL(fmt.Sprintf("data:%s;base64,%s", mime, encoded))
}

const fallbackPage = `<!DOCTYPE html><html><body><h1>Your Personalized Ad</h1></body></html>`

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Your Personalized Ad</title>
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-gray-900 text-white flex flex-col items-center justify-center p-4 font-sans">
  <div class="w-full max-w-4xl bg-gray-800 p-8 rounded-2xl shadow-xl border border-gray-700">
    <p class="text-center text-gray-400 mb-8">
      A special message for you from the AOE Motors team!
    </p>

    <div class="mt-8">
      <h2 class="text-2xl sm:text-3xl font-bold text-white text-center mb-6 animate-fade-in">
        Hello {{.FullName}}, {{.Tagline}}
      </h2>

      <div class="grid grid-cols-1 sm:grid-cols-3 gap-4 mb-6">
{{- range .Images}}
        <div class="rounded-2xl overflow-hidden shadow-lg border border-gray-700">
          <img src="{{.}}" alt="Image of {{$.Vehicle}}" class="w-full h-auto object-cover" onerror="this.onerror=null; this.src='https://placehold.co/400x225/1F2937/D1D5DB?text=Image+Failed+to+Load';">
        </div>
{{- end}}
      </div>

      <div class="p-6 bg-gray-700 rounded-2xl shadow-inner border border-gray-600">
        <div class="flex items-center justify-between mb-4">
          <h3 class="text-xl font-semibold">Key Features</h3>
          <button
            onclick="document.getElementById('audio-player').play();"
            class="flex items-center gap-2 px-4 py-2 bg-teal-500 hover:bg-teal-600 text-white font-semibold rounded-full shadow-md transition-colors duration-300 transform hover:scale-105"
            aria-label="Play Personalized Ad Audio"
          >
            <svg xmlns="http://www.w3.org/2000/svg" class="h-5 w-5" viewBox="0 0 24 24" fill="currentColor">
              <path d="M8 5v14l11-7z" />
            </svg>
            Play Audio
          </button>
        </div>
        <ul class="text-gray-300 text-sm list-disc list-inside space-y-2 mt-4">
{{- range .Features}}
          <li class="flex items-start">
            <span class="text-blue-400 mr-2">
              <svg xmlns="http://www.w3.org/2000/svg" class="h-4 w-4 mt-1" viewBox="0 0 20 20" fill="currentColor">
                <path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16zm3.707-9.293a1 1 0 00-1.414-1.414L9 10.586 7.707 9.293a1 1 0 00-1.414 1.414l2 2a1 1 0 001.414 0l4-4z" clip-rule="evenodd" />
              </svg>
            </span>
            <span>{{.}}</span>
          </li>
{{- end}}
        </ul>
      </div>
      <audio id="audio-player" src="{{.AudioSrc}}" preload="auto"></audio>
    </div>
  </div>
</body>
</html>
`))

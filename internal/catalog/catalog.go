package catalog

// Entry descreve um veículo do catálogo. Para identificadores
// desconhecidos o Lookup devolve o zero value (listas vazias, categoria
// vazia) e quem consome precisa degradar sem quebrar.
type Entry struct {
	Category string
	Features []string
	Images   []string
}

// GenericTagline é o fallback quando a categoria não tem mensagem própria.
const GenericTagline = "your perfect vehicle."

// Catalog é carregado uma vez no startup e nunca mais muda.
type Catalog struct {
	entries  map[string]Entry
	taglines map[string]string
}

func New(entries map[string]Entry, taglines map[string]string) *Catalog {
	return &Catalog{entries: entries, taglines: taglines}
}

// Default monta o catálogo AOE Motors usado em produção.
func Default() *Catalog {
	return New(
		map[string]Entry{
			"AOE Apex": {
				Category: "Luxury Sedan",
				Features: []string{
					"Premium leather interior",
					"Advanced driver-assistance systems (ADAS)",
					"Panoramic sunroof",
				},
				Images: []string{
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Apex.jpg",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Apex_back.png",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Apex_Interior.png",
				},
			},
			"AOE Volt": {
				Category: "Electric Compact",
				Features: []string{
					"Long-range battery (500 miles)",
					"Fast charging (80% in 20 min)",
					"Regenerative braking",
				},
				Images: []string{
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Volt.jpg",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Volt_Back.png",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Volt_Interior.png",
				},
			},
			"AOE Thunder": {
				Category: "Performance SUV",
				Features: []string{
					"V8 Twin-Turbo Engine",
					"Adjustable air suspension",
					"High-performance braking system",
				},
				Images: []string{
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Thunder.jpg",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Thunder_Back.png",
					"https://storage.googleapis.com/aoe-motors-images/AOE%20Thunder_Interior.png",
				},
			},
		},
		map[string]string{
			"Luxury Sedan":     "Experience sophistication. Discover the new level of luxury.",
			"Electric Compact": "Drive the future. Electrify your journey with groundbreaking technology.",
			"Performance SUV":  "Unleash power. Command the road with unparalleled performance.",
		},
	)
}

// Lookup nunca falha: veículo desconhecido devolve Entry zerada.
func (c *Catalog) Lookup(vehicle string) Entry {
	return c.entries[vehicle]
}

// Tagline devolve a mensagem promocional da categoria, com fallback
// genérico para categoria desconhecida (inclusive a vazia).
func (c *Catalog) Tagline(category string) string {
	if msg, ok := c.taglines[category]; ok {
		return msg
	}
	return GenericTagline
}

// FirstImage devolve a primeira imagem do veículo ou "" se não houver.
func (c *Catalog) FirstImage(vehicle string) string {
	entry := c.entries[vehicle]
	if len(entry.Images) == 0 {
		return ""
	}
	return entry.Images[0]
}

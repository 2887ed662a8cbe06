package model

// Service is one offering of the catalog shown on the website.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceFrom   int    `json:"price_from"`
	Unit        string `json:"unit"`
}

// catalog is fixed at build time. Order is the display order.
var catalog = [...]Service{
	{
		ID:          "residential",
		Title:       "Nettoyage résidentiel",
		Description: "Ménage complet, dépoussiérage, sols, salles de bain et cuisines.",
		PriceFrom:   120,
		Unit:        "CHF / intervention",
	},
	{
		ID:          "commercial",
		Title:       "Nettoyage commercial",
		Description: "Bureaux, commerces et espaces professionnels impeccables.",
		PriceFrom:   180,
		Unit:        "CHF / intervention",
	},
	{
		ID:          "end-of-lease",
		Title:       "Fin de bail",
		Description: "Nettoyage en profondeur pour état des lieux sans stress.",
		PriceFrom:   350,
		Unit:        "CHF / forfait",
	},
	{
		ID:          "windows",
		Title:       "Nettoyage de vitres",
		Description: "Vitres et encadrements sans traces, intérieur / extérieur.",
		PriceFrom:   90,
		Unit:        "CHF / intervention",
	},
	{
		ID:          "regular",
		Title:       "Entretien récurrent",
		Description: "Passages hebdomadaires ou mensuels selon vos besoins.",
		PriceFrom:   49,
		Unit:        "CHF / heure",
	},
}

// Services returns a copy of the catalog so callers cannot alter it.
func Services() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog[:])
	return out
}

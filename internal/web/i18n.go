package web

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Catalog holds the strings of one locale. Names is keyed by lowercased
// color name.
type Catalog struct {
	Tag     language.Tag
	Title   string
	Current string
	Loading string
	Choose  string
	Names   map[string]string
}

// Label returns the localized control label for a record name, or the
// name itself when there is no entry.
func (c *Catalog) Label(name string) string {
	if l, ok := c.Names[strings.ToLower(name)]; ok {
		return l
	}
	return name
}

// Lang is the BCP 47 tag of the catalog, for the html lang attribute.
func (c *Catalog) Lang() string {
	base, _ := c.Tag.Base()
	return base.String()
}

var catalogs = []*Catalog{
	{
		Tag:     language.English,
		Title:   "Color Chooser App",
		Current: "Current color:",
		Loading: "Loading colors...",
		Choose:  "Choose a color",
		Names:   map[string]string{"turquoise": "Turquoise", "red": "Red", "yellow": "Yellow"},
	},
	{
		Tag:     language.Spanish,
		Title:   "Selector de colores",
		Current: "Color actual:",
		Loading: "Cargando colores...",
		Choose:  "Elige un color",
		Names:   map[string]string{"turquoise": "Turquesa", "red": "Rojo", "yellow": "Amarillo"},
	},
	{
		Tag:     language.French,
		Title:   "Sélecteur de couleurs",
		Current: "Couleur actuelle :",
		Loading: "Chargement des couleurs...",
		Choose:  "Choisissez une couleur",
		Names:   map[string]string{"turquoise": "Turquoise", "red": "Rouge", "yellow": "Jaune"},
	},
	{
		Tag:     language.German,
		Title:   "Farbauswahl",
		Current: "Aktuelle Farbe:",
		Loading: "Farben werden geladen...",
		Choose:  "Wähle eine Farbe",
		Names:   map[string]string{"turquoise": "Türkis", "red": "Rot", "yellow": "Gelb"},
	},
}

// English is first, so it is also the fallback of the matcher.
var matcher = language.NewMatcher(lo.Map(catalogs, func(c *Catalog, _ int) language.Tag { return c.Tag }))

// Locales lists the supported base languages.
func Locales() []string {
	return lo.Map(catalogs, func(c *Catalog, _ int) string { return c.Lang() })
}

// CatalogFor picks a catalog from ?lang= first, then Accept-Language.
func CatalogFor(r *http.Request) *Catalog {
	var prefs []language.Tag
	if q := r.URL.Query().Get("lang"); q != "" {
		if tag, err := language.Parse(q); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if accept, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil {
		prefs = append(prefs, accept...)
	}

	_, idx, _ := matcher.Match(prefs...)
	return catalogs[idx]
}

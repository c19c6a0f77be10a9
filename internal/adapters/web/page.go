// Package web renders the HTML listing page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"property_listing/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const HeroImage = "https://example.com/hero.jpg"

type Pill struct {
	Label  string
	Active bool
	Href   string // link that toggles this pill
}

type Card struct {
	domain.Property
	Location string
	Price    string
}

type PageData struct {
	HeroImage string
	Pills     []Pill
	Cards     []Card
	Count     int
	Filtered  bool
}

type Renderer struct{ tpl *template.Template }

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("page.html").Funcs(template.FuncMap{
		"rating": func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) },
	}).ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// BuildPage turns a listing into view data. Each pill links to the set it
// would produce when clicked; the current set is left untouched.
func BuildPage(l domain.Listing, active domain.FilterSet, basePath string) PageData {
	pills := make([]Pill, 0, len(l.Presets))
	for _, label := range l.Presets {
		href := basePath
		if q := active.Toggle(label).Query(); q != "" {
			href += "?" + q
		}
		pills = append(pills, Pill{Label: label, Active: active.Has(label), Href: href})
	}
	cards := make([]Card, 0, len(l.Items))
	for _, p := range l.Items {
		cards = append(cards, Card{
			Property: p,
			Location: location(p.Address),
			Price:    "$" + strconv.FormatFloat(p.Price, 'f', -1, 64),
		})
	}
	return PageData{
		HeroImage: HeroImage,
		Pills:     pills,
		Cards:     cards,
		Count:     l.Total,
		Filtered:  active.Len() > 0,
	}
}

func (r *Renderer) Render(w io.Writer, d PageData) error {
	return r.tpl.Execute(w, d)
}

func location(a domain.Address) string {
	out := ""
	for _, s := range []string{a.City, a.Country} {
		if s == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += s
	}
	return out
}

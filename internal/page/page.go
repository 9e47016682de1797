// Package page composes the portfolio document from the brand content and
// the classified project listing.
//
// The page renders in two passes. The first pass has no listing yet, so the
// source grid shows a "retrieving data" placeholder and the live-deployments
// section is absent. The browser then requests the projects fragment once;
// that second pass carries whatever the single listing fetch produced. A
// failed fetch looks exactly like an empty listing.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/mifimn/portfolio/internal/content"
	"github.com/mifimn/portfolio/internal/motion"
	"github.com/mifimn/portfolio/internal/pattern"
	"github.com/mifimn/portfolio/internal/projects"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed assets
var assetFiles embed.FS

// Section ids in document order.
const (
	SectionHeader   = "header"
	SectionHero     = "hero"
	SectionStats    = "stats"
	SectionSkills   = "skills"
	SectionServices = "services"
	SectionLive     = "live-deployments"
	SectionSource   = "source-listing"
	SectionFooter   = "footer"
)

// State is the listing's progress: pending until the single fetch resolves.
type State int

const (
	Pending State = iota
	Resolved
)

// Placeholder is shown in the source grid until records are available.
const Placeholder = "Retrieving GitHub Data..."

// View is the data behind one render of the page or the projects fragment.
type View struct {
	Brand    content.Brand
	State    State
	Marquees []Marquee
	Services []Service
	Live     []Card
	Source   []Card
}

type Marquee struct {
	content.Marquee
	Copies []string
}

type Service struct {
	content.Service
	Number string
}

// Card is one rendered project.
type Card struct {
	projects.Record
	Pattern   pattern.Pattern
	Transform template.CSS
	Href      string
	Host      string
	Language  string
	Summary   string
	Delay     int
}

// Compose builds the view. Live cards use their own index for the
// background pattern; source cards are offset by pattern.SourceOffset.
func Compose(brand content.Brand, sets projects.Sets, state State) View {
	v := View{Brand: brand, State: state}

	for _, m := range brand.Marquees {
		copies := make([]string, motion.MarqueeCopies)
		for i := range copies {
			copies[i] = m.Text
		}
		v.Marquees = append(v.Marquees, Marquee{Marquee: m, Copies: copies})
	}
	for i, s := range brand.Services {
		v.Services = append(v.Services, Service{Service: s, Number: fmt.Sprintf("0%d", i+1)})
	}

	if state != Resolved {
		return v
	}
	for i, r := range sets.Live {
		v.Live = append(v.Live, newCard(r, i, i, r.Homepage, brand.Fallback))
	}
	for i, r := range sets.All {
		v.Source = append(v.Source, newCard(r, i, i+pattern.SourceOffset, r.HTMLURL, brand.Fallback))
	}
	return v
}

func newCard(r projects.Record, pos, index int, href, fallback string) Card {
	p := pattern.For(index)
	return Card{
		Record:    r,
		Pattern:   p,
		Transform: template.CSS(p.Transform()),
		Href:      href,
		Host:      r.HomepageHost(),
		Language:  r.LanguageLabel(),
		Summary:   r.Summary(fallback),
		Delay:     pos * 100,
	}
}

// Pending reports whether the listing has not been fetched yet.
func (v View) Pending() bool { return v.State == Pending }

func (v View) PlaceholderText() string { return Placeholder }

// ShowLive reports whether the live-deployments section is rendered.
func (v View) ShowLive() bool { return len(v.Live) > 0 }

// ShowPlaceholder reports whether the source grid shows the placeholder.
func (v View) ShowPlaceholder() bool { return len(v.Source) == 0 }

// Sections lists the rendered sections in document order.
func (v View) Sections() []string {
	s := []string{SectionHeader, SectionHero, SectionStats, SectionSkills, SectionServices}
	if v.ShowLive() {
		s = append(s, SectionLive)
	}
	return append(s, SectionSource, SectionFooter)
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFiles, "templates/*.html")
}

// Assets is the embedded stylesheet directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFiles, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

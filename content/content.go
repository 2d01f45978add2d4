// Package content holds the portfolio catalog: projects with their charts,
// skills, certifications and the UI strings for every supported language.
//
// The catalog ships inside the binary as YAML under data/.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	ErrUnknownProject  = errors.New("unknown project")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Language selects which side of a Text is shown.
type Language string

const (
	EN Language = "en"
	ES Language = "es"
)

// Languages lists every supported language in display order.
var Languages = []Language{EN, ES}

// ParseLanguage accepts "en" or "es" in any case.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN, nil
	case ES:
		return ES, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == ES {
		return EN
	}
	return ES
}

// Text is a string translated into every language.
type Text struct {
	EN string `yaml:"en"`
	ES string `yaml:"es"`
}

// Get falls back to English when the requested side is empty.
func (t Text) Get(lang Language) string {
	if lang == ES && t.ES != "" {
		return t.ES
	}
	return t.EN
}

// TextList is a list of strings translated into every language.
type TextList struct {
	EN []string `yaml:"en"`
	ES []string `yaml:"es"`
}

func (t TextList) Get(lang Language) []string {
	if lang == ES && len(t.ES) > 0 {
		return t.ES
	}
	return t.EN
}

type LinkKind string

const (
	LinkGitHub        LinkKind = "github"
	LinkDemo          LinkKind = "demo"
	LinkDocumentation LinkKind = "documentation"
	LinkOther         LinkKind = "other"
)

type Link struct {
	Label Text     `yaml:"label"`
	URL   string   `yaml:"url"`
	Kind  LinkKind `yaml:"type"`
}

type ChartKind string

const (
	ChartBar      ChartKind = "bar"
	ChartLine     ChartKind = "line"
	ChartPie      ChartKind = "pie"
	ChartDoughnut ChartKind = "doughnut"
	ChartBubble   ChartKind = "bubble"
	ChartRadar    ChartKind = "radar"
)

func (k ChartKind) valid() bool {
	switch k {
	case ChartBar, ChartLine, ChartPie, ChartDoughnut, ChartBubble, ChartRadar:
		return true
	}
	return false
}

// BubblePoint is one sample of a bubble chart. R is the bubble radius.
type BubblePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// Dataset carries either plain values or, for bubble charts, points.
type Dataset struct {
	Label  string        `yaml:"label"`
	Data   []float64     `yaml:"data"`
	Points []BubblePoint `yaml:"points"`
}

// Len reports the number of samples in the dataset.
func (d Dataset) Len() int {
	if d.Points != nil {
		return len(d.Points)
	}
	return len(d.Data)
}

type Chart struct {
	Kind     ChartKind `yaml:"type"`
	Title    Text      `yaml:"title"`
	Labels   TextList  `yaml:"labels"`
	Datasets []Dataset `yaml:"datasets"`
}

type Project struct {
	ID               string   `yaml:"id"`
	Category         string   `yaml:"category"`
	Title            Text     `yaml:"title"`
	ShortDescription Text     `yaml:"short_description"`
	Description      Text     `yaml:"description"`
	Technologies     []string `yaml:"technologies"`
	Features         TextList `yaml:"features"`
	Image            string   `yaml:"image"`
	Gallery          []string `yaml:"gallery"`
	Links            []Link   `yaml:"links"`
	Charts           []Chart  `yaml:"charts"`
}

type Skill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Category string `yaml:"category"`
}

type Certification struct {
	Title         Text   `yaml:"title"`
	Issuer        string `yaml:"issuer"`
	Date          string `yaml:"date"`
	CredentialURL string `yaml:"credential_url"`
}

// Translations is the UI string table for one language.
type Translations struct {
	Nav struct {
		Home     string `yaml:"home"`
		Projects string `yaml:"projects"`
		Skills   string `yaml:"skills"`
		Contact  string `yaml:"contact"`
	} `yaml:"nav"`
	Hero struct {
		Greeting string `yaml:"greeting"`
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
		CTA      string `yaml:"cta"`
	} `yaml:"hero"`
	Projects struct {
		Title         string `yaml:"title"`
		ViewProject   string `yaml:"view_project"`
		BackToGallery string `yaml:"back_to_gallery"`
		Technologies  string `yaml:"technologies"`
		Overview      string `yaml:"overview"`
		KeyFeatures   string `yaml:"key_features"`
	} `yaml:"projects"`
	Skills struct {
		Title          string `yaml:"title"`
		Certifications string `yaml:"certifications"`
	} `yaml:"skills"`
	Contact struct {
		Title    string   `yaml:"title"`
		Subtitle string   `yaml:"subtitle"`
		Location string   `yaml:"location"`
		Email    string   `yaml:"email"`
		Social   string   `yaml:"social"`
		Links    []string `yaml:"links"`
	} `yaml:"contact"`
	Footer struct {
		MadeWith   string `yaml:"made_with"`
		By         string `yaml:"by"`
		Rights     string `yaml:"rights"`
		QuickLinks string `yaml:"quick_links"`
		Connect    string `yaml:"connect"`
	} `yaml:"footer"`
}

// Catalog is the whole portfolio.
type Catalog struct {
	Projects       []Project                 `yaml:"projects"`
	Skills         []Skill                   `yaml:"skills"`
	Certifications []Certification           `yaml:"certifications"`
	Translations   map[Language]Translations `yaml:"translations"`
}

// Load parses every embedded data file into one validated catalog.
func Load() (*Catalog, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS merges every *.yaml file under dir, in name order.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	out := &Catalog{Translations: map[Language]Translations{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		part, err := parse(b)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		out.merge(part)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse reads a single YAML document and validates it.
func Parse(b []byte) (*Catalog, error) {
	c, err := parse(b)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if c.Translations == nil {
		c.Translations = map[Language]Translations{}
	}
	return &c, nil
}

func (c *Catalog) merge(o *Catalog) {
	c.Projects = append(c.Projects, o.Projects...)
	c.Skills = append(c.Skills, o.Skills...)
	c.Certifications = append(c.Certifications, o.Certifications...)
	for lang, t := range o.Translations {
		c.Translations[lang] = t
	}
}

// Validate checks ids, skill levels and charts.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("project %d: empty id", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("project %q: duplicate id", p.ID))
		}
		seen[p.ID] = true

		for j, ch := range p.Charts {
			if !ch.Kind.valid() {
				errs = append(errs, fmt.Errorf("project %q chart %d: unknown type %q", p.ID, j, ch.Kind))
			}
			if len(ch.Datasets) == 0 {
				errs = append(errs, fmt.Errorf("project %q chart %d: no datasets", p.ID, j))
			}
			for _, ds := range ch.Datasets {
				if ds.Len() == 0 {
					errs = append(errs, fmt.Errorf("project %q chart %d: dataset %q is empty", p.ID, j, ds.Label))
				}
			}
		}
	}

	for _, s := range c.Skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skill %q: level %d out of range [0,100]", s.Name, s.Level))
		}
	}

	for lang := range c.Translations {
		if _, err := ParseLanguage(string(lang)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Project looks a project up by id.
func (c *Catalog) Project(id string) (*Project, error) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProject, id)
}

// ProjectIDs returns ids in catalog order.
func (c *Catalog) ProjectIDs() []string {
	ids := make([]string, len(c.Projects))
	for i, p := range c.Projects {
		ids[i] = p.ID
	}
	return ids
}

// SkillCategory is one group of skills, strongest first.
type SkillCategory struct {
	Name   string
	Skills []Skill
}

// SkillsByCategory groups skills by category. Categories come out sorted by
// name, skills by descending level then name.
func (c *Catalog) SkillsByCategory() []SkillCategory {
	groups := map[string][]Skill{}
	for _, s := range c.Skills {
		groups[s.Category] = append(groups[s.Category], s)
	}

	out := make([]SkillCategory, 0, len(groups))
	for name, skills := range groups {
		sort.SliceStable(skills, func(i, j int) bool {
			if skills[i].Level != skills[j].Level {
				return skills[i].Level > skills[j].Level
			}
			return skills[i].Name < skills[j].Name
		})
		out = append(out, SkillCategory{Name: name, Skills: skills})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Strings returns the string table for lang, falling back to English.
func (c *Catalog) Strings(lang Language) Translations {
	if t, ok := c.Translations[lang]; ok {
		return t
	}
	return c.Translations[EN]
}

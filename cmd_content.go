package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"portfoliohud/content"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1)
)

func newContentCmd() *cobra.Command {
	var (
		lang    string
		project string
		charts  bool
	)

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Print the portfolio catalog in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := content.Load()
			if err != nil {
				return err
			}
			l, err := content.ParseLanguage(lang)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if project != "" {
				p, err := cat.Project(project)
				if err != nil {
					return err
				}
				printProject(w, cat, p, l, charts)
				return nil
			}
			printCatalog(w, cat, l)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "language (en or es)")
	cmd.Flags().StringVar(&project, "project", "", "show one project in detail")
	cmd.Flags().BoolVar(&charts, "charts", false, "plot line and bar charts with the project")
	return cmd
}

func printCatalog(w io.Writer, cat *content.Catalog, lang content.Language) {
	t := cat.Strings(lang)

	fmt.Fprintln(w, headerStyle.Render(t.Hero.Title+" - "+t.Hero.Subtitle))

	fmt.Fprintln(w, titleStyle.Render(t.Projects.Title))
	for _, p := range cat.Projects {
		fmt.Fprintf(w, "  %s %s\n", valueStyle.Render(p.Title.Get(lang)), dimStyle.Render("("+p.ID+")"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render(t.Skills.Title))
	for _, g := range cat.SkillsByCategory() {
		fmt.Fprintln(w, dimStyle.Render("  "+strings.ToUpper(g.Name)))
		for _, s := range g.Skills {
			bar := strings.Repeat("#", s.Level/5) + strings.Repeat(".", 20-s.Level/5)
			fmt.Fprintf(w, "  %s %s %3d%%\n", labelStyle.Render(s.Name), valueStyle.Render(bar), s.Level)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render(t.Skills.Certifications))
	for _, c := range cat.Certifications {
		fmt.Fprintf(w, "  %s %s\n", valueStyle.Render(c.Title.Get(lang)), dimStyle.Render(c.Issuer+", "+c.Date))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render(t.Contact.Title))
	fmt.Fprintln(w, boxStyle.Render(strings.Join(append([]string{t.Contact.Location, t.Contact.Email}, t.Contact.Links...), "\n")))
}

func printProject(w io.Writer, cat *content.Catalog, p *content.Project, lang content.Language, charts bool) {
	t := cat.Strings(lang).Projects

	fmt.Fprintln(w, headerStyle.Render(p.Title.Get(lang)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(t.Technologies), valueStyle.Render(strings.Join(p.Technologies, ", ")))
	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render(t.Overview), valueStyle.Render(p.Description.Get(lang)))

	fmt.Fprintln(w, titleStyle.Render(t.KeyFeatures))
	for _, f := range p.Features.Get(lang) {
		fmt.Fprintln(w, "  - "+f)
	}
	for _, l := range p.Links {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(l.Label.Get(lang)), dimStyle.Render(l.URL))
	}

	if !charts {
		return
	}
	for _, ch := range p.Charts {
		fmt.Fprintln(w)
		fmt.Fprintln(w, plotChart(ch, lang))
	}
}

// plotChart draws line and bar series with asciigraph; other kinds are listed
// as label/value pairs.
func plotChart(ch content.Chart, lang content.Language) string {
	title := ch.Title.Get(lang)
	if len(ch.Datasets) == 0 {
		return titleStyle.Render(title)
	}
	ds := ch.Datasets[0]

	switch ch.Kind {
	case content.ChartLine, content.ChartBar:
		if len(ds.Data) < 2 {
			break
		}
		return asciigraph.Plot(ds.Data, asciigraph.Height(8), asciigraph.Width(48), asciigraph.Caption(title))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	labels := ch.Labels.Get(lang)
	if ds.Points != nil {
		for i, p := range ds.Points {
			fmt.Fprintf(&b, "\n  %2d  x=%-6g y=%-6g r=%g", i+1, p.X, p.Y, p.R)
		}
		return b.String()
	}
	for i, v := range ds.Data {
		name := fmt.Sprintf("#%d", i+1)
		if i < len(labels) {
			name = labels[i]
		}
		fmt.Fprintf(&b, "\n  %s %g", labelStyle.Render(name), v)
	}
	return b.String()
}

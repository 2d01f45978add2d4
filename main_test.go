package main

import (
	"bytes"
	"strings"
	"testing"

	"portfoliohud/content"
	"portfoliohud/view"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    view.View
		wantErr bool
	}{
		{"home", view.Home, false},
		{"Projects", view.Projects, false},
		{"SKILLS", view.Skills, false},
		{"contact", view.Contact, false},
		{"about", view.Home, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseView(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseView(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseView(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlotChart(t *testing.T) {
	line := content.Chart{
		Kind:     content.ChartLine,
		Title:    content.Text{EN: "Revenue", ES: "Ingresos"},
		Datasets: []content.Dataset{{Data: []float64{1, 3, 2, 5}}},
	}
	if out := plotChart(line, content.ES); !strings.Contains(out, "Ingresos") {
		t.Errorf("line plot missing caption:\n%s", out)
	}

	pie := content.Chart{
		Kind:     content.ChartPie,
		Title:    content.Text{EN: "Share"},
		Labels:   content.TextList{EN: []string{"north", "south"}},
		Datasets: []content.Dataset{{Data: []float64{60, 40}}},
	}
	out := plotChart(pie, content.EN)
	for _, want := range []string{"Share", "north", "south", "60", "40"} {
		if !strings.Contains(out, want) {
			t.Errorf("pie listing missing %q:\n%s", want, out)
		}
	}

	empty := content.Chart{Kind: content.ChartBar, Title: content.Text{EN: "Empty"}}
	if out := plotChart(empty, content.EN); !strings.Contains(out, "Empty") {
		t.Errorf("empty chart should still print its title, got %q", out)
	}
}

func TestContentCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"catalog", []string{"content"}, "spotify_analysis", false},
		{"project with charts", []string{"content", "--project", "ecommerce-analysis", "--charts"}, "Pandas", false},
		{"unknown project", []string{"content", "--project", "missing"}, "", true},
		{"unknown language", []string{"content", "--lang", "fr"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root := newRootCmd()
			root.SetOut(&out)
			root.SetArgs(tt.args)
			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
		})
	}
}

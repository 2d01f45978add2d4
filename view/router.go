// Package view tracks which page of the portfolio is showing and which
// project, if any, is open.
package view

import "fmt"

type View int

const (
	Home View = iota
	Projects
	Skills
	Contact
)

// All lists views in navigation order.
var All = []View{Home, Projects, Skills, Contact}

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Projects:
		return "projects"
	case Skills:
		return "skills"
	case Contact:
		return "contact"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Valid reports whether v is one of the four pages.
func (v View) Valid() bool {
	return v >= Home && v <= Contact
}

// Router holds the current view and the open project. A project can only be
// open while the Projects view is current.
type Router struct {
	current  View
	selected string
	known    func(id string) bool
}

// NewRouter starts on Home. known reports whether a project id exists; nil
// accepts any non-empty id.
func NewRouter(known func(id string) bool) *Router {
	return &Router{current: Home, known: known}
}

func (r *Router) Current() View { return r.current }

// Selected returns the open project id.
func (r *Router) Selected() (string, bool) {
	return r.selected, r.selected != ""
}

// Navigate switches view and always closes the open project.
func (r *Router) Navigate(v View) {
	if !v.Valid() {
		return
	}
	r.current = v
	r.selected = ""
}

// ViewProjects is the hero call to action.
func (r *Router) ViewProjects() {
	r.Navigate(Projects)
}

// Select opens a project. It reports false, changing nothing, outside the
// Projects view or for an unknown id.
func (r *Router) Select(id string) bool {
	if r.current != Projects || id == "" {
		return false
	}
	if r.known != nil && !r.known(id) {
		return false
	}
	r.selected = id
	return true
}

// Back closes the open project and returns to the gallery.
func (r *Router) Back() {
	r.selected = ""
}

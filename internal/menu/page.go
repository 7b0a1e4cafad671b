// Package menu drives the hierarchical admin menu as an explicit stack of
// typed states. It never renders: each state produces a Page for the form
// collaborator and interprets the selection or submitted text that comes
// back.
package menu

// Row is one selectable line on a page.
type Row struct {
	Label    string
	ColorTag string
}

// Prompt asks the form collaborator for free text.
type Prompt struct {
	Title       string
	Placeholder string
}

// Page is what the form collaborator renders: a titled list of selectable
// rows, optional body text above them, and optionally a free-text prompt
// instead of rows.
type Page struct {
	Title  string
	Body   string
	Rows   []Row
	Prompt *Prompt
}

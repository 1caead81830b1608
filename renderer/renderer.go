// Package renderer turns an invoice into its read-only preview: a markdown
// document built from embedded templates, that can be displayed in a
// terminal or converted to HTML for printing.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = mustSub(templatesFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// funcs are the helpers available in every template.
var funcs = template.FuncMap{
	"inline": inline,
	"lines":  lines,
	"bold":   bold,
}

// RenderInvoice renders the preview to a markdown string.
func RenderInvoice(p *Preview) string {
	partials := map[string]string{
		"invoice_header":  "invoice_header.md",
		"invoice_parties": "invoice_parties.md",
		"invoice_items":   "invoice_items.md",
		"invoice_totals":  "invoice_totals.md",
		"invoice_notes":   "invoice_notes.md",
	}
	return strings.TrimSpace(renderTemplate("invoice", "invoice.md", partials, p)) + "\n"
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// inline makes free text safe on a single markdown line or table cell.
func inline(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// lines renders each non blank line of parts on its own markdown line.
func lines(parts ...string) string {
	var out []string
	for _, p := range parts {
		for _, l := range strings.Split(p, "\n") {
			if l = inline(l); l != "" {
				out = append(out, l)
			}
		}
	}
	// a backslash at the end of a line is a hard line break.
	return strings.Join(out, "\\\n")
}

func bold(s string) string {
	if s = inline(s); s == "" {
		return ""
	}
	return "**" + s + "**"
}

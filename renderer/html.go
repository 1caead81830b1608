package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageStyle = `body { font-family: sans-serif; color: #0f172a; max-width: 48em; margin: 2em auto; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
th, td { padding: 0.4em 0.6em; border-bottom: 1px solid #e2e8f0; }
thead { background: #f1f5f9; text-transform: uppercase; font-size: 0.8em; }
@page { size: A4; margin: 15mm; }`

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown preview into a standalone, printable HTML page.
func HTML(title, md string) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("cannot convert preview to HTML: %w", err)
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>\n%s\n</style>\n</head>\n<body>\n",
		html.EscapeString(title), pageStyle)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// block elements end the current line
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "table": true, "section": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true,
}

// TextFromHTML returns the visible text of an HTML fragment, one line per
// block element, with runs of whitespace collapsed. Plain text passes through
// with its whitespace normalised.
func TextFromHTML(htmlStr string) string {
	if strings.TrimSpace(htmlStr) == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return normalizeLines(htmlStr)
	}

	var b strings.Builder

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			b.WriteString("\n")
		}
	}

	f(doc)
	return normalizeLines(b.String())
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

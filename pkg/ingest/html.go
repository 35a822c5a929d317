package ingest

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/smartsched/syllascan/models"
)

// HTML distills the main content of an HTML page and flattens it to plain
// text, one line per content block. Table rows come out pipe-delimited
// ("Week 1 | Sep 6 | Intro"), which is exactly the convention the
// syllabus-table extractor consumes.
func HTML(raw string) models.TextResult {
	content := raw

	// Let readability strip navigation, sidebars, and boilerplate first.
	// If it cannot find an article, fall back to the full document.
	pageURL, _ := url.Parse("http://localhost/document")
	readabilityParser := readability.NewParser()
	if article, err := readabilityParser.Parse(strings.NewReader(raw), pageURL); err == nil && article.Content != "" {
		content = article.Content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return failure("failed to parse HTML: " + err.Error())
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,table").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "table" {
			s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
				var cells []string
				tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
					cells = append(cells, squashSpace(cell.Text()))
				})
				if len(cells) > 0 {
					lines = append(lines, strings.Join(cells, " | "))
				}
			})
			return
		}
		if text := squashSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return failure("no text content found in HTML document")
	}

	return models.TextResult{Success: true, Text: text}
}

// squashSpace collapses all runs of whitespace to single spaces.
func squashSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

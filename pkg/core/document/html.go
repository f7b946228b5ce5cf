package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromHTML decodes an HTML financial statement into a single-page Document.
// Table rows are rendered as tab-joined lines so the downstream table
// detector can recognize them in the assembled text; scripts, styles and
// hidden elements are dropped.
func FromHTML(fileName, htmlContent string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	removeNoise(doc)

	var tables [][][]string
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		var rows [][]string
		sel.Find("tr").Each(func(j int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td, th").Each(func(k int, cell *goquery.Selection) {
				text := strings.TrimSpace(cell.Text())
				if text != "" {
					cells = append(cells, text)
				}
			})
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		})
		if len(rows) > 0 {
			tables = append(tables, rows)
		}
		sel.Remove()
	})

	body := doc.Find("body")
	text := body.Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return &Document{
		FileName: fileName,
		ByteSize: len(htmlContent),
		Pages: []Page{{
			Number: 1,
			Text:   text,
			Tables: tables,
		}},
	}, nil
}

// removeNoise strips elements that add no value for financial extraction.
func removeNoise(doc *goquery.Document) {
	doc.Find("script, style, noscript").Remove()
	doc.Find("[hidden], [style*='display:none'], [style*='display: none']").Remove()

	// Spacer images and 1x1 pixels common in converted statements.
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		width, _ := sel.Attr("width")
		height, _ := sel.Attr("height")
		if src == "" || strings.Contains(src, "spacer") || strings.Contains(src, "blank") ||
			width == "1" || height == "1" {
			sel.Remove()
		}
	})
}

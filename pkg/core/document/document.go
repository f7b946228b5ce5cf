// Package document defines the contract with the upstream decoder: per-page
// text and table grids arrive already decoded, get assembled into a single
// marked-up text the normalizer knows how to strip, and carry enough metadata
// for size and content checks. No binary format parsing happens here.
package document

import (
	"fmt"
	"strings"
)

// Page is one decoded page: its text plus any table cell grids found on it.
type Page struct {
	Number int        `json:"number"`
	Text   string     `json:"text"`
	Tables [][][]string `json:"tables,omitempty"`
}

// Document is the decoder's output for one source file.
type Document struct {
	FileName string `json:"file_name"`
	ByteSize int    `json:"byte_size"`
	Pages    []Page `json:"pages"`
}

// Metadata summarizes a document for pre-flight checks. HasText and
// HasTables look at the first three pages only; a statement with neither in
// its opening pages is almost certainly a scan or a decode failure.
type Metadata struct {
	Valid     bool `json:"valid"`
	PageCount int  `json:"page_count"`
	ByteSize  int  `json:"file_size_bytes"`
	HasText   bool `json:"has_text"`
	HasTables bool `json:"has_tables"`
}

// Metadata computes the document's pre-flight summary.
func (d *Document) Metadata() Metadata {
	meta := Metadata{
		PageCount: len(d.Pages),
		ByteSize:  d.ByteSize,
	}
	for i, p := range d.Pages {
		if i >= 3 {
			break
		}
		if strings.TrimSpace(p.Text) != "" {
			meta.HasText = true
		}
		if len(p.Tables) > 0 {
			meta.HasTables = true
		}
	}
	meta.Valid = meta.PageCount > 0 && meta.HasText
	return meta
}

// AssembleText concatenates pages and tables into one raw text with the
// boundary markers the normalizer strips: "--- Page N ---" before each page
// and "--- Table N (Page M) ---" before each table, table rows joined by
// tabs. This is the RawText contract consumed by textnorm.Clean.
func (d *Document) AssembleText() string {
	var sb strings.Builder

	for _, page := range d.Pages {
		if strings.TrimSpace(page.Text) != "" {
			fmt.Fprintf(&sb, "\n--- Page %d ---\n", page.Number)
			sb.WriteString(page.Text)
			sb.WriteString("\n")
		}
		for ti, table := range page.Tables {
			fmt.Fprintf(&sb, "\n--- Table %d (Page %d) ---\n", ti+1, page.Number)
			for _, row := range table {
				if len(row) == 0 {
					continue
				}
				sb.WriteString(strings.Join(row, "\t"))
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

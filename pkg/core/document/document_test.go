package document

import (
	"strings"
	"testing"
)

func TestMetadata(t *testing.T) {
	tests := []struct {
		name      string
		doc       Document
		wantValid bool
		wantText  bool
		wantTabs  bool
	}{
		{
			name: "text on first page",
			doc: Document{Pages: []Page{
				{Number: 1, Text: "INCOME STATEMENT"},
			}},
			wantValid: true,
			wantText:  true,
		},
		{
			name: "tables but no text",
			doc: Document{Pages: []Page{
				{Number: 1, Tables: [][][]string{{{"Revenue", "1000"}}}},
			}},
			wantValid: false,
			wantTabs:  true,
		},
		{
			name: "text only beyond the first three pages",
			doc: Document{Pages: []Page{
				{Number: 1}, {Number: 2}, {Number: 3},
				{Number: 4, Text: "late content"},
			}},
			wantValid: false,
		},
		{
			name:      "empty document",
			doc:       Document{},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := tt.doc.Metadata()
			if meta.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", meta.Valid, tt.wantValid)
			}
			if meta.HasText != tt.wantText {
				t.Errorf("HasText = %v, want %v", meta.HasText, tt.wantText)
			}
			if meta.HasTables != tt.wantTabs {
				t.Errorf("HasTables = %v, want %v", meta.HasTables, tt.wantTabs)
			}
			if meta.PageCount != len(tt.doc.Pages) {
				t.Errorf("PageCount = %d, want %d", meta.PageCount, len(tt.doc.Pages))
			}
		})
	}
}

func TestAssembleText(t *testing.T) {
	doc := Document{
		Pages: []Page{
			{
				Number: 1,
				Text:   "ACME Corp Annual Report",
				Tables: [][][]string{
					{{"Revenue", "1,000,000"}, {"Net Income", "150,000"}},
				},
			},
			{Number: 2, Text: "Notes to the statements"},
		},
	}

	got := doc.AssembleText()

	for _, want := range []string{
		"--- Page 1 ---",
		"--- Table 1 (Page 1) ---",
		"Revenue\t1,000,000",
		"Net Income\t150,000",
		"--- Page 2 ---",
		"Notes to the statements",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("assembled text missing %q:\n%s", want, got)
		}
	}
}

func TestAssembleTextSkipsBlankPages(t *testing.T) {
	doc := Document{Pages: []Page{
		{Number: 1, Text: "   \n  "},
		{Number: 2, Text: "real content"},
	}}

	got := doc.AssembleText()
	if strings.Contains(got, "--- Page 1 ---") {
		t.Errorf("blank page should not emit a marker:\n%s", got)
	}
	if !strings.Contains(got, "--- Page 2 ---") {
		t.Errorf("page 2 marker missing:\n%s", got)
	}
}

func TestFromHTML(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
		<script>alert("x")</script>
		<p>ACME Corp Annual Report 2023</p>
		<table>
			<tr><th>Line Item</th><th>Amount</th></tr>
			<tr><td>Revenue</td><td>$1,000,000</td></tr>
		</table>
	</body></html>`

	doc, err := FromHTML("acme.html", html)
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	page := doc.Pages[0]
	if !strings.Contains(page.Text, "ACME Corp Annual Report 2023") {
		t.Errorf("body text missing: %q", page.Text)
	}
	if strings.Contains(page.Text, "alert") || strings.Contains(page.Text, "color: red") {
		t.Errorf("script/style content leaked into text: %q", page.Text)
	}
	if len(page.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(page.Tables))
	}
	if len(page.Tables[0]) != 2 {
		t.Errorf("expected 2 rows, got %d", len(page.Tables[0]))
	}
	if got := page.Tables[0][1][1]; got != "$1,000,000" {
		t.Errorf("cell = %q, want %q", got, "$1,000,000")
	}
}

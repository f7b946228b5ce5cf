package textnorm

import (
	"reflect"
	"testing"
)

func TestDetectTables(t *testing.T) {
	text := "Income Statement\n" +
		"Revenue\t1000000\t900000\n" +
		"COGS\t600000\t550000\n" +
		"narrative line between tables\n" +
		"Total assets     2000000\n" +
		"Equity           1200000\n"

	tables := DetectTables(text)

	if len(tables) != 2 {
		t.Fatalf("got %d tables, want 2: %+v", len(tables), tables)
	}

	first := tables[0]
	if first.RowCount != 2 || first.ColumnCount != 3 {
		t.Errorf("first table: rows=%d cols=%d, want 2x3", first.RowCount, first.ColumnCount)
	}
	wantRow := []string{"Revenue", "1000000", "900000"}
	if !reflect.DeepEqual(first.Rows[0], wantRow) {
		t.Errorf("first row = %v, want %v", first.Rows[0], wantRow)
	}

	second := tables[1]
	if second.RowCount != 2 || second.ColumnCount != 2 {
		t.Errorf("second table: rows=%d cols=%d, want 2x2", second.RowCount, second.ColumnCount)
	}
}

func TestDetectTables_TableAtEndOfInput(t *testing.T) {
	text := "header line\nRevenue\t100"
	tables := DetectTables(text)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].RowCount != 1 {
		t.Errorf("row count = %d, want 1", tables[0].RowCount)
	}
}

func TestDetectTables_EmptyCellsDropped(t *testing.T) {
	text := "a\t\tb\t\n"
	tables := DetectTables(text)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(tables[0].Rows[0], want) {
		t.Errorf("cells = %v, want %v", tables[0].Rows[0], want)
	}
}

func TestDetectTables_NoTables(t *testing.T) {
	if tables := DetectTables("just prose, one space between words"); len(tables) != 0 {
		t.Errorf("expected no tables, got %+v", tables)
	}
}

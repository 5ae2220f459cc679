// internal/app/system/extract/csv_test.go
package extract

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	in := "Nome,Status,Prazo\nMontar cronograma,não iniciada,10/10/2025\nRevisar escopo,em andamento,\n"

	records, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["Nome"] != "Montar cronograma" {
		t.Errorf("Nome = %q", records[0]["Nome"])
	}
	if records[0]["Status"] != "não iniciada" {
		t.Errorf("Status = %q", records[0]["Status"])
	}
	if records[1]["Prazo"] != "" {
		t.Errorf("Prazo = %q, want empty", records[1]["Prazo"])
	}
}

func TestParseCSVStripsBOM(t *testing.T) {
	in := "\uFEFFNome,Status\nTarefa A,concluída\n"

	records, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0]["Nome"]; got != "Tarefa A" {
		t.Errorf("Nome = %q, want %q (BOM should not leak into the header)", got, "Tarefa A")
	}
}

func TestParseCSVSkipsEmptyRows(t *testing.T) {
	in := "Nome\n\nTarefa A\n,\nTarefa B\n"

	records, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestParseCSVRaggedRows(t *testing.T) {
	in := "Nome,Status\nTarefa A\nTarefa B,concluída,extra\n"

	records, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if got := records[0]["Status"]; got != "" {
		t.Errorf("short row Status = %q, want empty", got)
	}
	if got := records[1]["Status"]; got != "concluída" {
		t.Errorf("long row Status = %q", got)
	}
	if _, ok := records[1]["extra"]; ok {
		t.Error("unheaded cell should be dropped")
	}
}

func TestParseCSVMalformed(t *testing.T) {
	in := "Nome,Status\n\"unterminated,concluída\n"

	if _, err := ParseCSV(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for malformed quoting")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("ã", MaxTextRunes+100)
	got := Truncate(long)
	if n := len([]rune(got)); n != MaxTextRunes {
		t.Errorf("truncated to %d runes, want %d", n, MaxTextRunes)
	}

	short := "intacto"
	if Truncate(short) != short {
		t.Error("short text should pass through unchanged")
	}
}

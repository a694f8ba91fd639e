package electionimport_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/OctopusVote/OV-Backend/internal/electionimport"
)

// writeCSV writes rows to a temp CSV file and returns its path. csv.Writer
// handles quoting the multi-line candidate header cells.
func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "region.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp csv: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp csv: %v", err)
	}
	return path
}

var testHeader = []string{"town", "village", "station", "(1)\n柯文哲\n吳欣盈", "(2)\n賴清德\n蕭美琴", "(3)\n侯友宜\n趙少康"}

// TestParseRegionCSV_LongForm verifies that a clean two-station file melts
// into one record per (station, candidate) pair with the right counts and
// candidate names.
func TestParseRegionCSV_LongForm(t *testing.T) {
	path := writeCSV(t, [][]string{
		testHeader,
		{"信義區", "世貿里", "1", "100", "200", "300"},
		{"", "世貿里", "2", "10", "20", "30"},
	})

	records, err := electionimport.ParseRegionCSV(path, "臺北市")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}

	first := records[0]
	if first.County != "臺北市" || first.Town != "信義區" || first.Village != "世貿里" || first.Station != 1 {
		t.Errorf("unexpected identity tuple: %+v", first)
	}
	if first.Number != 1 || first.Name != "柯文哲/吳欣盈" || first.Votes != 100 {
		t.Errorf("unexpected candidate record: %+v", first)
	}
}

// TestParseRegionCSV_ForwardFillTown verifies that blank town labels on
// continuation rows inherit the nearest preceding non-blank town.
func TestParseRegionCSV_ForwardFillTown(t *testing.T) {
	path := writeCSV(t, [][]string{
		testHeader,
		{"信義區", "世貿里", "1", "1", "2", "3"},
		{"", "景新里", "2", "4", "5", "6"},
		{"士林區", "天玉里", "3", "7", "8", "9"},
		{"", "天玉里", "4", "1", "1", "1"},
	})

	records, err := electionimport.ParseRegionCSV(path, "臺北市")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	towns := map[int]string{}
	for _, rec := range records {
		towns[rec.Station] = rec.Town
	}
	want := map[int]string{1: "信義區", 2: "信義區", 3: "士林區", 4: "士林區"}
	for station, town := range want {
		if towns[station] != town {
			t.Errorf("station %d: expected town %q, got %q", station, town, towns[station])
		}
	}
}

// TestParseRegionCSV_DropsIncompleteRows verifies that rows with any missing
// required field are dropped whole, with no partial-row tolerance.
func TestParseRegionCSV_DropsIncompleteRows(t *testing.T) {
	path := writeCSV(t, [][]string{
		testHeader,
		{"信義區", "世貿里", "1", "1", "2", "3"},
		{"", "", "", "", "", ""},             // spacer
		{"信義區", "世貿里", "2", "1", "", "3"}, // missing one vote count
		{"信義區", "", "3", "1", "2", "3"},    // missing village
	})

	records, err := electionimport.ParseRegionCSV(path, "臺北市")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected only the complete row's 3 records, got %d", len(records))
	}
}

// TestParseRegionCSV_BadStation verifies that a non-integer station id fails
// the whole file as a source format error.
func TestParseRegionCSV_BadStation(t *testing.T) {
	path := writeCSV(t, [][]string{
		testHeader,
		{"信義區", "世貿里", "一號", "1", "2", "3"},
	})

	_, err := electionimport.ParseRegionCSV(path, "臺北市")
	if !errors.Is(err, electionimport.ErrSourceFormat) {
		t.Fatalf("expected ErrSourceFormat, got %v", err)
	}
}

// TestParseRegionCSV_BadHeaderCell verifies that a candidate header cell not
// matching "(n)\nname\nname" is a hard failure.
func TestParseRegionCSV_BadHeaderCell(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"town", "village", "station", "柯文哲/吳欣盈"},
		{"信義區", "世貿里", "1", "100"},
	})

	_, err := electionimport.ParseRegionCSV(path, "臺北市")
	if !errors.Is(err, electionimport.ErrSourceFormat) {
		t.Fatalf("expected ErrSourceFormat, got %v", err)
	}
}

// TestParseRegionCSV_FullWidthAndSeparators verifies that full-width ballot
// digits and thousands separators in vote counts are tolerated.
func TestParseRegionCSV_FullWidthAndSeparators(t *testing.T) {
	path := writeCSV(t, [][]string{
		{"town", "village", "station", "（１）\n柯文哲\n吳欣盈"},
		{"信義區", "世貿里", "１", "1,234"},
	})

	records, err := electionimport.ParseRegionCSV(path, "臺北市")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Number != 1 || records[0].Station != 1 || records[0].Votes != 1234 {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

// TestParseRegionCSV_ByteOrderMark verifies that a UTF-8 BOM at the start of
// an export (Excel adds one when saving CSV) does not corrupt the first
// header cell.
func TestParseRegionCSV_ByteOrderMark(t *testing.T) {
	content := "\ufeff" + "town,village,station,\"(1)\n柯文哲\n吳欣盈\"\n" +
		"信義區,世貿里,1,100\n"
	path := filepath.Join(t.TempDir(), "region.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}

	records, err := electionimport.ParseRegionCSV(path, "臺北市")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Votes != 100 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// TestParseRegionCSV_NegativeVotes verifies that a negative vote count is
// rejected rather than ingested.
func TestParseRegionCSV_NegativeVotes(t *testing.T) {
	path := writeCSV(t, [][]string{
		testHeader,
		{"信義區", "世貿里", "1", "-5", "2", "3"},
	})

	_, err := electionimport.ParseRegionCSV(path, "臺北市")
	if !errors.Is(err, electionimport.ErrSourceFormat) {
		t.Fatalf("expected ErrSourceFormat, got %v", err)
	}
}

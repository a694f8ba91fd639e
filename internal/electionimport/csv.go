package electionimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Record is one long-form row: the votes one candidate received at one
// polling station, tagged with the originating county.
type Record struct {
	County  string
	Town    string
	Village string
	Station int
	Number  int    // ballot number
	Name    string // joined running-mate names
	Votes   int
}

// CandidateSlot is one parsed header cell: a ballot number plus the two
// running-mate names joined with "/".
type CandidateSlot struct {
	Number int
	Name   string
}

var ballotRe = regexp.MustCompile(`^\((\d+)\)$`)

// parseCandidateSlot parses a header cell of the form "(n)\n<name>\n<name>".
// Any other shape means the export format changed and the file is unusable.
func parseCandidateSlot(cell string) (CandidateSlot, error) {
	var lines []string
	for _, l := range strings.Split(cell, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) != 3 {
		return CandidateSlot{}, fmt.Errorf("candidate header cell %q: want ballot number and two names: %w", cell, ErrSourceFormat)
	}

	m := ballotRe.FindStringSubmatch(CleanLabel(lines[0]))
	if m == nil {
		return CandidateSlot{}, fmt.Errorf("candidate header cell %q: first line is not a parenthesized ballot number: %w", cell, ErrSourceFormat)
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return CandidateSlot{}, fmt.Errorf("candidate header cell %q: ballot number: %w", cell, ErrSourceFormat)
	}

	return CandidateSlot{Number: number, Name: lines[1] + "/" + lines[2]}, nil
}

// ParseRegionCSV reads one county's per-station export and returns it in long
// form, one record per (station, candidate) pair.
//
// The first row carries the candidate slots from column 4 on. Data rows are
// (town, village, station, votes...). Town labels blank on continuation rows
// inherit the nearest preceding non-blank town. Rows still missing any
// required field after that are dropped whole; a station or vote count that
// is present but not an integer fails the file.
func ParseRegionCSV(path, county string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows: %w", path, ErrSourceFormat)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("%s: header has %d columns, want town, village, station and at least one candidate: %w", path, len(header), ErrSourceFormat)
	}

	var slots []CandidateSlot
	for _, cell := range header[3:] {
		slot, err := parseCandidateSlot(cell)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slots = append(slots, slot)
	}

	var out []Record
	lastTown := ""

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		rec := rows[rowIdx]
		get := func(i int) string {
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		town := CleanLabel(get(0))
		if town == "" {
			town = lastTown
		} else {
			lastTown = town
		}
		village := CleanLabel(get(1))
		stationRaw := CleanLabel(get(2))

		voteCells := make([]string, len(slots))
		complete := town != "" && village != "" && stationRaw != ""
		for i := range slots {
			voteCells[i] = CleanLabel(get(3 + i))
			if voteCells[i] == "" {
				complete = false
			}
		}
		// Subtotal and spacer rows come through with gaps; no partial-row
		// tolerance, the whole row goes.
		if !complete {
			continue
		}

		station, err := strconv.Atoi(stationRaw)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: station %q is not an integer: %w", path, rowIdx+1, stationRaw, ErrSourceFormat)
		}

		for i, slot := range slots {
			votes, err := strconv.Atoi(strings.ReplaceAll(voteCells[i], ",", ""))
			if err != nil || votes < 0 {
				return nil, fmt.Errorf("%s row %d: votes %q for ballot number %d is not a non-negative integer: %w", path, rowIdx+1, voteCells[i], slot.Number, ErrSourceFormat)
			}
			out = append(out, Record{
				County:  county,
				Town:    town,
				Village: village,
				Station: station,
				Number:  slot.Number,
				Name:    slot.Name,
				Votes:   votes,
			})
		}
	}

	return out, nil
}

package electionimport

import (
	"fmt"
	"sort"
)

// Schema holds the three base relations for one build, ready to publish.
type Schema struct {
	Stations   []PollingStation
	Candidates []Candidate
	Tallies    []VoteTally
}

type stationKey struct {
	County  string
	Town    string
	Village string
	Station int
}

// BuildSchema consolidates long-form records from every region into the three
// canonical relations. Station surrogate ids are 1-based in first-seen order,
// so identical input ordering yields identical ids on every run. Candidates
// are keyed by ballot number; the same number mapping to two display names is
// a consistency failure, as is a record whose station tuple has no assigned
// id (impossible by construction, but checked rather than assumed).
func BuildSchema(records []Record) (*Schema, error) {
	stationIDs := make(map[stationKey]int)
	var stations []PollingStation

	nameByNumber := make(map[int]string)

	for _, rec := range records {
		k := stationKey{rec.County, rec.Town, rec.Village, rec.Station}
		if _, ok := stationIDs[k]; !ok {
			id := len(stations) + 1
			stationIDs[k] = id
			stations = append(stations, PollingStation{
				ID:      id,
				County:  rec.County,
				Town:    rec.Town,
				Village: rec.Village,
				Station: rec.Station,
			})
		}

		if name, ok := nameByNumber[rec.Number]; ok {
			if name != rec.Name {
				return nil, fmt.Errorf("ballot number %d maps to both %q and %q: %w", rec.Number, name, rec.Name, ErrDataConsistency)
			}
		} else {
			nameByNumber[rec.Number] = rec.Name
		}
	}

	numbers := make([]int, 0, len(nameByNumber))
	for n := range nameByNumber {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	candidates := make([]Candidate, 0, len(numbers))
	for _, n := range numbers {
		candidates = append(candidates, Candidate{ID: n, Number: n, Name: nameByNumber[n]})
	}

	type tallyKey struct {
		StationID int
		Number    int
	}
	seen := make(map[tallyKey]bool)

	tallies := make([]VoteTally, 0, len(records))
	for _, rec := range records {
		id, ok := stationIDs[stationKey{rec.County, rec.Town, rec.Village, rec.Station}]
		if !ok {
			return nil, fmt.Errorf("no polling station for (%s, %s, %s, %d): %w", rec.County, rec.Town, rec.Village, rec.Station, ErrDataConsistency)
		}
		tk := tallyKey{id, rec.Number}
		if seen[tk] {
			return nil, fmt.Errorf("duplicate tally for station %d ballot number %d (%s, %s, %s): %w", id, rec.Number, rec.County, rec.Town, rec.Village, ErrDataConsistency)
		}
		seen[tk] = true
		tallies = append(tallies, VoteTally{PollingStationID: id, CandidateID: rec.Number, Votes: rec.Votes})
	}

	return &Schema{Stations: stations, Candidates: candidates, Tallies: tallies}, nil
}

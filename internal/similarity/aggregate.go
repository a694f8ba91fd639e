package similarity

import "sort"

// VillageVotes is one row of the votes-by-village grouped query: the summed
// votes for one candidate across every polling station in one village.
type VillageVotes struct {
	County        string
	Town          string
	Village       string
	CandidateID   int
	CandidateName string
	SumVotes      int
}

// VillageKey identifies a village by its source labels.
type VillageKey struct {
	County  string
	Town    string
	Village string
}

// Totals holds the two aggregation granularities: nationwide per candidate,
// and per village per candidate. Village maps answer 0 for a candidate with
// no recorded votes there, which keeps every village vector the same shape as
// the national one.
type Totals struct {
	National map[int]int
	Villages map[VillageKey]map[int]int
}

// Aggregate is pure grouping and summation over the grouped rows.
func Aggregate(rows []VillageVotes) Totals {
	t := Totals{
		National: make(map[int]int),
		Villages: make(map[VillageKey]map[int]int),
	}
	for _, row := range rows {
		t.National[row.CandidateID] += row.SumVotes

		k := VillageKey{row.County, row.Town, row.Village}
		if t.Villages[k] == nil {
			t.Villages[k] = make(map[int]int)
		}
		t.Villages[k][row.CandidateID] += row.SumVotes
	}
	return t
}

// CandidateOrder returns the fixed candidate ordering used for every share
// vector this run: ballot numbers ascending.
func (t Totals) CandidateOrder() []int {
	order := make([]int, 0, len(t.National))
	for id := range t.National {
		order = append(order, id)
	}
	sort.Ints(order)
	return order
}

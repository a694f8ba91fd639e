package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrNoVotes means the national vote total is zero, so no share vector
	// can be formed.
	ErrNoVotes = errors.New("no votes recorded")

	// ErrZeroVector means a cosine operand has zero magnitude. The pipeline
	// excludes zero-total villages before this point, so seeing it signals a
	// bug, not bad input.
	ErrZeroVector = errors.New("zero-magnitude share vector")
)

// RankedVillage is one output row: the village's share vector in the run's
// candidate ordering, its cosine similarity to the national vector, and its
// dense 1-based rank.
type RankedVillage struct {
	County           string    `json:"county"`
	Town             string    `json:"town"`
	Village          string    `json:"village"`
	Shares           []float64 `json:"shares"`
	CosineSimilarity float64   `json:"cosine_similarity"`
	SimilarityRank   int       `json:"similarity_rank"`
}

// Result is a complete ranking computation over one snapshot of the base
// relations.
type Result struct {
	CandidateOrder []int           `json:"candidate_order"`
	NationalShares []float64       `json:"national_shares"`
	Villages       []RankedVillage `json:"villages"`
}

// Cosine returns the cosine similarity of two equal-length vectors. A
// zero-magnitude operand is rejected rather than silently producing NaN.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector lengths differ: %d vs %d", len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

func shares(totals map[int]int, order []int, total int) []float64 {
	v := make([]float64, len(order))
	for i, id := range order {
		v[i] = float64(totals[id]) / float64(total)
	}
	return v
}

// ComputeRanking builds the national share vector, each village's share
// vector over the same candidate ordering, and ranks villages by cosine
// similarity to the national vector.
//
// Villages whose total is zero cannot be normalized and are excluded. Ordering
// is similarity descending, ties broken by ascending (county, town, village)
// string order; similarity_rank is dense, so tied villages do not share a
// rank.
func ComputeRanking(rows []VillageVotes) (*Result, error) {
	totals := Aggregate(rows)

	totalNational := 0
	for _, v := range totals.National {
		totalNational += v
	}
	if totalNational == 0 {
		return nil, fmt.Errorf("national vote total is zero: %w", ErrNoVotes)
	}

	order := totals.CandidateOrder()
	national := shares(totals.National, order, totalNational)

	villages := make([]RankedVillage, 0, len(totals.Villages))
	for key, vt := range totals.Villages {
		villageTotal := 0
		for _, id := range order {
			villageTotal += vt[id]
		}
		if villageTotal == 0 {
			// Cannot normalize; excluded by policy, not an error.
			continue
		}

		vec := shares(vt, order, villageTotal)
		sim, err := Cosine(national, vec)
		if err != nil {
			return nil, fmt.Errorf("village (%s, %s, %s): %w", key.County, key.Town, key.Village, err)
		}

		villages = append(villages, RankedVillage{
			County:           key.County,
			Town:             key.Town,
			Village:          key.Village,
			Shares:           vec,
			CosineSimilarity: sim,
		})
	}

	sort.Slice(villages, func(i, j int) bool {
		a, b := villages[i], villages[j]
		if a.CosineSimilarity != b.CosineSimilarity {
			return a.CosineSimilarity > b.CosineSimilarity
		}
		if a.County != b.County {
			return a.County < b.County
		}
		if a.Town != b.Town {
			return a.Town < b.Town
		}
		return a.Village < b.Village
	})
	for i := range villages {
		villages[i].SimilarityRank = i + 1
	}

	return &Result{CandidateOrder: order, NationalShares: national, Villages: villages}, nil
}

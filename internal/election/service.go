package election

import (
	"sync"
	"time"

	"github.com/OctopusVote/OV-Backend/internal/similarity"
)

// Source is what the ranking service needs from the persistence layer.
type Source interface {
	VotesByVillage() ([]similarity.VillageVotes, error)
	Candidates() ([]Candidate, error)
	LastImportRun() (*ImportRun, error)
}

// Snapshot is one immutable ranking computation. Nothing mutates it after the
// build, so concurrent readers need no locking beyond the swap.
type Snapshot struct {
	CandidateOrder []int                      `json:"candidate_order"`
	NationalShares []float64                  `json:"national_shares"`
	Villages       []similarity.RankedVillage `json:"villages"`
	BuiltAt        time.Time                  `json:"built_at"`
}

// Service computes rankings from the base relations and publishes them as
// whole snapshots. A rebuild stages the new snapshot fully before swapping it
// in, so readers never observe a partial state.
type Service struct {
	src Source

	mu   sync.RWMutex
	snap *Snapshot
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Ranking returns the current snapshot, computing one on first use.
func (s *Service) Ranking() (*Snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return s.Rebuild()
}

// Rebuild recomputes the ranking from the persisted base relations and swaps
// the result in as a unit.
func (s *Service) Rebuild() (*Snapshot, error) {
	rows, err := s.src.VotesByVillage()
	if err != nil {
		return nil, err
	}

	result, err := similarity.ComputeRanking(rows)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		CandidateOrder: result.CandidateOrder,
		NationalShares: result.NationalShares,
		Villages:       result.Villages,
		BuiltAt:        time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	return snap, nil
}

func (s *Service) Candidates() ([]Candidate, error) {
	return s.src.Candidates()
}

func (s *Service) LastImportRun() (*ImportRun, error) {
	return s.src.LastImportRun()
}

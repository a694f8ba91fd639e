package election

import (
	"errors"

	"github.com/OctopusVote/OV-Backend/internal/similarity"
	"gorm.io/gorm"
)

// Store reads the base relations for the ranking pipeline.
type Store struct {
	db *gorm.DB
}

func NewStore(d *gorm.DB) *Store {
	return &Store{db: d}
}

// votesByVillageSQL mirrors the votes_by_village view shape: one row per
// (village, candidate) with the summed votes across that village's stations.
const votesByVillageSQL = `
	SELECT ps.county,
	       ps.town,
	       ps.village,
	       c.id   AS candidate_id,
	       c.name AS candidate_name,
	       SUM(vt.votes) AS sum_votes
	  FROM election.vote_tallies vt
	  JOIN election.polling_stations ps
	    ON vt.polling_station_id = ps.id
	  JOIN election.candidates c
	    ON vt.candidate_id = c.id
	 GROUP BY ps.county, ps.town, ps.village, c.id, c.name
	 ORDER BY ps.county, ps.town, ps.village, c.id
`

func (s *Store) VotesByVillage() ([]similarity.VillageVotes, error) {
	var rows []similarity.VillageVotes
	if err := s.db.Raw(votesByVillageSQL).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) Candidates() ([]Candidate, error) {
	var candidates []Candidate
	if err := s.db.Order("id").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// LastImportRun returns the most recent audit row, or nil if nothing has been
// imported yet.
func (s *Store) LastImportRun() (*ImportRun, error) {
	var run ImportRun
	err := s.db.Order("finished_at DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

package election

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PollingStation struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	County  string `json:"county"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Station int    `json:"station"`
}

type Candidate struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type VoteTally struct {
	PollingStationID int `json:"polling_station_id"`
	CandidateID      int `json:"candidate_id"`
	Votes            int `json:"votes"`
}

type ImportRun struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SourceFiles pq.StringArray `gorm:"type:text[]" json:"source_files"`
	Stations    int            `json:"stations"`
	Candidates  int            `json:"candidates"`
	Tallies     int            `json:"tallies"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
}

func (PollingStation) TableName() string {
	return "election.polling_stations"
}

func (Candidate) TableName() string {
	return "election.candidates"
}

func (VoteTally) TableName() string {
	return "election.vote_tallies"
}

func (ImportRun) TableName() string {
	return "election.import_runs"
}

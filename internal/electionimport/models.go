package electionimport

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PollingStation struct {
	ID      int    `gorm:"primaryKey;column:id"`
	County  string `gorm:"column:county"`
	Town    string `gorm:"column:town"`
	Village string `gorm:"column:village"`
	Station int    `gorm:"column:station"`
}

func (PollingStation) TableName() string { return "election.polling_stations" }

// Candidate uses the ballot number directly as its persisted id; there is no
// separate surrogate key.
type Candidate struct {
	ID     int    `gorm:"primaryKey;column:id"`
	Number int    `gorm:"column:number"`
	Name   string `gorm:"column:name"`
}

func (Candidate) TableName() string { return "election.candidates" }

type VoteTally struct {
	PollingStationID int `gorm:"column:polling_station_id"`
	CandidateID      int `gorm:"column:candidate_id"`
	Votes            int `gorm:"column:votes"`
}

func (VoteTally) TableName() string { return "election.vote_tallies" }

// ImportRun is the audit row written alongside each successful full replace.
type ImportRun struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	SourceFiles pq.StringArray `gorm:"type:text[];column:source_files"`
	Stations    int            `gorm:"column:stations"`
	Candidates  int            `gorm:"column:candidates"`
	Tallies     int            `gorm:"column:tallies"`
	StartedAt   time.Time      `gorm:"column:started_at"`
	FinishedAt  time.Time      `gorm:"column:finished_at"`
}

func (ImportRun) TableName() string { return "election.import_runs" }

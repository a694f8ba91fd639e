package election

import (
	"log"

	"github.com/OctopusVote/OV-Backend/internal/db"
)

func Init() {
	// Ensure the election schema exists first
	if err := db.EnsureSchema(db.DB, "election"); err != nil {
		log.Fatal("Failed to create election schema: ", err)
	}

	if err := db.DB.AutoMigrate(&PollingStation{}, &Candidate{}, &VoteTally{}, &ImportRun{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	Svc = NewService(NewStore(db.DB))
}

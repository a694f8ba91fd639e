package election

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/OctopusVote/OV-Backend/internal/electionimport"
	"github.com/OctopusVote/OV-Backend/internal/similarity"
)

// Svc is the package-level ranking service, set by Init. Tests swap in a
// Service built on a stub Source.
var Svc *Service

func RankingHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := Svc.Ranking()
	if err != nil {
		if errors.Is(err, similarity.ErrNoVotes) {
			http.Error(w, "No election data loaded", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to compute ranking: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func FilterHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		County  string `json:"county"`
		Town    string `json:"town"`
		Village string `json:"village"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.County == "" || input.Town == "" || input.Village == "" {
		http.Error(w, "county, town and village are required", http.StatusBadRequest)
		return
	}

	snap, err := Svc.Ranking()
	if err != nil {
		if errors.Is(err, similarity.ErrNoVotes) {
			http.Error(w, "No election data loaded", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to compute ranking: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// A miss is an empty list, not an error.
	rows := similarity.Filter(snap.Villages, input.County, input.Town, input.Village)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func CandidatesHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := Svc.Candidates()
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(candidates) == 0 {
		http.Error(w, "No candidates found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func StatusHandler(w http.ResponseWriter, r *http.Request) {
	run, err := Svc.LastImportRun()
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := struct {
		LastImport *ImportRun `json:"last_import"`
	}{LastImport: run}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RebuildHandler re-runs the importer against the configured data directory
// and swaps in a fresh ranking snapshot. Guarded by the admin token
// middleware.
func RebuildHandler(w http.ResponseWriter, r *http.Request) {
	dataDir := os.Getenv("ELECTION_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	cfg := electionimport.Config{
		DataDir:      dataDir,
		ManifestPath: os.Getenv("ELECTION_REGIONS_MANIFEST"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Wipe:         true,
	}

	if err := electionimport.Run(cfg); err != nil {
		if errors.Is(err, electionimport.ErrSourceFormat) || errors.Is(err, electionimport.ErrDataConsistency) {
			http.Error(w, "Import rejected: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Import failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	snap, err := Svc.Rebuild()
	if err != nil {
		http.Error(w, "Failed to compute ranking: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := struct {
		Villages int    `json:"villages"`
		BuiltAt  string `json:"built_at"`
	}{Villages: len(snap.Villages), BuiltAt: snap.BuiltAt.UTC().Format("2006-01-02T15:04:05Z07:00")}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

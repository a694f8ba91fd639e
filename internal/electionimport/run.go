package electionimport

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DataDir      string
	ManifestPath string
	DatabaseURL  string
	Wipe         bool
}

// Run parses every region listed in the manifest, builds the three base
// relations, and publishes them in a single transaction: wipe then bulk
// insert. Any region failing to parse aborts the whole build before the first
// write, so readers never see a partial schema.
func Run(cfg Config) error {
	if !cfg.Wipe {
		return errors.New("refusing to run: set Wipe=true (this importer replaces the election tables)")
	}

	manifestPath := cfg.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(cfg.DataDir, "regions.yaml")
	}
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	startedAt := time.Now()

	var records []Record
	sourceFiles := make([]string, 0, len(manifest.Regions))
	for _, region := range manifest.Regions {
		path := filepath.Join(cfg.DataDir, region.SourceFile())
		parsed, err := ParseRegionCSV(path, region.Name)
		if err != nil {
			return fmt.Errorf("region %s: %w", region.Name, err)
		}
		log.Printf("[import] %s: %d records", region.Name, len(parsed))
		records = append(records, parsed...)
		sourceFiles = append(sourceFiles, region.SourceFile())
	}

	if len(records) == 0 {
		return fmt.Errorf("no usable rows in any region: %w", ErrSourceFormat)
	}

	schema, err := BuildSchema(records)
	if err != nil {
		return err
	}
	log.Printf("[import] built %d stations, %d candidates, %d tallies in %dms",
		len(schema.Stations), len(schema.Candidates), len(schema.Tallies),
		time.Since(startedAt).Milliseconds())

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return err
	}

	publishStart := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := wipeElection(tx); err != nil {
			return err
		}

		if err := tx.CreateInBatches(&schema.Stations, 1000).Error; err != nil {
			return fmt.Errorf("insert polling stations: %w", err)
		}
		if err := tx.Create(&schema.Candidates).Error; err != nil {
			return fmt.Errorf("insert candidates: %w", err)
		}
		if err := tx.CreateInBatches(&schema.Tallies, 1000).Error; err != nil {
			return fmt.Errorf("insert vote tallies: %w", err)
		}

		run := ImportRun{
			ID:          uuid.New(),
			SourceFiles: sourceFiles,
			Stations:    len(schema.Stations),
			Candidates:  len(schema.Candidates),
			Tallies:     len(schema.Tallies),
			StartedAt:   startedAt,
			FinishedAt:  time.Now(),
		}
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("insert import run: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[import] published in %dms", time.Since(publishStart).Milliseconds())
	return nil
}

func wipeElection(tx *gorm.DB) error {
	// import_runs is deliberately left alone; it is the audit history.
	sql := `
		TRUNCATE TABLE
			election.vote_tallies,
			election.polling_stations,
			election.candidates;
	`
	return tx.Exec(sql).Error
}

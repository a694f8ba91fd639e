package main

import (
	"flag"
	"log"
	"os"

	"github.com/OctopusVote/OV-Backend/internal/electionimport"
)

func main() {
	var (
		dataDir  = flag.String("data", "data", "directory holding the per-county CSV exports")
		manifest = flag.String("manifest", "", "region manifest (default: <data>/regions.yaml)")
		dbURL    = flag.String("db", "", "DATABASE_URL")
		wipe     = flag.Bool("wipe", false, "DANGER: replaces the election tables")
	)
	flag.Parse()

	if *dbURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := electionimport.Config{
		DataDir:      *dataDir,
		ManifestPath: *manifest,
		DatabaseURL:  *dbURL,
		Wipe:         *wipe,
	}

	if err := electionimport.Run(cfg); err != nil {
		log.Fatal(err)
	}
}

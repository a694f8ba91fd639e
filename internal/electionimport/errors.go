package electionimport

import "errors"

// Error categories for the build pipeline. Callers match with errors.Is;
// wrapped messages carry the region / row / tuple needed to locate bad input.
var (
	// ErrSourceFormat means a region's raw export does not have the expected
	// header or row shape. Fatal for the whole build.
	ErrSourceFormat = errors.New("unexpected source format")

	// ErrDataConsistency means the normalized records contradict each other
	// (one ballot number with two names, a tally with no matching station).
	ErrDataConsistency = errors.New("data consistency violation")
)

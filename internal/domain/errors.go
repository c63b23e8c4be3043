package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Classification errors
	ErrUnknownTerrain = errors.New("unknown terrain")

	// Value errors
	ErrInvalidRect     = errors.New("invalid region bounds")
	ErrInvalidSnapshot = errors.New("invalid region snapshot")

	// Projection errors
	ErrNegativeYears      = errors.New("years passed must not be negative")
	ErrPopulationOverflow = errors.New("projected population exceeds supported range")

	// Dataset errors
	ErrRegionNotFound    = errors.New("region not found")
	ErrEmptyDataset      = errors.New("dataset contains no regions")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

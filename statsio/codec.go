// File: codec.go
// Role: gob encode/decode of TargetStats over io.Writer/io.Reader — Go's
// idiomatic "portable binary numeric format" for this data contract.
package statsio

import (
	"encoding/gob"
	"io"
)

// Encode writes stats to w using encoding/gob.
func Encode(w io.Writer, stats *TargetStats) error {
	return gob.NewEncoder(w).Encode(stats)
}

// Decode reads a TargetStats previously written by Encode.
func Decode(r io.Reader) (*TargetStats, error) {
	var stats TargetStats
	if err := gob.NewDecoder(r).Decode(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

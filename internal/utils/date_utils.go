package utils

import "time"

// GetRiyadhLocation returns the Saudi Arabia timezone (UTC+3). Umrah sites
// and the reporting dashboard operate on this timezone, so cutoffs and
// snapshot timestamps are taken in it for consistency.
func GetRiyadhLocation() *time.Location {
	riyadhLocation, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		// Fallback to a fixed UTC+3 zone if the location cannot be loaded
		riyadhLocation = time.FixedZone("AST", 3*60*60)
	}
	return riyadhLocation
}

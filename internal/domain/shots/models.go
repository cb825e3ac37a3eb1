// Package shots holds the canonical shot record shape.
package shots

// ShotType distinguishes two and three point attempts.
type ShotType string

const (
	TwoPoint   ShotType = "2PT"
	ThreePoint ShotType = "3PT"
)

// Record is a single shot attempt. Coordinates use the upstream convention:
// origin at the center of the hoop, one unit = 0.1 ft, x across the court.
type Record struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Made   bool     `json:"made"`
	Type   ShotType `json:"type"`
	Period int      `json:"period"`
}

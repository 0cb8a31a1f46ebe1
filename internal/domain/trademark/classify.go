package trademark

// Severity labels returned by Classify.
const (
	LevelHigh    = "HIGH - Likely same brand"
	LevelMedium  = "MEDIUM - Potential conflict"
	LevelLow     = "LOW - Worth reviewing"
	LevelMinimal = "MINIMAL - No significant similarity"
)

// Band lower bounds, inclusive.
const (
	highBound   = 85.0
	mediumBound = 70.0
	lowBound    = 50.0
)

// Classify maps an overall similarity score to a discrete severity label.
// Bands are evaluated high to low with inclusive lower bounds: a score of
// exactly 85.0 is HIGH.
func Classify(score float64) string {
	switch {
	case score >= highBound:
		return LevelHigh
	case score >= mediumBound:
		return LevelMedium
	case score >= lowBound:
		return LevelLow
	default:
		return LevelMinimal
	}
}

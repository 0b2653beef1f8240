package types

// Difficulty levels, ordered. The rank drives reading filters and module
// ordering in the syllabus generator.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// OrganMap maps the eight organ Roman-numeral codes to their canonical
// taxonomy slugs.
var OrganMap = map[string]string{
	"I":    "i-theoria",
	"II":   "ii-poiesis",
	"III":  "iii-ergon",
	"IV":   "iv-taxis",
	"V":    "v-logos",
	"VI":   "vi-koinonia",
	"VII":  "vii-kerygma",
	"VIII": "viii-meta",
}

var DifficultyOrder = map[string]int{
	DifficultyBeginner:     0,
	DifficultyIntermediate: 1,
	DifficultyAdvanced:     2,
}

// ValidLevel reports whether level is one of the known difficulty values.
func ValidLevel(level string) bool {
	_, ok := DifficultyOrder[level]
	return ok
}

// AllowedDifficulties returns the admissible reading difficulties for a
// requested level. Each level overlaps with its upward neighbor; advanced
// stands alone.
func AllowedDifficulties(level string) map[string]bool {
	switch level {
	case DifficultyBeginner:
		return map[string]bool{DifficultyBeginner: true, DifficultyIntermediate: true}
	case DifficultyIntermediate:
		return map[string]bool{DifficultyIntermediate: true, DifficultyAdvanced: true}
	default:
		return map[string]bool{DifficultyAdvanced: true}
	}
}

// DifficultyRank returns the sort rank for a difficulty value, defaulting
// unknown values to intermediate.
func DifficultyRank(difficulty string) int {
	if r, ok := DifficultyOrder[difficulty]; ok {
		return r
	}
	return DifficultyOrder[DifficultyIntermediate]
}

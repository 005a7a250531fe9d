package analysis

import "github.com/rubriq/rubriq/internal/domain/types"

// Proficiency level names, lowest to highest.
const (
	LevelNovice       = "Novice"
	LevelIntermediate = "Intermediate"
	LevelProficient   = "Proficient"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Lowest overall score of each band above Novice. 40 is still Novice,
// 41 Intermediate, 60 Intermediate, 61 Proficient, 75 Proficient,
// 76 Advanced, 85 Advanced, 86 Expert.
const (
	minIntermediate = 41
	minProficient   = 61
	minAdvanced     = 76
	minExpert       = 86
)

// maxOverallScore is the top of the Expert band.
const maxOverallScore = 100

// Level maps an overall score to its proficiency level.
func Level(score int) string {
	switch {
	case score >= minExpert:
		return LevelExpert
	case score >= minAdvanced:
		return LevelAdvanced
	case score >= minProficient:
		return LevelProficient
	case score >= minIntermediate:
		return LevelIntermediate
	default:
		return LevelNovice
	}
}

// Levels returns every level name, lowest to highest.
func Levels() []string {
	return []string{LevelNovice, LevelIntermediate, LevelProficient, LevelAdvanced, LevelExpert}
}

// LevelBands returns the inclusive score range of every level.
func LevelBands() []types.LevelBand {
	return []types.LevelBand{
		{Level: LevelNovice, Min: 0, Max: minIntermediate - 1},
		{Level: LevelIntermediate, Min: minIntermediate, Max: minProficient - 1},
		{Level: LevelProficient, Min: minProficient, Max: minAdvanced - 1},
		{Level: LevelAdvanced, Min: minAdvanced, Max: minExpert - 1},
		{Level: LevelExpert, Min: minExpert, Max: maxOverallScore},
	}
}

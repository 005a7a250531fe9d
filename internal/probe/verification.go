package probe

import (
	"fmt"
	"log"
	"sort"
)

// verifyOutcomes checks the collected outcomes against what the engine
// guarantees: every level agrees with the band its score falls in, and a
// template always scores the same. Softer expectations, such as each
// archetype landing in the tier it was written for and the ladder climbing
// from template to template, are reported as warnings.
func verifyOutcomes(config *Config, outcomes []Outcome, bands []levelBand, stats *Stats) error {
	log.Println("🔍 Verifying outcomes...")

	if len(outcomes) == 0 {
		return fmt.Errorf("no outcomes to verify")
	}

	if err := verifyBandAgreement(outcomes, bands); err != nil {
		return err
	}
	if err := verifyDeterminism(outcomes); err != nil {
		return err
	}

	if mismatches := countLevelMismatches(outcomes); mismatches > 0 {
		log.Printf("⚠️  Tier expectation warning: %d/%d outcomes landed outside their template's tier",
			mismatches, len(outcomes))
	} else {
		log.Println("✅ Every template landed in its expected tier")
	}

	ladder := averageByArchetype(outcomes)
	if err := verifyLadderOrdering(ladder); err != nil {
		log.Printf("⚠️  Ladder ordering warning: %v", err)
	} else {
		log.Println("✅ Archetype ladder scores are non-decreasing")
	}

	if stats.RecordedByService < int64(stats.Successful) {
		log.Printf("⚠️  Tally warning: service recorded %d analyses, probe submitted %d successfully",
			stats.RecordedByService, stats.Successful)
	}

	displayOutcomeSummary(ladder, outcomes, config.Verbose)

	log.Println("✅ Outcome verification completed")
	return nil
}

// verifyBandAgreement checks every outcome's level against the band that
// contains its score. The engine derives the level from the score, so a
// disagreement means the service and its catalog have diverged.
func verifyBandAgreement(outcomes []Outcome, bands []levelBand) error {
	for _, o := range outcomes {
		band, ok := bandForScore(bands, o.Score)
		if !ok {
			return fmt.Errorf("score %d from %s conversation falls outside every band", o.Score, o.Archetype)
		}
		if o.Level != band.Level {
			return fmt.Errorf("score %d maps to band %s but the service reported %s", o.Score, band.Level, o.Level)
		}
	}
	log.Printf("✅ All %d outcomes agree with the published bands", len(outcomes))
	return nil
}

// bandForScore finds the band whose [Min, Max] range contains score.
func bandForScore(bands []levelBand, score int) (levelBand, bool) {
	for _, b := range bands {
		if score >= b.Min && score <= b.Max {
			return b, true
		}
	}
	return levelBand{}, false
}

// verifyDeterminism checks that identical conversations scored identically.
func verifyDeterminism(outcomes []Outcome) error {
	seen := make(map[string]int)
	for _, o := range outcomes {
		prev, ok := seen[o.Archetype]
		if !ok {
			seen[o.Archetype] = o.Score
			continue
		}
		if prev != o.Score {
			return fmt.Errorf("%s conversation scored both %d and %d; analysis must be deterministic",
				o.Archetype, prev, o.Score)
		}
	}
	log.Printf("✅ Determinism holds across %d archetypes", len(seen))
	return nil
}

// countLevelMismatches counts outcomes whose level differs from the tier
// their template targets.
func countLevelMismatches(outcomes []Outcome) int {
	mismatches := 0
	for _, o := range outcomes {
		if o.WantLevel != "" && o.Level != o.WantLevel {
			mismatches++
		}
	}
	return mismatches
}

// archetypeAverage is one rung of the observed ladder.
type archetypeAverage struct {
	Archetype string
	Average   float64
	Count     int
}

// averageByArchetype folds outcomes into per-archetype averages, ordered
// the way the templates are declared.
func averageByArchetype(outcomes []Outcome) []archetypeAverage {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, o := range outcomes {
		sums[o.Archetype] += o.Score
		counts[o.Archetype]++
	}

	var ladder []archetypeAverage
	for _, tpl := range archetypes() {
		n := counts[tpl.Name]
		if n == 0 {
			continue
		}
		ladder = append(ladder, archetypeAverage{
			Archetype: tpl.Name,
			Average:   float64(sums[tpl.Name]) / float64(n),
			Count:     n,
		})
	}
	return ladder
}

// verifyLadderOrdering checks that average scores climb with the templates.
func verifyLadderOrdering(ladder []archetypeAverage) error {
	for i := 1; i < len(ladder); i++ {
		if ladder[i].Average < ladder[i-1].Average {
			return fmt.Errorf("%s averaged %.1f, below %s at %.1f",
				ladder[i].Archetype, ladder[i].Average,
				ladder[i-1].Archetype, ladder[i-1].Average)
		}
	}
	return nil
}

// displayOutcomeSummary shows the observed ladder and, in verbose mode,
// score statistics across all outcomes.
func displayOutcomeSummary(ladder []archetypeAverage, outcomes []Outcome, verbose bool) {
	log.Printf("🏆 Observed archetype ladder:")
	for i, rung := range ladder {
		log.Printf("   %d. %s - average score: %.1f over %d runs", i+1, rung.Archetype, rung.Average, rung.Count)
	}

	if verbose && len(outcomes) > 0 {
		scores := make([]int, len(outcomes))
		for i, o := range outcomes {
			scores[i] = o.Score
		}
		sort.Ints(scores)

		sum := 0
		for _, s := range scores {
			sum += s
		}

		log.Printf(`📊 Score statistics:
   Average: %.1f
   Maximum: %d
   Minimum: %d
`, float64(sum)/float64(len(scores)), scores[len(scores)-1], scores[0])
	}
}

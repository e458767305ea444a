// Package feedback turns an analysis score and matched-skill set into
// ordered, human-readable feedback statements.
package feedback

import (
	"log/slog"
	"math"
	"sort"
	"strings"
)

// Result is the composed feedback for one analysis. Strengths always holds
// the relevance statement first, then the skills statement, except in the
// degraded single-entry case.
type Result struct {
	Strengths []string `json:"strengths"`
	Score     float64  `json:"score"`
}

// Generator composes feedback text. Safe for concurrent use.
type Generator struct {
	log *slog.Logger
}

func NewGenerator(log *slog.Logger) *Generator {
	return &Generator{log: log}
}

// Generate builds feedback from a relevance score and the matched skills.
// It never fails: a score outside the finite range degrades to a fallback
// result with score 0 instead of propagating an error. Skills are listed in
// sorted order so the output is deterministic.
func (g *Generator) Generate(score float64, matchingSkills []string) Result {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		g.log.Error("feedback generation degraded", "reason", "non-finite score")
		return Result{
			Strengths: []string{"An error occurred while generating feedback."},
			Score:     0,
		}
	}

	strengths := make([]string, 0, 2)

	switch {
	case score > 0.8:
		strengths = append(strengths, "Your resume is highly relevant to the job description. Great job!")
	case score > 0.5:
		strengths = append(strengths, "Your resume is fairly relevant. Consider highlighting your skills more prominently.")
	default:
		strengths = append(strengths, "Your resume has low relevance. You may need to improve your resume content to match the job description.")
	}

	if len(matchingSkills) > 0 {
		skills := make([]string, len(matchingSkills))
		copy(skills, matchingSkills)
		sort.Strings(skills)
		strengths = append(strengths, "Matching skills found: "+strings.Join(skills, ", "))
	} else {
		strengths = append(strengths, "No matching skills found. Consider adding more relevant skills to your resume.")
	}

	return Result{Strengths: strengths, Score: score}
}

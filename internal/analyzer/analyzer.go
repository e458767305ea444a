// Package analyzer computes the relevance of résumé content against a job
// description by matching both texts against the shared skill taxonomy.
package analyzer

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/resumate-app/resumate/internal/taxonomy"
)

// MatchResult holds the taxonomy phrases found in the résumé and the derived
// relevance score. The slices are sorted for stable JSON and feedback output.
type MatchResult struct {
	MatchingHardSkills []string `json:"matching_hard_skills"`
	MatchingSoftSkills []string `json:"matching_soft_skills"`
	MatchingEducation  []string `json:"matching_education"`
	Score              float64  `json:"score"`
}

// MatchingSkills returns the sorted union of all matched phrases across the
// three taxonomy lists.
func (r MatchResult) MatchingSkills() []string {
	set := make(map[string]struct{})
	for _, list := range [][]string{r.MatchingHardSkills, r.MatchingSoftSkills, r.MatchingEducation} {
		for _, s := range list {
			set[s] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Analyzer matches résumé and job-description text against a taxonomy.
// It is stateless beyond its read-only dependencies and safe for concurrent
// use.
type Analyzer struct {
	tax taxonomy.Taxonomy
	log *slog.Logger
}

func New(tax taxonomy.Taxonomy, log *slog.Logger) *Analyzer {
	return &Analyzer{tax: tax, log: log}
}

// Analyze matches the résumé tokens and the job description against the
// taxonomy and derives a relevance score.
//
// Matching is case-insensitive substring containment: "Java" is found inside
// "JavaScript". That over-match is a known characteristic of the scheme, not
// a defect.
//
// The score divides the number of distinct taxonomy phrases found in the
// résumé by the number found in the job description. The numerator is not
// restricted to phrases the job description mentions, so the score can
// exceed 1.0 when the résumé matches more of the taxonomy than the job
// description does. An empty denominator yields score 0 (no signal).
func (a *Analyzer) Analyze(resumeTokens []string, jobDescription string) MatchResult {
	resumeBlob := strings.ToLower(strings.Join(resumeTokens, " "))
	jobBlob := strings.ToLower(jobDescription)

	hard := matchSet(resumeBlob, a.tax.HardSkills)
	soft := matchSet(resumeBlob, a.tax.SoftSkills)
	edu := matchSet(resumeBlob, a.tax.EducationKeywords)

	matched := make(map[string]struct{}, len(hard)+len(soft)+len(edu))
	for _, set := range []map[string]struct{}{hard, soft, edu} {
		for p := range set {
			matched[p] = struct{}{}
		}
	}

	jobMatches := matchSet(jobBlob, a.tax.All())

	score := 0.0
	if len(jobMatches) > 0 {
		score = float64(len(matched)) / float64(len(jobMatches))
	}

	a.log.Debug("content analysis complete",
		"resume_matches", len(matched),
		"job_matches", len(jobMatches),
		"score", score,
	)

	return MatchResult{
		MatchingHardSkills: sortedKeys(hard),
		MatchingSoftSkills: sortedKeys(soft),
		MatchingEducation:  sortedKeys(edu),
		Score:              score,
	}
}

// matchSet returns the taxonomy phrases whose lowercased form appears as a
// substring of blob. Phrases listed more than once collapse to one entry.
func matchSet(blob string, phrases []string) map[string]struct{} {
	found := make(map[string]struct{})
	if blob == "" {
		return found
	}
	for _, p := range phrases {
		if strings.Contains(blob, strings.ToLower(p)) {
			found[p] = struct{}{}
		}
	}
	return found
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

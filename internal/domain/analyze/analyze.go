// Package analyze implements the content scoring engine: four check
// families evaluated against one scanned document, aggregated into a
// weighted overall score and letter grade. Every function here is a
// pure function of its inputs; the engine performs no I/O and holds no
// state between calls.
package analyze

import (
	"fmt"
	"math"
	"strings"

	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	scan "github.com/okian/seograde/internal/domain/scan"
	types "github.com/okian/seograde/internal/domain/types"
	"golang.org/x/text/cases"
)

// Analyzer evaluates drafts against the fixed check catalog. The zero
// value is not usable; construct with New.
type Analyzer struct {
	densityMin  float64
	densityMax  float64
	introWindow int
}

// New constructs an Analyzer with default thresholds, adjusted by opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		densityMin:  catalog.DefaultDensityMin,
		densityMax:  catalog.DefaultDensityMax,
		introWindow: catalog.DefaultIntroWindow,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores one draft. It is total and deterministic: any
// well-typed input, including empty strings and absent optional
// fields, produces a valid SEOScore, and the same input always
// produces the same output. Missing optional fields change which
// checks are emitted, never cause an error.
func (a *Analyzer) Analyze(in model.Input) model.SEOScore {
	doc := scan.Parse(in.Content)

	content := a.contentChecks(in, doc)
	readability := a.readabilityChecks(doc)
	technical := a.technicalChecks(in, doc)
	keyword := a.keywordChecks(in, doc)

	score := model.SEOScore{
		Content:           categoryScore(content.Checks),
		Readability:       categoryScore(readability.Checks),
		Technical:         categoryScore(technical.Checks),
		Keyword:           categoryScore(keyword.Checks),
		ContentResult:     content,
		ReadabilityResult: readability,
		TechnicalResult:   technical,
		KeywordResult:     keyword,
	}
	score.Overall = overallScore(score.Content, score.Readability, score.Technical, score.Keyword)
	score.Grade = model.GradeFor(score.Overall)

	// Fixed category order keeps the concatenation stable for callers.
	checks := make([]model.Check, 0,
		len(content.Checks)+len(readability.Checks)+len(technical.Checks)+len(keyword.Checks))
	checks = append(checks, content.Checks...)
	checks = append(checks, readability.Checks...)
	checks = append(checks, technical.Checks...)
	checks = append(checks, keyword.Checks...)
	score.Checks = checks

	return score
}

// categoryScore converts a check list into a 0-100 percentage. A
// category that emitted no checks is vacuously perfect, never a
// division by zero.
func categoryScore(checks []model.Check) int {
	if len(checks) == 0 {
		return 100
	}
	var sum, max int
	for _, c := range checks {
		sum += c.Score
		max += c.MaxScore
	}
	if max == 0 {
		return 100
	}
	return int(math.Round(100 * float64(sum) / float64(max)))
}

// overallScore combines the four category percentages using the fixed
// catalog weights.
func overallScore(content, readability, technical, keyword int) int {
	weighted := catalog.WeightContent*float64(content) +
		catalog.WeightReadability*float64(readability) +
		catalog.WeightTechnical*float64(technical) +
		catalog.WeightKeyword*float64(keyword)
	return int(math.Round(weighted))
}

// newCheck materializes a catalog entry with a computed outcome. The
// catalog owns category, title, priority and max score; analyzers only
// decide status, score and wording. Suggestions are dropped on passing
// checks so output never nags about satisfied rules.
func newCheck(id string, status types.Status, score int, description, suggestion string) model.Check {
	spec, ok := catalog.Get(id)
	if !ok {
		// Analyzers and catalog ship together; an unknown id is a
		// programming error, not an input condition.
		panic(fmt.Sprintf("analyze: check id %q not in catalog", id))
	}
	if score < 0 {
		score = 0
	}
	if score > spec.MaxScore {
		score = spec.MaxScore
	}
	if status == types.StatusPass {
		suggestion = ""
	}
	return model.Check{
		ID:          spec.ID,
		Category:    spec.Category,
		Title:       spec.Title,
		Description: description,
		Status:      status,
		Priority:    spec.Priority,
		Score:       score,
		MaxScore:    spec.MaxScore,
		Suggestion:  suggestion,
	}
}

// fold lowercases s with full Unicode case folding. A fresh caser per
// call keeps the helpers safe for concurrent analyzers.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold reports whether s contains substr, case-insensitively.
// An empty substr never matches.
func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(fold(s), fold(substr))
}

// countFold counts non-overlapping, case-insensitive occurrences of
// substr in s.
func countFold(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(fold(s), fold(substr))
}

// firstWords returns the first n whitespace-delimited words of text.
func firstWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

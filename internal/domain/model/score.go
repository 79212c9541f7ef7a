package model

import (
	types "github.com/okian/seograde/internal/domain/types"
)

// Check is one itemized rule evaluation contributing a bounded score
// to its category. Status and score are derived together from the same
// thresholds; a failing check always carries score 0.
type Check struct {
	ID          string         `json:"id"`
	Category    types.Category `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      types.Status   `json:"status"`
	Priority    types.Priority `json:"priority"`
	Score       int            `json:"score"`
	MaxScore    int            `json:"maxScore"`
	Suggestion  string         `json:"suggestion,omitempty"` // set only when status != pass
}

// ContentResult carries the structure checks plus the raw extraction
// detail they were derived from.
type ContentResult struct {
	Checks        []Check  `json:"checks"`
	H1Headings    []string `json:"h1Headings"`
	H2Headings    []string `json:"h2Headings"`
	H3Headings    []string `json:"h3Headings"`
	H4Headings    []string `json:"h4Headings"`
	ImageCount    int      `json:"imageCount"`
	ImagesWithAlt int      `json:"imagesWithAlt"`
	InternalLinks int      `json:"internalLinks"`
	ExternalLinks int      `json:"externalLinks"`
}

// ReadabilityResult carries the readability checks plus the measured
// text statistics.
type ReadabilityResult struct {
	Checks              []Check `json:"checks"`
	WordCount           int     `json:"wordCount"`
	SentenceCount       int     `json:"sentenceCount"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	ReadingEase         float64 `json:"readingEase"`
}

// TechnicalResult carries the technical checks plus markup-level
// signals. HasCanonical is informational and not scored.
type TechnicalResult struct {
	Checks             []Check `json:"checks"`
	HasSchema          bool    `json:"hasSchema"`
	HasCanonical       bool    `json:"hasCanonical"`
	URLLength          int     `json:"urlLength"`
	URLHasSpecialChars bool    `json:"urlHasSpecialChars"`
	ValidHeadingOrder  bool    `json:"validHeadingOrder"`
	HTMLSizeKB         int     `json:"htmlSizeKb"`
}

// KeywordResult carries the keyword checks plus placement detail for
// the primary and secondary keywords.
type KeywordResult struct {
	Checks           []Check  `json:"checks"`
	Occurrences      int      `json:"occurrences"`
	Density          float64  `json:"density"` // percentage of words
	InIntroduction   bool     `json:"inIntroduction"`
	SecondaryFound   []string `json:"secondaryFound,omitempty"`
	SecondaryMissing []string `json:"secondaryMissing,omitempty"`
}

// SEOScore is the aggregate scoring result for one piece of content.
// Checks concatenates every category's checks in the fixed category
// order; within a category, evaluation order is preserved.
type SEOScore struct {
	Overall           int               `json:"overall"`
	Content           int               `json:"content"`
	Readability       int               `json:"readability"`
	Technical         int               `json:"technical"`
	Keyword           int               `json:"keyword"`
	Grade             Grade             `json:"grade"`
	Checks            []Check           `json:"checks"`
	ContentResult     ContentResult     `json:"contentResult"`
	ReadabilityResult ReadabilityResult `json:"readabilityResult"`
	TechnicalResult   TechnicalResult   `json:"technicalResult"`
	KeywordResult     KeywordResult     `json:"keywordResult"`
}

// Grade is the letter bucket derived from the overall score.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// GradeFor maps an overall score to its letter grade.
func GradeFor(overall int) Grade {
	switch {
	case overall >= 90:
		return GradeAPlus
	case overall >= 80:
		return GradeA
	case overall >= 70:
		return GradeB
	case overall >= 60:
		return GradeC
	case overall >= 50:
		return GradeD
	default:
		return GradeF
	}
}

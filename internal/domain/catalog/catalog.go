// Package catalog defines the fixed check catalog: per-check metadata
// and the threshold constants the analyzers score against. The catalog
// is process-wide, read-only configuration; analyzers never invent a
// check id or max score outside this table.
package catalog

import (
	"fmt"

	types "github.com/okian/seograde/internal/domain/types"
)

// Spec is the immutable metadata for one check id.
type Spec struct {
	ID       string         `json:"id"`
	Category types.Category `json:"category"`
	Title    string         `json:"title"`
	Priority types.Priority `json:"priority"`
	MaxScore int            `json:"maxScore"`
}

// Check ids, one constant per catalog entry.
const (
	TitleLength      = "title-length"
	TitleKeyword     = "title-keyword"
	MetaLength       = "meta-length"
	MetaKeyword      = "meta-keyword"
	H1Heading        = "h1-heading"
	H2Headings       = "h2-headings"
	Images           = "images"
	ImageAlt         = "image-alt"
	InternalLinks    = "internal-links"
	FeaturedImage    = "featured-image"
	WordCount        = "word-count"
	SentenceLength   = "sentence-length"
	ReadingEase      = "reading-ease"
	ParagraphLength  = "paragraph-length"
	SchemaMarkup     = "schema-markup"
	URLLength        = "url-length"
	HeadingHierarchy = "heading-hierarchy"
	HTMLSize         = "html-size"
	MetaCompleteness = "meta-completeness"
	KeywordDensity   = "keyword-density"
	KeywordIntro     = "keyword-intro"
	SecondaryKeyword = "secondary-keywords"
)

// Threshold constants shared by the analyzers. Character counts are
// rune counts; sizes are KB of raw HTML.
const (
	TitleMinChars = 30
	TitleMaxChars = 60

	MetaMinChars = 120
	MetaMaxChars = 160

	URLSoftLimit = 75
	URLHardLimit = 100

	HTMLSizeWarnKB = 200
	HTMLSizeMaxKB  = 500

	WordCountThin = 300
	WordCountGood = 600

	SentenceAvgGood = 20.0
	SentenceAvgMax  = 28.0

	ReadingEaseGood = 60.0
	ReadingEaseFair = 50.0
	ReadingEasePoor = 30.0

	ParagraphGoodWords = 150
	ParagraphMaxWords  = 250

	DefaultDensityMin  = 0.5
	DefaultDensityMax  = 2.5
	DefaultIntroWindow = 100
)

// Category weights for the overall score. They must sum to 1.0.
const (
	WeightContent     = 0.30
	WeightReadability = 0.25
	WeightTechnical   = 0.20
	WeightKeyword     = 0.25
)

// WeightFor returns the overall-score weight of a category.
func WeightFor(c types.Category) float64 {
	switch c {
	case types.CategoryContent:
		return WeightContent
	case types.CategoryReadability:
		return WeightReadability
	case types.CategoryTechnical:
		return WeightTechnical
	case types.CategoryKeyword:
		return WeightKeyword
	default:
		return 0
	}
}

// specs lists every check the engine can emit, in catalog order:
// category evaluation order first, emission order within a category.
var specs = []Spec{
	{ID: TitleLength, Category: types.CategoryContent, Title: "Title Length", Priority: types.PriorityHigh, MaxScore: 15},
	{ID: TitleKeyword, Category: types.CategoryContent, Title: "Title Keyword", Priority: types.PriorityHigh, MaxScore: 15},
	{ID: MetaLength, Category: types.CategoryContent, Title: "Meta Description Length", Priority: types.PriorityMedium, MaxScore: 10},
	{ID: MetaKeyword, Category: types.CategoryContent, Title: "Meta Description Keyword", Priority: types.PriorityMedium, MaxScore: 10},
	{ID: H1Heading, Category: types.CategoryContent, Title: "H1 Heading", Priority: types.PriorityHigh, MaxScore: 10},
	{ID: H2Headings, Category: types.CategoryContent, Title: "H2 Headings", Priority: types.PriorityMedium, MaxScore: 8},
	{ID: Images, Category: types.CategoryContent, Title: "Images", Priority: types.PriorityLow, MaxScore: 8},
	{ID: ImageAlt, Category: types.CategoryContent, Title: "Image Alt Text", Priority: types.PriorityMedium, MaxScore: 8},
	{ID: InternalLinks, Category: types.CategoryContent, Title: "Internal Links", Priority: types.PriorityLow, MaxScore: 6},
	{ID: FeaturedImage, Category: types.CategoryContent, Title: "Featured Image", Priority: types.PriorityLow, MaxScore: 5},

	{ID: WordCount, Category: types.CategoryReadability, Title: "Word Count", Priority: types.PriorityHigh, MaxScore: 12},
	{ID: SentenceLength, Category: types.CategoryReadability, Title: "Sentence Length", Priority: types.PriorityMedium, MaxScore: 10},
	{ID: ReadingEase, Category: types.CategoryReadability, Title: "Reading Ease", Priority: types.PriorityMedium, MaxScore: 10},
	{ID: ParagraphLength, Category: types.CategoryReadability, Title: "Paragraph Length", Priority: types.PriorityLow, MaxScore: 8},

	{ID: SchemaMarkup, Category: types.CategoryTechnical, Title: "Schema Markup", Priority: types.PriorityMedium, MaxScore: 15},
	{ID: URLLength, Category: types.CategoryTechnical, Title: "URL Length", Priority: types.PriorityLow, MaxScore: 10},
	{ID: HeadingHierarchy, Category: types.CategoryTechnical, Title: "Heading Hierarchy", Priority: types.PriorityMedium, MaxScore: 12},
	{ID: HTMLSize, Category: types.CategoryTechnical, Title: "HTML Size", Priority: types.PriorityLow, MaxScore: 8},
	{ID: MetaCompleteness, Category: types.CategoryTechnical, Title: "Meta Completeness", Priority: types.PriorityHigh, MaxScore: 10},

	{ID: KeywordDensity, Category: types.CategoryKeyword, Title: "Keyword Density", Priority: types.PriorityHigh, MaxScore: 15},
	{ID: KeywordIntro, Category: types.CategoryKeyword, Title: "Keyword in Introduction", Priority: types.PriorityMedium, MaxScore: 10},
	{ID: SecondaryKeyword, Category: types.CategoryKeyword, Title: "Secondary Keywords", Priority: types.PriorityLow, MaxScore: 8},
}

var byID = buildIndex()

func buildIndex() map[string]Spec {
	idx := make(map[string]Spec, len(specs))
	for _, s := range specs {
		idx[s.ID] = s
	}
	return idx
}

// All returns every catalog entry in catalog order. The returned slice
// is a copy; callers may not mutate the catalog.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Get looks up the metadata for a check id.
func Get(id string) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// Validate verifies the catalog's internal consistency: unique ids,
// positive max scores, known categories and priorities, and category
// weights that sum to one. Called once at service start and from tests.
func Validate() error {
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if s.ID == "" {
			return fmt.Errorf("catalog: entry with empty id")
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("catalog: duplicate check id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.MaxScore <= 0 {
			return fmt.Errorf("catalog: check %q has non-positive max score %d", s.ID, s.MaxScore)
		}
		if !s.Category.Valid() {
			return fmt.Errorf("catalog: check %q has unknown category %q", s.ID, s.Category)
		}
		if !s.Priority.Valid() {
			return fmt.Errorf("catalog: check %q has unknown priority %q", s.ID, s.Priority)
		}
		if s.Title == "" {
			return fmt.Errorf("catalog: check %q has empty title", s.ID)
		}
	}

	sum := 0.0
	for _, c := range types.Categories() {
		sum += WeightFor(c)
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("catalog: category weights sum to %v, want 1.0", sum)
	}
	return nil
}

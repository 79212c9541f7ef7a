package analyze_test

import (
	"strings"
	"testing"

	analyze "github.com/okian/seograde/internal/domain/analyze"
	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	types "github.com/okian/seograde/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSchemaMarkupCheck(t *testing.T) {
	Convey("Given markup with different structured-data flavors", t, func() {
		analyzeSchema := func(content string) (model.Check, model.SEOScore) {
			score := analyze.New().Analyze(model.Input{Content: content})
			c, ok := checkByID(score, catalog.SchemaMarkup)
			So(ok, ShouldBeTrue)
			return c, score
		}

		Convey("Then a JSON-LD block passes and is named", func() {
			c, score := analyzeSchema(`<script type="application/ld+json">{"@type":"Article"}</script><p>hi</p>`)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 15)
			So(c.Description, ShouldContainSubstring, "JSON-LD")
			So(score.TechnicalResult.HasSchema, ShouldBeTrue)
		})

		Convey("Then microdata attributes pass", func() {
			c, _ := analyzeSchema(`<div itemscope itemtype="https://schema.org/Article"><p>hi</p></div>`)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Description, ShouldContainSubstring, "microdata")
		})

		Convey("Then RDFa markers pass", func() {
			c, _ := analyzeSchema(`<div vocab="https://schema.org/" typeof="Article"><p>hi</p></div>`)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Description, ShouldContainSubstring, "RDFa")
		})

		Convey("Then plain markup warns but never fails", func() {
			c, score := analyzeSchema("<p>hi</p>")
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(score.TechnicalResult.HasSchema, ShouldBeFalse)
		})
	})
}

func TestCanonicalExposure(t *testing.T) {
	Convey("Given markup with and without a canonical link", t, func() {
		with := analyze.New().Analyze(model.Input{
			Content: `<link rel="canonical" href="https://example.com/a"><p>hi</p>`,
		})
		without := analyze.New().Analyze(model.Input{Content: "<p>hi</p>"})

		Convey("Then presence is exposed on the result without a dedicated check", func() {
			So(with.TechnicalResult.HasCanonical, ShouldBeTrue)
			So(without.TechnicalResult.HasCanonical, ShouldBeFalse)
			for _, c := range with.Checks {
				So(c.ID, ShouldNotContainSubstring, "canonical")
			}
		})
	})
}

func TestURLLengthBands(t *testing.T) {
	Convey("Given URLs with paths of varying shape", t, func() {
		analyzeURL := func(url string) (model.Check, model.SEOScore) {
			score := analyze.New().Analyze(model.Input{Content: "<p>hi</p>", URL: url})
			c, ok := checkByID(score, catalog.URLLength)
			So(ok, ShouldBeTrue)
			return c, score
		}

		Convey("Then a 120-character path warns at the lowest band", func() {
			c, score := analyzeURL("https://example.com/" + strings.Repeat("a", 119))
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 4)
			So(c.Description, ShouldContainSubstring, "120")
			So(score.TechnicalResult.URLLength, ShouldEqual, 120)
		})

		Convey("Then a path between the soft and hard limits warns", func() {
			c, _ := analyzeURL("https://example.com/" + strings.Repeat("a", 79))
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 7)
		})

		Convey("Then special characters in a short path warn", func() {
			c, score := analyzeURL("https://example.com/blog/my_post%21")
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 7)
			So(score.TechnicalResult.URLHasSpecialChars, ShouldBeTrue)
		})

		Convey("Then a clean short slug passes", func() {
			c, score := analyzeURL("https://example.com/blog/a-good-slug")
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 10)
			So(score.TechnicalResult.URLHasSpecialChars, ShouldBeFalse)
		})
	})

	Convey("Given a draft without a URL", t, func() {
		score := analyze.New().Analyze(model.Input{Content: "<p>hi</p>"})

		Convey("Then the URL check is omitted entirely", func() {
			_, ok := checkByID(score, catalog.URLLength)
			So(ok, ShouldBeFalse)
			So(score.TechnicalResult.URLLength, ShouldEqual, 0)
		})
	})

	Convey("Given an unparseable URL", t, func() {
		score := analyze.New().Analyze(model.Input{Content: "<p>hi</p>", URL: "http://[::1"})

		Convey("Then the URL check is omitted rather than erroring", func() {
			_, ok := checkByID(score, catalog.URLLength)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestHeadingHierarchyCheck(t *testing.T) {
	Convey("Given documents with different heading sequences", t, func() {
		analyzeHeadings := func(content string) (model.Check, model.SEOScore) {
			score := analyze.New().Analyze(model.Input{Content: content})
			c, ok := checkByID(score, catalog.HeadingHierarchy)
			So(ok, ShouldBeTrue)
			return c, score
		}

		Convey("Then a level jump warns and names the offense", func() {
			c, score := analyzeHeadings("<h1>A</h1><h2>B</h2><h4>C</h4>")
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(c.Description, ShouldContainSubstring, "H2 to H4")
			So(score.TechnicalResult.ValidHeadingOrder, ShouldBeFalse)
		})

		Convey("Then a document starting below H1 warns and names the level", func() {
			c, _ := analyzeHeadings("<h2>B</h2><h3>C</h3>")
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Description, ShouldContainSubstring, "First heading is H2")
		})

		Convey("Then stepping down one level at a time and back up passes", func() {
			c, score := analyzeHeadings("<h1>A</h1><h2>B</h2><h3>C</h3><h2>D</h2>")
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 12)
			So(score.TechnicalResult.ValidHeadingOrder, ShouldBeTrue)
		})

		Convey("Then a document without headings is trivially valid", func() {
			c, score := analyzeHeadings("<p>no headings at all</p>")
			So(c.Status, ShouldEqual, types.StatusPass)
			So(score.TechnicalResult.ValidHeadingOrder, ShouldBeTrue)
		})
	})
}

func TestHTMLSizeBands(t *testing.T) {
	Convey("Given payloads of varying size", t, func() {
		analyzeSize := func(content string) (model.Check, model.SEOScore) {
			score := analyze.New().Analyze(model.Input{Content: content})
			c, ok := checkByID(score, catalog.HTMLSize)
			So(ok, ShouldBeTrue)
			return c, score
		}

		Convey("Then a small page passes", func() {
			c, score := analyzeSize("<p>tiny</p>")
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 8)
			So(score.TechnicalResult.HTMLSizeKB, ShouldEqual, 0)
		})

		Convey("Then a page past the soft limit warns", func() {
			c, score := analyzeSize("<p>" + strings.Repeat("word ", 41*1024) + "</p>") // ~205 KB
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 6)
			So(score.TechnicalResult.HTMLSizeKB, ShouldBeGreaterThanOrEqualTo, 200)
		})

		Convey("Then a page past the hard limit warns at the lowest band", func() {
			c, _ := analyzeSize("<p>" + strings.Repeat("word ", 103*1024) + "</p>") // ~515 KB
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 3)
		})
	})
}

func TestMetaCompletenessBranches(t *testing.T) {
	Convey("Given drafts with partial metadata", t, func() {
		titleOnly := analyze.New().Analyze(model.Input{Title: "only a title", Content: "<p>hi</p>"})
		metaOnly := analyze.New().Analyze(model.Input{MetaDescription: "only a description", Content: "<p>hi</p>"})
		both := analyze.New().Analyze(model.Input{Title: "t", MetaDescription: "d", Content: "<p>hi</p>"})

		Convey("Then a missing meta description warns at half score", func() {
			c, ok := checkByID(titleOnly, catalog.MetaCompleteness)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(c.Description, ShouldContainSubstring, "Meta description is missing")
		})

		Convey("Then a missing title warns at half score", func() {
			c, ok := checkByID(metaOnly, catalog.MetaCompleteness)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(c.Description, ShouldContainSubstring, "Title is missing")
		})

		Convey("Then complete metadata passes", func() {
			c, ok := checkByID(both, catalog.MetaCompleteness)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 10)
		})
	})
}

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

func analyzeBody(content string) model.SEOScore {
	return analyze.New().Analyze(model.Input{Content: content})
}

func TestWordCountBands(t *testing.T) {
	Convey("Given bodies of varying word counts", t, func() {
		// Five words and one sentence per repetition.
		block := "alpha beta gamma delta epsilon. "

		Convey("Then no readable text fails and suppresses the derived checks", func() {
			score := analyzeBody("<div><script>var x=1;</script></div>")
			c, ok := checkByID(score, catalog.WordCount)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusFail)
			So(c.Score, ShouldEqual, 0)

			So(score.ReadabilityResult.Checks, ShouldHaveLength, 1)
			So(score.ReadabilityResult.WordCount, ShouldEqual, 0)
			So(score.ReadabilityResult.SentenceCount, ShouldEqual, 0)
			So(score.Readability, ShouldEqual, 0)
		})

		Convey("Then thin content warns at the low-band score", func() {
			score := analyzeBody("<p>" + strings.Repeat(block, 20) + "</p>") // 100 words
			c, ok := checkByID(score, catalog.WordCount)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 4)
			So(c.Description, ShouldContainSubstring, "100 words")
		})

		Convey("Then mid-length content warns at the upper-band score", func() {
			score := analyzeBody("<p>" + strings.Repeat(block, 80) + "</p>") // 400 words
			c, ok := checkByID(score, catalog.WordCount)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 8)
		})

		Convey("Then substantial content passes", func() {
			score := analyzeBody("<p>" + strings.Repeat(block, 140) + "</p>") // 700 words
			c, ok := checkByID(score, catalog.WordCount)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 12)
			So(score.ReadabilityResult.WordCount, ShouldEqual, 700)
		})
	})
}

func TestSentenceLengthBands(t *testing.T) {
	Convey("Given bodies with different average sentence lengths", t, func() {
		Convey("Then short sentences pass", func() {
			score := analyzeBody("<p>" + strings.Repeat("The cat sat on the mat. ", 30) + "</p>")
			c, ok := checkByID(score, catalog.SentenceLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 10)
			So(score.ReadabilityResult.AvgWordsPerSentence, ShouldEqual, 6.0)
			So(score.ReadabilityResult.SentenceCount, ShouldEqual, 30)
		})

		Convey("Then moderately long sentences warn", func() {
			sentence := strings.Repeat("word ", 24) + "end. " // 25 words
			score := analyzeBody("<p>" + strings.Repeat(sentence, 24) + "</p>")
			c, ok := checkByID(score, catalog.SentenceLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 6)
			So(score.ReadabilityResult.AvgWordsPerSentence, ShouldEqual, 25.0)
		})

		Convey("Then run-on sentences warn at the lowest band", func() {
			sentence := strings.Repeat("word ", 34) + "end. " // 35 words
			score := analyzeBody("<p>" + strings.Repeat(sentence, 18) + "</p>")
			c, ok := checkByID(score, catalog.SentenceLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 3)
		})
	})
}

func TestReadingEaseBands(t *testing.T) {
	Convey("Given prose of varying complexity", t, func() {
		Convey("Then plain short sentences score as easy reading", func() {
			score := analyzeBody("<p>" + strings.Repeat("The cat sat on the mat. ", 30) + "</p>")
			c, ok := checkByID(score, catalog.ReadingEase)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 10)
			So(score.ReadabilityResult.ReadingEase, ShouldBeGreaterThan, 60)
		})

		Convey("Then monosyllabic but very long sentences land in the fair band", func() {
			// 65 one-syllable words per sentence: ease = 122.235 - 1.015*65 ≈ 56.3.
			sentence := strings.Repeat("we go ", 32) + "now. "
			score := analyzeBody("<p>" + strings.Repeat(sentence, 10) + "</p>")
			c, ok := checkByID(score, catalog.ReadingEase)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 7)
		})

		Convey("Then even longer sentences land in the difficult band", func() {
			// 80 one-syllable words per sentence: ease = 122.235 - 1.015*80 ≈ 41.0.
			sentence := strings.Repeat("we go ", 39) + "on we. "
			score := analyzeBody("<p>" + strings.Repeat(sentence, 8) + "</p>")
			c, ok := checkByID(score, catalog.ReadingEase)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 4)
		})

		Convey("Then dense polysyllabic prose scores as very difficult", func() {
			sentence := "Extraordinarily sophisticated organizational methodologies necessitate comprehensive investigative documentation. "
			score := analyzeBody("<p>" + strings.Repeat(sentence, 5) + "</p>")
			c, ok := checkByID(score, catalog.ReadingEase)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 2)
			So(score.ReadabilityResult.ReadingEase, ShouldBeLessThan, 30)
		})
	})
}

func TestParagraphLengthBands(t *testing.T) {
	Convey("Given paragraphs of varying lengths", t, func() {
		para := func(words int) string {
			return "<p>" + strings.TrimSpace(strings.Repeat("word ", words-1)+"end.") + "</p>"
		}

		Convey("Then compact paragraphs pass", func() {
			score := analyzeBody(para(100) + para(90))
			c, ok := checkByID(score, catalog.ParagraphLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusPass)
			So(c.Score, ShouldEqual, 8)
			So(c.Description, ShouldContainSubstring, "100 words")
		})

		Convey("Then an oversized paragraph warns", func() {
			score := analyzeBody(para(100) + para(160))
			c, ok := checkByID(score, catalog.ParagraphLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(c.Description, ShouldContainSubstring, "160 words")
		})

		Convey("Then a wall of text warns at the lowest band", func() {
			score := analyzeBody(para(260))
			c, ok := checkByID(score, catalog.ParagraphLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 2)
		})

		Convey("Then markup without paragraph tags is measured as one block", func() {
			text := strings.TrimSpace(strings.Repeat("word ", 159) + "end.")
			score := analyzeBody("<div>" + text + "</div>")
			c, ok := checkByID(score, catalog.ParagraphLength)
			So(ok, ShouldBeTrue)
			So(c.Status, ShouldEqual, types.StatusWarning)
			So(c.Score, ShouldEqual, 5)
			So(c.Description, ShouldContainSubstring, "160 words")
		})
	})
}

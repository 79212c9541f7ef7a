package scan_test

import (
	"strings"
	"testing"

	scan "github.com/okian/seograde/internal/domain/scan"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePlainText(t *testing.T) {
	Convey("Given markup with tags, entities and noise", t, func() {
		content := `<article>
			<h1>Growing &amp; Harvesting</h1>
			<script>var tracking = "ignore me";</script>
			<style>.hero { color: red; }</style>
			<p>Start&nbsp;with good soil &lt;today&gt;.</p>
		</article>`

		Convey("When parsing it", func() {
			doc := scan.Parse(content)

			Convey("Then the plain text should be stripped, decoded and collapsed", func() {
				So(doc.Text, ShouldEqual, "Growing & Harvesting Start with good soil <today>.")
			})

			Convey("And script and style text should not leak into the words", func() {
				So(doc.Text, ShouldNotContainSubstring, "tracking")
				So(doc.Text, ShouldNotContainSubstring, "color")
			})

			Convey("And the word count should match the whitespace-delimited tokens", func() {
				So(doc.WordCount, ShouldEqual, len(strings.Fields(doc.Text)))
				So(doc.WordCount, ShouldEqual, 8)
			})
		})
	})
}

func TestParseTotality(t *testing.T) {
	Convey("Given degenerate inputs", t, func() {
		Convey("When parsing the empty string", func() {
			doc := scan.Parse("")

			So(doc.Text, ShouldBeEmpty)
			So(doc.WordCount, ShouldEqual, 0)
			So(doc.Headings, ShouldBeEmpty)
			So(doc.SizeKB, ShouldEqual, 0)
		})

		Convey("When parsing pure markup with no text", func() {
			doc := scan.Parse("<div><br/><hr/></div>")

			So(doc.Text, ShouldBeEmpty)
			So(doc.WordCount, ShouldEqual, 0)
		})

		Convey("When parsing whitespace only", func() {
			doc := scan.Parse("   \n\t  ")

			So(doc.Text, ShouldBeEmpty)
			So(doc.WordCount, ShouldEqual, 0)
		})

		Convey("When parsing badly nested markup", func() {
			doc := scan.Parse("<p>open <b>bold <i>deep</p></b> stray</i>")

			So(doc.WordCount, ShouldBeGreaterThan, 0)
			So(doc.Text, ShouldContainSubstring, "open")
		})
	})
}

func TestParseHeadings(t *testing.T) {
	Convey("Given content with a heading outline", t, func() {
		content := `
			<h1>Main Title</h1>
			<h2>First <em>Section</em></h2>
			<p>body</p>
			<h2>Second Section</h2>
			<h3>Detail</h3>
			<h4>Fine Print</h4>`

		Convey("When parsing it", func() {
			doc := scan.Parse(content)

			Convey("Then headings should appear in document order with levels", func() {
				So(doc.Headings, ShouldHaveLength, 5)
				So(doc.Headings[0].Level, ShouldEqual, 1)
				So(doc.Headings[0].Text, ShouldEqual, "Main Title")
				So(doc.Headings[1].Level, ShouldEqual, 2)
				So(doc.Headings[1].Text, ShouldEqual, "First Section")
				So(doc.Headings[4].Level, ShouldEqual, 4)
			})

			Convey("And HeadingTexts should filter by level", func() {
				So(doc.HeadingTexts(2), ShouldResemble, []string{"First Section", "Second Section"})
				So(doc.HeadingTexts(5), ShouldBeEmpty)
				So(doc.HeadingTexts(5), ShouldNotBeNil)
			})

			Convey("And heading text should count toward the word total", func() {
				So(doc.Text, ShouldContainSubstring, "Main Title")
			})
		})
	})
}

func TestParseImages(t *testing.T) {
	Convey("Given content with images", t, func() {
		content := `
			<img src="/a.jpg" alt="First tomato">
			<img src="/b.jpg" alt="">
			<img src="/c.jpg" alt="   ">
			<img src="/d.jpg" alt="Last tomato">`

		Convey("When parsing it", func() {
			doc := scan.Parse(content)

			Convey("Then all images should be counted", func() {
				So(doc.ImageCount, ShouldEqual, 4)
			})

			Convey("And blank alt attributes should not count as alt text", func() {
				So(doc.ImagesWithAlt, ShouldEqual, 2)
			})
		})
	})
}

func TestParseLinks(t *testing.T) {
	Convey("Given content with assorted links", t, func() {
		content := `
			<a href="/about">about</a>
			<a href="#top">top</a>
			<a href="guide/page">relative</a>
			<a href="https://other.example.com/ref">external</a>
			<a href="http://example.org">external too</a>
			<a href="">empty</a>
			<a>bare anchor</a>`

		Convey("When parsing it", func() {
			doc := scan.Parse(content)

			Convey("Then site-relative, fragment and scheme-less hrefs should be internal", func() {
				So(doc.InternalLinks, ShouldEqual, 3)
			})

			Convey("And hrefs carrying a scheme separator should be external", func() {
				So(doc.ExternalLinks, ShouldEqual, 2)
			})
		})
	})
}

func TestParseStructuredData(t *testing.T) {
	Convey("Given structured-data flavors", t, func() {
		Convey("When the page carries a JSON-LD block", func() {
			doc := scan.Parse(`<script type="application/ld+json">{"@type":"Article"}</script><p>hi</p>`)

			So(doc.HasJSONLD, ShouldBeTrue)
			So(doc.HasSchema(), ShouldBeTrue)

			Convey("Then the JSON payload should not pollute the text", func() {
				So(doc.Text, ShouldEqual, "hi")
			})
		})

		Convey("When the page carries microdata attributes", func() {
			doc := scan.Parse(`<div itemscope itemtype="https://schema.org/Article"><span itemprop="name">T</span></div>`)

			So(doc.HasMicrodata, ShouldBeTrue)
			So(doc.HasJSONLD, ShouldBeFalse)
			So(doc.HasSchema(), ShouldBeTrue)
		})

		Convey("When the page carries RDFa markers", func() {
			doc := scan.Parse(`<div vocab="https://schema.org/" typeof="Article"><p>body</p></div>`)

			So(doc.HasRDFa, ShouldBeTrue)
			So(doc.HasSchema(), ShouldBeTrue)
		})

		Convey("When the page has a plain script tag", func() {
			doc := scan.Parse(`<script>console.log("x")</script><p>hi</p>`)

			So(doc.HasJSONLD, ShouldBeFalse)
			So(doc.HasSchema(), ShouldBeFalse)
		})

		Convey("When the page declares a canonical link", func() {
			doc := scan.Parse(`<link rel="canonical" href="https://example.com/post"><p>hi</p>`)

			So(doc.HasCanonical, ShouldBeTrue)
		})

		Convey("When the page has only a stylesheet link", func() {
			doc := scan.Parse(`<link rel="stylesheet" href="/main.css"><p>hi</p>`)

			So(doc.HasCanonical, ShouldBeFalse)
		})
	})
}

func TestParseParagraphs(t *testing.T) {
	Convey("Given content with paragraph blocks", t, func() {
		content := `<p>First paragraph here.</p><p>  </p><p>Second one.</p><div>not a paragraph</div>`

		Convey("When parsing it", func() {
			doc := scan.Parse(content)

			Convey("Then only non-empty p blocks should be collected", func() {
				So(doc.Paragraphs, ShouldResemble, []string{"First paragraph here.", "Second one."})
			})
		})
	})
}

func TestParseSize(t *testing.T) {
	Convey("Given payloads of known size", t, func() {
		Convey("When the payload is under one kilobyte", func() {
			So(scan.Parse("<p>hi</p>").SizeKB, ShouldEqual, 0)
		})

		Convey("When the payload is several kilobytes", func() {
			content := "<p>" + strings.Repeat("word ", 1024) + "</p>"
			doc := scan.Parse(content)

			So(doc.SizeKB, ShouldEqual, len(content)/1024)
			So(doc.SizeKB, ShouldBeGreaterThanOrEqualTo, 5)
		})
	})
}

func TestParseDeterminism(t *testing.T) {
	Convey("Given any fixed input", t, func() {
		content := `<h1>Title</h1><p>Some body text with a <a href="/x">link</a> and an <img src="a.png" alt="pic">.</p>`

		Convey("When parsing it repeatedly", func() {
			first := scan.Parse(content)

			Convey("Then every parse should produce an identical document", func() {
				for i := 0; i < 10; i++ {
					So(scan.Parse(content), ShouldResemble, first)
				}
			})
		})
	})
}

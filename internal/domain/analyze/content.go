package analyze

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	scan "github.com/okian/seograde/internal/domain/scan"
	types "github.com/okian/seograde/internal/domain/types"
)

// contentChecks scores the structural signals: title and meta
// description, heading usage, images, internal links, featured image.
// Character limits are rune counts, so multi-byte text is not
// penalized for its encoding.
func (a *Analyzer) contentChecks(in model.Input, doc scan.Document) model.ContentResult {
	res := model.ContentResult{
		Checks:        make([]model.Check, 0, 10),
		H1Headings:    doc.HeadingTexts(1),
		H2Headings:    doc.HeadingTexts(2),
		H3Headings:    doc.HeadingTexts(3),
		H4Headings:    doc.HeadingTexts(4),
		ImageCount:    doc.ImageCount,
		ImagesWithAlt: doc.ImagesWithAlt,
		InternalLinks: doc.InternalLinks,
		ExternalLinks: doc.ExternalLinks,
	}

	primary := strings.TrimSpace(in.PrimaryKeyword)

	res.Checks = append(res.Checks, titleLengthCheck(in.Title))
	if primary != "" {
		res.Checks = append(res.Checks, titleKeywordCheck(in.Title, primary))
	}
	res.Checks = append(res.Checks, metaLengthCheck(in.MetaDescription))
	if primary != "" {
		res.Checks = append(res.Checks, metaKeywordCheck(in.MetaDescription, primary))
	}
	res.Checks = append(res.Checks,
		h1Check(len(res.H1Headings)),
		h2Check(len(res.H2Headings)),
		imagesCheck(doc.ImageCount),
	)
	if doc.ImageCount > 0 {
		res.Checks = append(res.Checks, imageAltCheck(doc.ImageCount, doc.ImagesWithAlt))
	}
	res.Checks = append(res.Checks,
		internalLinksCheck(doc.InternalLinks),
		featuredImageCheck(in.FeaturedImage),
	)

	return res
}

func titleLengthCheck(title string) model.Check {
	n := utf8.RuneCountInString(title)
	switch {
	case n == 0:
		return newCheck(catalog.TitleLength, types.StatusFail, 0,
			"No title provided",
			"Add a title between 30 and 60 characters that names the page topic")
	case n < catalog.TitleMinChars:
		return newCheck(catalog.TitleLength, types.StatusWarning, 8,
			fmt.Sprintf("Your title is %d characters, shorter than the recommended %d", n, catalog.TitleMinChars),
			fmt.Sprintf("Lengthen the title to %d-%d characters", catalog.TitleMinChars, catalog.TitleMaxChars))
	case n > catalog.TitleMaxChars:
		return newCheck(catalog.TitleLength, types.StatusWarning, 10,
			fmt.Sprintf("Your title is %d characters, longer than the recommended %d", n, catalog.TitleMaxChars),
			fmt.Sprintf("Shorten the title to at most %d characters so search results do not truncate it", catalog.TitleMaxChars))
	default:
		return newCheck(catalog.TitleLength, types.StatusPass, 15,
			fmt.Sprintf("Your title is %d characters", n), "")
	}
}

func titleKeywordCheck(title, primary string) model.Check {
	if containsFold(title, primary) {
		return newCheck(catalog.TitleKeyword, types.StatusPass, 15,
			fmt.Sprintf("Title contains the primary keyword %q", primary), "")
	}
	return newCheck(catalog.TitleKeyword, types.StatusFail, 0,
		fmt.Sprintf("Title does not contain the primary keyword %q", primary),
		"Include the primary keyword in the title, ideally near the start")
}

func metaLengthCheck(meta string) model.Check {
	n := utf8.RuneCountInString(meta)
	switch {
	case n == 0:
		return newCheck(catalog.MetaLength, types.StatusFail, 0,
			"No meta description provided",
			fmt.Sprintf("Add a meta description of %d-%d characters summarizing the page", catalog.MetaMinChars, catalog.MetaMaxChars))
	case n < catalog.MetaMinChars:
		return newCheck(catalog.MetaLength, types.StatusWarning, 5,
			fmt.Sprintf("Your meta description is %d characters, shorter than the recommended %d", n, catalog.MetaMinChars),
			fmt.Sprintf("Expand the meta description to %d-%d characters", catalog.MetaMinChars, catalog.MetaMaxChars))
	case n > catalog.MetaMaxChars:
		return newCheck(catalog.MetaLength, types.StatusWarning, 7,
			fmt.Sprintf("Your meta description is %d characters, longer than the recommended %d", n, catalog.MetaMaxChars),
			fmt.Sprintf("Trim the meta description to at most %d characters", catalog.MetaMaxChars))
	default:
		return newCheck(catalog.MetaLength, types.StatusPass, 10,
			fmt.Sprintf("Your meta description is %d characters", n), "")
	}
}

func metaKeywordCheck(meta, primary string) model.Check {
	if containsFold(meta, primary) {
		return newCheck(catalog.MetaKeyword, types.StatusPass, 10,
			fmt.Sprintf("Meta description contains the primary keyword %q", primary), "")
	}
	return newCheck(catalog.MetaKeyword, types.StatusWarning, 3,
		fmt.Sprintf("Meta description does not contain the primary keyword %q", primary),
		"Mention the primary keyword once in the meta description")
}

func h1Check(count int) model.Check {
	switch {
	case count == 1:
		return newCheck(catalog.H1Heading, types.StatusPass, 10,
			"Exactly one H1 heading found", "")
	case count == 0:
		return newCheck(catalog.H1Heading, types.StatusFail, 0,
			"No H1 heading found",
			"Add a single H1 heading stating the main topic")
	default:
		return newCheck(catalog.H1Heading, types.StatusWarning, 5,
			fmt.Sprintf("%d H1 headings found, expected exactly one", count),
			"Keep one H1 and demote the others to H2")
	}
}

func h2Check(count int) model.Check {
	switch {
	case count == 0:
		return newCheck(catalog.H2Headings, types.StatusWarning, 3,
			"No H2 headings found",
			"Break the content into sections with H2 headings")
	case count == 1:
		return newCheck(catalog.H2Headings, types.StatusWarning, 5,
			"Only one H2 heading found",
			"Add more H2 sections to structure the content")
	default:
		return newCheck(catalog.H2Headings, types.StatusPass, 8,
			fmt.Sprintf("%d H2 headings found", count), "")
	}
}

func imagesCheck(count int) model.Check {
	if count == 0 {
		return newCheck(catalog.Images, types.StatusWarning, 3,
			"No images found",
			"Add at least one relevant image to the content")
	}
	return newCheck(catalog.Images, types.StatusPass, 8,
		fmt.Sprintf("%s found", countNoun(count, "image")), "")
}

// imageAltCheck scores alt coverage proportionally: full coverage
// passes, none fails, partial coverage earns the covered fraction of
// the max score.
func imageAltCheck(total, withAlt int) model.Check {
	desc := fmt.Sprintf("%d of %d images have alt text", withAlt, total)
	switch {
	case withAlt == total:
		return newCheck(catalog.ImageAlt, types.StatusPass, 8, desc, "")
	case withAlt == 0:
		return newCheck(catalog.ImageAlt, types.StatusFail, 0, desc,
			"Add descriptive alt text to every image")
	default:
		score := int(math.Round(8 * float64(withAlt) / float64(total)))
		return newCheck(catalog.ImageAlt, types.StatusWarning, score, desc,
			"Add alt text to the remaining images")
	}
}

func internalLinksCheck(count int) model.Check {
	if count == 0 {
		return newCheck(catalog.InternalLinks, types.StatusWarning, 2,
			"No internal links found",
			"Link to at least one related page on your site")
	}
	return newCheck(catalog.InternalLinks, types.StatusPass, 6,
		fmt.Sprintf("%s found", countNoun(count, "internal link")), "")
}

func featuredImageCheck(img *model.FeaturedImage) model.Check {
	if img != nil && strings.TrimSpace(img.URL) != "" {
		return newCheck(catalog.FeaturedImage, types.StatusPass, 5,
			"Featured image is set", "")
	}
	return newCheck(catalog.FeaturedImage, types.StatusWarning, 2,
		"No featured image set",
		"Set a featured image for richer link previews")
}

// countNoun renders "1 image" or "3 images" for nouns with a regular
// plural.
func countNoun(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

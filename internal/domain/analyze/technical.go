package analyze

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	scan "github.com/okian/seograde/internal/domain/scan"
	types "github.com/okian/seograde/internal/domain/types"
)

// technicalChecks scores markup-level signals: structured data, URL
// shape, heading sequencing, payload size and metadata completeness.
// Canonical presence is surfaced in the result but not scored; it is
// an enhancement, not a ranking rule of its own.
func (a *Analyzer) technicalChecks(in model.Input, doc scan.Document) model.TechnicalResult {
	res := model.TechnicalResult{
		Checks:       make([]model.Check, 0, 5),
		HasSchema:    doc.HasSchema(),
		HasCanonical: doc.HasCanonical,
		HTMLSizeKB:   doc.SizeKB,
	}

	res.Checks = append(res.Checks, schemaCheck(doc))

	if path, ok := urlPath(in.URL); ok {
		res.URLLength = utf8.RuneCountInString(path)
		res.URLHasSpecialChars = hasSpecialChars(path)
		res.Checks = append(res.Checks, urlLengthCheck(res.URLLength, res.URLHasSpecialChars))
	}

	valid, violation := headingOrder(doc.Headings)
	res.ValidHeadingOrder = valid
	res.Checks = append(res.Checks,
		headingHierarchyCheck(valid, violation),
		htmlSizeCheck(doc.SizeKB),
		metaCompletenessCheck(in.Title, in.MetaDescription),
	)

	return res
}

func schemaCheck(doc scan.Document) model.Check {
	if doc.HasSchema() {
		var kinds []string
		if doc.HasJSONLD {
			kinds = append(kinds, "JSON-LD")
		}
		if doc.HasMicrodata {
			kinds = append(kinds, "microdata")
		}
		if doc.HasRDFa {
			kinds = append(kinds, "RDFa")
		}
		return newCheck(catalog.SchemaMarkup, types.StatusPass, 15,
			"Structured data found: "+strings.Join(kinds, ", "), "")
	}
	return newCheck(catalog.SchemaMarkup, types.StatusWarning, 5,
		"No structured data found",
		"Add a JSON-LD script block describing this content")
}

// urlPath extracts the path component of a supplied URL. A blank or
// unparseable URL reports ok=false and the check is skipped entirely.
func urlPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	return u.Path, true
}

func hasSpecialChars(path string) bool {
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '/':
		default:
			return true
		}
	}
	return false
}

func urlLengthCheck(length int, special bool) model.Check {
	switch {
	case length > catalog.URLHardLimit:
		return newCheck(catalog.URLLength, types.StatusWarning, 4,
			fmt.Sprintf("URL path is %d characters, above the %d-character limit", length, catalog.URLHardLimit),
			fmt.Sprintf("Shorten the URL slug to under %d characters", catalog.URLSoftLimit))
	case length >= catalog.URLSoftLimit:
		return newCheck(catalog.URLLength, types.StatusWarning, 7,
			fmt.Sprintf("URL path is %d characters, above the recommended %d", length, catalog.URLSoftLimit),
			fmt.Sprintf("Shorten the URL slug to under %d characters", catalog.URLSoftLimit))
	case special:
		return newCheck(catalog.URLLength, types.StatusWarning, 7,
			"URL path contains characters outside letters, digits, hyphens and slashes",
			"Use only lowercase letters, digits and hyphens in the slug")
	default:
		return newCheck(catalog.URLLength, types.StatusPass, 10,
			fmt.Sprintf("URL path is %d characters", length), "")
	}
}

// headingOrder validates the document outline: the first heading must
// be an H1 and no heading may sit more than one level below its
// predecessor. Climbing back up any number of levels is fine. A
// document without headings is trivially valid. The returned violation
// names the first offense.
func headingOrder(headings []scan.Heading) (bool, string) {
	if len(headings) == 0 {
		return true, ""
	}
	if headings[0].Level != 1 {
		return false, fmt.Sprintf("First heading is H%d, expected H1", headings[0].Level)
	}
	last := headings[0].Level
	for _, h := range headings[1:] {
		if h.Level > last+1 {
			return false, fmt.Sprintf("Heading jumps from H%d to H%d", last, h.Level)
		}
		last = h.Level
	}
	return true, ""
}

func headingHierarchyCheck(valid bool, violation string) model.Check {
	if valid {
		return newCheck(catalog.HeadingHierarchy, types.StatusPass, 12,
			"Heading levels are properly ordered", "")
	}
	return newCheck(catalog.HeadingHierarchy, types.StatusWarning, 5,
		violation,
		"Keep heading levels sequential, starting from H1")
}

func htmlSizeCheck(sizeKB int) model.Check {
	switch {
	case sizeKB > catalog.HTMLSizeMaxKB:
		return newCheck(catalog.HTMLSize, types.StatusWarning, 3,
			fmt.Sprintf("HTML payload is %d KB, above the %d KB limit", sizeKB, catalog.HTMLSizeMaxKB),
			"Reduce the page size; inline assets and embedded data bloat the payload")
	case sizeKB >= catalog.HTMLSizeWarnKB:
		return newCheck(catalog.HTMLSize, types.StatusWarning, 6,
			fmt.Sprintf("HTML payload is %d KB, above the recommended %d KB", sizeKB, catalog.HTMLSizeWarnKB),
			"Reduce the page size; inline assets and embedded data bloat the payload")
	default:
		return newCheck(catalog.HTMLSize, types.StatusPass, 8,
			fmt.Sprintf("HTML payload is %d KB", sizeKB), "")
	}
}

func metaCompletenessCheck(title, meta string) model.Check {
	switch {
	case title != "" && meta != "":
		return newCheck(catalog.MetaCompleteness, types.StatusPass, 10,
			"Title and meta description are both set", "")
	case title == "" && meta == "":
		return newCheck(catalog.MetaCompleteness, types.StatusFail, 0,
			"Both title and meta description are missing",
			"Provide both a title and a meta description")
	case title == "":
		return newCheck(catalog.MetaCompleteness, types.StatusWarning, 5,
			"Title is missing",
			"Provide both a title and a meta description")
	default:
		return newCheck(catalog.MetaCompleteness, types.StatusWarning, 5,
			"Meta description is missing",
			"Provide both a title and a meta description")
	}
}

package analyze

import (
	"fmt"
	"math"
	"strings"

	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	scan "github.com/okian/seograde/internal/domain/scan"
	types "github.com/okian/seograde/internal/domain/types"
)

// keywordChecks scores primary keyword density and placement plus
// secondary keyword coverage. A blank primary keyword skips the
// primary checks; no secondary keywords skips coverage. With neither,
// the category emits nothing and scores as vacuously perfect.
func (a *Analyzer) keywordChecks(in model.Input, doc scan.Document) model.KeywordResult {
	res := model.KeywordResult{Checks: make([]model.Check, 0, 3)}

	primary := strings.TrimSpace(in.PrimaryKeyword)
	if primary != "" {
		res.Occurrences = countFold(doc.Text, primary)
		if doc.WordCount > 0 {
			res.Density = round2(100 * float64(res.Occurrences) / float64(doc.WordCount))
		}
		res.InIntroduction = containsFold(firstWords(doc.Text, a.introWindow), primary)

		res.Checks = append(res.Checks,
			a.densityCheck(primary, res.Occurrences, res.Density),
			a.introCheck(primary, res.InIntroduction),
		)
	}

	if secondaries := nonBlank(in.SecondaryKeywords); len(secondaries) > 0 {
		found := make([]string, 0, len(secondaries))
		missing := make([]string, 0, len(secondaries))
		for _, kw := range secondaries {
			if containsFold(doc.Text, kw) {
				found = append(found, kw)
			} else {
				missing = append(missing, kw)
			}
		}
		if len(found) > 0 {
			res.SecondaryFound = found
		}
		if len(missing) > 0 {
			res.SecondaryMissing = missing
		}
		res.Checks = append(res.Checks, secondaryCheck(len(secondaries), len(found), missing))
	}

	return res
}

func (a *Analyzer) densityCheck(primary string, occurrences int, density float64) model.Check {
	switch {
	case occurrences == 0:
		return newCheck(catalog.KeywordDensity, types.StatusFail, 0,
			fmt.Sprintf("Primary keyword %q does not appear in the content", primary),
			"Use the primary keyword naturally a few times in the body")
	case density < a.densityMin:
		return newCheck(catalog.KeywordDensity, types.StatusWarning, 5,
			fmt.Sprintf("Keyword density is %.2f%%, below the %.1f%%-%.1f%% target", density, a.densityMin, a.densityMax),
			"Use the primary keyword a few more times")
	case density > a.densityMax:
		return newCheck(catalog.KeywordDensity, types.StatusWarning, 4,
			fmt.Sprintf("Keyword density is %.2f%%, above the %.1f%%-%.1f%% target", density, a.densityMin, a.densityMax),
			"Reduce keyword repetition; heavy use reads as stuffing")
	default:
		return newCheck(catalog.KeywordDensity, types.StatusPass, 15,
			fmt.Sprintf("Keyword density is %.2f%% (%s)", density, countNoun(occurrences, "occurrence")), "")
	}
}

func (a *Analyzer) introCheck(primary string, inIntro bool) model.Check {
	if inIntro {
		return newCheck(catalog.KeywordIntro, types.StatusPass, 10,
			fmt.Sprintf("Primary keyword appears in the first %d words", a.introWindow), "")
	}
	return newCheck(catalog.KeywordIntro, types.StatusWarning, 3,
		fmt.Sprintf("Primary keyword %q does not appear in the first %d words", primary, a.introWindow),
		"Mention the primary keyword in the opening of the content")
}

// secondaryCheck scores coverage proportionally, mirroring the alt
// text rule: full coverage passes, none fails, partial earns the
// covered fraction.
func secondaryCheck(total, found int, missing []string) model.Check {
	desc := fmt.Sprintf("%d of %d secondary keywords found", found, total)
	switch {
	case found == total:
		return newCheck(catalog.SecondaryKeyword, types.StatusPass, 8, desc, "")
	case found == 0:
		return newCheck(catalog.SecondaryKeyword, types.StatusFail, 0, desc,
			"Work these keywords into the content: "+strings.Join(missing, ", "))
	default:
		score := int(math.Round(8 * float64(found) / float64(total)))
		return newCheck(catalog.SecondaryKeyword, types.StatusWarning, score, desc,
			"Work these keywords into the content: "+strings.Join(missing, ", "))
	}
}

// nonBlank trims keywords and drops empties, preserving order.
func nonBlank(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

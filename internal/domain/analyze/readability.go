package analyze

import (
	"fmt"
	"strings"

	catalog "github.com/okian/seograde/internal/domain/catalog"
	model "github.com/okian/seograde/internal/domain/model"
	scan "github.com/okian/seograde/internal/domain/scan"
	types "github.com/okian/seograde/internal/domain/types"
)

// readabilityChecks scores the prose itself: enough words, digestible
// sentences, a sane Flesch reading ease, paragraphs that do not wall
// off the reader. With no readable text only the word-count failure is
// emitted; the derived statistics would be meaningless.
func (a *Analyzer) readabilityChecks(doc scan.Document) model.ReadabilityResult {
	res := model.ReadabilityResult{
		Checks:    make([]model.Check, 0, 4),
		WordCount: doc.WordCount,
	}

	res.Checks = append(res.Checks, wordCountCheck(doc.WordCount))
	if doc.WordCount == 0 {
		return res
	}

	sentences := splitSentences(doc.Text)
	res.SentenceCount = len(sentences)

	avg := float64(doc.WordCount) / float64(len(sentences))
	res.AvgWordsPerSentence = round1(avg)

	ease := fleschReadingEase(doc.WordCount, len(sentences), totalSyllables(strings.Fields(doc.Text)))
	res.ReadingEase = round1(ease)

	res.Checks = append(res.Checks,
		sentenceLengthCheck(avg),
		readingEaseCheck(ease),
		paragraphLengthCheck(doc),
	)

	return res
}

func wordCountCheck(words int) model.Check {
	switch {
	case words == 0:
		return newCheck(catalog.WordCount, types.StatusFail, 0,
			"No readable text found",
			fmt.Sprintf("Add body content of at least %d words", catalog.WordCountGood))
	case words < catalog.WordCountThin:
		return newCheck(catalog.WordCount, types.StatusWarning, 4,
			fmt.Sprintf("Your content is %d words, below the %d-word minimum", words, catalog.WordCountThin),
			fmt.Sprintf("Expand the content to at least %d words, ideally %d or more", catalog.WordCountThin, catalog.WordCountGood))
	case words < catalog.WordCountGood:
		return newCheck(catalog.WordCount, types.StatusWarning, 8,
			fmt.Sprintf("Your content is %d words, short of the recommended %d", words, catalog.WordCountGood),
			fmt.Sprintf("Grow the content to %d words or more", catalog.WordCountGood))
	default:
		return newCheck(catalog.WordCount, types.StatusPass, 12,
			fmt.Sprintf("Your content is %d words", words), "")
	}
}

func sentenceLengthCheck(avg float64) model.Check {
	switch {
	case avg <= catalog.SentenceAvgGood:
		return newCheck(catalog.SentenceLength, types.StatusPass, 10,
			fmt.Sprintf("Sentences average %.1f words", avg), "")
	case avg <= catalog.SentenceAvgMax:
		return newCheck(catalog.SentenceLength, types.StatusWarning, 6,
			fmt.Sprintf("Sentences average %.1f words, above the recommended %.0f", avg, catalog.SentenceAvgGood),
			"Shorten or split long sentences")
	default:
		return newCheck(catalog.SentenceLength, types.StatusWarning, 3,
			fmt.Sprintf("Sentences average %.1f words, well above the recommended %.0f", avg, catalog.SentenceAvgGood),
			"Shorten or split long sentences")
	}
}

func readingEaseCheck(ease float64) model.Check {
	switch {
	case ease >= catalog.ReadingEaseGood:
		return newCheck(catalog.ReadingEase, types.StatusPass, 10,
			fmt.Sprintf("Flesch reading ease is %.1f", ease), "")
	case ease >= catalog.ReadingEaseFair:
		return newCheck(catalog.ReadingEase, types.StatusWarning, 7,
			fmt.Sprintf("Flesch reading ease is %.1f, fairly difficult to read", ease),
			"Use shorter sentences and simpler words")
	case ease >= catalog.ReadingEasePoor:
		return newCheck(catalog.ReadingEase, types.StatusWarning, 4,
			fmt.Sprintf("Flesch reading ease is %.1f, difficult to read", ease),
			"Use shorter sentences and simpler words")
	default:
		return newCheck(catalog.ReadingEase, types.StatusWarning, 2,
			fmt.Sprintf("Flesch reading ease is %.1f, very difficult to read", ease),
			"Use shorter sentences and simpler words")
	}
}

// paragraphLengthCheck scores the longest paragraph. Markup without
// <p> blocks is treated as one paragraph so plain-text drafts are
// still measured.
func paragraphLengthCheck(doc scan.Document) model.Check {
	paragraphs := doc.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []string{doc.Text}
	}
	longest := 0
	for _, p := range paragraphs {
		if n := len(strings.Fields(p)); n > longest {
			longest = n
		}
	}

	switch {
	case longest <= catalog.ParagraphGoodWords:
		return newCheck(catalog.ParagraphLength, types.StatusPass, 8,
			fmt.Sprintf("Longest paragraph is %d words", longest), "")
	case longest <= catalog.ParagraphMaxWords:
		return newCheck(catalog.ParagraphLength, types.StatusWarning, 5,
			fmt.Sprintf("Longest paragraph is %d words, above the recommended %d", longest, catalog.ParagraphGoodWords),
			fmt.Sprintf("Split paragraphs longer than %d words", catalog.ParagraphGoodWords))
	default:
		return newCheck(catalog.ParagraphLength, types.StatusWarning, 2,
			fmt.Sprintf("Longest paragraph is %d words, far above the recommended %d", longest, catalog.ParagraphGoodWords),
			fmt.Sprintf("Split paragraphs longer than %d words", catalog.ParagraphGoodWords))
	}
}

// fleschReadingEase computes the standard Flesch formula. Callers
// guarantee words and sentences are positive.
func fleschReadingEase(words, sentences, syllables int) float64 {
	return 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
}

// splitSentences breaks collapsed plain text into sentences at runs of
// '.', '!' or '?' followed by a space or the end of text, so decimals
// and versions like 3.14 stay intact. Non-empty text always yields at
// least one sentence.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminator(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isTerminator(runes[j]) {
			j++
		}
		if j < len(runes) && runes[j] != ' ' {
			// Terminator inside a token, e.g. "3.14".
			i = j
			continue
		}
		if s := strings.TrimSpace(string(runes[start:j])); s != "" {
			sentences = append(sentences, s)
		}
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		start = j
		i = j
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		sentences = []string{text}
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// totalSyllables sums the per-word estimates for the Flesch formula.
func totalSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += countSyllables(w)
	}
	return total
}

// countSyllables estimates syllables as vowel groups (y counts as a
// vowel), with a trailing silent 'e' discounted when an earlier group
// exists. Every token counts as at least one syllable.
func countSyllables(word string) int {
	var letters []rune
	for _, r := range fold(word) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 1
	}

	groups := 0
	prevVowel := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if groups > 1 && letters[len(letters)-1] == 'e' && !isVowel(letters[len(letters)-2]) {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}

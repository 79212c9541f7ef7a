// Command grade scores a local HTML draft and prints the result as
// JSON. It runs the scoring engine in-process; no server is needed.
//
// Example:
//
//	grade -file draft.html -title "Roasting coffee" -keyword "roasting coffee" -pretty
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/seograde/internal/domain/analyze"
	"github.com/okian/seograde/internal/domain/model"
)

// options carries the parsed command line.
type options struct {
	file          string
	title         string
	meta          string
	keyword       string
	secondary     string
	url           string
	featuredImage string
	pretty        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "Path to the HTML content file (required)")
	flag.StringVar(&opts.title, "title", "", "Draft title")
	flag.StringVar(&opts.meta, "meta", "", "Meta description")
	flag.StringVar(&opts.keyword, "keyword", "", "Primary keyword (required)")
	flag.StringVar(&opts.secondary, "secondary", "", "Comma-separated secondary keywords")
	flag.StringVar(&opts.url, "url", "", "Canonical URL of the draft")
	flag.StringVar(&opts.featuredImage, "featured-image", "", "Featured image URL")
	flag.BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run builds the draft from the command line, scores it, and writes
// the SEOScore JSON to out.
func run(opts options, out io.Writer) error {
	if strings.TrimSpace(opts.file) == "" {
		return errors.New("missing -file")
	}
	if strings.TrimSpace(opts.keyword) == "" {
		return errors.New("missing -keyword")
	}

	content, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.file, err)
	}

	in := model.Input{
		Title:           opts.title,
		MetaDescription: opts.meta,
		Content:         string(content),
		PrimaryKeyword:  opts.keyword,
		URL:             opts.url,
	}
	for _, kw := range strings.Split(opts.secondary, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			in.SecondaryKeywords = append(in.SecondaryKeywords, kw)
		}
	}
	if opts.featuredImage != "" {
		in.FeaturedImage = &model.FeaturedImage{URL: opts.featuredImage}
	}

	score := analyze.New().Analyze(in)

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(score)
}

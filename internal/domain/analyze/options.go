package analyze

// Option configures an Analyzer during construction.
type Option func(*Analyzer)

// WithDensityBand overrides the keyword density band, in percent.
// Bands with a non-positive floor or an inverted range are ignored.
func WithDensityBand(min, max float64) Option {
	return func(a *Analyzer) {
		if min > 0 && max > min {
			a.densityMin = min
			a.densityMax = max
		}
	}
}

// WithIntroWindow overrides how many leading words count as the
// introduction for the keyword placement check. Non-positive values
// are ignored.
func WithIntroWindow(words int) Option {
	return func(a *Analyzer) {
		if words > 0 {
			a.introWindow = words
		}
	}
}

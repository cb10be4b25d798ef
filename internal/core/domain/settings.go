package domain

// Settings holds the full application configuration.
type Settings struct {
	Normalize NormalizeSettings
	Passes    PassSettings
	Lexicon   LexiconSettings
}

// NormalizeSettings configures the core normalization engine.
type NormalizeSettings struct {
	// DatePolicy is the field-order policy for ambiguous date literals.
	DatePolicy DatePolicy

	// Lowercase lower-cases the final output of the full pass chain,
	// matching the expectations of downstream TTS front-ends. The core
	// engine itself never touches unmatched text.
	Lowercase bool
}

// PassSettings toggles the collaborator passes that run around the core.
type PassSettings struct {
	// Contractions expands written contractions ("can't" -> "cannot").
	Contractions bool

	// Punctuation strips punctuation from the final output.
	Punctuation bool

	// Spelling corrects misspelled words via the spell-correction model.
	Spelling bool
}

// LexiconSettings configures the user replacement lexicon.
type LexiconSettings struct {
	// Enabled applies stored replacements before the core runs.
	Enabled bool
}

// DefaultSettings returns the settings used when no configuration exists:
// UK date order, lower-cased output, contractions on, punctuation and
// spelling off (both can be slow or lossy), lexicon on.
func DefaultSettings() Settings {
	return Settings{
		Normalize: NormalizeSettings{
			DatePolicy: DatePolicyUK,
			Lowercase:  true,
		},
		Passes: PassSettings{
			Contractions: true,
			Punctuation:  false,
			Spelling:     false,
		},
		Lexicon: LexiconSettings{
			Enabled: true,
		},
	}
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if !s.Normalize.DatePolicy.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

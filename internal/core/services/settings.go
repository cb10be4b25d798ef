package services

import (
	"fmt"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatePolicy   = "normalize.date_policy"
	keyLowercase    = "normalize.lowercase"
	keyContractions = "passes.contractions"
	keyPunctuation  = "passes.punctuation"
	keySpelling     = "passes.spelling"
	keyLexicon      = "lexicon.enabled"
)

// passKeys maps user-facing pass names to their config keys.
var passKeys = map[string]string{
	"contractions": keyContractions,
	"punctuation":  keyPunctuation,
	"spelling":     keySpelling,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults for any
// key that has never been set.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		Normalize: domain.NormalizeSettings{
			DatePolicy: s.getDatePolicy(defaults.Normalize.DatePolicy),
			Lowercase:  s.configStore.GetBoolDefault(keyLowercase, defaults.Normalize.Lowercase),
		},
		Passes: domain.PassSettings{
			Contractions: s.configStore.GetBoolDefault(keyContractions, defaults.Passes.Contractions),
			Punctuation:  s.configStore.GetBoolDefault(keyPunctuation, defaults.Passes.Punctuation),
			Spelling:     s.configStore.GetBoolDefault(keySpelling, defaults.Passes.Spelling),
		},
		Lexicon: domain.LexiconSettings{
			Enabled: s.configStore.GetBoolDefault(keyLexicon, defaults.Lexicon.Enabled),
		},
	}

	return settings, nil
}

// SetDatePolicy sets the field-order policy for date literals.
func (s *SettingsService) SetDatePolicy(policy domain.DatePolicy) error {
	if !policy.IsValid() {
		return fmt.Errorf("invalid date policy %q: %w", policy, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyDatePolicy, policy.String()); err != nil {
		return fmt.Errorf("save date policy: %w", err)
	}
	return nil
}

// SetPass toggles a collaborator pass by name.
func (s *SettingsService) SetPass(name string, enabled bool) error {
	key, ok := passKeys[name]
	if !ok {
		return fmt.Errorf("unknown pass %q: %w", name, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(key, enabled); err != nil {
		return fmt.Errorf("save pass %s: %w", name, err)
	}
	return nil
}

// SetLowercase toggles lower-casing of the final output.
func (s *SettingsService) SetLowercase(enabled bool) error {
	if err := s.configStore.Set(keyLowercase, enabled); err != nil {
		return fmt.Errorf("save lowercase: %w", err)
	}
	return nil
}

// SetLexiconEnabled toggles the lexicon replacement pass.
func (s *SettingsService) SetLexiconEnabled(enabled bool) error {
	if err := s.configStore.Set(keyLexicon, enabled); err != nil {
		return fmt.Errorf("save lexicon enabled: %w", err)
	}
	return nil
}

// Validate checks the stored configuration for consistency.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

func (s *SettingsService) getDatePolicy(defaultVal domain.DatePolicy) domain.DatePolicy {
	val := s.configStore.GetString(keyDatePolicy)
	if val == "" {
		return defaultVal
	}
	policy := domain.DatePolicy(val)
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}

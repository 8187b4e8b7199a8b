package tagging

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Term is one predefined mood or category
type Term struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Vocabulary is the predefined set of moods and categories
type Vocabulary struct {
	Moods      []Term `yaml:"moods"`
	Categories []Term `yaml:"categories"`
}

// DefaultVocabulary returns the vocabulary built into the binary
func DefaultVocabulary() (*Vocabulary, error) {
	return ParseVocabulary(defaultVocabulary)
}

// LoadVocabulary reads a YAML vocabulary
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates a YAML vocabulary. IDs must be
// unique across moods and categories since both are also tags.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	if len(v.Moods) == 0 {
		return nil, errors.New("vocabulary has no moods")
	}

	seen := make(map[string]bool)
	for _, term := range append(append([]Term{}, v.Moods...), v.Categories...) {
		if term.ID == "" || term.Name == "" {
			return nil, fmt.Errorf("vocabulary term %q needs both an id and a name", term.ID+term.Name)
		}
		if seen[term.ID] {
			return nil, fmt.Errorf("vocabulary id %q is used twice", term.ID)
		}
		seen[term.ID] = true
	}

	return &v, nil
}

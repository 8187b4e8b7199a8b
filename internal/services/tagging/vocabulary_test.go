package tagging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v, err := DefaultVocabulary()
	require.NoError(t, err)

	assert.Len(t, v.Moods, 10)
	assert.Len(t, v.Categories, 20)
	assert.Equal(t, Term{ID: "happy", Name: "Happy"}, v.Moods[0])
}

func TestLoadVocabularyRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "moods: [unclosed"},
		{name: "no moods", yaml: "categories:\n  - id: a\n    name: A\n"},
		{name: "missing name", yaml: "moods:\n  - id: a\n"},
		{name: "duplicate across lists", yaml: "moods:\n  - id: a\n    name: A\ncategories:\n  - id: a\n    name: Also A\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadVocabulary(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}

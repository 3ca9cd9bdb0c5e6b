package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVocabulary(n int) []domain.VocabularyEntry {
	entries := make([]domain.VocabularyEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, domain.VocabularyEntry{
			ID:         fmt.Sprintf("w%d", i),
			OwnerID:    "user1",
			Word:       fmt.Sprintf("word-%d", i),
			Definition: fmt.Sprintf("definition-%d", i),
		})
	}
	return entries
}

func TestGenerateQuestions(t *testing.T) {
	vocabulary := makeVocabulary(10)
	definitions := make(map[string]string, len(vocabulary))
	for _, v := range vocabulary {
		definitions[v.Word] = v.Definition
	}

	questions, err := domain.GenerateQuestions(vocabulary, 5, util.NewLockedRand(1))
	require.NoError(t, err)
	require.Len(t, questions, 5)

	prompts := make(map[string]struct{})
	for _, q := range questions {
		_, dup := prompts[q.Prompt]
		assert.False(t, dup, "word %s selected twice", q.Prompt)
		prompts[q.Prompt] = struct{}{}

		assert.NotEmpty(t, q.ID)
		assert.Len(t, q.Options, 4)

		optionIDs := make(map[string]struct{})
		texts := make(map[string]struct{})
		correctCount := 0
		for _, opt := range q.Options {
			optionIDs[opt.ID] = struct{}{}
			texts[opt.Text] = struct{}{}
			if opt.ID == q.CorrectOptionID {
				correctCount++
				assert.Equal(t, definitions[q.Prompt], opt.Text)
			}
		}
		assert.Equal(t, 1, correctCount)
		assert.Len(t, optionIDs, len(q.Options))
		assert.Len(t, texts, len(q.Options))
	}
}

func TestGenerateQuestions_Errors(t *testing.T) {
	rnd := util.NewLockedRand(1)

	_, err := domain.GenerateQuestions(makeVocabulary(3), 5, rnd)
	assert.ErrorIs(t, err, domain.ErrInsufficientVocabulary)

	_, err = domain.GenerateQuestions(nil, 1, rnd)
	assert.ErrorIs(t, err, domain.ErrInsufficientVocabulary)

	_, err = domain.GenerateQuestions(makeVocabulary(3), 0, rnd)
	assert.ErrorIs(t, err, domain.ErrInvalidQuestionCount)

	_, err = domain.GenerateQuestions(makeVocabulary(3), -2, rnd)
	assert.ErrorIs(t, err, domain.ErrInvalidQuestionCount)
}

func TestGenerateQuestions_SmallVocabulary(t *testing.T) {
	tests := []struct {
		name        string
		vocabulary  []domain.VocabularyEntry
		wantOptions int
	}{
		{
			name:        "single entry has no distractors",
			vocabulary:  makeVocabulary(1),
			wantOptions: 1,
		},
		{
			name:        "three entries give two distractors",
			vocabulary:  makeVocabulary(3),
			wantOptions: 3,
		},
		{
			name: "duplicate definitions are offered once",
			vocabulary: []domain.VocabularyEntry{
				{ID: "a", Word: "alpha", Definition: "first"},
				{ID: "b", Word: "beta", Definition: "second"},
				{ID: "c", Word: "gamma", Definition: "second"},
				{ID: "d", Word: "delta", Definition: "second"},
			},
			wantOptions: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := domain.GenerateQuestions(tt.vocabulary, len(tt.vocabulary), util.NewLockedRand(3))
			require.NoError(t, err)
			for _, q := range questions {
				texts := make(map[string]int)
				for _, opt := range q.Options {
					texts[opt.Text]++
				}
				for text, n := range texts {
					assert.Equal(t, 1, n, "option %q repeated", text)
				}
				if tt.wantOptions > 0 {
					assert.Len(t, q.Options, tt.wantOptions)
				}
				assert.Equal(t, q.CorrectOptionID, findOptionID(q, q.CorrectText()))
			}
		})
	}
}

func TestGenerateQuestions_DuplicateDefinitionsNeverMatchCorrect(t *testing.T) {
	vocabulary := []domain.VocabularyEntry{
		{ID: "a", Word: "alpha", Definition: "first"},
		{ID: "b", Word: "beta", Definition: "second"},
		{ID: "c", Word: "gamma", Definition: "second"},
		{ID: "d", Word: "delta", Definition: "second"},
	}
	questions, err := domain.GenerateQuestions(vocabulary, 4, util.NewLockedRand(9))
	require.NoError(t, err)

	for _, q := range questions {
		if q.Prompt == "alpha" {
			assert.Len(t, q.Options, 2)
		} else {
			// "second" is the correct text, only "first" is left as a distractor.
			assert.Len(t, q.Options, 2)
			assert.Equal(t, "second", q.CorrectText())
		}
	}
}

func findOptionID(q domain.QuizQuestion, text string) string {
	for _, opt := range q.Options {
		if opt.Text == text {
			return opt.ID
		}
	}
	return ""
}

func TestGenerateQuestions_UniformSelection(t *testing.T) {
	vocabulary := makeVocabulary(4)
	rnd := util.NewLockedRand(11)
	counts := make(map[string]int)
	const runs = 4000
	for i := 0; i < runs; i++ {
		questions, err := domain.GenerateQuestions(vocabulary, 1, rnd)
		require.NoError(t, err)
		counts[questions[0].Prompt]++
	}
	for word, n := range counts {
		assert.InDelta(t, runs/4, n, runs/10, "word %s picked %d times", word, n)
	}
	assert.Len(t, counts, 4)
}

func TestGenerateQuizTitle(t *testing.T) {
	rnd := util.NewLockedRand(5)
	for i := 0; i < 20; i++ {
		title := domain.GenerateQuizTitle(rnd)
		assert.Contains(t, title, ": ")
		assert.False(t, strings.HasPrefix(title, " "))
	}
}

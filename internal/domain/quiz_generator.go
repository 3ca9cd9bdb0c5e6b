package domain

import (
	"vocab-builder/internal/util"
)

// MaxDistractors is the number of wrong options a question gets when the
// vocabulary has enough distinct definitions.
const MaxDistractors = 3

var quizTitlePrefixes = []string{
	"Vocabulary Challenge:",
	"Word Power Quiz:",
	"Lexicon Test:",
	"Mindful Words:",
	"Daily Dose of Vocab:",
	"The Great Word Hunt:",
	"Brain Boost:",
	"Verbal Voyage:",
	"Word Wizard:",
	"Language Ladder:",
}

var quizTitleSuffixes = []string{
	"Level Up!",
	"Sharpen Your Lexicon",
	"Expand Your Vocabulary",
	"Test Your Knowledge",
	"Word Mastery",
	"The Ultimate Word Challenge",
	"Are You a Wordsmith?",
	"Unlock New Words",
	"The Definition Derby",
	"Conquer the Language!",
}

// GenerateQuizTitle picks a prefix and a suffix independently.
func GenerateQuizTitle(rnd RandomSource) string {
	prefix := quizTitlePrefixes[rnd.Intn(len(quizTitlePrefixes))]
	suffix := quizTitleSuffixes[rnd.Intn(len(quizTitleSuffixes))]
	return prefix + " " + suffix
}

// GenerateQuestions builds count multiple-choice questions from vocabulary.
//
// Entries are drawn without replacement. Each question offers the entry's
// definition plus up to MaxDistractors distinct definitions of other entries,
// so a small or repetitive vocabulary yields questions with fewer options.
func GenerateQuestions(vocabulary []VocabularyEntry, count int, rnd RandomSource) ([]QuizQuestion, error) {
	if count <= 0 {
		return nil, ErrInvalidQuestionCount
	}
	if len(vocabulary) < count {
		return nil, ErrInsufficientVocabulary
	}

	order := make([]int, len(vocabulary))
	for i := range order {
		order[i] = i
	}
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	questions := make([]QuizQuestion, 0, count)
	for _, idx := range order[:count] {
		entry := vocabulary[idx]

		correct := QuizOption{ID: util.NewULID(), Text: entry.Definition}
		options := []QuizOption{correct}
		for _, text := range pickDistractors(vocabulary, idx, rnd) {
			options = append(options, QuizOption{ID: util.NewULID(), Text: text})
		}
		rnd.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, QuizQuestion{
			ID:              util.NewULID(),
			Prompt:          entry.Word,
			Options:         options,
			CorrectOptionID: correct.ID,
		})
	}
	return questions, nil
}

// pickDistractors returns up to MaxDistractors definitions of entries other
// than vocabulary[self], de-duplicated by text and never equal to the correct
// definition.
func pickDistractors(vocabulary []VocabularyEntry, self int, rnd RandomSource) []string {
	correct := vocabulary[self].Definition
	seen := map[string]struct{}{correct: {}}
	candidates := make([]string, 0, len(vocabulary))
	for i, other := range vocabulary {
		if i == self {
			continue
		}
		if _, dup := seen[other.Definition]; dup {
			continue
		}
		seen[other.Definition] = struct{}{}
		candidates = append(candidates, other.Definition)
	}

	rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > MaxDistractors {
		candidates = candidates[:MaxDistractors]
	}
	return candidates
}

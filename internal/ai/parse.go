package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Abishek0612/video-quiz-generator-api/internal/model"
)

// ErrMalformedResponse marks output the backend produced but which could not
// be parsed into the expected question schema. Callers use it to distinguish
// a malformed-output problem from a reachability problem.
var ErrMalformedResponse = errors.New("malformed backend response")

// ExtractJSON strips the fenced-code-block markup chat models often wrap
// around JSON output, whether or not the fence is language-tagged or
// surrounded by prose.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "```")
	if start < 0 {
		return content
	}
	body := content[start+3:]
	body = strings.TrimPrefix(body, "json")
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Type          string   `json:"type"`
}

// ParseQuestions parses the cleaned backend output into at most maxCount
// questions. The top level must contain a "questions" key. The backend may
// over-produce; surplus entries are cut before validation, so only the
// questions actually returned must carry exactly four options with the
// correct answer among them. Violations return ErrMalformedResponse.
func ParseQuestions(content, difficulty string, maxCount int) ([]model.Question, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	rawList, ok := top["questions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing questions key", ErrMalformedResponse)
	}

	var raw []rawQuestion
	if err := json.Unmarshal(rawList, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if maxCount > 0 && len(raw) > maxCount {
		raw = raw[:maxCount]
	}

	questions := make([]model.Question, 0, len(raw))
	for i, q := range raw {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedResponse, i, err)
		}
		if q.Difficulty == "" {
			q.Difficulty = difficulty
		}
		questions = append(questions, model.Question{
			Question:      strings.TrimSpace(q.Question),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   strings.TrimSpace(q.Explanation),
			Difficulty:    q.Difficulty,
			Type:          model.QuestionTypeMultipleChoice,
		})
	}
	return questions, nil
}

func validateQuestion(q rawQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) != model.OptionsPerQuestion {
		return fmt.Errorf("expected %d options, got %d", model.OptionsPerQuestion, len(q.Options))
	}
	for _, opt := range q.Options {
		if q.CorrectAnswer == opt {
			return nil
		}
	}
	return errors.New("correct_answer is not among options")
}

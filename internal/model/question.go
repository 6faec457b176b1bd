package model

// QuestionTypeMultipleChoice is the only question shape the service produces.
const QuestionTypeMultipleChoice = "multiple_choice"

// OptionsPerQuestion is the fixed number of choices per generated question.
const OptionsPerQuestion = 4

// QuestionRequest is the body accepted by POST /generate-questions.
// Defaults for language, difficulty and question_count are applied by the
// handler before use.
type QuestionRequest struct {
	Text          string  `json:"text" binding:"required"`
	SegmentIndex  int     `json:"segment_index" binding:"min=0"`
	StartTime     float64 `json:"start_time" binding:"min=0"`
	EndTime       float64 `json:"end_time" binding:"required,gt=0"`
	Language      string  `json:"language" binding:"omitempty"`
	Difficulty    string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	QuestionCount int     `json:"question_count" binding:"omitempty,min=1,max=10"`
}

// Question is a single generated multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Type          string   `json:"type"`
}

// SegmentInfo echoes the timing fields of the request back to the caller.
type SegmentInfo struct {
	SegmentIndex int     `json:"segment_index"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Duration     float64 `json:"duration"`
	Language     string  `json:"language"`
}

// QuestionsResponse is the body returned by POST /generate-questions.
type QuestionsResponse struct {
	Questions   []Question  `json:"questions"`
	SegmentInfo SegmentInfo `json:"segment_info"`
}

package ai

import (
	"fmt"
	"strings"
)

// systemPrompt frames every generation request. Kept terse so the model
// spends its output budget on the questions themselves.
const systemPrompt = `You are an educational content generator. You create clear, accurate multiple-choice questions from transcript text. Respond with JSON only, no commentary.`

// BuildQuestionPrompt builds the system and user messages for generating
// count multiple-choice questions from a transcript segment.
func BuildQuestionPrompt(text, difficulty string, count int) (string, string) {
	userPrompt := fmt.Sprintf(`Based on the following transcript segment, generate %d multiple-choice questions.

Transcript:
"""
%s
"""

Requirements:
- Questions should be %s difficulty level
- Each question must have exactly 4 options
- Exactly one option is correct
- Provide a brief explanation for the correct answer
- Focus on key concepts and important information
- Output must be pure JSON, no markdown, no extra text

Format your response as JSON with this structure:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_answer": "Option A",
      "explanation": "Explanation here",
      "difficulty": "%s",
      "type": "multiple_choice"
    }
  ]
}`, count, strings.TrimSpace(text), difficulty, difficulty)

	return systemPrompt, userPrompt
}

package grading

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert calculus grader reviewing a photo of a student's handwritten solution.

Rules:
- Grade both the final result and the procedure visible in the image.
- Classify with exactly one result value:
  - "correct": the solution and its justification are fully right. This is RARE — award it only when every step checks out. Minor notation slips are acceptable.
  - "partial": the approach is right but there are calculation errors, or the solution is incomplete.
  - "incorrect": the approach or the result is wrong, or the work does not address the exercise.
- Score within the band for the result: correct 90-100, partial 40-75, incorrect 0-30.
- If the image is unreadable or unrelated to the exercise, grade "incorrect" with a low score and say why.
- feedbackSummary: 1-2 sentences in Spanish, addressed to the student, naming the key error when there is one. Encouraging but honest.
- Respond with a single JSON object of the form {"result": "...", "score": ..., "feedbackSummary": "..."} and nothing else. No commentary, no code fences.`

// buildUserMessage interpolates the evaluation context. The image itself
// travels as an inline attachment on the same message.
func buildUserMessage(req Request) string {
	var b strings.Builder

	subtopic := req.SubtopicName
	if subtopic == "" {
		subtopic = "Derivadas"
	}

	fmt.Fprintf(&b, "Exercise: %s\n", req.Statement)

	answer := strings.TrimSpace(req.UserAnswer)
	if answer == "" {
		answer = "(sin respuesta escrita)"
	}
	fmt.Fprintf(&b, "Typed answer: %s\n", answer)

	fmt.Fprintf(&b, "Subtopic: %s\n", subtopic)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Exercise index: %d of 3\n", req.Index)
	b.WriteString("The attached image is the student's handwritten solution.")

	return b.String()
}

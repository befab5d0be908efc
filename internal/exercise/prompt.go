package exercise

import (
	"fmt"
	"strings"

	"github.com/mathcoach/mathcoach/internal/subtopic"
)

const systemPrompt = `You are an expert calculus teacher creating practice exercises for Spanish-speaking high-school students.

Rules:
- Generate exactly ONE exercise. A single question — never sub-questions labelled a), b), c).
- Write the statement in Spanish, using plain text math notation (x^2, sen(x), ln(x)). No LaTeX.
- Vary the functions you use across polynomial, rational, trigonometric, exponential and logarithmic forms. Do not default to the same base function every time.
- Match the requested difficulty: "easy" is one direct rule application, "medium" combines two rules, "hard" requires several steps or an applied setting.
- The exercise index biases the style: index 1 favors a short procedural computation, index 2 favors combining differentiation rules, index 3 favors a word problem with a real-world setting.
- Classify the exercise with exactly one exerciseType value:
  - "basic_procedural": direct application of one differentiation rule.
  - "mixed_rules": requires combining two or more rules (product, quotient, chain).
  - "applied_word_problem": a contextualized word problem solved with derivatives.
  - "exam_multi_step": an exam-style exercise requiring several chained steps.
- Respond with a single JSON object of the form {"statement": "...", "exerciseType": "..."} and nothing else. No commentary, no code fences.`

// buildUserMessage interpolates the request and optional curricular
// context into the generation prompt.
func buildUserMessage(req Request, rec *subtopic.Record) string {
	var b strings.Builder

	name := req.SubtopicName
	if rec != nil && rec.Name != "" {
		name = rec.Name
	}
	if name == "" {
		name = "Derivadas"
	}

	fmt.Fprintf(&b, "Subtopic: %s\n", name)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Exercise index: %d of 3\n", req.Index)
	fmt.Fprintf(&b, "Suggested exercise type: %s\n", TypeHint(name, req.Index))

	if rec != nil {
		if rec.TopicName != "" {
			fmt.Fprintf(&b, "Topic: %s", rec.TopicName)
			if rec.TopicYear != "" {
				fmt.Fprintf(&b, " (%s)", rec.TopicYear)
			}
			if rec.TopicCode != "" {
				fmt.Fprintf(&b, " [%s]", rec.TopicCode)
			}
			b.WriteString("\n")
		}
		if rec.Notes != "" {
			fmt.Fprintf(&b, "Curricular notes: %s\n", rec.Notes)
		}
	}

	if req.Goal != "" {
		fmt.Fprintf(&b, "Learning goal: %s\n", req.Goal)
	}

	return b.String()
}

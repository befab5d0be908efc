package exercise

import "strings"

// hintRule maps subtopic-name keywords to an exercise type. Rules are
// evaluated in order; the first keyword hit wins.
type hintRule struct {
	keywords []string
	hint     Type
}

var hintRules = []hintRule{
	{[]string{"aplicac", "problema", "enunciado", "optimizac", "razón de cambio"}, TypeAppliedWordProblem},
	{[]string{"cadena", "composic", "mixta", "combinad"}, TypeMixedRules},
	{[]string{"examen", "evaluaci", "selectividad", "repaso"}, TypeExamMultiStep},
}

// indexHints is the default style per exercise index when no keyword
// matches: sessions open procedurally and close with an applied problem.
var indexHints = map[int]Type{
	1: TypeBasicProcedural,
	2: TypeMixedRules,
	3: TypeAppliedWordProblem,
}

// TypeHint computes the exercise type for a subtopic name and index.
// It backs two behaviors: biasing the generation prompt, and replacing a
// classification tag the model emitted outside the allowed set.
func TypeHint(subtopicName string, index int) Type {
	name := strings.ToLower(subtopicName)
	for _, rule := range hintRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.hint
			}
		}
	}
	if hint, ok := indexHints[index]; ok {
		return hint
	}
	return TypeBasicProcedural
}

package grading

// fallbacks is the fixed grade served per index when evaluation cannot
// produce a trustworthy result. Process-wide constants with no randomness.
var fallbacks = map[int]Evaluation{
	1: {
		Result:          ResultCorrect,
		Score:           100,
		FeedbackSummary: "¡Muy bien! La solución de la imagen es correcta y está bien justificada.",
	},
	2: {
		Result:          ResultPartial,
		Score:           60,
		FeedbackSummary: "El planteamiento va por buen camino, pero hay un error de cálculo en la derivada. Revisa el paso intermedio.",
	},
	3: {
		Result:          ResultIncorrect,
		Score:           20,
		FeedbackSummary: "La solución de la imagen no es correcta. Repasa las reglas de derivación e inténtalo de nuevo.",
	},
}

// Fallback returns the deterministic fallback grade for the given index.
// Any value outside {1, 2, 3} maps to the index-3 record, matching the
// pre-clamped contract.
func Fallback(index int) Evaluation {
	if ev, ok := fallbacks[index]; ok {
		return ev
	}
	return fallbacks[3]
}

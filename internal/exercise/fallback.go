package exercise

// fallbacks is the fixed exercise served per index when generation cannot
// produce a trustworthy result. Process-wide constants: no randomness, no
// lifecycle beyond process start.
var fallbacks = map[int]Exercise{
	1: {
		Statement: "Calcula la derivada de la función f(x) = 3x^2 - 5x + 2.",
		Type:      TypeBasicProcedural,
	},
	2: {
		Statement: "Deriva la función f(x) = x^2 · sen(x) y simplifica el resultado.",
		Type:      TypeMixedRules,
	},
	3: {
		Statement: "El volumen de agua de un depósito viene dado por V(t) = 4t^2 + 2t litros, con t en minutos.\n¿Con qué rapidez está entrando el agua en el instante t = 3?",
		Type:      TypeAppliedWordProblem,
	},
}

// Fallback returns the deterministic fallback exercise for the given
// index. Any value outside {1, 2, 3} maps to the index-3 record, matching
// the pre-clamped contract.
func Fallback(index int) Exercise {
	if ex, ok := fallbacks[index]; ok {
		return ex
	}
	return fallbacks[3]
}

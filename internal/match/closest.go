package match

// DefaultThreshold is the minimal similarity Closest accepts.
const DefaultThreshold = 0.6

// Closest returns the candidate most similar to name, if any reaches threshold.
// Ties keep the earlier candidate. An exact match is never suggested.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	best, bestScore := "", threshold

	found := false

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}

package model

// PickCaregiver applies the deterministic tie-break rule: the first
// candidate of a lexicographically ascending list wins. No load
// balancing, no randomness, so results are reproducible.
// Returns false if there are no candidates.
func PickCaregiver(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

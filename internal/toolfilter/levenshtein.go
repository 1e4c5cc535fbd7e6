package toolfilter

// suggestMaxDistance bounds how far a suggestion may be from the typo.
const suggestMaxDistance = 3

// LevenshteinDistance computes the edit distance between two strings
// with the two-row dynamic programming form. Case-sensitive.
func LevenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// SuggestTool returns the closest available tool name when it is within
// suggestMaxDistance edits of name, else the empty string.
func SuggestTool(name string, available []string) string {
	bestDist := -1
	bestName := ""
	for _, candidate := range available {
		if d := LevenshteinDistance(name, candidate); bestDist < 0 || d < bestDist {
			bestDist = d
			bestName = candidate
		}
	}
	if bestDist >= 0 && bestDist <= suggestMaxDistance {
		return bestName
	}
	return ""
}

package service

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/showcase/internal/carousel"
)

// maxFindDistance is the largest normalised edit distance Find accepts.
const maxFindDistance = 0.4

// Find returns the index of the item whose title or key best matches query,
// or -1 when nothing is close enough.
func Find(items []carousel.Item, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1
	}
	best, bestScore := -1, maxFindDistance
	for i, it := range items {
		if score := matchScore(q, it); score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// matchScore is 0 for an exact hit and grows with distance.
func matchScore(q string, it carousel.Item) float64 {
	title := strings.ToLower(it.Title)
	key := strings.ToLower(it.Key)
	switch {
	case q == key || q == title:
		return 0
	case strings.HasPrefix(title, q):
		return 0.05
	case strings.Contains(title, q):
		return 0.1
	}
	score := 1.0
	candidates := append([]string{title, key}, strings.Fields(title)...)
	for _, c := range candidates {
		if c == "" {
			continue
		}
		dist := float64(levenshtein.ComputeDistance(q, c)) / float64(max(len(q), len(c)))
		if dist < score {
			score = dist
		}
	}
	return score
}

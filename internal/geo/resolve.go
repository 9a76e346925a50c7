package geo

import "strings"

// Normalize lowercases and collapses whitespace for lookup.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Resolve looks up a location by exact (normalized) name.
func Resolve(name string) (Location, bool) {
	normalized := Normalize(name)
	for _, location := range locations {
		if location.Name == normalized {
			return location, true
		}
	}
	return Location{}, false
}

// FuzzyResolve finds the closest known location within maxDistance edits
// of the query. Exact matches win outright; ties go to the earlier entry.
func FuzzyResolve(name string, maxDistance int) (Location, bool) {
	if location, ok := Resolve(name); ok {
		return location, true
	}
	normalized := Normalize(name)
	if normalized == "" {
		return Location{}, false
	}
	best := Location{}
	bestDistance := maxDistance + 1
	for _, location := range locations {
		distance := editDistance(normalized, location.Name)
		if distance < bestDistance {
			best = location
			bestDistance = distance
		}
	}
	if bestDistance > maxDistance {
		return Location{}, false
	}
	return best, true
}

// editDistance computes the Levenshtein distance with a rolling row.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		previous := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			current := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = minInt(row[j]+1, row[j-1]+1, previous+cost)
			previous = current
		}
	}
	return row[len(b)]
}

func minInt(values ...int) int {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

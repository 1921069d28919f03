package player

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search ranks profiles whose username or full name fuzzily contains query.
// An empty query returns profiles sorted by display name.
func Search(profiles []Profile, query string, limit int) []Profile {
	query = strings.TrimSpace(query)

	type ranked struct {
		profile  Profile
		distance int
	}

	out := make([]ranked, 0, len(profiles))
	for _, item := range profiles {
		if query == "" {
			out = append(out, ranked{profile: item})
			continue
		}

		best := -1
		for _, candidate := range []string{item.Username, item.FullName} {
			if candidate == "" {
				continue
			}
			distance := fuzzy.RankMatchNormalizedFold(query, candidate)
			if distance >= 0 && (best < 0 || distance < best) {
				best = distance
			}
		}
		if best >= 0 {
			out = append(out, ranked{profile: item, distance: best})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].distance != out[j].distance {
			return out[i].distance < out[j].distance
		}
		return strings.ToLower(out[i].profile.DisplayName()) < strings.ToLower(out[j].profile.DisplayName())
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	result := make([]Profile, 0, len(out))
	for _, item := range out {
		result = append(result, item.profile)
	}
	return result
}

package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/Apurer/pet-adoption-center/internal/shared/dates"
)

const (
	// PopularDistinctCounts is how many distinct favorite counts the popular list keeps.
	PopularDistinctCounts = 10
	// NewArrivalDistinctDays is how many distinct arrival days the new-arrivals list keeps.
	NewArrivalDistinctDays = 5
)

// RankedPet is a pet on the popular list.
type RankedPet struct {
	Pet           *Pet
	FavoriteCount int
	Rank          int
}

// Popular ranks Available pets that have at least one favorite. Every pet whose
// count reaches the limit-th highest distinct count is kept, so ties at the
// boundary may push the result past limit rows. Rank is dense: one plus the
// number of distinct counts strictly greater than the pet's own.
func Popular(pets []*Pet, favorites map[int64]int, limit int) []RankedPet {
	if limit <= 0 {
		return []RankedPet{}
	}
	candidates := make([]RankedPet, 0, len(pets))
	for _, p := range pets {
		if p == nil || p.Status != StatusAvailable {
			continue
		}
		n := favorites[p.ID]
		if n < 1 {
			continue
		}
		candidates = append(candidates, RankedPet{Pet: p, FavoriteCount: n})
	}
	if len(candidates) == 0 {
		return []RankedPet{}
	}

	distinct := distinctDesc(candidates)
	boundary := distinct[len(distinct)-1]
	if len(distinct) > limit {
		boundary = distinct[limit-1]
	}
	rankOf := make(map[int]int, len(distinct))
	for i, n := range distinct {
		rankOf[n] = i + 1
	}

	out := make([]RankedPet, 0, len(candidates))
	for _, c := range candidates {
		if c.FavoriteCount < boundary {
			continue
		}
		c.Rank = rankOf[c.FavoriteCount]
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FavoriteCount != out[j].FavoriteCount {
			return out[i].FavoriteCount > out[j].FavoriteCount
		}
		return lessName(out[i].Pet, out[j].Pet)
	})
	return out
}

// NewArrivals returns Available pets whose arrival day reaches the limit-th
// most recent distinct arrival day, newest first.
func NewArrivals(pets []*Pet, limit int) []*Pet {
	if limit <= 0 {
		return []*Pet{}
	}
	available := make([]*Pet, 0, len(pets))
	seen := map[time.Time]struct{}{}
	days := make([]time.Time, 0, len(pets))
	for _, p := range pets {
		if p == nil || p.Status != StatusAvailable {
			continue
		}
		available = append(available, p)
		day := dates.Day(p.DateArrived)
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	if len(available) == 0 {
		return []*Pet{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	boundary := days[len(days)-1]
	if len(days) > limit {
		boundary = days[limit-1]
	}

	out := make([]*Pet, 0, len(available))
	for _, p := range available {
		if p.DateArrived.Before(boundary) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DateArrived.Equal(out[j].DateArrived) {
			return out[i].DateArrived.After(out[j].DateArrived)
		}
		return lessName(out[i], out[j])
	})
	return out
}

func distinctDesc(candidates []RankedPet) []int {
	seen := make(map[int]struct{}, len(candidates))
	counts := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.FavoriteCount]; ok {
			continue
		}
		seen[c.FavoriteCount] = struct{}{}
		counts = append(counts, c.FavoriteCount)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

func lessName(a, b *Pet) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

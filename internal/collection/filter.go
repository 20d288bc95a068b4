package collection

import (
	"strconv"
	"strings"
	"time"

	"github.com/iamjoshua/photography/internal/meta"
)

// FilterSpec selects photos by metadata. All present clauses must match
// (AND); within keywords, any one match suffices (OR). A spec with no
// clauses matches nothing, so a stray empty filters key can never pull
// the whole library into one collection.
type FilterSpec struct {
	Keywords []string `yaml:"keywords,omitempty"`
	Location string   `yaml:"location,omitempty"`
	Rating   string   `yaml:"rating,omitempty"` // "4+" means >= 4, "5" means exactly 5
	Date     string   `yaml:"date,omitempty"`   // "2025", "2025-06", or "2025-06-15"
}

// IsZero reports whether no clause is set.
func (f *FilterSpec) IsZero() bool {
	return len(f.Keywords) == 0 && f.Location == "" && f.Rating == "" && f.Date == ""
}

// Matches reports whether the photo's metadata satisfies every present
// clause of the spec.
func (f *FilterSpec) Matches(m meta.Metadata) bool {
	if f == nil || f.IsZero() {
		return false
	}

	if len(f.Keywords) > 0 {
		any := false
		for _, kw := range f.Keywords {
			if m.HasKeyword(kw) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if f.Location != "" && !matchLocation(f.Location, m.Location) {
		return false
	}

	if f.Rating != "" && !matchRating(f.Rating, m.Rating) {
		return false
	}

	if f.Date != "" && !matchDate(f.Date, m) {
		return false
	}

	return true
}

// matchLocation checks the filter against every non-empty location field:
// a collection filtered on "Seattle" should hold a photo whether the
// filter author was thinking of the city or the sublocation.
func matchLocation(want string, loc meta.Location) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	for _, have := range loc.Fields() {
		if strings.ToLower(have) == want {
			return true
		}
	}
	return false
}

// matchRating evaluates a rating filter against a photo's star rating.
// An unrated photo (rating 0) never matches.
func matchRating(filter string, rating int) bool {
	if rating == 0 {
		return false
	}
	filter = strings.TrimSpace(filter)
	if n, ok := strings.CutSuffix(filter, "+"); ok {
		min, err := strconv.Atoi(n)
		return err == nil && rating >= min
	}
	exact, err := strconv.Atoi(filter)
	return err == nil && rating == exact
}

// matchDate checks whether the photo's capture day falls inside the span
// named by the filter: a 4-digit year covers the whole year, YYYY-MM the
// whole month, YYYY-MM-DD exactly that day. A photo with no parseable
// capture date never matches.
func matchDate(filter string, m meta.Metadata) bool {
	t, ok := m.CaptureTime()
	if !ok {
		return false
	}

	switch strings.Count(filter, "-") {
	case 0: // YYYY
		want, err := time.Parse("2006", filter)
		return err == nil && t.Year() == want.Year()
	case 1: // YYYY-MM
		want, err := time.Parse("2006-01", filter)
		return err == nil && t.Year() == want.Year() && t.Month() == want.Month()
	case 2: // YYYY-MM-DD
		want, err := time.Parse("2006-01-02", filter)
		if err != nil {
			return false
		}
		y1, m1, d1 := t.Date()
		y2, m2, d2 := want.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	return false
}

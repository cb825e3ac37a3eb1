package season

import (
	"fmt"
	"strconv"
)

// FirstTrackedStartYear is the first season with shot location tracking.
// Seasons before 1996-97 legitimately return an empty shot list.
const FirstTrackedStartYear = 1996

// Season identifies an NBA season by its start year ("1999-00" starts in 1999).
type Season struct {
	StartYear int
}

// Parse validates and parses a season string in YYYY-YY form.
// The two-digit suffix must be the start year plus one.
func Parse(value string) (Season, error) {
	if len(value) != 7 || value[4] != '-' {
		return Season{}, fmt.Errorf("season %q: want YYYY-YY", value)
	}
	start, err := strconv.Atoi(value[:4])
	if err != nil {
		return Season{}, fmt.Errorf("season %q: bad start year", value)
	}
	suffix, err := strconv.Atoi(value[5:])
	if err != nil || value[5] < '0' || value[5] > '9' {
		return Season{}, fmt.Errorf("season %q: bad end year", value)
	}
	if (start+1)%100 != suffix {
		return Season{}, fmt.Errorf("season %q: end year does not follow start year", value)
	}
	return Season{StartYear: start}, nil
}

// String renders the canonical YYYY-YY form.
func (s Season) String() string {
	return fmt.Sprintf("%04d-%02d", s.StartYear, (s.StartYear+1)%100)
}

// Tracked reports whether shot location data exists for this season.
func (s Season) Tracked() bool {
	return s.StartYear >= FirstTrackedStartYear
}

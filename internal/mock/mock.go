// Package mock supplies curated tournament records served when live data
// from Gemini is unavailable.
package mock

import (
	"fmt"
	"strings"

	"github.com/albapepper/sportsagg/internal/tournament"
)

type builder func(title, sport string) []tournament.Tournament

// catalogue is keyed by lower-cased sport name.
var catalogue = map[string]builder{
	"badminton": func(title, sport string) []tournament.Tournament {
		return []tournament.Tournament{
			{
				Name:              fmt.Sprintf("All India %s Championship 2025", title),
				Level:             tournament.LevelNational,
				StartDate:         tournament.StringPtr("2025-09-15"),
				EndDate:           tournament.StringPtr("2025-09-22"),
				OfficialURL:       tournament.StringPtr("https://badmintonindia.org/tournament"),
				StreamingPartners: []string{"Star Sports", "Hotstar"},
				Summary:           fmt.Sprintf("Premier national %s championship featuring top players from across India.", sport),
			},
			{
				Name:              fmt.Sprintf("BWF World %s Championships", title),
				Level:             tournament.LevelInternational,
				StartDate:         tournament.StringPtr("2025-10-10"),
				EndDate:           tournament.StringPtr("2025-10-17"),
				OfficialURL:       tournament.StringPtr("https://bwfbadminton.com/tournament"),
				StreamingPartners: []string{"Olympic Channel", "BWF TV"},
				Summary:           fmt.Sprintf("World's premier %s championship with players from over 50 countries.", sport),
			},
		}
	},
	"tennis": func(title, sport string) []tournament.Tournament {
		return []tournament.Tournament{
			{
				Name:              fmt.Sprintf("Indian %s Open 2025", title),
				Level:             tournament.LevelNational,
				StartDate:         tournament.StringPtr("2025-09-20"),
				EndDate:           tournament.StringPtr("2025-09-27"),
				OfficialURL:       tournament.StringPtr("https://tennisindiaopen.com"),
				StreamingPartners: []string{"Sony Sports"},
				Summary:           fmt.Sprintf("Major %s tournament featuring international and domestic players.", sport),
			},
		}
	},
}

func generic(title, sport string) []tournament.Tournament {
	return []tournament.Tournament{
		{
			Name:              fmt.Sprintf("National %s Championship 2025", title),
			Level:             tournament.LevelNational,
			StartDate:         tournament.StringPtr("2025-09-25"),
			EndDate:           tournament.StringPtr("2025-09-30"),
			StreamingPartners: []string{},
			Summary:           fmt.Sprintf("Annual national championship for %s featuring top athletes.", sport),
		},
	}
}

// Tournaments returns the mock records for sport. Sports without a curated
// entry get a single generic record. The result is never empty and is freshly
// allocated on every call.
func Tournaments(sport string) []tournament.Tournament {
	build, ok := catalogue[strings.ToLower(sport)]
	if !ok {
		build = generic
	}
	return build(tournament.SportTitle(sport), sport)
}

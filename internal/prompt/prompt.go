// Package prompt builds the Gemini instruction text for a sport.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/albapepper/sportsagg/internal/tournament"
)

// DateLayout is the ISO calendar date format used in prompts and records.
const DateLayout = "2006-01-02"

const template = `You are an expert sports event aggregator assistant.
Search on your own but data has to be perfect and absolutely correct raw textual data about upcoming sports tournaments in %[1]s across multiple levels: %[2]s.

Your task:
Extract the tournament details:
- Tournament Name
- Level (one of the specified levels)
- Start Date (ISO format: YYYY-MM-DD)
- End Date (ISO format)
- Official Tournament URL
- Streaming Partners or Streaming Links (if available)
- Tournament Image URL (if available)
- A brief summary (max 50 words) describing the tournament, its significance, and scope.

Format your output strictly as a JSON array of objects with these fields.
Ensure the data is accurate, no fabricated information. If some data fields are missing, use null or empty string.

Example:
[
{
"tournament_name": "Asian Badminton Championship 2025",
"level": "International",
"start_date": "2025-09-10",
"end_date": "2025-09-18",
"official_url": "https://asianbadminton2025.org",
"streaming_partners": ["Hotstar", "YouTube"],
"tournament_image": "https://asianbadminton2025.org/banner.jpg",
"summary": "A prestigious continental championship featuring top Asian badminton players."
}
]

Give real time data in Indian time zone for today's date: %[3]s. Focus on tournaments starting from today onwards.`

// Build returns the instruction text for sport anchored to today. The date is
// formatted in today's own location, so callers pass a time already converted
// to the service zone.
func Build(sport string, today time.Time) string {
	levels := make([]string, len(tournament.Levels))
	for i, l := range tournament.Levels {
		levels[i] = string(l)
	}
	return fmt.Sprintf(template, sport, strings.Join(levels, ", "), today.Format(DateLayout))
}

package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/rosterkit-go/pkg/rosterkit/models"
)

var (
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	nonWordPattern = regexp.MustCompile(`[^\w\s]`)
)

// ParseTeamHeader extracts the season year and team name from a title cell
// such as "1977 Chicago Cubs". The team is the text after the year with
// punctuation removed. Both fields are empty when no year is present.
func ParseTeamHeader(value string) models.TeamHeader {
	text := strings.TrimSpace(value)
	if text == "" {
		return models.TeamHeader{}
	}

	year := yearPattern.FindString(text)
	if year == "" {
		return models.TeamHeader{}
	}

	rest := strings.SplitN(text, year, 2)[1]
	team := strings.TrimSpace(nonWordPattern.ReplaceAllString(strings.TrimSpace(rest), ""))
	return models.TeamHeader{Year: year, Team: team}
}

package skills

import (
	"fmt"
	"sort"
	"strings"
)

// Time-to-acquire estimates are static per category: hard skills respond to
// focused practice faster than behavioral ones.
var acquireEstimates = map[string]string{
	CategoryTechnical: "3-6 months",
	CategorySoft:      "6-12 months",
}

func estimatedTime(category string) string {
	return acquireEstimates[category]
}

var technicalSuggestions = map[string][]string{
	"python": {
		"Take Python programming courses",
		"Complete coding challenges on LeetCode",
		"Build personal projects using Python",
	},
	"sql": {
		"Complete SQL tutorials and exercises",
		"Practice with real databases",
		"Take database management courses",
	},
	"data analysis": {
		"Learn pandas and numpy libraries",
		"Complete data analysis projects",
		"Take statistics and data science courses",
	},
}

var softSuggestions = map[string][]string{
	"communication": {
		"Join public speaking clubs",
		"Take communication courses",
		"Practice presenting to groups",
	},
	"leadership": {
		"Take on leadership roles in student organizations",
		"Complete leadership training programs",
		"Mentor other students",
	},
	"teamwork": {
		"Participate in group projects",
		"Join team-based activities",
		"Collaborate on open-source projects",
	},
}

// suggestionsFor returns curated suggestions when the skill name contains a
// known key, otherwise generic ones built from the skill itself.
func suggestionsFor(skill, category string) []string {
	table := technicalSuggestions
	if category == CategorySoft {
		table = softSuggestions
	}
	low := strings.ToLower(skill)
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(low, key) {
			return table[key]
		}
	}
	return []string{
		fmt.Sprintf("Research and study %s", skill),
		fmt.Sprintf("Take courses related to %s", skill),
		fmt.Sprintf("Practice %s in real-world scenarios", skill),
	}
}

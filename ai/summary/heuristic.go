package summary

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// heuristicKeywords is the fixed keyword set the offline summary scans for.
var heuristicKeywords = []string{"ai", "code", "help", "how", "what", "learn", "app", "data", "work"}

// maxHeuristicKeywords caps how many found keywords appear in the summary.
const maxHeuristicKeywords = 3

// detailedThreshold is the average message length above which the
// communication style reads as "detailed" rather than "concise".
const detailedThreshold = 100

// HeuristicSummary composes a templated summary from message count, average
// length, and keyword presence. Pure and offline: no network, no randomness.
func HeuristicSummary(messages []string) string {
	messageCount := len(messages)
	if messageCount == 0 {
		return EmptyHistorySummary
	}

	totalLen := 0
	for _, m := range messages {
		totalLen += utf8.RuneCountInString(m)
	}
	avgLen := float64(totalLen) / float64(messageCount)

	allText := strings.ToLower(strings.Join(messages, " "))
	var found []string
	for _, kw := range heuristicKeywords {
		if strings.Contains(allText, kw) {
			found = append(found, kw)
			if len(found) == maxHeuristicKeywords {
				break
			}
		}
	}

	style := "concise"
	if avgLen > detailedThreshold {
		style = "detailed"
	}

	if len(found) > 0 {
		return fmt.Sprintf(
			"Based on %d messages, you've shown interest in topics related to %s. Your messages average %.0f characters, suggesting %s communication style. You actively engage with various topics and seek information.",
			messageCount, strings.Join(found, ", "), math.Round(avgLen), style,
		)
	}
	return fmt.Sprintf(
		"You've sent %d messages with an average length of %.0f characters. Your conversations cover various topics and you demonstrate active engagement with the AI assistant.",
		messageCount, math.Round(avgLen),
	)
}

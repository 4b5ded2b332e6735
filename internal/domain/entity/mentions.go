package entity

import (
	"regexp"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
)

var mentionPattern = regexp.MustCompile(`<@(.*?)>`)

// ReplaceUserMentions rewrites every <@ID> token in text with the
// display name resolved by lookup, or a fixed fallback when the user
// is unknown. The input is never modified; the rewrite runs once and
// is not recursive, so names containing <@...> are left alone.
func ReplaceUserMentions(text string, lookup func(slackID string) (string, bool)) string {
	return mentionPattern.ReplaceAllStringFunc(text, func(token string) string {
		id := token[2 : len(token)-1]
		if name, ok := lookup(id); ok {
			return name
		}
		return domain.MentionFallbackName
	})
}

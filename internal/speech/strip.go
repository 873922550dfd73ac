// Package speech prepares answers for text-to-speech and drives a speaker.
package speech

import (
	"regexp"
	"strings"
)

var (
	reEmoji      = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{1F000}-\x{1F02F}\x{1F0A0}-\x{1F0FF}]`)
	reDecoration = regexp.MustCompile("[•◆►▪\\x{FE0E}■□–—\\-*_#`~]")
	reRepeatedWS = regexp.MustCompile(`\s{2,}`)
	reBracketed  = regexp.MustCompile(`\[.*?\]`)
	reURL        = regexp.MustCompile(`https?://\S+`)
	reUnspoken   = regexp.MustCompile(`[^\w\sáéíóúñÁÉÍÓÚÑ.,!?;:()'-]`)
	reWS         = regexp.MustCompile(`\s+`)
)

// StripForSpeech removes emoji, list and markdown decoration, bracketed notes,
// URLs and any character a Spanish voice would not read, then collapses spaces.
func StripForSpeech(s string) string {
	if s == "" {
		return ""
	}

	out := reEmoji.ReplaceAllString(s, "")
	out = reDecoration.ReplaceAllString(out, " ")
	out = strings.TrimSpace(reRepeatedWS.ReplaceAllString(out, " "))
	out = reBracketed.ReplaceAllString(out, "")
	out = reURL.ReplaceAllString(out, "")
	out = reUnspoken.ReplaceAllString(out, " ")

	return strings.TrimSpace(reWS.ReplaceAllString(out, " "))
}

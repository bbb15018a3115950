package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// stopWords are short Turkish function words dropped during normalization.
var stopWords = map[string]struct{}{
	"ve": {}, "ile": {}, "için": {}, "bir": {}, "bu": {}, "şu": {}, "o": {},
	"de": {}, "da": {}, "ki": {}, "mi": {}, "mı": {}, "mu": {}, "mü": {},
	"ben": {}, "sen": {}, "biz": {}, "siz": {}, "onlar": {},
}

// Normalize lowercases the text, replaces every non word character with a
// space, collapses whitespace and removes stop words. The result is stable:
// normalizing an already normalized string returns it unchanged.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	kept := words[:0]
	for _, w := range words {
		if _, ok := stopWords[w]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Tokens returns the unique tokens of a normalized string.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	if normalized == "" {
		return out
	}
	for _, t := range strings.Split(normalized, " ") {
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized text
// as whole words. Works for multi-word phrases: "makine öğrenmesi" matches
// " ... makine öğrenmesi ..." but not " ... makine öğrenmesine ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// word boundaries via space padding
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

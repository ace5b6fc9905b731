package catalog

import "strings"

const (
	hashMark    = "#"
	mentionMark = "@"
)

// NormalizeHashtag turns a raw token from a category file into a post-ready
// hashtag. Mention tokens keep their leading "@" and never get a "#".
// Stray "#" characters are dropped from both kinds so a token carries at most
// one marker.
func NormalizeHashtag(raw string) string {
	tag := strings.TrimSpace(raw)
	if strings.HasPrefix(tag, mentionMark) {
		return strings.TrimSpace(strings.ReplaceAll(tag, hashMark, ""))
	}
	return hashMark + strings.TrimSpace(strings.ReplaceAll(tag, hashMark, ""))
}

// reformat is applied to every selected token right before joining.
func reformat(tag string) string {
	if strings.HasPrefix(tag, mentionMark) {
		return tag
	}
	return hashMark + strings.ReplaceAll(tag, hashMark, "")
}

// isEmptyTag reports a token that is only a marker.
func isEmptyTag(tag string) bool {
	return tag == hashMark || tag == mentionMark || tag == ""
}

// dedupe drops repeated strings, keeping the first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

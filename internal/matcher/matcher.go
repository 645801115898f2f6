// Package matcher filters lines of in-memory text by substring containment
package matcher

import (
	"iter"
	"slices"
	"strings"
)

// SearchFunc - common signature of both search modes
type SearchFunc func(query, content string) iter.Seq[string]

// Lines yields the lines of content split by '\n'. A trailing newline doesn't produce
// an empty last line, a trailing '\r' is dropped from every line.
func Lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := content
		for rest != "" {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				rest = ""
			}
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// Search yields every line containing query, case-sensitive.
func Search(query, content string) iter.Seq[string] {
	return filter(Lines(content), func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive yields every line containing query when both are lower-cased.
// Lines are yielded in their original casing.
func SearchCaseInsensitive(query, content string) iter.Seq[string] {
	query = strings.ToLower(query)
	return filter(Lines(content), func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// Select returns Search when caseSensitive is set, SearchCaseInsensitive otherwise
func Select(caseSensitive bool) SearchFunc {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}

// Collect materializes a search result, an empty result is a non-nil empty slice
func Collect(seq iter.Seq[string]) []string {
	res := slices.Collect(seq)
	if res == nil {
		return []string{}
	}
	return res
}

func filter(lines iter.Seq[string], keep func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if keep(line) && !yield(line) {
				return
			}
		}
	}
}

/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"strings"
)

// MaxSuggestions is the number of suggestions printed by DidYouMean.
const MaxSuggestions = 5

// OrList transforms a string array like ["A", "B", "C"] into `A, B, or C`. If quoted is true,
// return `"A", "B", or "C"`. If a positive integer is provided in limit, only transforms up to
// number of n items.
func OrList(items []string, limit int, quoted bool) string {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			if len(items) > 2 {
				b.WriteString(", ")
			} else {
				b.WriteString(" ")
			}
			if i == len(items)-1 {
				b.WriteString("or ")
			}
		}
		if quoted {
			b.WriteByte('"')
			b.WriteString(item)
			b.WriteByte('"')
		} else {
			b.WriteString(item)
		}
	}
	return b.String()
}

// DidYouMean returns ` Did you mean "A" or "B"?` with the options that are similar to input. It
// returns an empty string if there's none.
func DidYouMean(input string, options []string) string {
	suggestions := SuggestionList(input, options)
	if len(suggestions) == 0 {
		return ""
	}
	return " Did you mean " + OrList(suggestions, MaxSuggestions, true) + "?"
}

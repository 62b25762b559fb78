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
	"sort"
	"strings"
)

// SuggestionList given an invalid input string and a list of valid options, returns a filtered
// list of valid options sorted based on their similarity with the input. Options with the same
// distance keep their relative order.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	type candidate struct {
		option   string
		distance int
	}

	var (
		candidates     []candidate
		inputThreshold = len(input) / 2
	)
	for _, option := range options {
		threshold := inputThreshold
		if t := len(option) / 2; t > threshold {
			threshold = t
		}
		if threshold < 1 {
			threshold = 1
		}
		if distance := lexicalDistance(input, option); distance <= threshold {
			candidates = append(candidates, candidate{option, distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.option
	}
	return result
}

// lexicalDistance computes the optimal string alignment distance between a and b: the minimum
// number of insertions, deletions, substitutions and swaps of two adjacent characters to turn a
// into b. Strings that differ only in case have distance 1.
func lexicalDistance(aStr string, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)
	if a == b {
		return 1
	}

	// Three rows of the distance matrix are enough since a swap looks back two rows.
	prevPrev := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := minInt(prev[j]+1, current[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d = minInt(d, prevPrev[j-2]+cost)
			}
			current[j] = d
		}
		prevPrev, prev, current = prev, current, prevPrev
	}

	return prev[len(b)]
}

func minInt(first int, rest ...int) int {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}

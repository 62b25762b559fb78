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

package configuration

import (
	"sync"
)

// repeatableConfiguration is implemented by the entries of the lists that are de-duplicated by
// cleanRepeatable.
type repeatableConfiguration interface {
	repeatableKey() (key string, repeatable bool)
}

// keyBufferPool recycles the buffers for collecting the keys seen by cleanRepeatable.
var keyBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]string, 0, 8)
		return &buf
	},
}

func borrowKeyBuffer(size int) *[]string {
	buf := keyBufferPool.Get().(*[]string)
	if cap(*buf) < size {
		*buf = make([]string, 0, size)
	}
	return buf
}

func returnKeyBuffer(buf *[]string) {
	keys := *buf
	for i := range keys {
		keys[i] = ""
	}
	*buf = keys[:0]
	keyBufferPool.Put(buf)
}

// cleanRepeatable removes from list every non-repeatable entry whose key was seen on an earlier
// non-repeatable entry. Entries without a key are never removed. The result is returned and
// *cleaned is set so the next call is a no-op until the list changes.
func cleanRepeatable[T repeatableConfiguration](list []T, cleaned *bool) []T {
	if *cleaned {
		return list
	}

	count := len(list)
	if count <= 4 && allRepeatable(list) {
		*cleaned = true
		return list
	}

	nonRepeatable := 0
	for _, entry := range list {
		if key, repeatable := entry.repeatableKey(); !repeatable && len(key) > 0 {
			nonRepeatable++
		}
	}

	if nonRepeatable > 1 {
		buf := borrowKeyBuffer(nonRepeatable)
		seen := *buf

		i := 0
		for i < len(list) {
			key, repeatable := list[i].repeatableKey()
			if repeatable || len(key) == 0 {
				i++
				continue
			}
			if containsKey(seen, key) {
				copy(list[i:], list[i+1:])
				var zero T
				list[len(list)-1] = zero
				list = list[:len(list)-1]
				continue
			}
			seen = append(seen, key)
			i++
		}

		*buf = seen
		returnKeyBuffer(buf)
	}

	*cleaned = true
	return list
}

func allRepeatable[T repeatableConfiguration](list []T) bool {
	for _, entry := range list {
		if _, repeatable := entry.repeatableKey(); !repeatable {
			return false
		}
	}
	return true
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

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

package graphql

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// IsValidName returns true if name matches /[_A-Za-z][_0-9A-Za-z]*/.
//
// Reference: https://spec.graphql.org/October2021/#Name
func IsValidName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_',
			c >= 'A' && c <= 'Z',
			c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ValidateName returns an ErrKindInvalidArgument error when name is not a valid GraphQL name.
func ValidateName(name string) error {
	if len(name) == 0 {
		return NewError("Expected a non-empty name.", ErrKindInvalidArgument)
	}
	if !IsValidName(name) {
		return NewError(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "`+name+`" does not.`,
			ErrKindInvalidArgument)
	}
	return nil
}

// namePoolSize bounds the number of distinct names kept by the intern pool.
const namePoolSize = 4096

var namePool = newNamePool()

func newNamePool() *lru.Cache {
	cache, err := lru.New(namePoolSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// InternName returns a canonical copy of name. Configurations built from the same schema share
// the name strings so names sliced out of large SDL documents don't pin the document in memory.
func InternName(name string) string {
	if v, ok := namePool.Get(name); ok {
		return v.(string)
	}
	interned := strings.Clone(name)
	namePool.Add(interned, interned)
	return interned
}

// EnsureName validates name and returns its interned copy.
func EnsureName(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return InternName(name), nil
}

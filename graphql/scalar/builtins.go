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

package scalar

// builtins lists every scalar provided by this package in the order of declaration.
var builtins = []LeafType{
	Int(),
	Float(),
	String(),
	Boolean(),
	ID(),
	Short(),
	Long(),
	Byte(),
	UUID(),
	DateTime(),
	Date(),
	URL(),
}

var builtinsByName = func() map[string]LeafType {
	m := make(map[string]LeafType, len(builtins))
	for _, leaf := range builtins {
		m[leaf.Name()] = leaf
	}
	return m
}()

// Builtins returns the scalars provided by this package. The returned slice is a copy.
func Builtins() []LeafType {
	result := make([]LeafType, len(builtins))
	copy(result, builtins)
	return result
}

// Lookup returns the scalar provided by this package with the given name.
func Lookup(name string) (LeafType, bool) {
	leaf, ok := builtinsByName[name]
	return leaf, ok
}

// IsSpecifiedScalar returns true if the name is one of the scalars defined by GraphQL (Int, Float,
// String, Boolean and ID).
func IsSpecifiedScalar(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}

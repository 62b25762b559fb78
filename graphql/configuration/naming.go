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
	"strings"

	"github.com/iancoleman/strcase"
)

// MemberFieldName infers the GraphQL field name for a Go member: a "Get" prefix followed by an
// upper case letter is stripped and the rest is converted to lowerCamelCase.
//
//	"Name"        -> "name"
//	"GetUserByID" -> "userByID"
//	"Getter"      -> "getter"
func MemberFieldName(memberName string) string {
	if strings.HasPrefix(memberName, "Get") && len(memberName) > 3 {
		if c := memberName[3]; c >= 'A' && c <= 'Z' {
			memberName = memberName[3:]
		}
	}
	return lowerCamel(memberName)
}

// ArgumentName infers the GraphQL argument name for a method parameter.
func ArgumentName(paramName string) string {
	return lowerCamel(paramName)
}

// EnumValueName infers the GraphQL enum value name from the name of a Go value (e.g., "DarkRed"
// becomes "DARK_RED").
func EnumValueName(runtimeName string) string {
	return strcase.ToScreamingSnake(runtimeName)
}

// lowerCamel lower-cases the leading upper case run of name except for the letter that starts
// the next word ("URLPath" becomes "urlPath"). Names with separators are delegated to strcase.
func lowerCamel(name string) string {
	if strings.ContainsAny(name, "_- .") {
		return strcase.ToLowerCamel(name)
	}

	n := 0
	for n < len(name) && name[n] >= 'A' && name[n] <= 'Z' {
		n++
	}
	switch {
	case n == 0:
		return name
	case n == 1 || n == len(name):
		return strings.ToLower(name[:n]) + name[n:]
	default:
		// Keep the last upper case letter as the start of the next word.
		return strings.ToLower(name[:n-1]) + name[n-1:]
	}
}

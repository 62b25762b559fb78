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
	"fmt"

	"github.com/botobag/graphconf/graphql"
)

// ErrConfigurationSealed is returned when modifying a configuration that has been sealed.
var ErrConfigurationSealed error = &graphql.Error{
	Message: "The configuration is sealed and can no longer be modified.",
	Kind:    graphql.ErrKindSchema,
}

func newDuplicateError(op graphql.Op, coordinate graphql.SchemaCoordinate, what string) error {
	return graphql.NewError(fmt.Sprintf("%s %s is already defined.", what, coordinate),
		op, coordinate, graphql.ErrKindSchema)
}

func newNilError(op graphql.Op, what string) error {
	return graphql.NewInvalidArgumentError(op, "%s must not be nil.", what)
}

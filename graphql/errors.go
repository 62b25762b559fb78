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
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// NewCoercionError creates an error for a leaf value that cannot be coerced into or out of its
// runtime representation. The error has kind ErrKindCoercion.
func NewCoercionError(format string, a ...interface{}) error {
	return NewError(fmt.Sprintf(format, a...), ErrKindCoercion)
}

// NewInvalidArgumentError reports a malformed argument given to a constructor or a setter.
func NewInvalidArgumentError(op Op, format string, a ...interface{}) error {
	return NewError(fmt.Sprintf(format, a...), op, ErrKindInvalidArgument)
}

// IsErrKind returns true if err is a graphql.Error (or wraps one) with the given kind.
func IsErrKind(err error, kind ErrKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// ErrorFromGQLError converts an error reported by the SDL parser into a syntax error.
func ErrorFromGQLError(err *gqlerror.Error) *Error {
	locations := make([]ErrorLocation, 0, len(err.Locations))
	for _, location := range err.Locations {
		locations = append(locations, ErrorLocation{
			Line:   uint(location.Line),
			Column: uint(location.Column),
		})
	}

	var extensions ErrorExtensions
	if len(err.Extensions) > 0 {
		extensions = make(ErrorExtensions, len(err.Extensions))
		for k, v := range err.Extensions {
			extensions[k] = v
		}
	}

	e := &Error{
		Message:    err.Message,
		Locations:  locations,
		Extensions: extensions,
		Err:        err.Err,
		Kind:       ErrKindSyntax,
	}
	if len(locations) == 0 {
		e.Locations = nil
	}
	return e
}

// ErrorsFromGQLErrors converts the error (which may be a single *gqlerror.Error or a gqlerror.List)
// reported by the SDL parser into Errors.
func ErrorsFromGQLErrors(err error) Errors {
	var errs Errors
	if err == nil {
		return errs
	}

	var list gqlerror.List
	if errors.As(err, &list) {
		for _, e := range list {
			errs.Errors = append(errs.Errors, ErrorFromGQLError(e))
		}
		return errs
	}

	var single *gqlerror.Error
	if errors.As(err, &single) {
		errs.Errors = append(errs.Errors, ErrorFromGQLError(single))
		return errs
	}

	errs.Append(err)
	return errs
}

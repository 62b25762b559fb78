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

package result

import (
	"github.com/botobag/graphconf/graphql"
)

func validateErrors(op graphql.Op, errs []interface{}) error {
	if len(errs) == 0 {
		return graphql.NewInvalidArgumentError(op, "The result must contain at least one error.")
	}
	for _, err := range errs {
		if err == nil {
			return graphql.NewInvalidArgumentError(op, "The result must not contain nil errors.")
		}
	}
	return nil
}

// FieldResult is either the value of a field or the errors that prevent the value from being
// produced. The zero value is a successful result with the zero value of T.
type FieldResult[T any] struct {
	value  T
	errors []interface{}
}

// NewFieldResult creates a successful result.
func NewFieldResult[T any](value T) FieldResult[T] {
	return FieldResult[T]{value: value}
}

// NewFieldResultError creates an error result. err must not be nil.
func NewFieldResultError[T any](err interface{}) (FieldResult[T], error) {
	if err == nil {
		return FieldResult[T]{}, graphql.NewInvalidArgumentError("result.NewFieldResultError",
			"The error must not be nil.")
	}
	return FieldResult[T]{errors: []interface{}{err}}, nil
}

// NewFieldResultErrors creates an error result. errs must contain at least one non-nil error.
func NewFieldResultErrors[T any](errs []interface{}) (FieldResult[T], error) {
	if err := validateErrors("result.NewFieldResultErrors", errs); err != nil {
		return FieldResult[T]{}, err
	}
	return FieldResult[T]{errors: append([]interface{}(nil), errs...)}, nil
}

// Value returns the value. It is the zero value of T for error results.
func (r FieldResult[T]) Value() T {
	return r.value
}

// Errors returns the errors. It is nil for successful results.
func (r FieldResult[T]) Errors() []interface{} {
	return r.errors
}

// IsSuccess returns true if the result carries a value.
func (r FieldResult[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

// IsError returns true if the result carries errors.
func (r FieldResult[T]) IsError() bool {
	return len(r.errors) > 0
}

// Interface returns the value for successful results and the errors otherwise.
func (r FieldResult[T]) Interface() interface{} {
	if r.IsError() {
		return r.errors
	}
	return r.value
}

// MutationResult is either the result of a mutation or the errors raised by it.
type MutationResult[T any] struct {
	result T
	errors []interface{}
}

// NewMutationResult creates a successful mutation result.
func NewMutationResult[T any](result T) MutationResult[T] {
	return MutationResult[T]{result: result}
}

// NewMutationResultError creates an error mutation result. err must not be nil.
func NewMutationResultError[T any](err interface{}) (MutationResult[T], error) {
	if err == nil {
		return MutationResult[T]{}, graphql.NewInvalidArgumentError("result.NewMutationResultError",
			"The error must not be nil.")
	}
	return MutationResult[T]{errors: []interface{}{err}}, nil
}

// NewMutationResultErrors creates an error mutation result. errs must contain at least one non-nil
// error.
func NewMutationResultErrors[T any](errs []interface{}) (MutationResult[T], error) {
	if err := validateErrors("result.NewMutationResultErrors", errs); err != nil {
		return MutationResult[T]{}, err
	}
	return MutationResult[T]{errors: append([]interface{}(nil), errs...)}, nil
}

// Result returns the mutation result. It is the zero value of T for error results.
func (r MutationResult[T]) Result() T {
	return r.result
}

// Errors returns the errors. It is nil for successful results.
func (r MutationResult[T]) Errors() []interface{} {
	return r.errors
}

// Value returns the result when successful and the errors otherwise.
func (r MutationResult[T]) Value() interface{} {
	if r.IsError() {
		return r.errors
	}
	return r.result
}

// IsSuccess returns true if the mutation succeeded.
func (r MutationResult[T]) IsSuccess() bool {
	return len(r.errors) == 0
}

// IsError returns true if the mutation raised errors.
func (r MutationResult[T]) IsError() bool {
	return len(r.errors) > 0
}

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
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// Op describes an operation, usually as the package and method, such as "registry.Complete".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther           ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindCoercion                       // Failed to coerce input or output values for a leaf type.
	ErrKindSyntax                         // Represent a syntax error in the GraphQL source.
	ErrKindSchema                         // Represent an error found while completing type configurations.
	ErrKindInvalidArgument                // Malformed input given to a constructor or a setter.
	ErrKindInternal                       // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindSchema:
		return "schema error"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorExtensions provides an additional entry to a GraphQL error with key "extensions". It is
// useful for attaching vendor-specific error data (such as error code).
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation contains a line number and a column number to point out the beginning of an
// associated syntax element.
type ErrorLocation struct {
	// Both line and column are positive numbers starting from 1
	Line   uint
	Column uint
}

// ErrorLocationOf formats a source position reported by the SDL parser into an ErrorLocation.
func ErrorLocationOf(pos *ast.Position) ErrorLocation {
	if pos == nil {
		return ErrorLocation{}
	}
	return ErrorLocation{
		Line:   uint(pos.Line),
		Column: uint(pos.Column),
	}
}

// ErrorWithLocations indicates an error that contains locations. If "locations" is not given in the
// arguments to NewError, NewError will retrieve one from the underlying error (if provided) that
// implements this interface.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// SchemaCoordinate names a schema member such as "User", "User.name", "User.friends(first:)" or
// "@cacheControl".
//
// Reference: https://github.com/graphql/graphql-wg/blob/main/rfcs/SchemaCoordinates.md
type SchemaCoordinate string

// TypeCoordinate returns the coordinate of a named type.
func TypeCoordinate(typeName string) SchemaCoordinate {
	return SchemaCoordinate(typeName)
}

// FieldCoordinate returns the coordinate of a field (or an enum value or an input field).
func FieldCoordinate(typeName string, fieldName string) SchemaCoordinate {
	return SchemaCoordinate(typeName + "." + fieldName)
}

// ArgumentCoordinate returns the coordinate of a field argument.
func ArgumentCoordinate(typeName string, fieldName string, argName string) SchemaCoordinate {
	return SchemaCoordinate(typeName + "." + fieldName + "(" + argName + ":)")
}

// DirectiveCoordinate returns the coordinate of a directive.
func DirectiveCoordinate(directiveName string) SchemaCoordinate {
	return SchemaCoordinate("@" + directiveName)
}

// Empty returns true if the coordinate doesn't point to anything.
func (coordinate SchemaCoordinate) Empty() bool {
	return len(coordinate) == 0
}

// ErrorWithCoordinate indicates an error that is associated with a schema member. If a
// SchemaCoordinate is not given in the arguments to NewError, NewError will retrieve the one from
// the underlying error (if provided) that implements this interface.
type ErrorWithCoordinate interface {
	Coordinate() SchemaCoordinate
}

// ErrorWithExtensions indicates an error that contains extensions data. If "extensions" is not
// given in the arguments to NewError, NewError will retrieve the one from the underlying error (if
// provided) that implements this interface.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// An Error describes an error found while building type configurations, completing them into a
// type system or coercing leaf values. It can be serialized to JSON in the format of a GraphQL
// error.
//
// The Error is designed to contain the fields defined in the specification [0]. Furthermore, you
// can build an Error by wrapping an error value. Information (if unspecified in the arguments to
// NewError) in the error value will be propagated to the newly created Error.
//
// It also includes Op and ErrKind which will show when printing the error value. This makes it
// helpful for programmers.
//
// [0] https://spec.graphql.org/October2021/#sec-Errors
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Locations is an array of { line, column } locations within the source SDL document which
	// correspond to this error.
	Locations []ErrorLocation

	// Coordinate identifies the schema member that experienced the error.
	Coordinate SchemaCoordinate

	// Extensions contains data to be added to in the error response
	Extensions ErrorExtensions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg

		case SchemaCoordinate:
			e.Coordinate = arg

		case ErrorExtensions:
			e.Extensions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate locations, coordinate or extensions from underlying error when one is not provided
	// in argument.
	prev := e.Err
	if prev != nil {
		if len(e.Locations) == 0 {
			switch errWithLocations := prev.(type) {
			case ErrorWithLocations:
				e.Locations = errWithLocations.Locations()
			case *Error:
				if len(errWithLocations.Locations) > 0 {
					e.Locations = make([]ErrorLocation, len(errWithLocations.Locations))
					copy(e.Locations, errWithLocations.Locations)
				}
			}
		}

		if e.Coordinate.Empty() {
			switch errWithCoordinate := prev.(type) {
			case ErrorWithCoordinate:
				e.Coordinate = errWithCoordinate.Coordinate()
			case *Error:
				e.Coordinate = errWithCoordinate.Coordinate
			}
		}

		if e.Extensions == nil {
			switch errWithExtensions := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = errWithExtensions.Extensions()
			case *Error:
				e.Extensions = errWithExtensions.Extensions
			}
		}

		// Pull kind from underlying error.
		if e.Kind == ErrKindOther {
			if prev, ok := prev.(*Error); ok {
				e.Kind = prev.Kind
			}
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours. Suppress duplications so the message won't contain
	// the same kind, location or coordinate twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Locations != nil {
		// Don't print location if the next error already did.
		if nextErr == nil || !reflect.DeepEqual(nextErr.Locations, e.Locations) {
			if b.Len() == initialLen {
				b.WriteString("At ")
			} else {
				b.WriteString(" at ")
			}
			b.WriteString(fmt.Sprintf("%+v", e.Locations))
		}
	}

	if !e.Coordinate.Empty() {
		if nextErr == nil || nextErr.Coordinate != e.Coordinate {
			if b.Len() == initialLen {
				b.WriteString("On ")
			} else {
				b.WriteString(" on ")
			}
			b.WriteString(string(e.Coordinate))
		}
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if len(e.Extensions) > 0 {
		// Don't print extensions if the next error already did.
		if nextErr == nil || !reflect.DeepEqual(nextErr.Extensions, e.Extensions) {
			pad(" (additional info: ")
			b.WriteString(fmt.Sprintf("%v)", e.Extensions))
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	numLocations := len(err.Locations)
	if numLocations > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i := range err.Locations {
			location := &err.Locations[i]
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(location.Column)
			stream.WriteObjectEnd()
			if i != numLocations-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	// Coordinate is not part of the response format; it is reported in extensions.
	numExtensions := len(err.Extensions)
	if numExtensions > 0 || !err.Coordinate.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		if !err.Coordinate.Empty() {
			stream.WriteObjectField("coordinate")
			stream.WriteString(string(err.Coordinate))
			if numExtensions > 0 {
				stream.WriteMore()
			}
		}
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			numExtensions--
			if numExtensions > 0 {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// Errors wraps a list of Error. Intentionally wrapped in a struct instead of a simple alias to
// []*Error (i.e., "type Errors []*Error") to enforce error checks to use errs.HaveOccurred()
// instead of (errs != nil) (errs may be an empty array which should be treat as no error).
type Errors struct {
	Errors []*Error
}

// ErrorsOf is an utility function to constructs an Errors value. It takes arguments in one of the
// form otherwise it panics:
//
//  1. An array of *graphql.Error's; or
//  2. Arguments that can be taken by NewError to construct an Error value; That is, a string
//     specified the error message followed by other error context (e.g., locations).
//  3. An array of *graphql.Error's followed by arguments that can be taken by NewError.
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)

		case string:
			errs.Emplace(arg, args[(i+1):]...)
			return errs

		default:
			panic("Errors.Emplace: bad call")
		}
	}
	return errs
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// Emplace constructs an Error from arguments and append to the errs. It updates the list in the
// receiving Errors object (note about the pointer receiver). Note that it would panic if
// unsupported argument is supplied in args.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends list of Error's to the end of the Errors. Errors that are not a *graphql.Error are
// wrapped into one. The update is occurred in-place to the given Errors.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		if err == nil {
			continue
		}
		graphqlErr, ok := err.(*Error)
		if !ok {
			graphqlErr = NewError(err.Error(), err).(*Error)
		}
		errs.Errors = append(errs.Errors, graphqlErr)
	}
}

// AppendErrors takes a list of Errors's and pulls every Error in each Errors to append to "errs".
// The update is occurred in-place to the given Errors.
func (errs *Errors) AppendErrors(e ...Errors) {
	for _, err := range e {
		errs.Errors = append(errs.Errors, err.Errors...)
	}
}

// HaveOccurred returns true if some errors exist. Use this instead of relying on "errs != nil" for
// checking existence of error because errs may be an empty array.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// Error implements Go's error interface so an Errors can be returned where an error is expected.
func (errs Errors) Error() string {
	switch len(errs.Errors) {
	case 0:
		return "no errors"
	case 1:
		return errs.Errors[0].Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d errors occurred:", len(errs.Errors)))
	for _, err := range errs.Errors {
		b.WriteString("\n* ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// MarshalJSON serializes the list as a JSON array of GraphQL errors.
func (errs Errors) MarshalJSON() ([]byte, error) {
	if errs.Errors == nil {
		return []byte("[]"), nil
	}
	return jsoniter.Marshal(errs.Errors)
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}

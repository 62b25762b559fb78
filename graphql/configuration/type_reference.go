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
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// TypeContext specifies whether a type reference is used in input or output position.
type TypeContext uint8

// Enumeration of TypeContext
const (
	TypeContextNone TypeContext = iota
	TypeContextInput
	TypeContextOutput
)

// String implements fmt.Stringer.
func (context TypeContext) String() string {
	switch context {
	case TypeContextInput:
		return "Input"
	case TypeContextOutput:
		return "Output"
	}
	return "None"
}

// TypeReference refers to a type that may not have been completed.
type TypeReference interface {
	// String returns a textual representation of the reference.
	String() string

	// TypeName returns the name of the referenced named type or an empty string if the name is
	// unknown until the reference is resolved.
	TypeName() string

	// Equal returns true if other refers to the same type in the same context.
	Equal(other TypeReference) bool
}

// SyntaxTypeReference refers to a type with the GraphQL type syntax (e.g., "[String!]!").
type SyntaxTypeReference struct {
	Type    *ast.Type
	Context TypeContext
}

var _ TypeReference = SyntaxTypeReference{}

// NamedSyntaxType returns a reference to the nullable named type.
func NamedSyntaxType(name string) SyntaxTypeReference {
	return SyntaxTypeReference{Type: ast.NamedType(name, nil)}
}

// NonNullSyntaxType returns a reference to the non-null named type.
func NonNullSyntaxType(name string) SyntaxTypeReference {
	return SyntaxTypeReference{Type: ast.NonNullNamedType(name, nil)}
}

// ListSyntaxType returns a reference to the nullable list of elem.
func ListSyntaxType(elem SyntaxTypeReference) SyntaxTypeReference {
	return SyntaxTypeReference{
		Type:    ast.ListType(elem.Type, nil),
		Context: elem.Context,
	}
}

// NonNull returns the non-null variant of the reference.
func (ref SyntaxTypeReference) NonNull() SyntaxTypeReference {
	if ref.Type == nil || ref.Type.NonNull {
		return ref
	}
	t := *ref.Type
	t.NonNull = true
	return SyntaxTypeReference{Type: &t, Context: ref.Context}
}

// WithContext returns a copy of the reference with context.
func (ref SyntaxTypeReference) WithContext(context TypeContext) SyntaxTypeReference {
	ref.Context = context
	return ref
}

// String implements TypeReference.
func (ref SyntaxTypeReference) String() string {
	if ref.Type == nil {
		return "<nil>"
	}
	return ref.Type.String()
}

// TypeName implements TypeReference.
func (ref SyntaxTypeReference) TypeName() string {
	if ref.Type == nil {
		return ""
	}
	return ref.Type.Name()
}

// Equal implements TypeReference.
func (ref SyntaxTypeReference) Equal(other TypeReference) bool {
	var o SyntaxTypeReference
	switch other := other.(type) {
	case SyntaxTypeReference:
		o = other
	case *SyntaxTypeReference:
		if other == nil {
			return false
		}
		o = *other
	default:
		return false
	}
	return ref.Context == o.Context && ref.String() == o.String()
}

// RuntimeTypeReference refers to a type by the Go type bound to it.
type RuntimeTypeReference struct {
	Type    reflect.Type
	Context TypeContext
}

var _ TypeReference = RuntimeTypeReference{}

// RuntimeType returns a reference to the GraphQL type bound to t.
func RuntimeType(t reflect.Type, context TypeContext) RuntimeTypeReference {
	return RuntimeTypeReference{Type: t, Context: context}
}

// String implements TypeReference.
func (ref RuntimeTypeReference) String() string {
	if ref.Type == nil {
		return "<nil>"
	}
	return ref.Type.String()
}

// TypeName implements TypeReference. The name of runtime type reference is unknown until it is
// resolved.
func (ref RuntimeTypeReference) TypeName() string {
	return ""
}

// Equal implements TypeReference.
func (ref RuntimeTypeReference) Equal(other TypeReference) bool {
	var o RuntimeTypeReference
	switch other := other.(type) {
	case RuntimeTypeReference:
		o = other
	case *RuntimeTypeReference:
		if other == nil {
			return false
		}
		o = *other
	default:
		return false
	}
	return ref.Context == o.Context && ref.Type == o.Type
}

func containsTypeReference(refs []TypeReference, ref TypeReference) bool {
	for _, r := range refs {
		if r.Equal(ref) {
			return true
		}
	}
	return false
}

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
	"reflect"

	"github.com/botobag/graphconf/graphql"
)

// MemberKind distinguishes struct fields from methods.
type MemberKind uint8

// Enumeration of MemberKind
const (
	MemberField MemberKind = iota
	MemberMethod
)

// ParameterInfo describes a parameter of a method member.
type ParameterInfo struct {
	// Name of the parameter
	Name string

	// Type of the parameter
	Type reflect.Type

	// IsParent is set if the parameter receives the parent object of the resolved field.
	IsParent bool
}

// MemberInfo describes the Go struct field or method a GraphQL field is bound to.
type MemberInfo struct {
	// Name of the member
	Name string

	// Kind of the member
	Kind MemberKind

	// DeclaringType is the type that declares the member.
	DeclaringType reflect.Type

	// Type of the struct field or the first result type of the method (nil if the method has no
	// result)
	Type reflect.Type

	// Parameters of the method (excluding the receiver); always empty for struct fields
	Parameters []ParameterInfo
}

// FieldMember describes the struct field with the given name in t which must be a struct or a
// pointer to struct.
func FieldMember(t reflect.Type, name string) (*MemberInfo, error) {
	const op graphql.Op = "configuration.FieldMember"
	if t == nil {
		return nil, newNilError(op, "type")
	}

	structType := t
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, graphql.NewInvalidArgumentError(op, "%s is not a struct type.", t)
	}

	field, exists := structType.FieldByName(name)
	if !exists {
		return nil, graphql.NewInvalidArgumentError(op, "%s has no field %q.", t, name)
	}

	return &MemberInfo{
		Name:          field.Name,
		Kind:          MemberField,
		DeclaringType: t,
		Type:          field.Type,
	}, nil
}

// MethodMember describes the method with the given name in the method set of t. params annotates
// the parameters in order. Types left nil in params are filled from the method signature. If params
// is empty, parameters are named "arg0", "arg1" and so on.
func MethodMember(t reflect.Type, name string, params ...ParameterInfo) (*MemberInfo, error) {
	const op graphql.Op = "configuration.MethodMember"
	if t == nil {
		return nil, newNilError(op, "type")
	}

	method, exists := t.MethodByName(name)
	if !exists {
		return nil, graphql.NewInvalidArgumentError(op, "%s has no method %q.", t, name)
	}

	// Method from the method set of a non-interface type takes the receiver as its first input.
	funcType := method.Type
	firstParam := 0
	if t.Kind() != reflect.Interface {
		firstParam = 1
	}
	numParams := funcType.NumIn() - firstParam

	if len(params) > 0 && len(params) != numParams {
		return nil, graphql.NewInvalidArgumentError(op, "method %s.%s takes %d parameters but %d are given.",
			t, name, numParams, len(params))
	}

	member := &MemberInfo{
		Name:          method.Name,
		Kind:          MemberMethod,
		DeclaringType: t,
	}
	if funcType.NumOut() > 0 {
		member.Type = funcType.Out(0)
	}

	if numParams > 0 {
		member.Parameters = make([]ParameterInfo, numParams)
		for i := range member.Parameters {
			param := ParameterInfo{Name: fmt.Sprintf("arg%d", i)}
			if len(params) > 0 {
				param = params[i]
			}
			if param.Type == nil {
				param.Type = funcType.In(i + firstParam)
			}
			member.Parameters[i] = param
		}
	}

	return member, nil
}

// ParentParameter returns the first parameter annotated as parent or nil if there's none.
func (member *MemberInfo) ParentParameter() *ParameterInfo {
	if member == nil || member.Kind != MemberMethod {
		return nil
	}
	for i := range member.Parameters {
		if member.Parameters[i].IsParent {
			return &member.Parameters[i]
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (member *MemberInfo) String() string {
	if member == nil {
		return "<nil>"
	}
	if member.Kind == MemberMethod {
		return fmt.Sprintf("%s.%s()", member.DeclaringType, member.Name)
	}
	return fmt.Sprintf("%s.%s", member.DeclaringType, member.Name)
}

// isCompatibleParent returns true if the parent type is assignable to or from the runtime type.
// Pointers are compared by their element types so User and *User bind the same object. A nil
// runtime type accepts any parent.
func isCompatibleParent(parent reflect.Type, runtimeType reflect.Type) bool {
	if runtimeType == nil || parent == nil {
		return true
	}
	parent, runtimeType = indirectType(parent), indirectType(runtimeType)
	return runtimeType.AssignableTo(parent) || parent.AssignableTo(runtimeType)
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

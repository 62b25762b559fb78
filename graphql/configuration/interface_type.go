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

	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
)

// InterfaceTypeConfiguration configures an interface type or an interface type extension.
type InterfaceTypeConfiguration struct {
	TypeSystemConfiguration

	// Fields of the interface
	Fields []*InterfaceFieldConfiguration

	// Interfaces implemented by the interface
	Interfaces []TypeReference

	// RuntimeType is the Go type (usually an interface type) of the values.
	RuntimeType reflect.Type

	// KnownRuntimeTypes are further Go types that represent the interface.
	KnownRuntimeTypes []reflect.Type

	// FieldIgnores lists the members and the fields that must not become fields of the type.
	FieldIgnores []*ObjectFieldBinding

	// FieldBindingType specifies whether fields are inferred from RuntimeType.
	FieldBindingType BindingBehavior

	// IsExtension is set if the configuration extends an existing interface type.
	IsExtension bool

	// ResolveAbstractType returns the name of the object type of value.
	ResolveAbstractType func(value interface{}) (string, error)
}

var _ TypeConfiguration = (*InterfaceTypeConfiguration)(nil)

// NewInterfaceType creates an interface type configuration.
func NewInterfaceType(name string) (*InterfaceTypeConfiguration, error) {
	t := &InterfaceTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind implements TypeConfiguration.
func (*InterfaceTypeConfiguration) Kind() TypeKind {
	return TypeKindInterface
}

// Extension implements TypeConfiguration.
func (t *InterfaceTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration.
func (t *InterfaceTypeConfiguration) Members() []Configuration {
	if len(t.Fields) == 0 {
		return nil
	}
	members := make([]Configuration, len(t.Fields))
	for i, field := range t.Fields {
		members[i] = field
	}
	return members
}

// Seal implements Configuration.
func (t *InterfaceTypeConfiguration) Seal() {
	for _, field := range t.Fields {
		field.Seal()
	}
	t.TypeSystemConfiguration.Seal()
}

// Field finds the field with the given name.
func (t *InterfaceTypeConfiguration) Field(name string) (*InterfaceFieldConfiguration, bool) {
	if i := t.fieldIndex(name); i >= 0 {
		return t.Fields[i], true
	}
	return nil, false
}

func (t *InterfaceTypeConfiguration) fieldIndex(name string) int {
	for i, field := range t.Fields {
		if field.Name() == name {
			return i
		}
	}
	return -1
}

// AddField appends a field. Field names must be unique in a type.
func (t *InterfaceTypeConfiguration) AddField(field *InterfaceFieldConfiguration) error {
	const op graphql.Op = "configuration.AddField"
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if field == nil {
		return newNilError(op, "field")
	}
	if t.fieldIndex(field.Name()) >= 0 {
		return newDuplicateError(op, graphql.FieldCoordinate(t.Name(), field.Name()), "Field")
	}
	t.Fields = append(t.Fields, field)
	return nil
}

// AddInterface declares an implemented interface. Duplicated references are ignored.
func (t *InterfaceTypeConfiguration) AddInterface(ref TypeReference) error {
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if ref == nil {
		return newNilError("configuration.AddInterface", "interface reference")
	}
	if !containsTypeReference(t.Interfaces, ref) {
		t.Interfaces = append(t.Interfaces, ref)
	}
	return nil
}

func (t *InterfaceTypeConfiguration) removeFieldAt(i int) {
	copy(t.Fields[i:], t.Fields[i+1:])
	t.Fields[len(t.Fields)-1] = nil
	t.Fields = t.Fields[:len(t.Fields)-1]
}

func (t *InterfaceTypeConfiguration) resolveTargetField(field *InterfaceFieldConfiguration) int {
	if binding := field.BindToField; binding != nil {
		for i, targetField := range t.Fields {
			if binding.matches(targetField.Name(), targetField.Member) {
				return i
			}
		}
		return -1
	}
	return t.fieldIndex(field.Name())
}

// Copy returns a deep copy of the type configuration.
func (t *InterfaceTypeConfiguration) Copy() *InterfaceTypeConfiguration {
	c := &InterfaceTypeConfiguration{}
	t.copyInterfaceTypeTo(c)
	return c
}

// CopyTo copies t into target.
func (t *InterfaceTypeConfiguration) CopyTo(target *InterfaceTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.copyInterfaceTypeTo(target)
	return nil
}

func (t *InterfaceTypeConfiguration) copyInterfaceTypeTo(target *InterfaceTypeConfiguration) {
	t.TypeSystemConfiguration.copyTo(&target.TypeSystemConfiguration)

	target.Fields = nil
	if len(t.Fields) > 0 {
		target.Fields = make([]*InterfaceFieldConfiguration, len(t.Fields))
		for i, field := range t.Fields {
			target.Fields[i] = field.Copy()
		}
	}

	target.Interfaces = append([]TypeReference(nil), t.Interfaces...)
	target.KnownRuntimeTypes = append([]reflect.Type(nil), t.KnownRuntimeTypes...)
	target.FieldIgnores = append([]*ObjectFieldBinding(nil), t.FieldIgnores...)
	target.RuntimeType = t.RuntimeType
	target.FieldBindingType = t.FieldBindingType
	target.IsExtension = t.IsExtension
	target.ResolveAbstractType = t.ResolveAbstractType
}

// MergeInto merges the interface type extension t into target. Fields are resolved as in
// ObjectTypeConfiguration.MergeInto.
func (t *InterfaceTypeConfiguration) MergeInto(target *InterfaceTypeConfiguration, opts *MergeOptions) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	logger := opts.logger()

	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)

	for _, runtimeType := range t.KnownRuntimeTypes {
		if !containsType(target.KnownRuntimeTypes, runtimeType) {
			target.KnownRuntimeTypes = append(target.KnownRuntimeTypes, runtimeType)
		}
	}
	target.FieldIgnores = append(target.FieldIgnores, t.FieldIgnores...)
	for _, ref := range t.Interfaces {
		if !containsTypeReference(target.Interfaces, ref) {
			target.Interfaces = append(target.Interfaces, ref)
		}
	}
	if target.FieldBindingType == BindingUnset {
		target.FieldBindingType = t.FieldBindingType
	}
	if t.ResolveAbstractType != nil && target.ResolveAbstractType == nil {
		target.ResolveAbstractType = t.ResolveAbstractType
	}

	for _, field := range t.Fields {
		index := target.resolveTargetField(field)
		var targetField *InterfaceFieldConfiguration
		if index >= 0 {
			targetField = target.Fields[index]
		}

		switch {
		case field.IsIgnored():
			if targetField != nil {
				logger.Debug("remove ignored field",
					zap.String("type", target.Name()),
					zap.String("field", targetField.Name()))
				target.removeFieldAt(index)
			}

		case targetField == nil || (field.BindToField != nil && field.BindToField.Replace):
			var previousMember *MemberInfo
			if targetField != nil {
				previousMember = targetField.Member
				target.removeFieldAt(index)
			}
			newField := field.Copy()
			repointProvenance(&newField.Member, &newField.ResolverMember, previousMember)
			target.Fields = append(target.Fields, newField)

		default:
			repointProvenance(&field.Member, &field.ResolverMember, targetField.Member)
			if err := field.MergeInto(targetField); err != nil {
				return err
			}
		}
	}

	return nil
}

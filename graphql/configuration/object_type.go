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

// BindingBehavior specifies whether the fields of an object type are inferred from its runtime
// type.
type BindingBehavior uint8

// Enumeration of BindingBehavior
const (
	// BindingUnset inherits the behavior from the type being extended or from registry options.
	BindingUnset BindingBehavior = iota
	// BindingImplicit infers a field for every exported member of the runtime type.
	BindingImplicit
	// BindingExplicit only includes the configured fields.
	BindingExplicit
)

// ObjectTypeConfiguration configures an object type or an object type extension.
type ObjectTypeConfiguration struct {
	TypeSystemConfiguration

	// Fields of the object type
	Fields []*ObjectFieldConfiguration

	// Interfaces implemented by the object type
	Interfaces []TypeReference

	// RuntimeType is the Go type of the object values.
	RuntimeType reflect.Type

	// KnownRuntimeTypes are further Go types that represent the object.
	KnownRuntimeTypes []reflect.Type

	// FieldIgnores lists the members and the fields that must not become fields of the type.
	FieldIgnores []*ObjectFieldBinding

	// FieldBindingType specifies whether fields are inferred from RuntimeType.
	FieldBindingType BindingBehavior

	// IsExtension is set if the configuration extends an existing object type.
	IsExtension bool

	// IsOfType determines whether value is an instance of the object type.
	IsOfType func(value interface{}) bool
}

var _ TypeConfiguration = (*ObjectTypeConfiguration)(nil)

// NewObjectType creates an object type configuration.
func NewObjectType(name string) (*ObjectTypeConfiguration, error) {
	t := &ObjectTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewObjectType is a convenience function equivalent to NewObjectType but panics on failure
// instead of returning an error.
func MustNewObjectType(name string) *ObjectTypeConfiguration {
	t, err := NewObjectType(name)
	if err != nil {
		panic(err)
	}
	return t
}

// NewObjectTypeExtension creates an object type extension configuration.
func NewObjectTypeExtension(name string) (*ObjectTypeConfiguration, error) {
	t, err := NewObjectType(name)
	if err != nil {
		return nil, err
	}
	t.IsExtension = true
	return t, nil
}

// Kind implements TypeConfiguration.
func (*ObjectTypeConfiguration) Kind() TypeKind {
	return TypeKindObject
}

// Extension implements TypeConfiguration.
func (t *ObjectTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration.
func (t *ObjectTypeConfiguration) Members() []Configuration {
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
func (t *ObjectTypeConfiguration) Seal() {
	for _, field := range t.Fields {
		field.Seal()
	}
	t.TypeSystemConfiguration.Seal()
}

// Field finds the field with the given name.
func (t *ObjectTypeConfiguration) Field(name string) (*ObjectFieldConfiguration, bool) {
	if i := t.fieldIndex(name); i >= 0 {
		return t.Fields[i], true
	}
	return nil, false
}

func (t *ObjectTypeConfiguration) fieldIndex(name string) int {
	for i, field := range t.Fields {
		if field.Name() == name {
			return i
		}
	}
	return -1
}

// AddField appends a field. Field names must be unique in a type.
func (t *ObjectTypeConfiguration) AddField(field *ObjectFieldConfiguration) error {
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

// RemoveField removes the field with the given name. It returns false if there's no such field.
func (t *ObjectTypeConfiguration) RemoveField(name string) (bool, error) {
	if t.IsSealed() {
		return false, ErrConfigurationSealed
	}
	i := t.fieldIndex(name)
	if i < 0 {
		return false, nil
	}
	t.removeFieldAt(i)
	return true, nil
}

func (t *ObjectTypeConfiguration) removeFieldAt(i int) {
	copy(t.Fields[i:], t.Fields[i+1:])
	t.Fields[len(t.Fields)-1] = nil
	t.Fields = t.Fields[:len(t.Fields)-1]
}

// AddInterface declares an implemented interface. Duplicated references are ignored.
func (t *ObjectTypeConfiguration) AddInterface(ref TypeReference) error {
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

// IsFieldIgnored returns true if a FieldIgnores entry matches the field name or the member name.
func (t *ObjectTypeConfiguration) IsFieldIgnored(name string, member *MemberInfo) bool {
	for _, ignore := range t.FieldIgnores {
		if ignore.matches(name, member) {
			return true
		}
	}
	return false
}

// InferFields adds a field for each exported struct field of RuntimeType that is not bound by an
// existing field and not listed in FieldIgnores. It returns the number of added fields.
func (t *ObjectTypeConfiguration) InferFields() (int, error) {
	if t.IsSealed() {
		return 0, ErrConfigurationSealed
	}
	if t.RuntimeType == nil {
		return 0, nil
	}

	structType := t.RuntimeType
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return 0, nil
	}

	added := 0
	for i := 0; i < structType.NumField(); i++ {
		sf := structType.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}

		member, err := FieldMember(t.RuntimeType, sf.Name)
		if err != nil {
			return added, err
		}
		if t.isMemberBound(member) {
			continue
		}

		field, err := NewObjectFieldFromMember(member)
		if err != nil {
			return added, err
		}
		if t.IsFieldIgnored(field.Name(), member) || t.fieldIndex(field.Name()) >= 0 {
			continue
		}

		t.Fields = append(t.Fields, field)
		added++
	}

	return added, nil
}

func (t *ObjectTypeConfiguration) isMemberBound(member *MemberInfo) bool {
	for _, field := range t.Fields {
		if field.Member != nil && field.Member.Name == member.Name {
			return true
		}
	}
	return false
}

// resolveTargetField finds the field in t that the source field of an extension applies to.
func (t *ObjectTypeConfiguration) resolveTargetField(field *ObjectFieldConfiguration) int {
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
func (t *ObjectTypeConfiguration) Copy() *ObjectTypeConfiguration {
	c := &ObjectTypeConfiguration{}
	t.copyObjectTypeTo(c)
	return c
}

// CopyTo copies t into target.
func (t *ObjectTypeConfiguration) CopyTo(target *ObjectTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.copyObjectTypeTo(target)
	return nil
}

func (t *ObjectTypeConfiguration) copyObjectTypeTo(target *ObjectTypeConfiguration) {
	t.TypeSystemConfiguration.copyTo(&target.TypeSystemConfiguration)

	target.Fields = nil
	if len(t.Fields) > 0 {
		target.Fields = make([]*ObjectFieldConfiguration, len(t.Fields))
		for i, field := range t.Fields {
			target.Fields[i] = field.Copy()
		}
	}

	target.Interfaces = nil
	if len(t.Interfaces) > 0 {
		target.Interfaces = append([]TypeReference(nil), t.Interfaces...)
	}

	target.KnownRuntimeTypes = nil
	if len(t.KnownRuntimeTypes) > 0 {
		target.KnownRuntimeTypes = append([]reflect.Type(nil), t.KnownRuntimeTypes...)
	}

	target.FieldIgnores = nil
	if len(t.FieldIgnores) > 0 {
		target.FieldIgnores = append([]*ObjectFieldBinding(nil), t.FieldIgnores...)
	}

	target.RuntimeType = t.RuntimeType
	target.FieldBindingType = t.FieldBindingType
	target.IsExtension = t.IsExtension
	target.IsOfType = t.IsOfType
}

// MergeInto merges the object type extension t into target.
//
// Each field in t is applied to the target field it binds to: the field whose member has the
// binding name (BindingProperty), the field with the binding name (BindingField) or the field with
// the same name. Fields of method members whose parent parameter is incompatible with the runtime
// type of target are skipped. An ignored field removes its target field. A field without target
// field, or one whose binding requests replacement, is copied into target. Otherwise the field is
// merged into its target field. In the last two cases the member of the source field becomes the
// resolver member and the target keeps its own member.
func (t *ObjectTypeConfiguration) MergeInto(target *ObjectTypeConfiguration, opts *MergeOptions) error {
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

	if t.IsOfType != nil && target.IsOfType == nil {
		target.IsOfType = t.IsOfType
	}

	for _, field := range t.Fields {
		if parent := field.Member.ParentParameter(); parent != nil &&
			!isCompatibleParent(parent.Type, target.RuntimeType) {
			logger.Debug("skip field with incompatible parent",
				zap.String("type", target.Name()),
				zap.String("field", field.Name()),
				zap.Stringer("parent", parent.Type),
				zap.Stringer("runtimeType", target.RuntimeType))
			continue
		}

		index := target.resolveTargetField(field)
		var targetField *ObjectFieldConfiguration
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
				logger.Debug("replace field",
					zap.String("type", target.Name()),
					zap.String("field", targetField.Name()))
				previousMember = targetField.Member
				target.removeFieldAt(index)
			}
			newField := field.Copy()
			newField.SourceType = target.RuntimeType
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

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

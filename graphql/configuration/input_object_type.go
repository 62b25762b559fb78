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

	"github.com/botobag/graphconf/graphql"
)

// InputObjectTypeConfiguration configures an input object type or an input object type
// extension.
type InputObjectTypeConfiguration struct {
	TypeSystemConfiguration

	// Fields of the input object
	Fields []*InputFieldConfiguration

	// RuntimeType is the Go type the input values are coerced into.
	RuntimeType reflect.Type

	// IsExtension is set if the configuration extends an existing input object type.
	IsExtension bool
}

var _ TypeConfiguration = (*InputObjectTypeConfiguration)(nil)

// NewInputObjectType creates an input object type configuration.
func NewInputObjectType(name string) (*InputObjectTypeConfiguration, error) {
	t := &InputObjectTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind implements TypeConfiguration.
func (*InputObjectTypeConfiguration) Kind() TypeKind {
	return TypeKindInputObject
}

// Extension implements TypeConfiguration.
func (t *InputObjectTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration.
func (t *InputObjectTypeConfiguration) Members() []Configuration {
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
func (t *InputObjectTypeConfiguration) Seal() {
	for _, field := range t.Fields {
		field.Seal()
	}
	t.TypeSystemConfiguration.Seal()
}

// Field finds the field with the given name.
func (t *InputObjectTypeConfiguration) Field(name string) (*InputFieldConfiguration, bool) {
	for _, field := range t.Fields {
		if field.Name() == name {
			return field, true
		}
	}
	return nil, false
}

// AddField appends a field. Field names must be unique in a type.
func (t *InputObjectTypeConfiguration) AddField(field *InputFieldConfiguration) error {
	const op graphql.Op = "configuration.AddField"
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if field == nil {
		return newNilError(op, "field")
	}
	if _, exists := t.Field(field.Name()); exists {
		return newDuplicateError(op, graphql.FieldCoordinate(t.Name(), field.Name()), "Field")
	}
	t.Fields = append(t.Fields, field)
	return nil
}

// Copy returns a deep copy of the type configuration.
func (t *InputObjectTypeConfiguration) Copy() *InputObjectTypeConfiguration {
	c := &InputObjectTypeConfiguration{}
	t.copyInputObjectTypeTo(c)
	return c
}

// CopyTo copies t into target.
func (t *InputObjectTypeConfiguration) CopyTo(target *InputObjectTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.copyInputObjectTypeTo(target)
	return nil
}

func (t *InputObjectTypeConfiguration) copyInputObjectTypeTo(target *InputObjectTypeConfiguration) {
	t.TypeSystemConfiguration.copyTo(&target.TypeSystemConfiguration)
	target.Fields = nil
	if len(t.Fields) > 0 {
		target.Fields = make([]*InputFieldConfiguration, len(t.Fields))
		for i, field := range t.Fields {
			target.Fields[i] = field.Copy()
		}
	}
	target.RuntimeType = t.RuntimeType
	target.IsExtension = t.IsExtension
}

// MergeInto merges the input object type extension t into target. Fields are matched by name.
// Ignored fields remove their target field.
func (t *InputObjectTypeConfiguration) MergeInto(target *InputObjectTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)

	for _, field := range t.Fields {
		index := -1
		for i, targetField := range target.Fields {
			if targetField.Name() == field.Name() {
				index = i
				break
			}
		}

		switch {
		case field.IsIgnored():
			if index >= 0 {
				target.Fields = append(target.Fields[:index], target.Fields[index+1:]...)
			}
		case index < 0:
			target.Fields = append(target.Fields, field.Copy())
		default:
			if err := field.MergeInto(target.Fields[index]); err != nil {
				return err
			}
		}
	}

	if t.RuntimeType != nil && target.RuntimeType == nil {
		target.RuntimeType = t.RuntimeType
	}
	return nil
}

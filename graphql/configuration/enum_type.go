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

// EnumValueConfiguration configures a value of an enum type.
type EnumValueConfiguration struct {
	TypeSystemConfiguration

	// RuntimeValue is the Go value the enum value maps to.
	RuntimeValue interface{}

	deprecationReason string
	deprecated        bool
	ignored           bool
}

// NewEnumValue creates an enum value configuration.
func NewEnumValue(name string, runtimeValue interface{}) (*EnumValueConfiguration, error) {
	value := &EnumValueConfiguration{RuntimeValue: runtimeValue}
	if err := value.SetName(name); err != nil {
		return nil, err
	}
	return value, nil
}

// NewEnumValueFromRuntime creates an enum value configuration for runtimeValue. The name is
// inferred from the formatted runtime value with EnumValueName.
func NewEnumValueFromRuntime(runtimeValue interface{}) (*EnumValueConfiguration, error) {
	return NewEnumValue(EnumValueName(fmt.Sprint(runtimeValue)), runtimeValue)
}

// IsDeprecated returns true if the value is deprecated.
func (value *EnumValueConfiguration) IsDeprecated() bool {
	return value.deprecated
}

// DeprecationReason returns the reason of deprecation.
func (value *EnumValueConfiguration) DeprecationReason() string {
	return value.deprecationReason
}

// Deprecate marks the value as deprecated. An empty reason is replaced with
// DefaultDeprecationReason.
func (value *EnumValueConfiguration) Deprecate(reason string) error {
	if value.IsSealed() {
		return ErrConfigurationSealed
	}
	if len(reason) == 0 {
		reason = DefaultDeprecationReason
	}
	value.deprecated = true
	value.deprecationReason = reason
	return nil
}

// IsIgnored returns true if the value is excluded from the enum type.
func (value *EnumValueConfiguration) IsIgnored() bool {
	return value.ignored
}

// Ignore excludes the value from the enum type.
func (value *EnumValueConfiguration) Ignore() error {
	return value.SetIgnore(true)
}

// SetIgnore sets whether the value is excluded from the enum type.
func (value *EnumValueConfiguration) SetIgnore(ignore bool) error {
	if value.IsSealed() {
		return ErrConfigurationSealed
	}
	value.ignored = ignore
	return nil
}

// Copy returns a deep copy of the enum value configuration.
func (value *EnumValueConfiguration) Copy() *EnumValueConfiguration {
	c := &EnumValueConfiguration{}
	value.TypeSystemConfiguration.copyTo(&c.TypeSystemConfiguration)
	c.RuntimeValue = value.RuntimeValue
	c.deprecationReason = value.deprecationReason
	c.deprecated = value.deprecated
	c.ignored = value.ignored
	return c
}

// MergeInto merges value into target.
func (value *EnumValueConfiguration) MergeInto(target *EnumValueConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	value.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)
	if value.RuntimeValue != nil {
		target.RuntimeValue = value.RuntimeValue
	}
	if value.deprecated {
		target.deprecated = true
		target.deprecationReason = value.deprecationReason
	}
	return nil
}

// EnumTypeConfiguration configures an enum type or an enum type extension.
type EnumTypeConfiguration struct {
	TypeSystemConfiguration

	// Values of the enum type
	Values []*EnumValueConfiguration

	// RuntimeType is the Go type of the enum values.
	RuntimeType reflect.Type

	// IsExtension is set if the configuration extends an existing enum type.
	IsExtension bool
}

var _ TypeConfiguration = (*EnumTypeConfiguration)(nil)

// NewEnumType creates an enum type configuration.
func NewEnumType(name string) (*EnumTypeConfiguration, error) {
	t := &EnumTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind implements TypeConfiguration.
func (*EnumTypeConfiguration) Kind() TypeKind {
	return TypeKindEnum
}

// Extension implements TypeConfiguration.
func (t *EnumTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration.
func (t *EnumTypeConfiguration) Members() []Configuration {
	if len(t.Values) == 0 {
		return nil
	}
	members := make([]Configuration, len(t.Values))
	for i, value := range t.Values {
		members[i] = value
	}
	return members
}

// Seal implements Configuration.
func (t *EnumTypeConfiguration) Seal() {
	for _, value := range t.Values {
		value.Seal()
	}
	t.TypeSystemConfiguration.Seal()
}

// Value finds the value with the given name.
func (t *EnumTypeConfiguration) Value(name string) (*EnumValueConfiguration, bool) {
	if i := t.valueIndex(name); i >= 0 {
		return t.Values[i], true
	}
	return nil, false
}

func (t *EnumTypeConfiguration) valueIndex(name string) int {
	for i, value := range t.Values {
		if value.Name() == name {
			return i
		}
	}
	return -1
}

// AddValue appends a value. Value names must be unique in an enum type.
func (t *EnumTypeConfiguration) AddValue(value *EnumValueConfiguration) error {
	const op graphql.Op = "configuration.AddValue"
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if value == nil {
		return newNilError(op, "enum value")
	}
	if t.valueIndex(value.Name()) >= 0 {
		return newDuplicateError(op, graphql.FieldCoordinate(t.Name(), value.Name()), "Enum value")
	}
	t.Values = append(t.Values, value)
	return nil
}

// Copy returns a deep copy of the type configuration.
func (t *EnumTypeConfiguration) Copy() *EnumTypeConfiguration {
	c := &EnumTypeConfiguration{}
	t.TypeSystemConfiguration.copyTo(&c.TypeSystemConfiguration)
	if len(t.Values) > 0 {
		c.Values = make([]*EnumValueConfiguration, len(t.Values))
		for i, value := range t.Values {
			c.Values[i] = value.Copy()
		}
	}
	c.RuntimeType = t.RuntimeType
	c.IsExtension = t.IsExtension
	return c
}

// CopyTo copies t into target.
func (t *EnumTypeConfiguration) CopyTo(target *EnumTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	*target = *t.Copy()
	return nil
}

// MergeInto merges the enum type extension t into target. Values are matched by name. Ignored
// values remove their target value.
func (t *EnumTypeConfiguration) MergeInto(target *EnumTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)

	for _, value := range t.Values {
		index := target.valueIndex(value.Name())
		switch {
		case value.IsIgnored():
			if index >= 0 {
				target.Values = append(target.Values[:index], target.Values[index+1:]...)
			}
		case index < 0:
			target.Values = append(target.Values, value.Copy())
		default:
			if err := value.MergeInto(target.Values[index]); err != nil {
				return err
			}
		}
	}

	if t.RuntimeType != nil && target.RuntimeType == nil {
		target.RuntimeType = t.RuntimeType
	}
	return nil
}

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

	"github.com/botobag/graphconf/graphql"
)

// DefaultDeprecationReason is used when a field is deprecated without a reason.
const DefaultDeprecationReason = "No longer supported."

// FieldConfiguration contains the data shared by fields and arguments.
type FieldConfiguration struct {
	TypeSystemConfiguration

	// Type of the field
	Type TypeReference

	// Flags of the field
	Flags CoreFieldFlags

	// RuntimeType is the Go type of the field value if known.
	RuntimeType reflect.Type

	deprecationReason string
}

// Seal implements Configuration.
func (f *FieldConfiguration) Seal() {
	f.Flags.Set(FieldFlagSealed)
	f.TypeSystemConfiguration.Seal()
}

// IsDeprecated returns true if the field is deprecated.
func (f *FieldConfiguration) IsDeprecated() bool {
	return f.Flags.Has(FieldFlagDeprecated)
}

// DeprecationReason returns the reason of deprecation or an empty string if the field is not
// deprecated.
func (f *FieldConfiguration) DeprecationReason() string {
	if !f.IsDeprecated() {
		return ""
	}
	return f.deprecationReason
}

// Deprecate marks the field as deprecated. An empty reason is replaced with
// DefaultDeprecationReason.
func (f *FieldConfiguration) Deprecate(reason string) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if len(reason) == 0 {
		reason = DefaultDeprecationReason
	}
	f.deprecationReason = reason
	f.Flags.Set(FieldFlagDeprecated)
	return nil
}

// Undeprecate removes the deprecation.
func (f *FieldConfiguration) Undeprecate() error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	f.deprecationReason = ""
	f.Flags.Clear(FieldFlagDeprecated)
	return nil
}

// IsIgnored returns true if the field is excluded from the schema.
func (f *FieldConfiguration) IsIgnored() bool {
	return f.Flags.Has(FieldFlagIgnored)
}

// Ignore excludes the field from the schema.
func (f *FieldConfiguration) Ignore() error {
	return f.SetIgnore(true)
}

// SetIgnore sets or clears the Ignored flag.
func (f *FieldConfiguration) SetIgnore(ignore bool) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if ignore {
		f.Flags.Set(FieldFlagIgnored)
	} else {
		f.Flags.Clear(FieldFlagIgnored)
	}
	return nil
}

func (f *FieldConfiguration) copyFieldTo(target *FieldConfiguration) {
	f.TypeSystemConfiguration.copyTo(&target.TypeSystemConfiguration)
	target.Type = f.Type
	// A copy is never sealed.
	target.Flags = f.Flags &^ FieldFlagSealed
	target.RuntimeType = f.RuntimeType
	target.deprecationReason = f.deprecationReason
}

func (f *FieldConfiguration) mergeFieldInto(target *FieldConfiguration) {
	f.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)
	if f.Type != nil {
		target.Type = f.Type
	}
	target.Flags.Set(f.Flags &^ FieldFlagSealed)
	if f.IsDeprecated() {
		target.deprecationReason = f.deprecationReason
	}
	if f.RuntimeType != nil {
		target.RuntimeType = f.RuntimeType
	}
}

// InputValueFormatter transforms a coerced input value before it is given to a resolver.
type InputValueFormatter func(value interface{}) (interface{}, error)

// ArgumentConfiguration configures an argument of an output field or a directive.
type ArgumentConfiguration struct {
	FieldConfiguration

	// DefaultValue is the default value in GraphQL literal.
	DefaultValue *ast.Value

	// RuntimeDefaultValue is the default value in runtime representation.
	RuntimeDefaultValue interface{}

	// Parameter is the method parameter the argument is bound to.
	Parameter *ParameterInfo

	// Formatters are applied in order to the coerced argument value.
	Formatters []InputValueFormatter
}

// NewArgument creates an argument configuration.
func NewArgument(name string, t TypeReference) (*ArgumentConfiguration, error) {
	arg := &ArgumentConfiguration{}
	if err := arg.SetName(name); err != nil {
		return nil, err
	}
	arg.Type = t
	return arg, nil
}

// MustNewArgument is a convenience function equivalent to NewArgument but panics on failure
// instead of returning an error.
func MustNewArgument(name string, t TypeReference) *ArgumentConfiguration {
	arg, err := NewArgument(name, t)
	if err != nil {
		panic(err)
	}
	return arg
}

// Copy returns a deep copy of the argument configuration.
func (arg *ArgumentConfiguration) Copy() *ArgumentConfiguration {
	c := &ArgumentConfiguration{}
	arg.copyArgumentTo(c)
	return c
}

// CopyTo copies arg into target.
func (arg *ArgumentConfiguration) CopyTo(target *ArgumentConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	arg.copyArgumentTo(target)
	return nil
}

func (arg *ArgumentConfiguration) copyArgumentTo(target *ArgumentConfiguration) {
	arg.copyFieldTo(&target.FieldConfiguration)
	target.DefaultValue = arg.DefaultValue
	target.RuntimeDefaultValue = arg.RuntimeDefaultValue
	target.Parameter = arg.Parameter
	target.Formatters = nil
	if len(arg.Formatters) > 0 {
		target.Formatters = append([]InputValueFormatter(nil), arg.Formatters...)
	}
}

// MergeInto merges arg into target.
func (arg *ArgumentConfiguration) MergeInto(target *ArgumentConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	arg.mergeArgumentInto(target)
	return nil
}

func (arg *ArgumentConfiguration) mergeArgumentInto(target *ArgumentConfiguration) {
	arg.mergeFieldInto(&target.FieldConfiguration)
	if arg.DefaultValue != nil {
		target.DefaultValue = arg.DefaultValue
	}
	if arg.RuntimeDefaultValue != nil {
		target.RuntimeDefaultValue = arg.RuntimeDefaultValue
	}
	if arg.Parameter != nil {
		target.Parameter = arg.Parameter
	}
	target.Formatters = append(target.Formatters, arg.Formatters...)
}

// InputFieldConfiguration configures a field of an input object.
type InputFieldConfiguration struct {
	ArgumentConfiguration

	// Member is the struct field the input field is bound to.
	Member *MemberInfo
}

// NewInputField creates an input field configuration.
func NewInputField(name string, t TypeReference) (*InputFieldConfiguration, error) {
	field := &InputFieldConfiguration{}
	if err := field.SetName(name); err != nil {
		return nil, err
	}
	field.Type = t
	return field, nil
}

// Copy returns a deep copy of the input field configuration.
func (field *InputFieldConfiguration) Copy() *InputFieldConfiguration {
	c := &InputFieldConfiguration{}
	field.copyArgumentTo(&c.ArgumentConfiguration)
	c.Member = field.Member
	return c
}

// CopyTo copies field into target.
func (field *InputFieldConfiguration) CopyTo(target *InputFieldConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	field.copyArgumentTo(&target.ArgumentConfiguration)
	target.Member = field.Member
	return nil
}

// MergeInto merges field into target.
func (field *InputFieldConfiguration) MergeInto(target *InputFieldConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	field.mergeArgumentInto(&target.ArgumentConfiguration)
	if field.Member != nil {
		target.Member = field.Member
	}
	return nil
}

// OutputFieldConfiguration contains the data shared by object fields and interface fields.
type OutputFieldConfiguration struct {
	FieldConfiguration

	// Arguments of the field
	Arguments []*ArgumentConfiguration
}

// Members returns the arguments.
func (f *OutputFieldConfiguration) Members() []Configuration {
	if len(f.Arguments) == 0 {
		return nil
	}
	members := make([]Configuration, len(f.Arguments))
	for i, arg := range f.Arguments {
		members[i] = arg
	}
	return members
}

// Seal implements Configuration.
func (f *OutputFieldConfiguration) Seal() {
	for _, arg := range f.Arguments {
		arg.Seal()
	}
	f.FieldConfiguration.Seal()
}

// Argument finds the argument with the given name.
func (f *OutputFieldConfiguration) Argument(name string) (*ArgumentConfiguration, bool) {
	for _, arg := range f.Arguments {
		if arg.Name() == name {
			return arg, true
		}
	}
	return nil, false
}

// AddArgument appends an argument. Argument names must be unique in a field.
func (f *OutputFieldConfiguration) AddArgument(arg *ArgumentConfiguration) error {
	const op graphql.Op = "configuration.AddArgument"
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if arg == nil {
		return newNilError(op, "argument")
	}
	if _, exists := f.Argument(arg.Name()); exists {
		return newDuplicateError(op, graphql.SchemaCoordinate(f.Name()+"("+arg.Name()+":)"), "Argument")
	}
	f.Arguments = append(f.Arguments, arg)
	return nil
}

func (f *OutputFieldConfiguration) copyOutputFieldTo(target *OutputFieldConfiguration) {
	f.copyFieldTo(&target.FieldConfiguration)
	target.Arguments = nil
	if len(f.Arguments) > 0 {
		target.Arguments = make([]*ArgumentConfiguration, len(f.Arguments))
		for i, arg := range f.Arguments {
			target.Arguments[i] = arg.Copy()
		}
	}
}

func (f *OutputFieldConfiguration) mergeOutputFieldInto(target *OutputFieldConfiguration) error {
	f.mergeFieldInto(&target.FieldConfiguration)
	for _, arg := range f.Arguments {
		targetArg, exists := target.Argument(arg.Name())
		if !exists {
			target.Arguments = append(target.Arguments, arg.Copy())
			continue
		}
		if err := arg.MergeInto(targetArg); err != nil {
			return err
		}
	}
	return nil
}

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

// ObjectFieldBindingType specifies how an ObjectFieldBinding locates the bound field.
type ObjectFieldBindingType uint8

// Enumeration of ObjectFieldBindingType
const (
	// BindingProperty binds to the field whose member has the given name.
	BindingProperty ObjectFieldBindingType = iota
	// BindingField binds to the field with the given GraphQL name.
	BindingField
)

// ObjectFieldBinding binds a field of a type extension to a field of the extended type.
type ObjectFieldBinding struct {
	// Name of the member or the field
	Name string

	// Type of the binding
	Type ObjectFieldBindingType

	// Replace replaces the bound field instead of merging into it.
	Replace bool
}

// matches returns true if the field with the given name and member is bound by binding.
func (binding *ObjectFieldBinding) matches(name string, member *MemberInfo) bool {
	switch binding.Type {
	case BindingProperty:
		return member != nil && member.Name == binding.Name
	case BindingField:
		return name == binding.Name
	}
	return false
}

// ObjectFieldConfiguration configures a field of an object type.
type ObjectFieldConfiguration struct {
	OutputFieldConfiguration
	fieldPipeline

	// Member is the struct field or method the field is bound to.
	Member *MemberInfo

	// ResolverMember is the member that resolves the field when it differs from Member (e.g., the
	// field is contributed by a type extension).
	ResolverMember *MemberInfo

	// ResolverType is the Go type that provides ResolverMember.
	ResolverType reflect.Type

	// SourceType is the Go type of the parent value.
	SourceType reflect.Type

	// ResultType is the Go type of the resolved value.
	ResultType reflect.Type

	Resolver          FieldResolver
	PureResolver      PureFieldResolver
	SubscribeResolver SubscribeResolver

	// BindToField binds the field to a field of the extended type.
	BindToField *ObjectFieldBinding
}

// NewObjectField creates an object field configuration.
func NewObjectField(name string, t TypeReference) (*ObjectFieldConfiguration, error) {
	field := &ObjectFieldConfiguration{}
	if err := field.SetName(name); err != nil {
		return nil, err
	}
	field.Type = t
	return field, nil
}

// MustNewObjectField is a convenience function equivalent to NewObjectField but panics on failure
// instead of returning an error.
func MustNewObjectField(name string, t TypeReference) *ObjectFieldConfiguration {
	field, err := NewObjectField(name, t)
	if err != nil {
		panic(err)
	}
	return field
}

// NewObjectFieldFromMember creates an object field bound to member. The field name is inferred
// from the member name with MemberFieldName.
func NewObjectFieldFromMember(member *MemberInfo) (*ObjectFieldConfiguration, error) {
	if member == nil {
		return nil, newNilError("configuration.NewObjectFieldFromMember", "member")
	}
	field, err := NewObjectField(MemberFieldName(member.Name), RuntimeType(member.Type, TypeContextOutput))
	if err != nil {
		return nil, err
	}
	field.Member = member
	field.ResultType = member.Type
	field.SourceType = member.DeclaringType
	return field, nil
}

// AddMiddleware appends a middleware.
func (f *ObjectFieldConfiguration) AddMiddleware(m *MiddlewareConfiguration) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if m == nil || m.Middleware == nil {
		return newNilError("configuration.AddMiddleware", "middleware")
	}
	f.addMiddleware(m)
	return nil
}

// AddResultFormatter appends a result formatter.
func (f *ObjectFieldConfiguration) AddResultFormatter(formatter *ResultFormatterConfiguration) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if formatter == nil || formatter.Formatter == nil {
		return newNilError("configuration.AddResultFormatter", "result formatter")
	}
	f.addResultFormatter(formatter)
	return nil
}

// CleanRepeatableConfigurations removes the duplicated non-repeatable middleware and result
// formatters keeping the first of each key.
func (f *ObjectFieldConfiguration) CleanRepeatableConfigurations() error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	f.cleanRepeatableConfigurations()
	return nil
}

// SetPureResolver sets a pure resolver and marks the field with FieldFlagPureResolver.
func (f *ObjectFieldConfiguration) SetPureResolver(resolver PureFieldResolver) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	f.PureResolver = resolver
	if resolver != nil {
		f.Flags.Set(FieldFlagPureResolver)
	} else {
		f.Flags.Clear(FieldFlagPureResolver)
	}
	return nil
}

// SetSubscribeResolver sets a subscribe resolver and marks the field with
// FieldFlagSubscribeResolver.
func (f *ObjectFieldConfiguration) SetSubscribeResolver(resolver SubscribeResolver) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	f.SubscribeResolver = resolver
	if resolver != nil {
		f.Flags.Set(FieldFlagSubscribeResolver)
	} else {
		f.Flags.Clear(FieldFlagSubscribeResolver)
	}
	return nil
}

// Pipeline composes the resolver of the field with its middleware and result formatters. The pure
// resolver is used when Resolver is not set.
func (f *ObjectFieldConfiguration) Pipeline() (FieldResolver, error) {
	resolver := f.Resolver
	if resolver == nil && f.PureResolver != nil {
		pure := f.PureResolver
		resolver = func(rc *ResolverContext) (interface{}, error) {
			return pure(rc.Parent, rc.Arguments)
		}
	}
	if resolver == nil {
		return nil, graphql.NewError(fmt.Sprintf("Field %q has no resolver.", f.Name()),
			graphql.Op("configuration.Pipeline"), graphql.ErrKindSchema)
	}
	return f.compose(resolver), nil
}

// Copy returns a deep copy of the field configuration.
func (f *ObjectFieldConfiguration) Copy() *ObjectFieldConfiguration {
	c := &ObjectFieldConfiguration{}
	f.copyObjectFieldTo(c)
	return c
}

// CopyTo copies f into target.
func (f *ObjectFieldConfiguration) CopyTo(target *ObjectFieldConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	f.copyObjectFieldTo(target)
	return nil
}

func (f *ObjectFieldConfiguration) copyObjectFieldTo(target *ObjectFieldConfiguration) {
	f.copyOutputFieldTo(&target.OutputFieldConfiguration)
	f.copyPipelineTo(&target.fieldPipeline)
	target.Member = f.Member
	target.ResolverMember = f.ResolverMember
	target.ResolverType = f.ResolverType
	target.SourceType = f.SourceType
	target.ResultType = f.ResultType
	target.Resolver = f.Resolver
	target.PureResolver = f.PureResolver
	target.SubscribeResolver = f.SubscribeResolver
	target.BindToField = nil
	if f.BindToField != nil {
		binding := *f.BindToField
		target.BindToField = &binding
	}
}

// MergeInto merges f into target. Directives, arguments, middleware and result formatters are
// added to target. Flags are combined. Resolvers and members override the ones in target when set.
func (f *ObjectFieldConfiguration) MergeInto(target *ObjectFieldConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	if err := f.mergeOutputFieldInto(&target.OutputFieldConfiguration); err != nil {
		return err
	}
	f.mergePipelineInto(&target.fieldPipeline)

	if f.Member != nil {
		target.Member = f.Member
	}
	if f.ResolverMember != nil {
		target.ResolverMember = f.ResolverMember
	}
	if f.ResolverType != nil {
		target.ResolverType = f.ResolverType
	}
	if f.ResultType != nil {
		target.ResultType = f.ResultType
	}
	if f.Resolver != nil {
		target.Resolver = f.Resolver
	}
	if f.PureResolver != nil {
		target.PureResolver = f.PureResolver
	}
	if f.SubscribeResolver != nil {
		target.SubscribeResolver = f.SubscribeResolver
	}
	return nil
}

// repointProvenance prepares field for being merged into (or replacing) previous: the member of
// the extension becomes the resolver member and the field keeps the member of the previous
// field.
func repointProvenance(member **MemberInfo, resolverMember **MemberInfo, previous *MemberInfo) {
	if *member != nil && *resolverMember == nil {
		*resolverMember = *member
		*member = previous
	}
}

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
	"github.com/botobag/graphconf/graphql"
)

// InterfaceFieldConfiguration configures a field of an interface type.
type InterfaceFieldConfiguration struct {
	OutputFieldConfiguration
	fieldPipeline

	// Member is the method the field is bound to.
	Member *MemberInfo

	// ResolverMember is the member that resolves the field when it differs from Member.
	ResolverMember *MemberInfo

	// BindToField binds the field to a field of the extended interface.
	BindToField *ObjectFieldBinding
}

// NewInterfaceField creates an interface field configuration.
func NewInterfaceField(name string, t TypeReference) (*InterfaceFieldConfiguration, error) {
	field := &InterfaceFieldConfiguration{}
	if err := field.SetName(name); err != nil {
		return nil, err
	}
	field.Type = t
	return field, nil
}

// AddMiddleware appends a middleware.
func (f *InterfaceFieldConfiguration) AddMiddleware(m *MiddlewareConfiguration) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if m == nil || m.Middleware == nil {
		return newNilError(graphql.Op("configuration.AddMiddleware"), "middleware")
	}
	f.addMiddleware(m)
	return nil
}

// AddResultFormatter appends a result formatter.
func (f *InterfaceFieldConfiguration) AddResultFormatter(formatter *ResultFormatterConfiguration) error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	if formatter == nil || formatter.Formatter == nil {
		return newNilError(graphql.Op("configuration.AddResultFormatter"), "result formatter")
	}
	f.addResultFormatter(formatter)
	return nil
}

// CleanRepeatableConfigurations removes the duplicated non-repeatable middleware and result
// formatters keeping the first of each key.
func (f *InterfaceFieldConfiguration) CleanRepeatableConfigurations() error {
	if f.IsSealed() {
		return ErrConfigurationSealed
	}
	f.cleanRepeatableConfigurations()
	return nil
}

// Copy returns a deep copy of the field configuration.
func (f *InterfaceFieldConfiguration) Copy() *InterfaceFieldConfiguration {
	c := &InterfaceFieldConfiguration{}
	f.copyInterfaceFieldTo(c)
	return c
}

// CopyTo copies f into target.
func (f *InterfaceFieldConfiguration) CopyTo(target *InterfaceFieldConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	f.copyInterfaceFieldTo(target)
	return nil
}

func (f *InterfaceFieldConfiguration) copyInterfaceFieldTo(target *InterfaceFieldConfiguration) {
	f.copyOutputFieldTo(&target.OutputFieldConfiguration)
	f.copyPipelineTo(&target.fieldPipeline)
	target.Member = f.Member
	target.ResolverMember = f.ResolverMember
	target.BindToField = nil
	if f.BindToField != nil {
		binding := *f.BindToField
		target.BindToField = &binding
	}
}

// MergeInto merges f into target.
func (f *InterfaceFieldConfiguration) MergeInto(target *InterfaceFieldConfiguration) error {
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
	return nil
}

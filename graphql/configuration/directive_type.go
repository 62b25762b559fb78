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

// DirectiveTypeConfiguration configures a directive definition.
type DirectiveTypeConfiguration struct {
	TypeSystemConfiguration

	// Locations where the directive can be applied
	Locations []ast.DirectiveLocation

	// IsRepeatable allows the directive to be applied more than once at a location.
	IsRepeatable bool

	// Arguments of the directive
	Arguments []*ArgumentConfiguration

	// RuntimeType is the Go type DirectiveConfiguration.Value is converted into.
	RuntimeType reflect.Type
}

var _ TypeConfiguration = (*DirectiveTypeConfiguration)(nil)

// NewDirectiveType creates a directive type configuration.
func NewDirectiveType(name string, locations ...ast.DirectiveLocation) (*DirectiveTypeConfiguration, error) {
	t := &DirectiveTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, graphql.NewInvalidArgumentError("configuration.NewDirectiveType",
			"Must provide locations for directive @%s.", name)
	}
	t.Locations = append(t.Locations, locations...)
	return t, nil
}

// Kind implements TypeConfiguration.
func (*DirectiveTypeConfiguration) Kind() TypeKind {
	return TypeKindDirective
}

// Extension implements TypeConfiguration. Directive definitions cannot be extended.
func (*DirectiveTypeConfiguration) Extension() bool {
	return false
}

// Members implements TypeConfiguration.
func (t *DirectiveTypeConfiguration) Members() []Configuration {
	if len(t.Arguments) == 0 {
		return nil
	}
	members := make([]Configuration, len(t.Arguments))
	for i, arg := range t.Arguments {
		members[i] = arg
	}
	return members
}

// Seal implements Configuration.
func (t *DirectiveTypeConfiguration) Seal() {
	for _, arg := range t.Arguments {
		arg.Seal()
	}
	t.TypeSystemConfiguration.Seal()
}

// HasLocation returns true if the directive can be applied at location.
func (t *DirectiveTypeConfiguration) HasLocation(location ast.DirectiveLocation) bool {
	for _, l := range t.Locations {
		if l == location {
			return true
		}
	}
	return false
}

// Argument finds the argument with the given name.
func (t *DirectiveTypeConfiguration) Argument(name string) (*ArgumentConfiguration, bool) {
	for _, arg := range t.Arguments {
		if arg.Name() == name {
			return arg, true
		}
	}
	return nil, false
}

// AddArgument appends an argument. Argument names must be unique in a directive.
func (t *DirectiveTypeConfiguration) AddArgument(arg *ArgumentConfiguration) error {
	const op graphql.Op = "configuration.AddArgument"
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if arg == nil {
		return newNilError(op, "argument")
	}
	if _, exists := t.Argument(arg.Name()); exists {
		return newDuplicateError(op, graphql.SchemaCoordinate("@"+t.Name()+"("+arg.Name()+":)"), "Argument")
	}
	t.Arguments = append(t.Arguments, arg)
	return nil
}

// Copy returns a deep copy of the directive type configuration.
func (t *DirectiveTypeConfiguration) Copy() *DirectiveTypeConfiguration {
	c := &DirectiveTypeConfiguration{}
	t.TypeSystemConfiguration.copyTo(&c.TypeSystemConfiguration)
	c.Locations = append([]ast.DirectiveLocation(nil), t.Locations...)
	c.IsRepeatable = t.IsRepeatable
	if len(t.Arguments) > 0 {
		c.Arguments = make([]*ArgumentConfiguration, len(t.Arguments))
		for i, arg := range t.Arguments {
			c.Arguments[i] = arg.Copy()
		}
	}
	c.RuntimeType = t.RuntimeType
	return c
}

// CopyTo copies t into target.
func (t *DirectiveTypeConfiguration) CopyTo(target *DirectiveTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	*target = *t.Copy()
	return nil
}

// MergeInto merges the base data (directives, dependencies, tasks, context data and description)
// of t into target.
func (t *DirectiveTypeConfiguration) MergeInto(target *DirectiveTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)
	return nil
}

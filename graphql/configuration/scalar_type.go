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
	"github.com/botobag/graphconf/graphql/scalar"
)

// ScalarTypeConfiguration configures a scalar type or a scalar type extension. Extensions only
// contribute directives.
type ScalarTypeConfiguration struct {
	TypeSystemConfiguration

	// Scalar implements the coercion of the scalar type. It is nil for extensions.
	Scalar scalar.LeafType

	// SpecifiedByURL is the URL given to @specifiedBy.
	SpecifiedByURL string

	// IsExtension is set if the configuration extends an existing scalar type.
	IsExtension bool
}

var _ TypeConfiguration = (*ScalarTypeConfiguration)(nil)

// NewScalarType creates a scalar type configuration for leaf. Name and description are taken
// from leaf.
func NewScalarType(leaf scalar.LeafType) (*ScalarTypeConfiguration, error) {
	if leaf == nil {
		return nil, newNilError("configuration.NewScalarType", "scalar")
	}
	t := &ScalarTypeConfiguration{Scalar: leaf}
	if err := t.SetName(leaf.Name()); err != nil {
		return nil, err
	}
	t.Description = leaf.Description()
	return t, nil
}

// NewScalarTypeExtension creates a scalar type extension.
func NewScalarTypeExtension(name string) (*ScalarTypeConfiguration, error) {
	t := &ScalarTypeConfiguration{IsExtension: true}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// Kind implements TypeConfiguration.
func (*ScalarTypeConfiguration) Kind() TypeKind {
	return TypeKindScalar
}

// Extension implements TypeConfiguration.
func (t *ScalarTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration. A scalar has no nested configurations.
func (*ScalarTypeConfiguration) Members() []Configuration {
	return nil
}

// Copy returns a copy of the type configuration. The leaf type is shared.
func (t *ScalarTypeConfiguration) Copy() *ScalarTypeConfiguration {
	c := &ScalarTypeConfiguration{}
	t.TypeSystemConfiguration.copyTo(&c.TypeSystemConfiguration)
	c.Scalar = t.Scalar
	c.SpecifiedByURL = t.SpecifiedByURL
	c.IsExtension = t.IsExtension
	return c
}

// CopyTo copies t into target.
func (t *ScalarTypeConfiguration) CopyTo(target *ScalarTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	*target = *t.Copy()
	return nil
}

// MergeInto merges the scalar type extension t into target.
func (t *ScalarTypeConfiguration) MergeInto(target *ScalarTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)
	if len(t.SpecifiedByURL) > 0 {
		target.SpecifiedByURL = t.SpecifiedByURL
	}
	return nil
}

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
)

// UnionTypeConfiguration configures a union type or a union type extension.
type UnionTypeConfiguration struct {
	TypeSystemConfiguration

	// Types are the possible object types of the union.
	Types []TypeReference

	// RuntimeType is the Go type (usually an interface type) of the values.
	RuntimeType reflect.Type

	// IsExtension is set if the configuration extends an existing union type.
	IsExtension bool

	// ResolveAbstractType returns the name of the object type of value.
	ResolveAbstractType func(value interface{}) (string, error)
}

var _ TypeConfiguration = (*UnionTypeConfiguration)(nil)

// NewUnionType creates a union type configuration.
func NewUnionType(name string, types ...TypeReference) (*UnionTypeConfiguration, error) {
	t := &UnionTypeConfiguration{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	for _, ref := range types {
		if err := t.AddType(ref); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Kind implements TypeConfiguration.
func (*UnionTypeConfiguration) Kind() TypeKind {
	return TypeKindUnion
}

// Extension implements TypeConfiguration.
func (t *UnionTypeConfiguration) Extension() bool {
	return t.IsExtension
}

// Members implements TypeConfiguration. A union has no nested configurations.
func (*UnionTypeConfiguration) Members() []Configuration {
	return nil
}

// AddType adds a possible type. Duplicated references are ignored.
func (t *UnionTypeConfiguration) AddType(ref TypeReference) error {
	if t.IsSealed() {
		return ErrConfigurationSealed
	}
	if ref == nil {
		return newNilError("configuration.AddType", "type reference")
	}
	if !containsTypeReference(t.Types, ref) {
		t.Types = append(t.Types, ref)
	}
	return nil
}

// Copy returns a deep copy of the type configuration.
func (t *UnionTypeConfiguration) Copy() *UnionTypeConfiguration {
	c := &UnionTypeConfiguration{}
	t.TypeSystemConfiguration.copyTo(&c.TypeSystemConfiguration)
	c.Types = append([]TypeReference(nil), t.Types...)
	c.RuntimeType = t.RuntimeType
	c.IsExtension = t.IsExtension
	c.ResolveAbstractType = t.ResolveAbstractType
	return c
}

// CopyTo copies t into target.
func (t *UnionTypeConfiguration) CopyTo(target *UnionTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	*target = *t.Copy()
	return nil
}

// MergeInto merges the union type extension t into target. Types are appended without duplicates.
func (t *UnionTypeConfiguration) MergeInto(target *UnionTypeConfiguration) error {
	if target.IsSealed() {
		return ErrConfigurationSealed
	}
	t.TypeSystemConfiguration.mergeInto(&target.TypeSystemConfiguration)
	for _, ref := range t.Types {
		if !containsTypeReference(target.Types, ref) {
			target.Types = append(target.Types, ref)
		}
	}
	if t.ResolveAbstractType != nil && target.ResolveAbstractType == nil {
		target.ResolveAbstractType = t.ResolveAbstractType
	}
	return nil
}

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
	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
)

// MergeOptions configures MergeInto of type configurations.
type MergeOptions struct {
	// Logger receives debug logs about fields that are skipped or replaced. Nil disables logging.
	Logger *zap.Logger
}

func (opts *MergeOptions) logger() *zap.Logger {
	if opts == nil || opts.Logger == nil {
		return zap.NewNop()
	}
	return opts.Logger
}

// Merge merges the extension into the type configuration with the same kind. It fails with an
// ErrKindSchema error if the kinds differ.
func Merge(extension TypeConfiguration, target TypeConfiguration, opts *MergeOptions) error {
	const op graphql.Op = "configuration.Merge"

	mismatch := func() error {
		return graphql.NewError(
			"Cannot merge "+extension.Kind().String()+" "+extension.Name()+" into "+
				target.Kind().String()+" "+target.Name()+".",
			op, graphql.TypeCoordinate(target.Name()), graphql.ErrKindSchema)
	}

	switch extension := extension.(type) {
	case *ObjectTypeConfiguration:
		if target, ok := target.(*ObjectTypeConfiguration); ok {
			return extension.MergeInto(target, opts)
		}
	case *InterfaceTypeConfiguration:
		if target, ok := target.(*InterfaceTypeConfiguration); ok {
			return extension.MergeInto(target, opts)
		}
	case *InputObjectTypeConfiguration:
		if target, ok := target.(*InputObjectTypeConfiguration); ok {
			return extension.MergeInto(target)
		}
	case *EnumTypeConfiguration:
		if target, ok := target.(*EnumTypeConfiguration); ok {
			return extension.MergeInto(target)
		}
	case *UnionTypeConfiguration:
		if target, ok := target.(*UnionTypeConfiguration); ok {
			return extension.MergeInto(target)
		}
	case *ScalarTypeConfiguration:
		if target, ok := target.(*ScalarTypeConfiguration); ok {
			return extension.MergeInto(target)
		}
	case *DirectiveTypeConfiguration:
		if target, ok := target.(*DirectiveTypeConfiguration); ok {
			return extension.MergeInto(target)
		}
	}

	return mismatch()
}

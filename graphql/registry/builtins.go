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

package registry

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/scalar"
)

func builtinScalars() []*configuration.ScalarTypeConfiguration {
	leaves := scalar.Builtins()
	result := make([]*configuration.ScalarTypeConfiguration, len(leaves))
	for i, leaf := range leaves {
		t, err := configuration.NewScalarType(leaf)
		if err != nil {
			panic(err)
		}
		result[i] = t
	}
	return result
}

func mustDirective(name string, description string, locations ...ast.DirectiveLocation) *configuration.DirectiveTypeConfiguration {
	directive, err := configuration.NewDirectiveType(name, locations...)
	if err != nil {
		panic(err)
	}
	directive.Description = description
	return directive
}

func mustArgument(directive *configuration.DirectiveTypeConfiguration, name string, t configuration.TypeReference, defaultValue *ast.Value) {
	arg := configuration.MustNewArgument(name, t)
	arg.DefaultValue = defaultValue
	if err := directive.AddArgument(arg); err != nil {
		panic(err)
	}
}

// builtinDirectives returns the directives defined by GraphQL.
func builtinDirectives() []*configuration.DirectiveTypeConfiguration {
	skip := mustDirective("skip",
		"Directs the executor to skip this field or fragment when the `if` argument is true.",
		ast.LocationField, ast.LocationFragmentSpread, ast.LocationInlineFragment)
	mustArgument(skip, "if", configuration.NonNullSyntaxType("Boolean"), nil)

	include := mustDirective("include",
		"Directs the executor to include this field or fragment only when the `if` argument is true.",
		ast.LocationField, ast.LocationFragmentSpread, ast.LocationInlineFragment)
	mustArgument(include, "if", configuration.NonNullSyntaxType("Boolean"), nil)

	deprecated := mustDirective("deprecated",
		"Marks an element of a GraphQL schema as no longer supported.",
		ast.LocationFieldDefinition, ast.LocationArgumentDefinition, ast.LocationInputFieldDefinition,
		ast.LocationEnumValue)
	mustArgument(deprecated, "reason", configuration.NamedSyntaxType("String"), &ast.Value{
		Kind: ast.StringValue,
		Raw:  configuration.DefaultDeprecationReason,
	})

	specifiedBy := mustDirective("specifiedBy",
		"Exposes a URL that specifies the behaviour of this scalar.",
		ast.LocationScalar)
	mustArgument(specifiedBy, "url", configuration.NonNullSyntaxType("String"), nil)

	return []*configuration.DirectiveTypeConfiguration{skip, include, deprecated, specifiedBy}
}

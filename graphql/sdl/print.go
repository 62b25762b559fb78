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

package sdl

import (
	"io"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/registry"
)

// DefaultIndent is used by Print when PrintOptions.Indent is empty.
const DefaultIndent = "  "

// PrintOptions configures Print.
type PrintOptions struct {
	// IncludeBuiltins prints the types and directives registered automatically by the registry.
	IncludeBuiltins bool

	// Indent is the string used to indent fields and values.
	Indent string
}

// errWriter keeps the first write error since the formatter drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}

// Print writes the directives and the types in ts to w in SDL. Both are sorted by name.
func Print(w io.Writer, ts *registry.TypeSystem, opts PrintOptions) error {
	indent := opts.Indent
	if len(indent) == 0 {
		indent = DefaultIndent
	}

	ew := &errWriter{w: w}
	// Built-in definitions are filtered by Document.
	formatter.NewFormatter(ew, formatter.WithIndent(indent), formatter.WithBuiltin()).
		FormatSchemaDocument(Document(ts, opts.IncludeBuiltins))
	return ew.err
}

// Document converts ts into a schema document.
func Document(ts *registry.TypeSystem, includeBuiltins bool) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}

	for _, directive := range ts.Directives() {
		if !includeBuiltins && ts.IsBuiltin("@"+directive.Name()) {
			continue
		}
		doc.Directives = append(doc.Directives, &ast.DirectiveDefinition{
			Description:  directive.Description,
			Name:         directive.Name(),
			Arguments:    argumentDefinitions(directive.Arguments),
			Locations:    directive.Locations,
			IsRepeatable: directive.IsRepeatable,
		})
	}

	for _, t := range ts.Types() {
		if !includeBuiltins && ts.IsBuiltin(t.Name()) {
			continue
		}
		doc.Definitions = append(doc.Definitions, definition(t))
	}

	return doc
}

func astType(ref configuration.TypeReference) *ast.Type {
	switch ref := ref.(type) {
	case configuration.SyntaxTypeReference:
		if ref.Type != nil {
			return ref.Type
		}
	case *configuration.SyntaxTypeReference:
		if ref != nil && ref.Type != nil {
			return ref.Type
		}
	}
	if ref == nil {
		return nil
	}
	return ast.NamedType(ref.String(), nil)
}

func typeNames(refs []configuration.TypeReference) []string {
	if len(refs) == 0 {
		return nil
	}
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.TypeName()
	}
	return names
}

func directiveList(c configuration.Configuration) ast.DirectiveList {
	var list ast.DirectiveList
	for _, directive := range c.Base().Directives() {
		list = append(list, &ast.Directive{
			Name:      directive.Name,
			Arguments: directive.Arguments,
		})
	}
	return list
}

// withDeprecation appends @deprecated to list. The reason is omitted when it is the default one.
func withDeprecation(list ast.DirectiveList, deprecated bool, reason string) ast.DirectiveList {
	if !deprecated {
		return list
	}
	directive := &ast.Directive{Name: "deprecated"}
	if reason != configuration.DefaultDeprecationReason {
		directive.Arguments = ast.ArgumentList{{
			Name:  "reason",
			Value: &ast.Value{Kind: ast.StringValue, Raw: reason},
		}}
	}
	return append(list, directive)
}

func argumentDefinition(arg *configuration.ArgumentConfiguration) *ast.ArgumentDefinition {
	return &ast.ArgumentDefinition{
		Description:  arg.Description,
		Name:         arg.Name(),
		DefaultValue: arg.DefaultValue,
		Type:         astType(arg.Type),
		Directives:   withDeprecation(directiveList(arg), arg.IsDeprecated(), arg.DeprecationReason()),
	}
}

func argumentDefinitions(args []*configuration.ArgumentConfiguration) ast.ArgumentDefinitionList {
	if len(args) == 0 {
		return nil
	}
	list := make(ast.ArgumentDefinitionList, len(args))
	for i, arg := range args {
		list[i] = argumentDefinition(arg)
	}
	return list
}

func outputField(field *configuration.OutputFieldConfiguration) *ast.FieldDefinition {
	return &ast.FieldDefinition{
		Description: field.Description,
		Name:        field.Name(),
		Arguments:   argumentDefinitions(field.Arguments),
		Type:        astType(field.Type),
		Directives:  withDeprecation(directiveList(field), field.IsDeprecated(), field.DeprecationReason()),
	}
}

func definition(t configuration.TypeConfiguration) *ast.Definition {
	def := &ast.Definition{
		Description: t.Base().Description,
		Name:        t.Name(),
		Directives:  directiveList(t),
	}

	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		def.Kind = ast.Object
		def.Interfaces = typeNames(t.Interfaces)
		for _, field := range t.Fields {
			def.Fields = append(def.Fields, outputField(&field.OutputFieldConfiguration))
		}

	case *configuration.InterfaceTypeConfiguration:
		def.Kind = ast.Interface
		def.Interfaces = typeNames(t.Interfaces)
		for _, field := range t.Fields {
			def.Fields = append(def.Fields, outputField(&field.OutputFieldConfiguration))
		}

	case *configuration.UnionTypeConfiguration:
		def.Kind = ast.Union
		def.Types = typeNames(t.Types)

	case *configuration.EnumTypeConfiguration:
		def.Kind = ast.Enum
		for _, value := range t.Values {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Description: value.Description,
				Name:        value.Name(),
				Directives:  withDeprecation(directiveList(value), value.IsDeprecated(), value.DeprecationReason()),
			})
		}

	case *configuration.InputObjectTypeConfiguration:
		def.Kind = ast.InputObject
		for _, field := range t.Fields {
			arg := argumentDefinition(&field.ArgumentConfiguration)
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Description:  arg.Description,
				Name:         arg.Name,
				DefaultValue: arg.DefaultValue,
				Type:         arg.Type,
				Directives:   arg.Directives,
			})
		}

	case *configuration.ScalarTypeConfiguration:
		def.Kind = ast.Scalar
		if len(t.SpecifiedByURL) > 0 {
			def.Directives = append(def.Directives, &ast.Directive{
				Name: "specifiedBy",
				Arguments: ast.ArgumentList{{
					Name:  "url",
					Value: &ast.Value{Kind: ast.StringValue, Raw: t.SpecifiedByURL},
				}},
			})
		}
	}

	return def
}

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
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/scalar"
)

// Load parses the sources and builds a configuration for each directive definition, type
// definition and type extension in order. The returned error is a graphql.Errors.
func Load(sources ...*ast.Source) ([]configuration.Configuration, error) {
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, graphql.ErrorsFromGQLErrors(err)
	}

	l := &loader{}
	for _, def := range doc.Directives {
		l.directive(def)
	}
	for _, def := range doc.Definitions {
		l.definition(def, false)
	}
	for _, def := range doc.Extensions {
		l.definition(def, true)
	}

	if l.errs.HaveOccurred() {
		return nil, l.errs
	}
	return l.configs, nil
}

type loader struct {
	configs []configuration.Configuration
	errs    graphql.Errors
}

// fail records err with the source position if err doesn't carry a location.
func (l *loader) fail(err error, pos *ast.Position) {
	if err == nil {
		return
	}

	if e, ok := err.(*graphql.Error); ok {
		located := *e
		if len(located.Locations) == 0 && pos != nil {
			located.Locations = []graphql.ErrorLocation{graphql.ErrorLocationOf(pos)}
		}
		l.errs.Append(&located)
		return
	}

	args := []interface{}{err, graphql.ErrKindSchema}
	if pos != nil {
		args = append(args, graphql.ErrorLocationOf(pos))
	}
	l.errs.Emplace(err.Error(), args...)
}

func stringArgument(directive *ast.Directive, name string) string {
	arg := directive.Arguments.ForName(name)
	if arg == nil || arg.Value == nil {
		return ""
	}
	switch arg.Value.Kind {
	case ast.StringValue, ast.BlockValue:
		return arg.Value.Raw
	}
	return ""
}

// applyDirectives adds the directive applications to c. @deprecated is handed to deprecate when c
// can be deprecated.
func (l *loader) applyDirectives(c configuration.Configuration, directives ast.DirectiveList, deprecate func(reason string) error) {
	for _, directive := range directives {
		if directive.Name == "deprecated" && deprecate != nil {
			l.fail(deprecate(stringArgument(directive, "reason")), directive.Position)
			continue
		}
		l.fail(c.Base().AddDirective(&configuration.DirectiveConfiguration{
			Name:      directive.Name,
			Arguments: directive.Arguments,
			Position:  directive.Position,
		}), directive.Position)
	}
}

func outputType(t *ast.Type) configuration.TypeReference {
	return configuration.SyntaxTypeReference{Type: t, Context: configuration.TypeContextOutput}
}

func inputType(t *ast.Type) configuration.TypeReference {
	return configuration.SyntaxTypeReference{Type: t, Context: configuration.TypeContextInput}
}

func (l *loader) argument(def *ast.ArgumentDefinition) *configuration.ArgumentConfiguration {
	arg, err := configuration.NewArgument(def.Name, inputType(def.Type))
	if err != nil {
		l.fail(err, def.Position)
		return nil
	}
	arg.Description = def.Description
	arg.DefaultValue = def.DefaultValue
	l.applyDirectives(arg, def.Directives, arg.Deprecate)
	return arg
}

func (l *loader) directive(def *ast.DirectiveDefinition) {
	directive, err := configuration.NewDirectiveType(def.Name, def.Locations...)
	if err != nil {
		l.fail(err, def.Position)
		return
	}
	directive.Description = def.Description
	directive.IsRepeatable = def.IsRepeatable

	for _, argDef := range def.Arguments {
		if arg := l.argument(argDef); arg != nil {
			l.fail(directive.AddArgument(arg), argDef.Position)
		}
	}

	l.configs = append(l.configs, directive)
}

func (l *loader) definition(def *ast.Definition, extension bool) {
	var (
		t   configuration.TypeConfiguration
		err error
	)

	switch def.Kind {
	case ast.Object:
		t, err = l.objectType(def, extension)
	case ast.Interface:
		t, err = l.interfaceType(def, extension)
	case ast.Union:
		t, err = l.unionType(def, extension)
	case ast.Enum:
		t, err = l.enumType(def, extension)
	case ast.InputObject:
		t, err = l.inputObjectType(def, extension)
	case ast.Scalar:
		t, err = l.scalarType(def, extension)
	default:
		l.errs.Emplace("Unsupported definition "+def.Name+" of kind "+string(def.Kind)+".",
			graphql.ErrKindSchema, graphql.ErrorLocationOf(def.Position))
		return
	}

	if err != nil {
		l.fail(err, def.Position)
		return
	}

	if len(def.Description) > 0 {
		t.Base().Description = def.Description
	}
	l.configs = append(l.configs, t)
}

func (l *loader) objectType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	t, err := configuration.NewObjectType(def.Name)
	if err != nil {
		return nil, err
	}
	t.IsExtension = extension

	for _, name := range def.Interfaces {
		l.fail(t.AddInterface(configuration.NamedSyntaxType(name)), def.Position)
	}

	for _, fieldDef := range def.Fields {
		field, err := configuration.NewObjectField(fieldDef.Name, outputType(fieldDef.Type))
		if err != nil {
			l.fail(err, fieldDef.Position)
			continue
		}
		field.Description = fieldDef.Description
		for _, argDef := range fieldDef.Arguments {
			if arg := l.argument(argDef); arg != nil {
				l.fail(field.AddArgument(arg), argDef.Position)
			}
		}
		l.applyDirectives(field, fieldDef.Directives, field.Deprecate)
		l.fail(t.AddField(field), fieldDef.Position)
	}

	l.applyDirectives(t, def.Directives, nil)
	return t, nil
}

func (l *loader) interfaceType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	t, err := configuration.NewInterfaceType(def.Name)
	if err != nil {
		return nil, err
	}
	t.IsExtension = extension

	for _, name := range def.Interfaces {
		l.fail(t.AddInterface(configuration.NamedSyntaxType(name)), def.Position)
	}

	for _, fieldDef := range def.Fields {
		field, err := configuration.NewInterfaceField(fieldDef.Name, outputType(fieldDef.Type))
		if err != nil {
			l.fail(err, fieldDef.Position)
			continue
		}
		field.Description = fieldDef.Description
		for _, argDef := range fieldDef.Arguments {
			if arg := l.argument(argDef); arg != nil {
				l.fail(field.AddArgument(arg), argDef.Position)
			}
		}
		l.applyDirectives(field, fieldDef.Directives, field.Deprecate)
		l.fail(t.AddField(field), fieldDef.Position)
	}

	l.applyDirectives(t, def.Directives, nil)
	return t, nil
}

func (l *loader) unionType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	types := make([]configuration.TypeReference, len(def.Types))
	for i, name := range def.Types {
		types[i] = configuration.NamedSyntaxType(name)
	}

	t, err := configuration.NewUnionType(def.Name, types...)
	if err != nil {
		return nil, err
	}
	t.IsExtension = extension

	l.applyDirectives(t, def.Directives, nil)
	return t, nil
}

func (l *loader) enumType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	t, err := configuration.NewEnumType(def.Name)
	if err != nil {
		return nil, err
	}
	t.IsExtension = extension

	for _, valueDef := range def.EnumValues {
		value, err := configuration.NewEnumValue(valueDef.Name, valueDef.Name)
		if err != nil {
			l.fail(err, valueDef.Position)
			continue
		}
		value.Description = valueDef.Description
		l.applyDirectives(value, valueDef.Directives, value.Deprecate)
		l.fail(t.AddValue(value), valueDef.Position)
	}

	l.applyDirectives(t, def.Directives, nil)
	return t, nil
}

func (l *loader) inputObjectType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	t, err := configuration.NewInputObjectType(def.Name)
	if err != nil {
		return nil, err
	}
	t.IsExtension = extension

	for _, fieldDef := range def.Fields {
		field, err := configuration.NewInputField(fieldDef.Name, inputType(fieldDef.Type))
		if err != nil {
			l.fail(err, fieldDef.Position)
			continue
		}
		field.Description = fieldDef.Description
		field.DefaultValue = fieldDef.DefaultValue
		l.applyDirectives(field, fieldDef.Directives, field.Deprecate)
		l.fail(t.AddField(field), fieldDef.Position)
	}

	l.applyDirectives(t, def.Directives, nil)
	return t, nil
}

// scalarType builds a scalar configuration. Scalars provided by package scalar get their
// implementation.
func (l *loader) scalarType(def *ast.Definition, extension bool) (configuration.TypeConfiguration, error) {
	var (
		t   *configuration.ScalarTypeConfiguration
		err error
	)

	if extension {
		t, err = configuration.NewScalarTypeExtension(def.Name)
	} else if leaf, ok := scalar.Lookup(def.Name); ok {
		t, err = configuration.NewScalarType(leaf)
	} else {
		t = &configuration.ScalarTypeConfiguration{}
		err = t.SetName(def.Name)
	}
	if err != nil {
		return nil, err
	}

	directives := make(ast.DirectiveList, 0, len(def.Directives))
	for _, directive := range def.Directives {
		if directive.Name == "specifiedBy" {
			t.SpecifiedByURL = stringArgument(directive, "url")
			continue
		}
		directives = append(directives, directive)
	}
	l.applyDirectives(t, directives, nil)

	return t, nil
}

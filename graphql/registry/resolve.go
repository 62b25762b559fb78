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
	"fmt"
	"reflect"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/internal/util"
)

// runtimeIndex maps Go types (with pointers removed) to the names of the GraphQL types bound to
// them. The first binding of a Go type wins.
type runtimeIndex map[reflect.Type]string

func (index runtimeIndex) add(t reflect.Type, name string) {
	if t == nil {
		return
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if _, exists := index[t]; !exists {
		index[t] = name
	}
}

// typeOf returns the GraphQL type of values of Go type t. Values of pointer and interface types
// are nullable. Slices are nullable lists while arrays are non-null lists. It returns nil if t or
// its element type is not bound to any GraphQL type.
func (index runtimeIndex) typeOf(t reflect.Type) *ast.Type {
	switch t.Kind() {
	case reflect.Ptr:
		elem := index.typeOf(t.Elem())
		if elem == nil {
			return nil
		}
		nullable := *elem
		nullable.NonNull = false
		return &nullable

	case reflect.Slice:
		elem := index.typeOf(t.Elem())
		if elem == nil {
			return nil
		}
		return ast.ListType(elem, nil)

	case reflect.Array:
		elem := index.typeOf(t.Elem())
		if elem == nil {
			return nil
		}
		return ast.NonNullListType(elem, nil)

	case reflect.Interface:
		name, exists := index[t]
		if !exists {
			return nil
		}
		return ast.NamedType(name, nil)
	}

	name, exists := index[t]
	if !exists {
		return nil
	}
	return ast.NonNullNamedType(name, nil)
}

// resolver resolves type references during the completion.
type resolver struct {
	r      *Registry
	input  runtimeIndex
	output runtimeIndex
	errs   graphql.Errors
}

func newResolver(r *Registry) *resolver {
	rs := &resolver{
		r:      r,
		input:  runtimeIndex{},
		output: runtimeIndex{},
	}

	for _, name := range r.typeNames {
		switch t := r.types[name].(type) {
		case *configuration.ObjectTypeConfiguration:
			rs.output.add(t.RuntimeType, name)
			for _, known := range t.KnownRuntimeTypes {
				rs.output.add(known, name)
			}
		case *configuration.InterfaceTypeConfiguration:
			rs.output.add(t.RuntimeType, name)
		case *configuration.UnionTypeConfiguration:
			rs.output.add(t.RuntimeType, name)
		case *configuration.InputObjectTypeConfiguration:
			rs.input.add(t.RuntimeType, name)
		case *configuration.EnumTypeConfiguration:
			rs.output.add(t.RuntimeType, name)
			rs.input.add(t.RuntimeType, name)
		case *configuration.ScalarTypeConfiguration:
			if t.Scalar != nil {
				rs.output.add(t.Scalar.RuntimeType(), name)
				rs.input.add(t.Scalar.RuntimeType(), name)
			}
		}
	}

	return rs
}

func (rs *resolver) emplace(message string, coordinate graphql.SchemaCoordinate) {
	rs.errs.Emplace(message, opComplete, coordinate, graphql.ErrKindSchema)
}

// reference resolves ref into a SyntaxTypeReference in the given context.
func (rs *resolver) reference(ref configuration.TypeReference, context configuration.TypeContext) (configuration.SyntaxTypeReference, bool) {
	switch ref := ref.(type) {
	case configuration.SyntaxTypeReference:
		return ref.WithContext(context), ref.Type != nil

	case *configuration.SyntaxTypeReference:
		if ref == nil {
			break
		}
		return ref.WithContext(context), ref.Type != nil

	case configuration.RuntimeTypeReference:
		return rs.runtimeReference(ref.Type, context)

	case *configuration.RuntimeTypeReference:
		if ref == nil {
			break
		}
		return rs.runtimeReference(ref.Type, context)
	}

	return configuration.SyntaxTypeReference{}, false
}

func (rs *resolver) runtimeReference(t reflect.Type, context configuration.TypeContext) (configuration.SyntaxTypeReference, bool) {
	if t == nil {
		return configuration.SyntaxTypeReference{}, false
	}

	index := rs.output
	if context == configuration.TypeContextInput {
		index = rs.input
	}

	resolved := index.typeOf(t)
	if resolved == nil {
		return configuration.SyntaxTypeReference{}, false
	}
	return configuration.SyntaxTypeReference{Type: resolved, Context: context}, true
}

// namedType looks up the named type and checks whether it can be used in context.
func (rs *resolver) namedType(name string, context configuration.TypeContext, coordinate graphql.SchemaCoordinate) (configuration.TypeConfiguration, bool) {
	t, exists := rs.r.types[name]
	if !exists {
		rs.emplace(fmt.Sprintf(`Unknown type "%s" referenced by %s.%s`,
			name, coordinate, util.DidYouMean(name, rs.r.typeNames)), coordinate)
		return nil, false
	}

	var fits bool
	switch t.Kind() {
	case configuration.TypeKindScalar, configuration.TypeKindEnum:
		fits = true
	case configuration.TypeKindObject, configuration.TypeKindInterface, configuration.TypeKindUnion:
		fits = context != configuration.TypeContextInput
	case configuration.TypeKindInputObject:
		fits = context != configuration.TypeContextOutput
	}
	if !fits {
		rs.emplace(fmt.Sprintf(`The type of %s must be an %s type but got %s "%s".`,
			coordinate, strings.ToLower(context.String()), t.Kind(), name), coordinate)
		return nil, false
	}

	return t, true
}

// field resolves the type of a field, an argument or an input field. A field without type falls
// back to its RuntimeType.
func (rs *resolver) field(field *configuration.FieldConfiguration, context configuration.TypeContext, coordinate graphql.SchemaCoordinate) {
	ref := field.Type
	if ref == nil && field.RuntimeType != nil {
		ref = configuration.RuntimeType(field.RuntimeType, context)
	}
	if ref == nil {
		rs.emplace(fmt.Sprintf("The type of %s is not specified.", coordinate), coordinate)
		return
	}

	resolved, ok := rs.reference(ref, context)
	if !ok {
		rs.emplace(fmt.Sprintf("Cannot resolve the type of %s from %s.", coordinate, ref), coordinate)
		return
	}

	if _, ok := rs.namedType(resolved.TypeName(), context, coordinate); ok {
		field.Type = resolved
	}
}

// named resolves ref to a named type of the given kind.
func (rs *resolver) named(ref configuration.TypeReference, kind configuration.TypeKind, coordinate graphql.SchemaCoordinate, describe string) (configuration.TypeReference, bool) {
	resolved, ok := rs.reference(ref, configuration.TypeContextOutput)
	if !ok {
		rs.emplace(fmt.Sprintf("Cannot resolve the type %s of %s.", ref, coordinate), coordinate)
		return nil, false
	}

	name := resolved.TypeName()
	t, ok := rs.namedType(name, configuration.TypeContextOutput, coordinate)
	if !ok {
		return nil, false
	}
	if t.Kind() != kind {
		rs.emplace(fmt.Sprintf(`%s but %s "%s" is given.`, describe, t.Kind(), name), coordinate)
		return nil, false
	}

	return configuration.NamedSyntaxType(name).WithContext(configuration.TypeContextOutput), true
}

func (rs *resolver) interfaces(refs []configuration.TypeReference, coordinate graphql.SchemaCoordinate) []configuration.TypeReference {
	result := make([]configuration.TypeReference, 0, len(refs))
	for _, ref := range refs {
		resolved, ok := rs.named(ref, configuration.TypeKindInterface, coordinate,
			fmt.Sprintf(`Type "%s" can only implement interfaces`, coordinate))
		if ok {
			result = append(result, resolved)
		}
	}
	return result
}

// resolve runs the ApplyOnBeforeCompletion tasks and then resolves every type reference.
func (r *Registry) resolve() graphql.Errors {
	if errs := r.runTasks(configuration.ApplyOnBeforeCompletion, r.roots()); errs.HaveOccurred() {
		return errs
	}

	var errs graphql.Errors
	for _, name := range r.typeNames {
		if err := r.prepareType(r.types[name]); err != nil {
			errs.Append(err)
		}
	}
	if errs.HaveOccurred() {
		return errs
	}

	rs := newResolver(r)

	for _, root := range r.roots() {
		rs.resolveType(root)
	}
	if rs.errs.HaveOccurred() {
		return rs.errs
	}

	for _, name := range r.typeNames {
		rs.verifyType(r.types[name])
	}

	for _, root := range r.roots() {
		visit(root, func(c configuration.Configuration, coordinate graphql.SchemaCoordinate, _ ast.DirectiveLocation) {
			rs.dependencies(c, coordinate)
		})
	}

	return rs.errs
}

// prepareType drops ignored members and cleans the repeatable middleware and result formatters.
func (r *Registry) prepareType(t configuration.TypeConfiguration) error {
	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		fields := t.Fields[:0]
		for _, field := range t.Fields {
			if field.IsIgnored() {
				r.logger.Debug("drop ignored field", zap.String("field", t.Name()+"."+field.Name()))
				continue
			}
			if err := field.CleanRepeatableConfigurations(); err != nil {
				return err
			}
			fields = append(fields, field)
		}
		t.Fields = fields

	case *configuration.InterfaceTypeConfiguration:
		fields := t.Fields[:0]
		for _, field := range t.Fields {
			if field.IsIgnored() {
				r.logger.Debug("drop ignored field", zap.String("field", t.Name()+"."+field.Name()))
				continue
			}
			if err := field.CleanRepeatableConfigurations(); err != nil {
				return err
			}
			fields = append(fields, field)
		}
		t.Fields = fields

	case *configuration.InputObjectTypeConfiguration:
		fields := t.Fields[:0]
		for _, field := range t.Fields {
			if !field.IsIgnored() {
				fields = append(fields, field)
			}
		}
		t.Fields = fields

	case *configuration.EnumTypeConfiguration:
		values := t.Values[:0]
		for _, value := range t.Values {
			if !value.IsIgnored() {
				values = append(values, value)
			}
		}
		t.Values = values
	}

	return nil
}

func (rs *resolver) resolveType(t configuration.TypeConfiguration) {
	name := t.Name()
	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		for _, field := range t.Fields {
			rs.field(&field.FieldConfiguration, configuration.TypeContextOutput,
				graphql.FieldCoordinate(name, field.Name()))
			for _, arg := range field.Arguments {
				rs.field(&arg.FieldConfiguration, configuration.TypeContextInput,
					graphql.ArgumentCoordinate(name, field.Name(), arg.Name()))
			}
		}
		t.Interfaces = rs.interfaces(t.Interfaces, graphql.TypeCoordinate(name))

	case *configuration.InterfaceTypeConfiguration:
		for _, field := range t.Fields {
			rs.field(&field.FieldConfiguration, configuration.TypeContextOutput,
				graphql.FieldCoordinate(name, field.Name()))
			for _, arg := range field.Arguments {
				rs.field(&arg.FieldConfiguration, configuration.TypeContextInput,
					graphql.ArgumentCoordinate(name, field.Name(), arg.Name()))
			}
		}
		t.Interfaces = rs.interfaces(t.Interfaces, graphql.TypeCoordinate(name))

	case *configuration.InputObjectTypeConfiguration:
		for _, field := range t.Fields {
			rs.field(&field.FieldConfiguration, configuration.TypeContextInput,
				graphql.FieldCoordinate(name, field.Name()))
		}

	case *configuration.UnionTypeConfiguration:
		types := make([]configuration.TypeReference, 0, len(t.Types))
		for _, ref := range t.Types {
			resolved, ok := rs.named(ref, configuration.TypeKindObject, graphql.TypeCoordinate(name),
				fmt.Sprintf(`Union type "%s" can only include object types`, name))
			if ok {
				types = append(types, resolved)
			}
		}
		t.Types = types

	case *configuration.DirectiveTypeConfiguration:
		for _, arg := range t.Arguments {
			rs.field(&arg.FieldConfiguration, configuration.TypeContextInput,
				graphql.SchemaCoordinate("@"+name+"("+arg.Name()+":)"))
		}
	}
}

// verifyType checks that the type defines members and implements the fields of its interfaces.
func (rs *resolver) verifyType(t configuration.TypeConfiguration) {
	name := t.Name()
	coordinate := graphql.TypeCoordinate(name)

	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		if len(t.Fields) == 0 {
			rs.emplace(fmt.Sprintf(`Object type "%s" must define one or more fields.`, name), coordinate)
		}
		for _, ref := range t.Interfaces {
			rs.implements(name, func(field string) bool {
				_, exists := t.Field(field)
				return exists
			}, ref.TypeName())
		}

	case *configuration.InterfaceTypeConfiguration:
		if len(t.Fields) == 0 {
			rs.emplace(fmt.Sprintf(`Interface type "%s" must define one or more fields.`, name), coordinate)
		}
		for _, ref := range t.Interfaces {
			rs.implements(name, func(field string) bool {
				_, exists := t.Field(field)
				return exists
			}, ref.TypeName())
		}

	case *configuration.InputObjectTypeConfiguration:
		if len(t.Fields) == 0 {
			rs.emplace(fmt.Sprintf(`Input object type "%s" must define one or more fields.`, name), coordinate)
		}

	case *configuration.EnumTypeConfiguration:
		if len(t.Values) == 0 {
			rs.emplace(fmt.Sprintf(`Enum type "%s" must define one or more values.`, name), coordinate)
		}

	case *configuration.UnionTypeConfiguration:
		if len(t.Types) == 0 {
			rs.emplace(fmt.Sprintf(`Union type "%s" must define one or more member types.`, name), coordinate)
		}
	}
}

func (rs *resolver) implements(typeName string, hasField func(name string) bool, interfaceName string) {
	iface, ok := rs.r.types[interfaceName].(*configuration.InterfaceTypeConfiguration)
	if !ok {
		return
	}
	for _, field := range iface.Fields {
		if !hasField(field.Name()) {
			rs.emplace(fmt.Sprintf(`Interface field %s expected but %s does not provide it.`,
				graphql.FieldCoordinate(interfaceName, field.Name()), typeName),
				graphql.TypeCoordinate(typeName))
		}
	}
}

// dependencies checks that the types c depends on exist.
func (rs *resolver) dependencies(c configuration.Configuration, coordinate graphql.SchemaCoordinate) {
	for _, dependency := range c.Base().Dependencies() {
		if dependency.Reference == nil {
			continue
		}

		name := dependency.Reference.TypeName()
		if len(name) == 0 {
			resolved, ok := rs.reference(dependency.Reference, configuration.TypeContextNone)
			if !ok {
				// Runtime dependencies may bind to input types.
				resolved, ok = rs.reference(dependency.Reference, configuration.TypeContextInput)
			}
			if !ok {
				rs.emplace(fmt.Sprintf("Cannot resolve the dependency %s of %s.",
					dependency.Reference, coordinate), coordinate)
				continue
			}
			name = resolved.TypeName()
		}

		if _, exists := rs.r.types[name]; !exists {
			rs.emplace(fmt.Sprintf(`Unknown type "%s" required by %s.%s`,
				name, coordinate, util.DidYouMean(name, rs.r.typeNames)), coordinate)
		}
	}
}

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
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/botobag/graphconf/graphql/configuration"
)

// TypeSystem contains the completed and sealed configurations.
type TypeSystem struct {
	types      map[string]configuration.TypeConfiguration
	typeNames  []string
	directives map[string]*configuration.DirectiveTypeConfiguration

	// Sorted directive names
	directiveNames []string

	builtins map[string]bool
}

func newTypeSystem(r *Registry) *TypeSystem {
	ts := &TypeSystem{
		types:          r.types,
		typeNames:      append([]string(nil), r.typeNames...),
		directives:     r.directives,
		directiveNames: append([]string(nil), r.directiveNames...),
		builtins:       make(map[string]bool, len(r.builtins)),
	}
	sort.Strings(ts.typeNames)
	sort.Strings(ts.directiveNames)
	for name := range r.builtins {
		ts.builtins[name] = true
	}
	return ts
}

// Type finds the type with the given name.
func (ts *TypeSystem) Type(name string) (configuration.TypeConfiguration, bool) {
	t, exists := ts.types[name]
	return t, exists
}

// Types returns the types sorted by name.
func (ts *TypeSystem) Types() []configuration.TypeConfiguration {
	types := make([]configuration.TypeConfiguration, len(ts.typeNames))
	for i, name := range ts.typeNames {
		types[i] = ts.types[name]
	}
	return types
}

// Directive finds the directive type with the given name (without "@").
func (ts *TypeSystem) Directive(name string) (*configuration.DirectiveTypeConfiguration, bool) {
	directive, exists := ts.directives[name]
	return directive, exists
}

// Directives returns the directive types sorted by name.
func (ts *TypeSystem) Directives() []*configuration.DirectiveTypeConfiguration {
	directives := make([]*configuration.DirectiveTypeConfiguration, len(ts.directiveNames))
	for i, name := range ts.directiveNames {
		directives[i] = ts.directives[name]
	}
	return directives
}

// IsBuiltin returns true if the type was registered automatically by the registry. Directive
// names are prefixed with "@".
func (ts *TypeSystem) IsBuiltin(name string) bool {
	return ts.builtins[name]
}

// MarshalJSON implements json.Marshaler. Built-in types and directives are omitted.
func (ts *TypeSystem) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	ts.Encode(stream, false)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// Encode writes the type system to stream in a form similar to the result of an introspection
// query.
func (ts *TypeSystem) Encode(stream *jsoniter.Stream, includeBuiltins bool) {
	stream.WriteObjectStart()

	stream.WriteObjectField("types")
	stream.WriteArrayStart()
	first := true
	for _, name := range ts.typeNames {
		if !includeBuiltins && ts.builtins[name] {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		first = false
		encodeType(stream, ts.types[name])
	}
	stream.WriteArrayEnd()

	stream.WriteMore()
	stream.WriteObjectField("directives")
	stream.WriteArrayStart()
	first = true
	for _, name := range ts.directiveNames {
		if !includeBuiltins && ts.builtins["@"+name] {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		first = false
		encodeDirective(stream, ts.directives[name])
	}
	stream.WriteArrayEnd()

	stream.WriteObjectEnd()
}

func writeStringField(stream *jsoniter.Stream, field string, value string) {
	stream.WriteMore()
	stream.WriteObjectField(field)
	stream.WriteString(value)
}

func writeNamedHeader(stream *jsoniter.Stream, c configuration.Configuration, kind string) {
	stream.WriteObjectField("name")
	stream.WriteString(c.Name())
	if len(kind) > 0 {
		writeStringField(stream, "kind", kind)
	}
	if description := c.Base().Description; len(description) > 0 {
		writeStringField(stream, "description", description)
	}
}

func writeDeprecation(stream *jsoniter.Stream, deprecated bool, reason string) {
	if !deprecated {
		return
	}
	stream.WriteMore()
	stream.WriteObjectField("isDeprecated")
	stream.WriteTrue()
	writeStringField(stream, "deprecationReason", reason)
}

func writeTypeNames(stream *jsoniter.Stream, field string, refs []configuration.TypeReference) {
	if len(refs) == 0 {
		return
	}
	stream.WriteMore()
	stream.WriteObjectField(field)
	stream.WriteArrayStart()
	for i, ref := range refs {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(ref.TypeName())
	}
	stream.WriteArrayEnd()
}

func encodeArgument(stream *jsoniter.Stream, arg *configuration.ArgumentConfiguration) {
	stream.WriteObjectStart()
	writeNamedHeader(stream, arg, "")
	if arg.Type != nil {
		writeStringField(stream, "type", arg.Type.String())
	}
	if arg.DefaultValue != nil {
		writeStringField(stream, "defaultValue", arg.DefaultValue.String())
	}
	writeDeprecation(stream, arg.IsDeprecated(), arg.DeprecationReason())
	stream.WriteObjectEnd()
}

func writeArguments(stream *jsoniter.Stream, field string, args []*configuration.ArgumentConfiguration) {
	if len(args) == 0 {
		return
	}
	stream.WriteMore()
	stream.WriteObjectField(field)
	stream.WriteArrayStart()
	for i, arg := range args {
		if i > 0 {
			stream.WriteMore()
		}
		encodeArgument(stream, arg)
	}
	stream.WriteArrayEnd()
}

func encodeOutputField(stream *jsoniter.Stream, field *configuration.OutputFieldConfiguration) {
	stream.WriteObjectStart()
	writeNamedHeader(stream, field, "")
	if field.Type != nil {
		writeStringField(stream, "type", field.Type.String())
	}
	writeArguments(stream, "args", field.Arguments)
	writeDeprecation(stream, field.IsDeprecated(), field.DeprecationReason())
	stream.WriteObjectEnd()
}

func encodeType(stream *jsoniter.Stream, t configuration.TypeConfiguration) {
	stream.WriteObjectStart()
	writeNamedHeader(stream, t, t.Kind().String())

	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		writeTypeNames(stream, "interfaces", t.Interfaces)
		stream.WriteMore()
		stream.WriteObjectField("fields")
		stream.WriteArrayStart()
		for i, field := range t.Fields {
			if i > 0 {
				stream.WriteMore()
			}
			encodeOutputField(stream, &field.OutputFieldConfiguration)
		}
		stream.WriteArrayEnd()

	case *configuration.InterfaceTypeConfiguration:
		writeTypeNames(stream, "interfaces", t.Interfaces)
		stream.WriteMore()
		stream.WriteObjectField("fields")
		stream.WriteArrayStart()
		for i, field := range t.Fields {
			if i > 0 {
				stream.WriteMore()
			}
			encodeOutputField(stream, &field.OutputFieldConfiguration)
		}
		stream.WriteArrayEnd()

	case *configuration.UnionTypeConfiguration:
		writeTypeNames(stream, "possibleTypes", t.Types)

	case *configuration.EnumTypeConfiguration:
		stream.WriteMore()
		stream.WriteObjectField("enumValues")
		stream.WriteArrayStart()
		for i, value := range t.Values {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			writeNamedHeader(stream, value, "")
			writeDeprecation(stream, value.IsDeprecated(), value.DeprecationReason())
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()

	case *configuration.InputObjectTypeConfiguration:
		args := make([]*configuration.ArgumentConfiguration, len(t.Fields))
		for i, field := range t.Fields {
			args[i] = &field.ArgumentConfiguration
		}
		writeArguments(stream, "inputFields", args)

	case *configuration.ScalarTypeConfiguration:
		if len(t.SpecifiedByURL) > 0 {
			writeStringField(stream, "specifiedByURL", t.SpecifiedByURL)
		}
	}

	stream.WriteObjectEnd()
}

func encodeDirective(stream *jsoniter.Stream, directive *configuration.DirectiveTypeConfiguration) {
	stream.WriteObjectStart()
	writeNamedHeader(stream, directive, "")

	stream.WriteMore()
	stream.WriteObjectField("locations")
	stream.WriteArrayStart()
	for i, location := range directive.Locations {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(string(location))
	}
	stream.WriteArrayEnd()

	stream.WriteMore()
	stream.WriteObjectField("isRepeatable")
	stream.WriteBool(directive.IsRepeatable)

	writeArguments(stream, "args", directive.Arguments)
	stream.WriteObjectEnd()
}

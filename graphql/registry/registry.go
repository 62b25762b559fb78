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
	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/scalar"
)

// Options configures a Registry.
type Options struct {
	// Logger receives the logs of the completion. Defaults to a no-op logger.
	Logger *zap.Logger

	// DefaultFieldBindingType applies to the object types whose FieldBindingType is unset after
	// extensions were merged. Defaults to BindingExplicit.
	DefaultFieldBindingType configuration.BindingBehavior

	// ExcludeBuiltinScalars disables the automatic registration of the scalars in package scalar
	// other than the five scalars defined by GraphQL.
	ExcludeBuiltinScalars bool
}

// Registry collects type configurations and completes them into a TypeSystem. A Registry is not
// safe for concurrent use and can be completed once.
type Registry struct {
	logger                  *zap.Logger
	defaultFieldBindingType configuration.BindingBehavior

	// Type declarations by name and in order of registration
	types     map[string]configuration.TypeConfiguration
	typeNames []string

	// Directive definitions by name and in order of registration
	directives     map[string]*configuration.DirectiveTypeConfiguration
	directiveNames []string

	// Type extensions in order of registration
	extensions []configuration.TypeConfiguration

	// Names of the types and directives that were registered automatically and have not been
	// replaced
	builtins map[string]bool

	completed bool
}

// New creates a Registry.
func New(opts Options) *Registry {
	r := &Registry{
		logger:                  opts.Logger,
		defaultFieldBindingType: opts.DefaultFieldBindingType,
		types:                   map[string]configuration.TypeConfiguration{},
		directives:              map[string]*configuration.DirectiveTypeConfiguration{},
		builtins:                map[string]bool{},
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.defaultFieldBindingType == configuration.BindingUnset {
		r.defaultFieldBindingType = configuration.BindingExplicit
	}

	for _, t := range builtinScalars() {
		if opts.ExcludeBuiltinScalars && !scalar.IsSpecifiedScalar(t.Name()) {
			continue
		}
		r.addType(t)
		r.builtins[t.Name()] = true
	}
	for _, directive := range builtinDirectives() {
		r.addDirective(directive)
		r.builtins["@"+directive.Name()] = true
	}

	return r
}

func (r *Registry) addType(t configuration.TypeConfiguration) {
	if _, exists := r.types[t.Name()]; !exists {
		r.typeNames = append(r.typeNames, t.Name())
	}
	r.types[t.Name()] = t
}

func (r *Registry) addDirective(directive *configuration.DirectiveTypeConfiguration) {
	if _, exists := r.directives[directive.Name()]; !exists {
		r.directiveNames = append(r.directiveNames, directive.Name())
	}
	r.directives[directive.Name()] = directive
}

// Register adds configurations to the registry. Only type configurations (including directive
// types) can be registered. Declaring a type or a directive twice is an error unless the first
// declaration is a built-in one, in which case the built-in one is replaced. The whole batch is
// checked first so a failed call leaves the registry unchanged.
func (r *Registry) Register(configs ...configuration.Configuration) error {
	const op graphql.Op = "registry.Register"

	if r.completed {
		return graphql.NewError("Cannot register configurations into a completed registry.",
			op, graphql.ErrKindInvalidArgument)
	}

	types := make([]configuration.TypeConfiguration, len(configs))
	// Names declared by the batch; directives are keyed by "@name".
	declared := make(map[string]bool, len(configs))
	for i, c := range configs {
		if c == nil {
			return graphql.NewInvalidArgumentError(op, "Configuration must not be nil.")
		}
		if c.IsSealed() {
			return graphql.NewError("Configuration "+c.Name()+" is sealed.",
				op, graphql.TypeCoordinate(c.Name()), graphql.ErrKindInvalidArgument)
		}

		t, ok := c.(configuration.TypeConfiguration)
		if !ok {
			return graphql.NewInvalidArgumentError(op,
				"Configuration %s of type %T is not a type configuration.", c.Name(), c)
		}
		types[i] = t

		if _, ok := t.(*configuration.DirectiveTypeConfiguration); ok {
			key := "@" + t.Name()
			if _, exists := r.directives[t.Name()]; declared[key] || (exists && !r.builtins[key]) {
				return graphql.NewError("There can be only one directive named \"@"+t.Name()+"\".",
					op, graphql.DirectiveCoordinate(t.Name()), graphql.ErrKindSchema)
			}
			declared[key] = true
			continue
		}

		if t.Extension() {
			continue
		}

		existing, exists := r.types[t.Name()]
		if declared[t.Name()] || (exists && !r.builtins[t.Name()]) {
			return graphql.NewError("There can be only one type named \""+t.Name()+"\".",
				op, graphql.TypeCoordinate(t.Name()), graphql.ErrKindSchema)
		}
		if exists {
			if err := checkReplaceBuiltin(existing, t); err != nil {
				return err
			}
		}
		declared[t.Name()] = true
	}

	for _, t := range types {
		switch {
		case t.Kind() == configuration.TypeKindDirective:
			delete(r.builtins, "@"+t.Name())
			r.addDirective(t.(*configuration.DirectiveTypeConfiguration))

		case t.Extension():
			r.extensions = append(r.extensions, t)

		case r.builtins[t.Name()]:
			r.replaceBuiltin(r.types[t.Name()], t)

		default:
			r.addType(t)
		}
	}

	return nil
}

// checkReplaceBuiltin returns an error if t cannot replace the built-in type. Only scalars can be
// replaced.
func checkReplaceBuiltin(builtin configuration.TypeConfiguration, t configuration.TypeConfiguration) error {
	_, isBuiltinScalar := builtin.(*configuration.ScalarTypeConfiguration)
	_, isUserScalar := t.(*configuration.ScalarTypeConfiguration)
	if !isBuiltinScalar || !isUserScalar {
		return graphql.NewError("Type \""+t.Name()+"\" is a built-in "+builtin.Kind().String()+
			" type and cannot be redeclared as "+t.Kind().String()+".",
			graphql.Op("registry.Register"), graphql.TypeCoordinate(t.Name()), graphql.ErrKindSchema)
	}
	return nil
}

// replaceBuiltin replaces the built-in scalar with a user declaration. A scalar declaration
// without implementation inherits the one of the built-in scalar.
func (r *Registry) replaceBuiltin(builtin configuration.TypeConfiguration, t configuration.TypeConfiguration) {
	builtinScalar := builtin.(*configuration.ScalarTypeConfiguration)
	userScalar := t.(*configuration.ScalarTypeConfiguration)
	if userScalar.Scalar == nil {
		userScalar.Scalar = builtinScalar.Scalar
	}
	if len(userScalar.Description) == 0 {
		userScalar.Description = builtinScalar.Description
	}

	r.logger.Debug("replace built-in scalar", zap.String("type", t.Name()))
	delete(r.builtins, t.Name())
	r.addType(t)
}

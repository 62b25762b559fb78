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
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/internal/util"
)

const opComplete graphql.Op = "registry.Complete"

// taskContext is given to the configuration tasks.
type taskContext struct {
	r *Registry
}

var _ configuration.TaskContext = taskContext{}

// Type implements configuration.TaskContext. Directive types are looked up with their name
// prefixed with "@".
func (ctx taskContext) Type(name string) (configuration.TypeConfiguration, bool) {
	if strings.HasPrefix(name, "@") {
		directive, exists := ctx.r.directives[name[1:]]
		if !exists {
			return nil, false
		}
		return directive, true
	}
	t, exists := ctx.r.types[name]
	return t, exists
}

// Logger implements configuration.TaskContext.
func (ctx taskContext) Logger() *zap.Logger {
	return ctx.r.logger
}

// Complete runs the completion phases over the registered configurations and returns the
// resulting TypeSystem. It stops at the end of the first phase that reports errors. Every
// configuration in the returned TypeSystem is sealed.
func (r *Registry) Complete() (*TypeSystem, graphql.Errors) {
	if r.completed {
		return nil, graphql.ErrorsOf("The registry has already been completed.",
			opComplete, graphql.ErrKindInvalidArgument)
	}
	r.completed = true

	phases := []struct {
		name string
		run  func() graphql.Errors
	}{
		{"create", r.create},
		{"merge", r.mergeExtensions},
		{"directives", r.collapseDirectives},
		{"resolve", r.resolve},
		{"seal", r.seal},
	}

	for _, phase := range phases {
		if errs := phase.run(); errs.HaveOccurred() {
			r.logger.Warn("completion failed",
				zap.String("phase", phase.name),
				zap.Int("errors", len(errs.Errors)))
			return nil, errs
		}
		r.logger.Debug("completion phase done", zap.String("phase", phase.name))
	}

	return newTypeSystem(r), graphql.NoErrors()
}

// roots returns the type declarations followed by the directive types.
func (r *Registry) roots() []configuration.TypeConfiguration {
	roots := make([]configuration.TypeConfiguration, 0, len(r.typeNames)+len(r.directiveNames))
	for _, name := range r.typeNames {
		roots = append(roots, r.types[name])
	}
	for _, name := range r.directiveNames {
		roots = append(roots, r.directives[name])
	}
	return roots
}

func (r *Registry) runTasks(on configuration.ApplyOn, roots []configuration.TypeConfiguration) graphql.Errors {
	var (
		ctx  = taskContext{r}
		errs graphql.Errors
	)

	for _, root := range roots {
		configuration.Walk(root, func(c configuration.Configuration) error {
			for _, task := range c.Base().Tasks() {
				if task.On != on {
					continue
				}
				if err := r.checkTaskDependencies(c, task); err != nil {
					errs.Append(err)
					continue
				}
				if err := task.Configure(ctx, c); err != nil {
					errs.Emplace(fmt.Sprintf(`The %s task of "%s" failed.`, on, c.Name()),
						opComplete, graphql.TypeCoordinate(root.Name()), err)
				}
			}
			return nil
		})
	}

	return errs
}

func (r *Registry) checkTaskDependencies(c configuration.Configuration, task *configuration.ConfigurationTask) error {
	for _, dependency := range task.Dependencies {
		if dependency.Reference == nil {
			continue
		}
		name := dependency.Reference.TypeName()
		if len(name) == 0 {
			continue
		}
		if _, exists := r.types[name]; !exists {
			return graphql.NewError(
				fmt.Sprintf(`Unknown type "%s" required by a task of "%s".%s`,
					name, c.Name(), util.DidYouMean(name, r.typeNames)),
				opComplete, graphql.TypeCoordinate(name), graphql.ErrKindSchema)
		}
	}
	return nil
}

// create runs the ApplyOnCreate and ApplyOnBeforeNaming tasks of declarations and extensions. A
// task may rename its configuration so the type map is rebuilt afterwards.
func (r *Registry) create() graphql.Errors {
	roots := append(r.roots(), r.extensions...)

	errs := r.runTasks(configuration.ApplyOnCreate, roots)
	if errs.HaveOccurred() {
		return errs
	}
	errs = r.runTasks(configuration.ApplyOnBeforeNaming, roots)
	if errs.HaveOccurred() {
		return errs
	}

	return r.rebuildTypeMap()
}

func (r *Registry) rebuildTypeMap() graphql.Errors {
	var (
		errs  graphql.Errors
		types = make(map[string]configuration.TypeConfiguration, len(r.types))
		names = make([]string, 0, len(r.typeNames))
	)

	for _, name := range r.typeNames {
		t := r.types[name]
		if _, exists := types[t.Name()]; exists {
			errs.Emplace(fmt.Sprintf(`There can be only one type named "%s".`, t.Name()),
				opComplete, graphql.TypeCoordinate(t.Name()), graphql.ErrKindSchema)
			continue
		}
		if t.Name() != name {
			r.logger.Debug("type renamed", zap.String("from", name), zap.String("to", t.Name()))
			delete(r.builtins, name)
		}
		types[t.Name()] = t
		names = append(names, t.Name())
	}

	r.types = types
	r.typeNames = names
	return errs
}

// mergeExtensions merges every extension into the type it extends and applies field binding to
// object types.
func (r *Registry) mergeExtensions() graphql.Errors {
	var (
		errs graphql.Errors
		opts = &configuration.MergeOptions{Logger: r.logger}
	)

	for _, extension := range r.extensions {
		target, exists := r.types[extension.Name()]
		if !exists {
			r.logger.Warn("skip extension of unknown type", zap.String("type", extension.Name()))
			errs.Emplace(fmt.Sprintf(`Unknown type "%s" extended.%s`,
				extension.Name(), util.DidYouMean(extension.Name(), r.typeNames)),
				opComplete, graphql.TypeCoordinate(extension.Name()), graphql.ErrKindSchema)
			continue
		}

		if err := configuration.Merge(extension, target, opts); err != nil {
			errs.Append(err)
			continue
		}
		r.logger.Debug("merged extension",
			zap.String("type", extension.Name()),
			zap.Stringer("kind", extension.Kind()))
	}

	for _, name := range r.typeNames {
		switch t := r.types[name].(type) {
		case *configuration.ObjectTypeConfiguration:
			if t.FieldBindingType == configuration.BindingUnset {
				t.FieldBindingType = r.defaultFieldBindingType
			}
			if t.FieldBindingType != configuration.BindingImplicit {
				continue
			}
			n, err := t.InferFields()
			if err != nil {
				errs.Append(err)
				continue
			}
			if n > 0 {
				r.logger.Debug("inferred fields", zap.String("type", name), zap.Int("count", n))
			}

		case *configuration.InterfaceTypeConfiguration:
			if t.FieldBindingType == configuration.BindingUnset {
				t.FieldBindingType = r.defaultFieldBindingType
			}
		}
	}

	return errs
}

// collapseDirectives checks every directive application against its definition and collapses
// the applications of non-repeatable directives.
func (r *Registry) collapseDirectives() graphql.Errors {
	var errs graphql.Errors

	isRepeatable := func(name string) (bool, bool) {
		definition, exists := r.directives[name]
		if !exists {
			return false, false
		}
		return definition.IsRepeatable, true
	}

	directiveNames := make([]string, len(r.directiveNames))
	for i, name := range r.directiveNames {
		directiveNames[i] = "@" + name
	}

	for _, root := range r.roots() {
		visit(root, func(c configuration.Configuration, coordinate graphql.SchemaCoordinate, location ast.DirectiveLocation) {
			base := c.Base()
			for _, directive := range base.Directives() {
				args := []interface{}{opComplete, coordinate, graphql.ErrKindSchema}
				if directive.Position != nil {
					args = append(args, graphql.ErrorLocationOf(directive.Position))
				}

				definition, exists := r.directives[directive.Name]
				if !exists {
					errs.Emplace(fmt.Sprintf(`Unknown directive "@%s".%s`,
						directive.Name, util.DidYouMean("@"+directive.Name, directiveNames)), args...)
					continue
				}
				if len(location) > 0 && !definition.HasLocation(location) {
					errs.Emplace(fmt.Sprintf(`Directive "@%s" may not be used on %s.`,
						directive.Name, location), args...)
				}
			}

			replaced, err := base.DeduplicateDirectives(isRepeatable)
			if err != nil {
				errs.Append(err)
				return
			}
			for _, name := range replaced {
				r.logger.Debug("replaced non-repeatable directive",
					zap.String("directive", name),
					zap.String("coordinate", string(coordinate)))
			}
		})
	}

	return errs
}

// seal seals every configuration and runs the ApplyOnAfterCompletion tasks.
func (r *Registry) seal() graphql.Errors {
	roots := r.roots()
	for _, root := range roots {
		root.Seal()
	}
	return r.runTasks(configuration.ApplyOnAfterCompletion, roots)
}

// visit calls fn for t and its nested configurations along with their schema coordinates and the
// directive locations they correspond to. The location of a directive type is empty.
func visit(t configuration.TypeConfiguration, fn func(c configuration.Configuration, coordinate graphql.SchemaCoordinate, location ast.DirectiveLocation)) {
	name := t.Name()
	switch t := t.(type) {
	case *configuration.ObjectTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationObject)
		for _, field := range t.Fields {
			fn(field, graphql.FieldCoordinate(name, field.Name()), ast.LocationFieldDefinition)
			for _, arg := range field.Arguments {
				fn(arg, graphql.ArgumentCoordinate(name, field.Name(), arg.Name()), ast.LocationArgumentDefinition)
			}
		}

	case *configuration.InterfaceTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationInterface)
		for _, field := range t.Fields {
			fn(field, graphql.FieldCoordinate(name, field.Name()), ast.LocationFieldDefinition)
			for _, arg := range field.Arguments {
				fn(arg, graphql.ArgumentCoordinate(name, field.Name(), arg.Name()), ast.LocationArgumentDefinition)
			}
		}

	case *configuration.InputObjectTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationInputObject)
		for _, field := range t.Fields {
			fn(field, graphql.FieldCoordinate(name, field.Name()), ast.LocationInputFieldDefinition)
		}

	case *configuration.EnumTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationEnum)
		for _, value := range t.Values {
			fn(value, graphql.FieldCoordinate(name, value.Name()), ast.LocationEnumValue)
		}

	case *configuration.UnionTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationUnion)

	case *configuration.ScalarTypeConfiguration:
		fn(t, graphql.TypeCoordinate(name), ast.LocationScalar)

	case *configuration.DirectiveTypeConfiguration:
		fn(t, graphql.DirectiveCoordinate(name), "")
		for _, arg := range t.Arguments {
			fn(arg, graphql.SchemaCoordinate("@"+name+"("+arg.Name()+":)"), ast.LocationArgumentDefinition)
		}
	}
}

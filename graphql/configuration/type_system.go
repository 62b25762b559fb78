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
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/botobag/graphconf/graphql"
)

// Configuration is implemented by every configuration in this package.
type Configuration interface {
	// Name of the configured schema member
	Name() string

	// Base returns the embedded TypeSystemConfiguration.
	Base() *TypeSystemConfiguration

	// Seal makes the configuration (and the configurations nested in it) read-only.
	Seal()

	// IsSealed returns true if the configuration was sealed.
	IsSealed() bool
}

// TypeKind identifies the schema member a TypeConfiguration describes.
type TypeKind uint8

// Enumeration of TypeKind
const (
	TypeKindScalar TypeKind = iota + 1
	TypeKindObject
	TypeKindInterface
	TypeKindUnion
	TypeKindEnum
	TypeKindInputObject
	TypeKindDirective
)

// String implements fmt.Stringer.
func (kind TypeKind) String() string {
	switch kind {
	case TypeKindScalar:
		return string(ast.Scalar)
	case TypeKindObject:
		return string(ast.Object)
	case TypeKindInterface:
		return string(ast.Interface)
	case TypeKindUnion:
		return string(ast.Union)
	case TypeKindEnum:
		return string(ast.Enum)
	case TypeKindInputObject:
		return string(ast.InputObject)
	case TypeKindDirective:
		return "DIRECTIVE"
	}
	return "UNKNOWN"
}

// TypeConfiguration is a Configuration for a named type or a directive type.
type TypeConfiguration interface {
	Configuration

	// Kind of the configured type
	Kind() TypeKind

	// Extension returns true if the configuration extends an existing type instead of declaring
	// one.
	Extension() bool

	// Members returns the nested configurations (fields, arguments or enum values).
	Members() []Configuration
}

// DirectiveConfiguration is a directive applied to a schema member.
type DirectiveConfiguration struct {
	// Name of the applied directive (without "@")
	Name string

	// Arguments given to the directive
	Arguments ast.ArgumentList

	// Value is an optional runtime representation of the directive.
	Value interface{}

	// Position of the directive in source document if available
	Position *ast.Position
}

// Copy returns a shallow copy of the directive configuration.
func (directive *DirectiveConfiguration) Copy() *DirectiveConfiguration {
	c := *directive
	return &c
}

// DependencyKind specifies how far the dependent type has to be completed before the dependency is
// satisfied.
type DependencyKind uint8

// Enumeration of DependencyKind
const (
	DependencyDefault DependencyKind = iota
	DependencyNamed
	DependencyCompleted
)

// TypeDependency declares that a configuration needs another type.
type TypeDependency struct {
	Reference TypeReference
	Kind      DependencyKind
}

// ApplyOn specifies the completion phase in which a ConfigurationTask runs.
type ApplyOn uint8

// Enumeration of ApplyOn
const (
	ApplyOnCreate ApplyOn = iota
	ApplyOnBeforeNaming
	ApplyOnBeforeCompletion
	ApplyOnAfterCompletion
)

// String implements fmt.Stringer.
func (on ApplyOn) String() string {
	switch on {
	case ApplyOnCreate:
		return "Create"
	case ApplyOnBeforeNaming:
		return "BeforeNaming"
	case ApplyOnBeforeCompletion:
		return "BeforeCompletion"
	case ApplyOnAfterCompletion:
		return "AfterCompletion"
	}
	return "Unknown"
}

// TaskContext is given to a ConfigurationTask when it runs.
type TaskContext interface {
	// Type looks up a registered type configuration by name.
	Type(name string) (TypeConfiguration, bool)

	// Logger returns the logger of the running pipeline.
	Logger() *zap.Logger
}

// ConfigurationTask is a deferred modification applied to a configuration during completion.
type ConfigurationTask struct {
	// On specifies the phase in which the task runs.
	On ApplyOn

	// Configure is invoked with the configuration that owns the task.
	Configure func(ctx TaskContext, c Configuration) error

	// Dependencies that must be available before the task runs
	Dependencies []TypeDependency
}

// TypeSystemConfiguration contains the data shared by all configurations. It is embedded in every
// configuration type of this package.
type TypeSystemConfiguration struct {
	name string

	// Description of the schema member
	Description string

	directives   []*DirectiveConfiguration
	dependencies []TypeDependency
	tasks        []*ConfigurationTask
	contextData  map[string]interface{}
	sealed       bool
}

// TypeSystemConfiguration implements Configuration.
var _ Configuration = (*TypeSystemConfiguration)(nil)

// Name implements Configuration.
func (c *TypeSystemConfiguration) Name() string {
	return c.name
}

// SetName validates and interns name and sets it to the configuration.
func (c *TypeSystemConfiguration) SetName(name string) error {
	if c.sealed {
		return ErrConfigurationSealed
	}
	name, err := graphql.EnsureName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

// Base implements Configuration.
func (c *TypeSystemConfiguration) Base() *TypeSystemConfiguration {
	return c
}

// Seal implements Configuration.
func (c *TypeSystemConfiguration) Seal() {
	c.sealed = true
}

// IsSealed implements Configuration.
func (c *TypeSystemConfiguration) IsSealed() bool {
	return c.sealed
}

// Directives returns the directives applied to the schema member in order of application. The
// returned slice must not be modified.
func (c *TypeSystemConfiguration) Directives() []*DirectiveConfiguration {
	return c.directives
}

// AddDirective applies a directive.
func (c *TypeSystemConfiguration) AddDirective(directive *DirectiveConfiguration) error {
	if c.sealed {
		return ErrConfigurationSealed
	}
	if directive == nil {
		return newNilError("configuration.AddDirective", "directive")
	}
	c.directives = append(c.directives, directive)
	return nil
}

// Dependencies returns the declared type dependencies.
func (c *TypeSystemConfiguration) Dependencies() []TypeDependency {
	return c.dependencies
}

// AddDependency declares a type dependency.
func (c *TypeSystemConfiguration) AddDependency(dependency TypeDependency) error {
	if c.sealed {
		return ErrConfigurationSealed
	}
	if dependency.Reference == nil {
		return newNilError("configuration.AddDependency", "dependency reference")
	}
	c.dependencies = append(c.dependencies, dependency)
	return nil
}

// Tasks returns the deferred configuration tasks.
func (c *TypeSystemConfiguration) Tasks() []*ConfigurationTask {
	return c.tasks
}

// AddTask schedules a deferred configuration task.
func (c *TypeSystemConfiguration) AddTask(task *ConfigurationTask) error {
	if c.sealed {
		return ErrConfigurationSealed
	}
	if task == nil || task.Configure == nil {
		return newNilError("configuration.AddTask", "task")
	}
	c.tasks = append(c.tasks, task)
	return nil
}

// ContextValue looks up an entry in the context data.
func (c *TypeSystemConfiguration) ContextValue(key string) (interface{}, bool) {
	value, exists := c.contextData[key]
	return value, exists
}

// SetContextValue stores an entry in the context data.
func (c *TypeSystemConfiguration) SetContextValue(key string, value interface{}) error {
	if c.sealed {
		return ErrConfigurationSealed
	}
	if c.contextData == nil {
		c.contextData = map[string]interface{}{}
	}
	c.contextData[key] = value
	return nil
}

// ContextData returns the context data. The result is nil if no entry was ever stored.
func (c *TypeSystemConfiguration) ContextData() map[string]interface{} {
	return c.contextData
}

// copyTo copies the data into target. Directive configurations are copied shallowly.
func (c *TypeSystemConfiguration) copyTo(target *TypeSystemConfiguration) {
	target.name = c.name
	target.Description = c.Description

	target.directives = nil
	if len(c.directives) > 0 {
		target.directives = make([]*DirectiveConfiguration, len(c.directives))
		for i, directive := range c.directives {
			target.directives[i] = directive.Copy()
		}
	}

	target.dependencies = nil
	if len(c.dependencies) > 0 {
		target.dependencies = append([]TypeDependency(nil), c.dependencies...)
	}

	target.tasks = nil
	if len(c.tasks) > 0 {
		target.tasks = append([]*ConfigurationTask(nil), c.tasks...)
	}

	target.contextData = nil
	if len(c.contextData) > 0 {
		target.contextData = make(map[string]interface{}, len(c.contextData))
		for key, value := range c.contextData {
			target.contextData[key] = value
		}
	}
}

// mergeInto adds the data into target.
func (c *TypeSystemConfiguration) mergeInto(target *TypeSystemConfiguration) {
	for _, directive := range c.directives {
		target.directives = append(target.directives, directive.Copy())
	}
	target.dependencies = append(target.dependencies, c.dependencies...)
	target.tasks = append(target.tasks, c.tasks...)

	if len(c.contextData) > 0 {
		if target.contextData == nil {
			target.contextData = make(map[string]interface{}, len(c.contextData))
		}
		for key, value := range c.contextData {
			target.contextData[key] = value
		}
	}

	if len(c.Description) > 0 {
		target.Description = c.Description
	}
}

// CopyTo copies the name, the description, the directives, the dependencies, the tasks and the
// context data into target.
func (c *TypeSystemConfiguration) CopyTo(target *TypeSystemConfiguration) error {
	if target.sealed {
		return ErrConfigurationSealed
	}
	c.copyTo(target)
	return nil
}

// MergeInto appends the directives, the dependencies and the tasks to target and overwrites the
// context data entries of target with the ones in c. Description is overridden if c has one.
func (c *TypeSystemConfiguration) MergeInto(target *TypeSystemConfiguration) error {
	if target.sealed {
		return ErrConfigurationSealed
	}
	c.mergeInto(target)
	return nil
}

// DirectiveRepeatability reports whether the directive with the given name is repeatable. known is
// false for directives whose type is unknown.
type DirectiveRepeatability func(name string) (repeatable bool, known bool)

// DeduplicateDirectives collapses the applications of known non-repeatable directives so that
// only the last application of each remains, positioned at the first application. Repeatable and
// unknown directives are kept as they are. It returns the names of the directives that were
// replaced.
func (c *TypeSystemConfiguration) DeduplicateDirectives(isRepeatable DirectiveRepeatability) ([]string, error) {
	if c.sealed {
		return nil, ErrConfigurationSealed
	}
	if len(c.directives) < 2 {
		return nil, nil
	}

	var (
		replaced []string
		indices  map[string]int
		result   = make([]*DirectiveConfiguration, 0, len(c.directives))
	)
	for _, directive := range c.directives {
		if repeatable, known := isRepeatable(directive.Name); known && !repeatable {
			if i, exists := indices[directive.Name]; exists {
				result[i] = directive
				replaced = append(replaced, directive.Name)
				continue
			}
			if indices == nil {
				indices = map[string]int{}
			}
			indices[directive.Name] = len(result)
		}
		result = append(result, directive)
	}

	c.directives = result
	return replaced, nil
}

// Walk calls fn for c and then for every configuration nested in it in depth-first order. It
// stops at the first error.
func Walk(c Configuration, fn func(c Configuration) error) error {
	if err := fn(c); err != nil {
		return err
	}
	if withMembers, ok := c.(interface{ Members() []Configuration }); ok {
		for _, member := range withMembers.Members() {
			if err := Walk(member, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

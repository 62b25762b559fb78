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

package registry_test

import (
	"errors"
	"reflect"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/registry"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func fieldTypes(t *configuration.ObjectTypeConfiguration) map[string]string {
	types := map[string]string{}
	for _, field := range t.Fields {
		types[field.Name()] = field.Type.String()
	}
	return types
}

func intArgument(name string, value string) *ast.Argument {
	return &ast.Argument{
		Name:  name,
		Value: &ast.Value{Kind: ast.IntValue, Raw: value},
	}
}

var _ = Describe("Complete", func() {
	var (
		r    *registry.Registry
		logs *observer.ObservedLogs
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		r = registry.New(registry.Options{
			Logger:                zap.New(core),
			ExcludeBuiltinScalars: true,
		})
	})

	It("cannot be completed twice", func() {
		mustRegister(r, queryType())
		_, errs := r.Complete()
		Expect(errs.HaveOccurred()).Should(BeFalse())

		ts, errs := r.Complete()
		Expect(ts).Should(BeNil())
		Expect(errorMessages(errs)).Should(Equal([]string{"The registry has already been completed."}))
	})

	It("seals every configuration", func() {
		query := queryType()
		mustRegister(r, query)
		_, errs := r.Complete()
		Expect(errs.HaveOccurred()).Should(BeFalse())

		Expect(query.IsSealed()).Should(BeTrue())
		field, _ := query.Field("hello")
		Expect(field.IsSealed()).Should(BeTrue())
		Expect(field.Flags.Has(configuration.FieldFlagSealed)).Should(BeTrue())
		Expect(query.AddField(configuration.MustNewObjectField("world", nil))).
			Should(MatchError(configuration.ErrConfigurationSealed))
	})

	Describe("extensions", func() {
		It("merges extensions into the extended types", func() {
			extension, err := configuration.NewObjectTypeExtension("Query")
			Expect(err).ShouldNot(HaveOccurred())
			objectField(extension, "world", configuration.NamedSyntaxType("Int"))

			query := queryType()
			mustRegister(r, extension, query)
			ts, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse())

			t, _ := ts.Type("Query")
			Expect(t).Should(BeIdenticalTo(query))
			Expect(fieldTypes(query)).Should(Equal(map[string]string{
				"hello": "String!",
				"world": "Int",
			}))
			Expect(logs.FilterMessage("merged extension").Len()).Should(Equal(1))
		})

		It("reports extensions of unknown types", func() {
			extension, err := configuration.NewObjectTypeExtension("Usr")
			Expect(err).ShouldNot(HaveOccurred())
			objectField(extension, "name", configuration.NamedSyntaxType("String"))

			user := configuration.MustNewObjectType("User")
			objectField(user, "name", configuration.NamedSyntaxType("String"))
			mustRegister(r, queryType(), user, extension)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Unknown type "Usr" extended. Did you mean "User"?`,
			}))
			Expect(errs.Errors[0].Coordinate).Should(Equal(graphql.SchemaCoordinate("Usr")))
			Expect(errs.Errors[0].Kind).Should(Equal(graphql.ErrKindSchema))
			Expect(logs.FilterMessage("skip extension of unknown type").Len()).Should(Equal(1))
		})

		It("reports extensions of another kind", func() {
			extension, err := configuration.NewInterfaceType("Query")
			Expect(err).ShouldNot(HaveOccurred())
			extension.IsExtension = true
			mustRegister(r, queryType(), extension)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors[0].Message).Should(Equal("Cannot merge INTERFACE Query into OBJECT Query."))
		})
	})

	Describe("field binding", func() {
		It("infers the fields of object types with implicit binding", func() {
			userType := configuration.MustNewObjectType("User")
			userType.RuntimeType = reflect.TypeOf(user{})
			userType.FieldBindingType = configuration.BindingImplicit
			mustRegister(r, queryType(), userType)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(fieldTypes(userType)).Should(Equal(map[string]string{
				"name":      "String!",
				"age":       "Int!",
				"urlPath":   "String!",
				"tags":      "[String!]",
				"createdBy": "User",
			}))
			Expect(logs.FilterMessage("inferred fields").Len()).Should(Equal(1))
		})

		It("applies the default binding to types without one", func() {
			r = registry.New(registry.Options{
				DefaultFieldBindingType: configuration.BindingImplicit,
				ExcludeBuiltinScalars:   true,
			})
			userType := configuration.MustNewObjectType("User")
			userType.RuntimeType = reflect.TypeOf(&user{})
			userType.FieldIgnores = []*configuration.ObjectFieldBinding{
				{Name: "Tags", Type: configuration.BindingProperty},
				{Name: "createdBy", Type: configuration.BindingField},
			}
			mustRegister(r, queryType(), userType)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(userType.FieldBindingType).Should(Equal(configuration.BindingImplicit))
			Expect(fieldTypes(userType)).Should(Equal(map[string]string{
				"name":    "String!",
				"age":     "Int!",
				"urlPath": "String!",
			}))
		})

		It("does not infer fields with explicit binding", func() {
			userType := configuration.MustNewObjectType("User")
			userType.RuntimeType = reflect.TypeOf(user{})
			mustRegister(r, queryType(), userType)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Object type "User" must define one or more fields.`,
			}))
			Expect(userType.FieldBindingType).Should(Equal(configuration.BindingExplicit))
		})
	})

	Describe("type resolution", func() {
		var userType *configuration.ObjectTypeConfiguration

		BeforeEach(func() {
			userType = configuration.MustNewObjectType("User")
			userType.RuntimeType = reflect.TypeOf(&user{})
			objectField(userType, "name", configuration.NonNullSyntaxType("String"))
		})

		It("resolves runtime types", func() {
			input, err := configuration.NewInputObjectType("UserInput")
			Expect(err).ShouldNot(HaveOccurred())
			input.RuntimeType = reflect.TypeOf(userInput{})
			name, err := configuration.NewInputField("name", configuration.NonNullSyntaxType("String"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(input.AddField(name)).Should(Succeed())

			query := queryType()
			objectField(query, "me", configuration.RuntimeType(reflect.TypeOf(&user{}), configuration.TypeContextOutput))
			objectField(query, "users", configuration.RuntimeType(reflect.TypeOf([]*user{}), configuration.TypeContextOutput))
			count := objectField(query, "count", nil)
			count.RuntimeType = reflect.TypeOf(int64(0))

			create := objectField(query, "create", configuration.NamedSyntaxType("User"))
			Expect(create.AddArgument(configuration.MustNewArgument("input",
				configuration.RuntimeType(reflect.TypeOf(userInput{}), configuration.TypeContextNone)))).Should(Succeed())

			r = registry.New(registry.Options{})
			mustRegister(r, query, userType, input)
			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())

			Expect(fieldTypes(query)).Should(Equal(map[string]string{
				"hello":  "String!",
				"me":     "User",
				"users":  "[User]",
				"count":  "Long!",
				"create": "User",
			}))

			arg, _ := create.Argument("input")
			Expect(arg.Type.String()).Should(Equal("UserInput!"))
			Expect(arg.Type.(configuration.SyntaxTypeReference).Context).Should(Equal(configuration.TypeContextInput))
		})

		It("reports unknown types", func() {
			query := queryType()
			objectField(query, "name", configuration.NamedSyntaxType("Strin"))
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors[0].Message).Should(
				HavePrefix(`Unknown type "Strin" referenced by Query.name. Did you mean "String"`))
			Expect(errs.Errors[0].Coordinate).Should(Equal(graphql.SchemaCoordinate("Query.name")))
		})

		It("reports unbound runtime types", func() {
			query := queryType()
			objectField(query, "x", configuration.RuntimeType(reflect.TypeOf(map[string]int{}), configuration.TypeContextOutput))
			objectField(query, "y", nil)
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				"Cannot resolve the type of Query.x from map[string]int.",
				"The type of Query.y is not specified.",
			}))
		})

		It("reports types used in the wrong position", func() {
			input, err := configuration.NewInputObjectType("UserInput")
			Expect(err).ShouldNot(HaveOccurred())
			name, err := configuration.NewInputField("name", configuration.NamedSyntaxType("String"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(input.AddField(name)).Should(Succeed())

			query := queryType()
			field := objectField(query, "user", configuration.NamedSyntaxType("UserInput"))
			Expect(field.AddArgument(configuration.MustNewArgument("by", configuration.NamedSyntaxType("User")))).
				Should(Succeed())
			mustRegister(r, query, input, userType)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(ConsistOf(
				`The type of Query.user must be an output type but got INPUT_OBJECT "UserInput".`,
				`The type of Query.user(by:) must be an input type but got OBJECT "User".`,
			))
		})

		It("checks the implemented interfaces", func() {
			node, err := configuration.NewInterfaceType("Node")
			Expect(err).ShouldNot(HaveOccurred())
			id, err := configuration.NewInterfaceField("id", configuration.NonNullSyntaxType("ID"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(node.AddField(id)).Should(Succeed())

			search, err := configuration.NewUnionType("SearchResult", configuration.NamedSyntaxType("User"))
			Expect(err).ShouldNot(HaveOccurred())

			Expect(userType.AddInterface(configuration.NamedSyntaxType("Node"))).Should(Succeed())
			Expect(userType.AddInterface(configuration.NamedSyntaxType("SearchResult"))).Should(Succeed())
			mustRegister(r, queryType(), node, search, userType)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Type "User" can only implement interfaces but UNION "SearchResult" is given.`,
			}))
		})

		It("reports missing interface fields", func() {
			node, err := configuration.NewInterfaceType("Node")
			Expect(err).ShouldNot(HaveOccurred())
			id, err := configuration.NewInterfaceField("id", configuration.NonNullSyntaxType("ID"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(node.AddField(id)).Should(Succeed())

			Expect(userType.AddInterface(configuration.NamedSyntaxType("Node"))).Should(Succeed())
			mustRegister(r, queryType(), node, userType)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Interface field Node.id expected but User does not provide it.`,
			}))
			Expect(errs.Errors[0].Coordinate).Should(Equal(graphql.SchemaCoordinate("User")))
		})

		It("accepts objects that implement their interfaces", func() {
			node, err := configuration.NewInterfaceType("Node")
			Expect(err).ShouldNot(HaveOccurred())
			id, err := configuration.NewInterfaceField("id", configuration.NonNullSyntaxType("ID"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(node.AddField(id)).Should(Succeed())

			objectField(userType, "id", configuration.NonNullSyntaxType("ID"))
			Expect(userType.AddInterface(configuration.NamedSyntaxType("Node"))).Should(Succeed())
			mustRegister(r, queryType(), node, userType)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(userType.Interfaces).Should(HaveLen(1))
			Expect(userType.Interfaces[0].TypeName()).Should(Equal("Node"))
		})

		It("checks union members", func() {
			search, err := configuration.NewUnionType("SearchResult",
				configuration.NamedSyntaxType("User"), configuration.NamedSyntaxType("String"))
			Expect(err).ShouldNot(HaveOccurred())
			mustRegister(r, queryType(), search, userType)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Union type "SearchResult" can only include object types but SCALAR "String" is given.`,
			}))
		})

		It("drops ignored fields", func() {
			secret := objectField(userType, "secret", configuration.NamedSyntaxType("String"))
			Expect(secret.Ignore()).Should(Succeed())
			mustRegister(r, queryType(), userType)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(fieldTypes(userType)).Should(Equal(map[string]string{"name": "String!"}))
			Expect(logs.FilterMessage("drop ignored field").Len()).Should(Equal(1))
		})

		It("checks dependencies", func() {
			query := queryType()
			Expect(query.AddDependency(configuration.TypeDependency{
				Reference: configuration.NamedSyntaxType("Missing"),
			})).Should(Succeed())
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors[0].Message).Should(HavePrefix(`Unknown type "Missing" required by Query.`))
		})
	})

	Describe("directives", func() {
		var cost *configuration.DirectiveTypeConfiguration

		BeforeEach(func() {
			var err error
			cost, err = configuration.NewDirectiveType("cost", ast.LocationFieldDefinition, ast.LocationObject)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cost.AddArgument(configuration.MustNewArgument("weight", configuration.NonNullSyntaxType("Int")))).
				Should(Succeed())
		})

		It("keeps the last application of non-repeatable directives", func() {
			query := queryType()
			hello, _ := query.Field("hello")
			Expect(hello.AddDirective(&configuration.DirectiveConfiguration{
				Name:      "cost",
				Arguments: ast.ArgumentList{intArgument("weight", "1")},
			})).Should(Succeed())
			Expect(hello.AddDirective(&configuration.DirectiveConfiguration{
				Name:      "cost",
				Arguments: ast.ArgumentList{intArgument("weight", "2")},
			})).Should(Succeed())
			mustRegister(r, query, cost)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(hello.Directives()).Should(HaveLen(1))
			Expect(hello.Directives()[0].Arguments[0].Value.Raw).Should(Equal("2"))

			entries := logs.FilterMessage("replaced non-repeatable directive").All()
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].ContextMap()).Should(HaveKeyWithValue("coordinate", "Query.hello"))
		})

		It("keeps every application of repeatable directives", func() {
			cost.IsRepeatable = true
			query := queryType()
			for i := 0; i < 2; i++ {
				Expect(query.AddDirective(&configuration.DirectiveConfiguration{Name: "cost"})).Should(Succeed())
			}
			mustRegister(r, query, cost)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(query.Directives()).Should(HaveLen(2))
		})

		It("reports unknown directives and invalid locations", func() {
			query := queryType()
			Expect(query.AddDirective(&configuration.DirectiveConfiguration{
				Name:     "costs",
				Position: &ast.Position{Line: 3, Column: 12},
			})).Should(Succeed())
			Expect(query.AddDirective(&configuration.DirectiveConfiguration{Name: "skip"})).Should(Succeed())
			mustRegister(r, query, cost)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Unknown directive "@costs". Did you mean "@cost"?`,
				`Directive "@skip" may not be used on OBJECT.`,
			}))
			Expect(errs.Errors[0].Locations).Should(Equal([]graphql.ErrorLocation{{Line: 3, Column: 12}}))
		})
	})

	Describe("tasks", func() {
		It("runs tasks in their phases", func() {
			var (
				phases []string
				sealed bool
			)

			query := queryType()
			record := func(on configuration.ApplyOn) *configuration.ConfigurationTask {
				return &configuration.ConfigurationTask{
					On: on,
					Configure: func(ctx configuration.TaskContext, c configuration.Configuration) error {
						phases = append(phases, on.String())
						if on == configuration.ApplyOnAfterCompletion {
							sealed = c.IsSealed()
						}
						return nil
					},
				}
			}
			for _, on := range []configuration.ApplyOn{
				configuration.ApplyOnAfterCompletion,
				configuration.ApplyOnBeforeCompletion,
				configuration.ApplyOnBeforeNaming,
				configuration.ApplyOnCreate,
			} {
				Expect(query.AddTask(record(on))).Should(Succeed())
			}
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(phases).Should(Equal([]string{"Create", "BeforeNaming", "BeforeCompletion", "AfterCompletion"}))
			Expect(sealed).Should(BeTrue())
		})

		It("allows tasks to rename types before naming", func() {
			draft := configuration.MustNewObjectType("Draft")
			objectField(draft, "title", configuration.NamedSyntaxType("String"))
			Expect(draft.AddTask(&configuration.ConfigurationTask{
				On: configuration.ApplyOnBeforeNaming,
				Configure: func(ctx configuration.TaskContext, c configuration.Configuration) error {
					return c.Base().SetName("Post")
				},
			})).Should(Succeed())

			query := queryType()
			objectField(query, "post", configuration.NamedSyntaxType("Post"))
			mustRegister(r, query, draft)

			ts, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			_, exists := ts.Type("Draft")
			Expect(exists).Should(BeFalse())
			t, exists := ts.Type("Post")
			Expect(exists).Should(BeTrue())
			Expect(t).Should(BeIdenticalTo(draft))
		})

		It("gives tasks access to the registered types", func() {
			var found configuration.TypeConfiguration
			query := queryType()
			hello, _ := query.Field("hello")
			Expect(hello.AddTask(&configuration.ConfigurationTask{
				On: configuration.ApplyOnBeforeCompletion,
				Configure: func(ctx configuration.TaskContext, c configuration.Configuration) error {
					Expect(ctx.Logger()).ShouldNot(BeNil())
					found, _ = ctx.Type("String")
					skip, exists := ctx.Type("@skip")
					Expect(exists).Should(BeTrue())
					Expect(skip.Kind()).Should(Equal(configuration.TypeKindDirective))
					return nil
				},
			})).Should(Succeed())
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())
			Expect(found).ShouldNot(BeNil())
			Expect(found.Name()).Should(Equal("String"))
		})

		It("reports task failures", func() {
			failure := errors.New("boom")
			query := queryType()
			Expect(query.AddTask(&configuration.ConfigurationTask{
				On: configuration.ApplyOnBeforeCompletion,
				Configure: func(ctx configuration.TaskContext, c configuration.Configuration) error {
					return failure
				},
			})).Should(Succeed())
			mustRegister(r, query)

			ts, errs := r.Complete()
			Expect(ts).Should(BeNil())
			Expect(errorMessages(errs)).Should(Equal([]string{`The BeforeCompletion task of "Query" failed.`}))
			Expect(errors.Is(errs.Errors[0], failure)).Should(BeTrue())
			Expect(query.IsSealed()).Should(BeFalse())
		})

		It("reports unknown task dependencies", func() {
			query := queryType()
			Expect(query.AddTask(&configuration.ConfigurationTask{
				On: configuration.ApplyOnCreate,
				Configure: func(ctx configuration.TaskContext, c configuration.Configuration) error {
					return nil
				},
				Dependencies: []configuration.TypeDependency{
					{Reference: configuration.NamedSyntaxType("Querry"), Kind: configuration.DependencyNamed},
				},
			})).Should(Succeed())
			mustRegister(r, query)

			_, errs := r.Complete()
			Expect(errorMessages(errs)).Should(Equal([]string{
				`Unknown type "Querry" required by a task of "Query". Did you mean "Query"?`,
			}))
		})
	})
})

var _ = Describe("TypeSystem", func() {
	It("encodes the user-defined types to JSON", func() {
		query := configuration.MustNewObjectType("Query")
		query.Description = "Root"
		hello := objectField(query, "hello", configuration.NonNullSyntaxType("String"))
		Expect(hello.Deprecate("Use greeting.")).Should(Succeed())
		name := configuration.MustNewArgument("name", configuration.NamedSyntaxType("String"))
		name.DefaultValue = &ast.Value{Kind: ast.StringValue, Raw: "World"}
		Expect(hello.AddArgument(name)).Should(Succeed())

		r := registry.New(registry.Options{})
		mustRegister(r, query)
		ts, errs := r.Complete()
		Expect(errs.HaveOccurred()).Should(BeFalse(), errs.Error())

		Expect(ts.MarshalJSON()).Should(MatchJSON(`{
			"types": [{
				"name": "Query",
				"kind": "OBJECT",
				"description": "Root",
				"fields": [{
					"name": "hello",
					"type": "String!",
					"args": [{
						"name": "name",
						"type": "String",
						"defaultValue": "\"World\""
					}],
					"isDeprecated": true,
					"deprecationReason": "Use greeting."
				}]
			}],
			"directives": []
		}`))
	})
})

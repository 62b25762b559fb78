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

package configuration_test

import (
	"reflect"

	"github.com/botobag/graphconf/graphql/configuration"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func fieldNames(t *configuration.ObjectTypeConfiguration) []string {
	names := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		names[i] = field.Name()
	}
	return names
}

func mustFieldMember(t reflect.Type, name string) *configuration.MemberInfo {
	member, err := configuration.FieldMember(t, name)
	Expect(err).ShouldNot(HaveOccurred())
	return member
}

func mustMethodMember(t reflect.Type, name string, params ...configuration.ParameterInfo) *configuration.MemberInfo {
	member, err := configuration.MethodMember(t, name, params...)
	Expect(err).ShouldNot(HaveOccurred())
	return member
}

var _ = Describe("ObjectTypeConfiguration", func() {
	var (
		userType      = reflect.TypeOf(&user{})
		resolversType = reflect.TypeOf(userResolvers{})
		target        *configuration.ObjectTypeConfiguration
		extension     *configuration.ObjectTypeConfiguration
	)

	BeforeEach(func() {
		target = configuration.MustNewObjectType("User")
		target.RuntimeType = userType

		fullName := configuration.MustNewObjectField("fullName", configuration.NonNullSyntaxType("String"))
		fullName.Member = mustFieldMember(userType, "Name")
		Expect(target.AddField(fullName)).Should(Succeed())

		age := configuration.MustNewObjectField("age", configuration.NamedSyntaxType("Int"))
		age.Member = mustFieldMember(userType, "Age")
		Expect(target.AddField(age)).Should(Succeed())

		extension = configuration.MustNewObjectType("User")
		extension.IsExtension = true
	})

	Describe("MergeInto", func() {
		It("merges a field with the same name", func() {
			field := configuration.MustNewObjectField("age", nil)
			Expect(field.AddDirective(&configuration.DirectiveConfiguration{Name: "cost"})).Should(Succeed())
			Expect(field.AddArgument(configuration.MustNewArgument("unit", configuration.NamedSyntaxType("String")))).Should(Succeed())
			field.Flags.Set(configuration.FieldFlagParallelExecutable)
			Expect(field.Deprecate("Use birthday.")).Should(Succeed())
			Expect(extension.AddField(field)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age"}))
			age, _ := target.Field("age")
			Expect(age.Type.String()).Should(Equal("Int"))
			Expect(directiveNames(age)).Should(Equal([]string{"cost"}))
			Expect(age.Arguments).Should(HaveLen(1))
			Expect(age.Flags.Has(configuration.FieldFlagParallelExecutable | configuration.FieldFlagDeprecated)).Should(BeTrue())
			Expect(age.DeprecationReason()).Should(Equal("Use birthday."))
		})

		It("merges arguments by name", func() {
			age, _ := target.Field("age")
			unit := configuration.MustNewArgument("unit", configuration.NamedSyntaxType("String"))
			Expect(age.AddArgument(unit)).Should(Succeed())

			field := configuration.MustNewObjectField("age", nil)
			extUnit := configuration.MustNewArgument("unit", nil)
			extUnit.DefaultValue = &ast.Value{Kind: ast.StringValue, Raw: "years"}
			Expect(field.AddArgument(extUnit)).Should(Succeed())
			Expect(field.AddArgument(configuration.MustNewArgument("round", configuration.NamedSyntaxType("Boolean")))).Should(Succeed())
			Expect(extension.AddField(field)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(age.Arguments).Should(HaveLen(2))
			Expect(age.Arguments[0]).Should(BeIdenticalTo(unit))
			Expect(unit.Type.String()).Should(Equal("String"))
			Expect(unit.DefaultValue.Raw).Should(Equal("years"))
			Expect(age.Arguments[1].Name()).Should(Equal("round"))
		})

		It("resolves the target field by member name with BindingProperty", func() {
			field := configuration.MustNewObjectField("displayName", nil)
			field.BindToField = &configuration.ObjectFieldBinding{
				Name: "Name",
				Type: configuration.BindingProperty,
			}
			Expect(field.AddDirective(&configuration.DirectiveConfiguration{Name: "tag"})).Should(Succeed())
			Expect(extension.AddField(field)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age"}))
			fullName, _ := target.Field("fullName")
			Expect(directiveNames(fullName)).Should(Equal([]string{"tag"}))
		})

		It("resolves the target field by field name with BindingField", func() {
			field := configuration.MustNewObjectField("name", nil)
			field.BindToField = &configuration.ObjectFieldBinding{
				Name: "fullName",
				Type: configuration.BindingField,
			}
			Expect(field.AddDirective(&configuration.DirectiveConfiguration{Name: "tag"})).Should(Succeed())
			Expect(extension.AddField(field)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			fullName, _ := target.Field("fullName")
			Expect(directiveNames(fullName)).Should(Equal([]string{"tag"}))
			_, exists := target.Field("name")
			Expect(exists).Should(BeFalse())
		})

		It("removes the target field of an ignored field", func() {
			field := configuration.MustNewObjectField("age", nil)
			Expect(field.Ignore()).Should(Succeed())
			Expect(extension.AddField(field)).Should(Succeed())

			ignoreUnknown := configuration.MustNewObjectField("unknown", nil)
			Expect(ignoreUnknown.Ignore()).Should(Succeed())
			Expect(extension.AddField(ignoreUnknown)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())
			Expect(fieldNames(target)).Should(Equal([]string{"fullName"}))
		})

		It("adds a copy of a new field and re-points its provenance", func() {
			member := mustMethodMember(resolversType, "GetDisplayName")
			field, err := configuration.NewObjectFieldFromMember(member)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(field.Name()).Should(Equal("displayName"))
			Expect(extension.AddField(field)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age", "displayName"}))
			added, _ := target.Field("displayName")
			Expect(added).ShouldNot(BeIdenticalTo(field))
			Expect(added.SourceType).Should(Equal(userType))
			Expect(added.ResolverMember).Should(BeIdenticalTo(member))
			Expect(added.Member).Should(BeNil())

			// The source field is left untouched.
			Expect(field.Member).Should(BeIdenticalTo(member))
			Expect(field.ResolverMember).Should(BeNil())
		})

		It("replaces the bound field", func() {
			member := mustMethodMember(resolversType, "GetDisplayName")
			field := configuration.MustNewObjectField("fullName", configuration.NamedSyntaxType("String"))
			field.Member = member
			field.BindToField = &configuration.ObjectFieldBinding{
				Name:    "fullName",
				Type:    configuration.BindingField,
				Replace: true,
			}
			Expect(extension.AddField(field)).Should(Succeed())

			previous, _ := target.Field("fullName")
			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(fieldNames(target)).Should(Equal([]string{"age", "fullName"}))
			replaced, _ := target.Field("fullName")
			Expect(replaced).ShouldNot(BeIdenticalTo(previous))
			Expect(replaced.Type.String()).Should(Equal("String"))
			Expect(replaced.ResolverMember).Should(BeIdenticalTo(member))
			Expect(replaced.Member).Should(BeIdenticalTo(previous.Member))
			Expect(replaced.SourceType).Should(Equal(userType))
		})

		It("re-points provenance of a field merged into an existing one", func() {
			member := mustMethodMember(resolversType, "GetDisplayName")
			field := configuration.MustNewObjectField("fullName", nil)
			field.Member = member
			Expect(extension.AddField(field)).Should(Succeed())

			fullName, _ := target.Field("fullName")
			nameMember := fullName.Member
			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(fullName.Member).Should(BeIdenticalTo(nameMember))
			Expect(fullName.ResolverMember).Should(BeIdenticalTo(member))
		})

		It("skips fields whose parent parameter is incompatible with the runtime type", func() {
			friends, err := configuration.NewObjectFieldFromMember(mustMethodMember(resolversType, "Friends",
				configuration.ParameterInfo{Name: "parent", IsParent: true},
				configuration.ParameterInfo{Name: "limit"},
			))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(extension.AddField(friends)).Should(Succeed())

			orders, err := configuration.NewObjectFieldFromMember(mustMethodMember(resolversType, "Orders",
				configuration.ParameterInfo{Name: "parent", IsParent: true},
			))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(extension.AddField(orders)).Should(Succeed())

			core, logs := observer.New(zap.DebugLevel)
			Expect(extension.MergeInto(target, &configuration.MergeOptions{
				Logger: zap.New(core),
			})).Should(Succeed())

			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age", "friends"}))
			skipped := logs.FilterMessage("skip field with incompatible parent").All()
			Expect(skipped).Should(HaveLen(1))
			Expect(skipped[0].ContextMap()).Should(HaveKeyWithValue("field", "orders"))
		})

		It("accepts a parent that differs from the runtime type by a pointer", func() {
			target.RuntimeType = reflect.TypeOf(user{})
			friends, err := configuration.NewObjectFieldFromMember(mustMethodMember(resolversType, "Friends",
				configuration.ParameterInfo{Name: "parent", IsParent: true},
				configuration.ParameterInfo{Name: "limit"},
			))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(extension.AddField(friends)).Should(Succeed())
			Expect(extension.MergeInto(target, nil)).Should(Succeed())
			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age", "friends"}))

			target.RuntimeType = userType
			nickname, err := configuration.NewObjectFieldFromMember(mustMethodMember(resolversType, "Nickname",
				configuration.ParameterInfo{Name: "parent", IsParent: true},
			))
			Expect(err).ShouldNot(HaveOccurred())
			other := configuration.MustNewObjectType("User")
			other.IsExtension = true
			Expect(other.AddField(nickname)).Should(Succeed())
			Expect(other.MergeInto(target, nil)).Should(Succeed())
			Expect(fieldNames(target)).Should(Equal([]string{"fullName", "age", "friends", "nickname"}))
		})

		It("accepts any parent when the target has no runtime type", func() {
			target.RuntimeType = nil
			orders, err := configuration.NewObjectFieldFromMember(mustMethodMember(resolversType, "Orders",
				configuration.ParameterInfo{Name: "parent", IsParent: true},
			))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(extension.AddField(orders)).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())
			Expect(fieldNames(target)).Should(ContainElement("orders"))
		})

		It("merges the type-level data", func() {
			orderType := reflect.TypeOf(order{})
			target.KnownRuntimeTypes = []reflect.Type{userType}
			Expect(target.AddInterface(configuration.NamedSyntaxType("Node"))).Should(Succeed())
			Expect(target.AddDirective(&configuration.DirectiveConfiguration{Name: "key"})).Should(Succeed())

			extension.Description = "Extended user"
			extension.KnownRuntimeTypes = []reflect.Type{userType, orderType}
			extension.FieldIgnores = []*configuration.ObjectFieldBinding{
				{Name: "password", Type: configuration.BindingField},
			}
			extension.FieldBindingType = configuration.BindingExplicit
			Expect(extension.AddInterface(configuration.NamedSyntaxType("Node"))).Should(Succeed())
			Expect(extension.AddInterface(configuration.NamedSyntaxType("Entity"))).Should(Succeed())
			Expect(extension.AddDirective(&configuration.DirectiveConfiguration{Name: "tag"})).Should(Succeed())

			Expect(extension.MergeInto(target, nil)).Should(Succeed())

			Expect(target.Description).Should(Equal("Extended user"))
			Expect(target.KnownRuntimeTypes).Should(Equal([]reflect.Type{userType, orderType}))
			Expect(target.FieldIgnores).Should(HaveLen(1))
			Expect(target.Interfaces).Should(HaveLen(2))
			Expect(target.Interfaces[1].TypeName()).Should(Equal("Entity"))
			Expect(target.FieldBindingType).Should(Equal(configuration.BindingExplicit))
			Expect(directiveNames(target)).Should(Equal([]string{"key", "tag"}))
		})

		It("keeps the field binding type of the target if set", func() {
			target.FieldBindingType = configuration.BindingImplicit
			extension.FieldBindingType = configuration.BindingExplicit
			Expect(extension.MergeInto(target, nil)).Should(Succeed())
			Expect(target.FieldBindingType).Should(Equal(configuration.BindingImplicit))
		})
	})

	Describe("InferFields", func() {
		It("adds fields for the exported struct fields", func() {
			t := configuration.MustNewObjectType("User")
			t.RuntimeType = userType
			t.FieldIgnores = []*configuration.ObjectFieldBinding{
				{Name: "CreatedBy", Type: configuration.BindingProperty},
			}
			name := configuration.MustNewObjectField("fullName", nil)
			name.Member = mustFieldMember(userType, "Name")
			Expect(t.AddField(name)).Should(Succeed())

			added, err := t.InferFields()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(added).Should(Equal(2))
			Expect(fieldNames(t)).Should(Equal([]string{"fullName", "age", "urlPath"}))

			age, _ := t.Field("age")
			Expect(age.Type).Should(Equal(configuration.RuntimeType(reflect.TypeOf(0), configuration.TypeContextOutput)))
			Expect(age.SourceType).Should(Equal(userType))
		})
	})

	It("rejects duplicated fields", func() {
		err := target.AddField(configuration.MustNewObjectField("age", nil))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("User.age"))
	})

	It("removes fields", func() {
		removed, err := target.RemoveField("age")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(removed).Should(BeTrue())
		removed, err = target.RemoveField("age")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(removed).Should(BeFalse())
		Expect(fieldNames(target)).Should(Equal([]string{"fullName"}))
	})
})

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

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/graphql/scalar"
	"github.com/botobag/graphconf/internal/testutil"

	"github.com/vektah/gqlparser/v2/ast"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("CoreFieldFlags", func() {
	It("sets, clears and prints flags", func() {
		var flags configuration.CoreFieldFlags
		Expect(flags.String()).Should(Equal("None"))
		Expect(flags.Has(configuration.FieldFlagNone)).Should(BeFalse())

		flags.Set(configuration.FieldFlagDeprecated | configuration.FieldFlagPureResolver)
		Expect(flags.Has(configuration.FieldFlagDeprecated)).Should(BeTrue())
		Expect(flags.Has(configuration.FieldFlagDeprecated | configuration.FieldFlagStream)).Should(BeFalse())
		Expect(flags.String()).Should(Equal("Deprecated|PureResolver"))

		flags.Clear(configuration.FieldFlagDeprecated)
		Expect(flags).Should(Equal(configuration.FieldFlagPureResolver))
	})

	It("assigns a distinct bit to every flag", func() {
		all := []configuration.CoreFieldFlags{
			configuration.FieldFlagIntrospection,
			configuration.FieldFlagSchemaIntrospectionField,
			configuration.FieldFlagTypeIntrospectionField,
			configuration.FieldFlagTypeNameIntrospectionField,
			configuration.FieldFlagDeprecated,
			configuration.FieldFlagIgnored,
			configuration.FieldFlagSealed,
			configuration.FieldFlagParallelExecutable,
			configuration.FieldFlagStream,
			configuration.FieldFlagConnection,
			configuration.FieldFlagConnectionEdgesField,
			configuration.FieldFlagConnectionNodesField,
			configuration.FieldFlagConnectionFirstArgument,
			configuration.FieldFlagConnectionLastArgument,
			configuration.FieldFlagConnectionAfterArgument,
			configuration.FieldFlagConnectionBeforeArgument,
			configuration.FieldFlagCollectionSegment,
			configuration.FieldFlagCollectionSegmentItemsField,
			configuration.FieldFlagCollectionSegmentSkipArgument,
			configuration.FieldFlagCollectionSegmentTakeArgument,
			configuration.FieldFlagTotalCount,
			configuration.FieldFlagSkipDirective,
			configuration.FieldFlagIncludeDirective,
			configuration.FieldFlagMutationQueryField,
			configuration.FieldFlagGlobalIDNodeField,
			configuration.FieldFlagGlobalIDNodesField,
			configuration.FieldFlagUsesProjections,
			configuration.FieldFlagWithRequirements,
			configuration.FieldFlagPureResolver,
			configuration.FieldFlagSubscribeResolver,
			configuration.FieldFlagExtension,
		}
		var union configuration.CoreFieldFlags
		for _, flag := range all {
			Expect(union & flag).Should(BeZero())
			union.Set(flag)
		}
	})
})

var _ = Describe("Naming", func() {
	table.DescribeTable("MemberFieldName",
		func(member string, expected string) {
			Expect(configuration.MemberFieldName(member)).Should(Equal(expected))
		},
		table.Entry("simple", "Name", "name"),
		table.Entry("getter", "GetDisplayName", "displayName"),
		table.Entry("not a getter", "Getter", "getter"),
		table.Entry("initialism", "URLPath", "urlPath"),
		table.Entry("trailing initialism", "UserID", "userID"),
		table.Entry("all caps", "ID", "id"),
		table.Entry("snake case", "created_at", "createdAt"),
	)

	table.DescribeTable("EnumValueName",
		func(value string, expected string) {
			Expect(configuration.EnumValueName(value)).Should(Equal(expected))
		},
		table.Entry("camel case", "DarkRed", "DARK_RED"),
		table.Entry("lower case", "red", "RED"),
		table.Entry("already screaming", "DARK_RED", "DARK_RED"),
	)
})

var _ = Describe("MemberInfo", func() {
	It("describes struct fields", func() {
		member, err := configuration.FieldMember(reflect.TypeOf(&user{}), "Age")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(member.Kind).Should(Equal(configuration.MemberField))
		Expect(member.Type).Should(Equal(reflect.TypeOf(0)))
		Expect(member.ParentParameter()).Should(BeNil())
		Expect(member.String()).Should(Equal("*configuration_test.user.Age"))

		_, err = configuration.FieldMember(reflect.TypeOf(&user{}), "Unknown")
		Expect(err).Should(testutil.MatchGraphQLError(testutil.KindIs(graphql.ErrKindInvalidArgument)))

		_, err = configuration.FieldMember(reflect.TypeOf(0), "Age")
		Expect(err).Should(testutil.MatchGraphQLError(testutil.KindIs(graphql.ErrKindInvalidArgument)))
	})

	It("describes methods", func() {
		member, err := configuration.MethodMember(reflect.TypeOf(userResolvers{}), "Friends")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(member.Kind).Should(Equal(configuration.MemberMethod))
		Expect(member.Type).Should(Equal(reflect.TypeOf([]*user{})))
		Expect(member.Parameters).Should(Equal([]configuration.ParameterInfo{
			{Name: "arg0", Type: reflect.TypeOf(&user{})},
			{Name: "arg1", Type: reflect.TypeOf(0)},
		}))
		Expect(member.ParentParameter()).Should(BeNil())

		member, err = configuration.MethodMember(reflect.TypeOf(userResolvers{}), "Friends",
			configuration.ParameterInfo{Name: "parent", IsParent: true},
			configuration.ParameterInfo{Name: "limit"},
		)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(member.ParentParameter()).Should(Equal(&configuration.ParameterInfo{
			Name:     "parent",
			Type:     reflect.TypeOf(&user{}),
			IsParent: true,
		}))
	})

	It("rejects mismatched parameters", func() {
		_, err := configuration.MethodMember(reflect.TypeOf(userResolvers{}), "Friends",
			configuration.ParameterInfo{Name: "parent"})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring("takes 2 parameters but 1 are given"),
			testutil.KindIs(graphql.ErrKindInvalidArgument),
		))
	})
})

var _ = Describe("TypeReference", func() {
	It("prints and compares syntax type references", func() {
		ref := configuration.ListSyntaxType(configuration.NonNullSyntaxType("String")).NonNull()
		Expect(ref.String()).Should(Equal("[String!]!"))
		Expect(ref.TypeName()).Should(Equal("String"))

		Expect(configuration.NamedSyntaxType("User").Equal(configuration.NamedSyntaxType("User"))).Should(BeTrue())
		Expect(configuration.NamedSyntaxType("User").Equal(configuration.NonNullSyntaxType("User"))).Should(BeFalse())
		Expect(configuration.NamedSyntaxType("User").Equal(
			configuration.NamedSyntaxType("User").WithContext(configuration.TypeContextOutput))).Should(BeFalse())
	})

	It("compares runtime type references", func() {
		ref := configuration.RuntimeType(reflect.TypeOf(user{}), configuration.TypeContextOutput)
		Expect(ref.Equal(configuration.RuntimeType(reflect.TypeOf(user{}), configuration.TypeContextOutput))).Should(BeTrue())
		Expect(ref.Equal(configuration.RuntimeType(reflect.TypeOf(order{}), configuration.TypeContextOutput))).Should(BeFalse())
		Expect(ref.Equal(configuration.NamedSyntaxType("User"))).Should(BeFalse())
		Expect(ref.TypeName()).Should(BeEmpty())
		Expect(ref.String()).Should(Equal("configuration_test.user"))
	})
})

var _ = Describe("Merge", func() {
	It("merges enum values by name", func() {
		target, err := configuration.NewEnumType("Color")
		Expect(err).ShouldNot(HaveOccurred())
		red, err := configuration.NewEnumValueFromRuntime("Red")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(red.Name()).Should(Equal("RED"))
		Expect(target.AddValue(red)).Should(Succeed())
		blue, _ := configuration.NewEnumValue("BLUE", nil)
		Expect(target.AddValue(blue)).Should(Succeed())

		extension, _ := configuration.NewEnumType("Color")
		extension.IsExtension = true
		extRed, _ := configuration.NewEnumValue("RED", nil)
		Expect(extRed.Deprecate("")).Should(Succeed())
		Expect(extension.AddValue(extRed)).Should(Succeed())
		extBlue, _ := configuration.NewEnumValue("BLUE", nil)
		Expect(extBlue.Ignore()).Should(Succeed())
		Expect(extension.AddValue(extBlue)).Should(Succeed())
		green, _ := configuration.NewEnumValue("GREEN", "green")
		Expect(extension.AddValue(green)).Should(Succeed())

		Expect(configuration.Merge(extension, target, nil)).Should(Succeed())
		Expect(target.Values).Should(HaveLen(2))
		Expect(red.RuntimeValue).Should(Equal("Red"))
		Expect(red.IsDeprecated()).Should(BeTrue())
		Expect(red.DeprecationReason()).Should(Equal(configuration.DefaultDeprecationReason))
		Expect(target.Values[1].Name()).Should(Equal("GREEN"))
		Expect(target.Values[1]).ShouldNot(BeIdenticalTo(green))
	})

	It("merges input fields by name", func() {
		target, _ := configuration.NewInputObjectType("UserInput")
		name, _ := configuration.NewInputField("name", configuration.NonNullSyntaxType("String"))
		Expect(target.AddField(name)).Should(Succeed())

		extension, _ := configuration.NewInputObjectType("UserInput")
		extName, _ := configuration.NewInputField("name", nil)
		extName.DefaultValue = &ast.Value{Kind: ast.StringValue, Raw: "anonymous"}
		Expect(extension.AddField(extName)).Should(Succeed())
		age, _ := configuration.NewInputField("age", configuration.NamedSyntaxType("Int"))
		Expect(extension.AddField(age)).Should(Succeed())

		Expect(configuration.Merge(extension, target, nil)).Should(Succeed())
		Expect(target.Fields).Should(HaveLen(2))
		Expect(name.Type.String()).Should(Equal("String!"))
		Expect(name.DefaultValue.Raw).Should(Equal("anonymous"))
	})

	It("appends union members without duplicates", func() {
		target, err := configuration.NewUnionType("SearchResult",
			configuration.NamedSyntaxType("User"), configuration.NamedSyntaxType("User"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(target.Types).Should(HaveLen(1))

		extension, _ := configuration.NewUnionType("SearchResult",
			configuration.NamedSyntaxType("User"), configuration.NamedSyntaxType("Order"))
		Expect(configuration.Merge(extension, target, nil)).Should(Succeed())
		Expect(target.Types).Should(HaveLen(2))
		Expect(target.Types[1].TypeName()).Should(Equal("Order"))
	})

	It("merges scalar extensions", func() {
		target, err := configuration.NewScalarType(scalar.UUID())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(target.Name()).Should(Equal("UUID"))

		extension, _ := configuration.NewScalarTypeExtension("UUID")
		extension.SpecifiedByURL = "https://tools.ietf.org/html/rfc4122"
		Expect(extension.AddDirective(&configuration.DirectiveConfiguration{Name: "tag"})).Should(Succeed())

		Expect(configuration.Merge(extension, target, nil)).Should(Succeed())
		Expect(target.Scalar).Should(BeIdenticalTo(scalar.UUID()))
		Expect(target.SpecifiedByURL).Should(Equal("https://tools.ietf.org/html/rfc4122"))
		Expect(directiveNames(target)).Should(Equal([]string{"tag"}))
	})

	It("rejects configurations of different kinds", func() {
		object := configuration.MustNewObjectType("Node")
		iface, _ := configuration.NewInterfaceType("Node")
		Expect(configuration.Merge(iface, object, nil)).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Cannot merge INTERFACE Node into OBJECT Node."),
			testutil.CoordinateEqual("Node"),
			testutil.KindIs(graphql.ErrKindSchema),
		))
	})

	It("merges interface fields", func() {
		target, _ := configuration.NewInterfaceType("Node")
		id, _ := configuration.NewInterfaceField("id", configuration.NonNullSyntaxType("ID"))
		Expect(target.AddField(id)).Should(Succeed())

		extension, _ := configuration.NewInterfaceType("Node")
		extID, _ := configuration.NewInterfaceField("key", nil)
		extID.BindToField = &configuration.ObjectFieldBinding{Name: "id", Type: configuration.BindingField}
		Expect(extID.Deprecate("Use globalId.")).Should(Succeed())
		Expect(extension.AddField(extID)).Should(Succeed())
		globalID, _ := configuration.NewInterfaceField("globalId", configuration.NonNullSyntaxType("ID"))
		Expect(extension.AddField(globalID)).Should(Succeed())

		Expect(configuration.Merge(extension, target, nil)).Should(Succeed())
		Expect(target.Fields).Should(HaveLen(2))
		Expect(id.DeprecationReason()).Should(Equal("Use globalId."))
		Expect(target.Fields[1].Name()).Should(Equal("globalId"))
	})

	It("requires locations for directive types", func() {
		_, err := configuration.NewDirectiveType("key")
		Expect(err).Should(testutil.MatchGraphQLError(testutil.KindIs(graphql.ErrKindInvalidArgument)))

		directive, err := configuration.NewDirectiveType("key", ast.LocationObject, ast.LocationInterface)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(directive.HasLocation(ast.LocationObject)).Should(BeTrue())
		Expect(directive.HasLocation(ast.LocationFieldDefinition)).Should(BeFalse())
	})
})

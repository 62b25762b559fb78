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
	"errors"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/configuration"
	"github.com/botobag/graphconf/internal/testutil"

	"github.com/vektah/gqlparser/v2/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func directiveNames(c configuration.Configuration) []string {
	var names []string
	for _, directive := range c.Base().Directives() {
		names = append(names, directive.Name)
	}
	return names
}

var _ = Describe("TypeSystemConfiguration", func() {
	It("validates and interns names", func() {
		t, err := configuration.NewObjectType("User")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.Name()).Should(Equal("User"))

		_, err = configuration.NewObjectType("")
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Expected a non-empty name."),
			testutil.KindIs(graphql.ErrKindInvalidArgument),
		))

		_, err = configuration.NewObjectType("1User")
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageContainSubstring(`"1User" does not`),
			testutil.KindIs(graphql.ErrKindInvalidArgument),
		))
	})

	It("allocates context data lazily", func() {
		t := configuration.MustNewObjectType("User")
		Expect(t.ContextData()).Should(BeNil())

		_, exists := t.ContextValue("key")
		Expect(exists).Should(BeFalse())

		Expect(t.SetContextValue("key", 1)).Should(Succeed())
		value, exists := t.ContextValue("key")
		Expect(exists).Should(BeTrue())
		Expect(value).Should(Equal(1))
		Expect(t.ContextData()).Should(HaveLen(1))
	})

	It("rejects nil directives and tasks", func() {
		t := configuration.MustNewObjectType("User")
		Expect(t.AddDirective(nil)).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindInvalidArgument),
		))
		Expect(t.AddTask(&configuration.ConfigurationTask{})).Should(testutil.MatchGraphQLError(
			testutil.KindIs(graphql.ErrKindInvalidArgument),
		))
	})

	Describe("sealing", func() {
		var t *configuration.ObjectTypeConfiguration

		BeforeEach(func() {
			t = configuration.MustNewObjectType("User")
			field := configuration.MustNewObjectField("name", configuration.NamedSyntaxType("String"))
			Expect(field.AddArgument(configuration.MustNewArgument("format", configuration.NamedSyntaxType("String")))).Should(Succeed())
			Expect(t.AddField(field)).Should(Succeed())
			t.Seal()
		})

		It("seals the nested configurations", func() {
			var visited []string
			Expect(configuration.Walk(t, func(c configuration.Configuration) error {
				Expect(c.IsSealed()).Should(BeTrue())
				visited = append(visited, c.Name())
				return nil
			})).Should(Succeed())
			Expect(visited).Should(Equal([]string{"User", "name", "format"}))

			field, _ := t.Field("name")
			Expect(field.Flags.Has(configuration.FieldFlagSealed)).Should(BeTrue())
		})

		It("rejects modifications", func() {
			Expect(t.SetName("Person")).Should(MatchError(configuration.ErrConfigurationSealed))
			Expect(t.SetContextValue("key", 1)).Should(MatchError(configuration.ErrConfigurationSealed))
			Expect(t.AddDirective(&configuration.DirectiveConfiguration{Name: "key"})).Should(
				MatchError(configuration.ErrConfigurationSealed))
			Expect(t.AddField(configuration.MustNewObjectField("age", nil))).Should(
				MatchError(configuration.ErrConfigurationSealed))

			field, _ := t.Field("name")
			Expect(field.Deprecate("")).Should(MatchError(configuration.ErrConfigurationSealed))
			Expect(field.Ignore()).Should(MatchError(configuration.ErrConfigurationSealed))
		})

		It("rejects merging into or copying into a sealed configuration", func() {
			extension := configuration.MustNewObjectType("User")
			Expect(extension.MergeInto(t, nil)).Should(MatchError(configuration.ErrConfigurationSealed))
			Expect(extension.CopyTo(t)).Should(MatchError(configuration.ErrConfigurationSealed))
			Expect(graphql.IsErrKind(configuration.ErrConfigurationSealed, graphql.ErrKindSchema)).Should(BeTrue())
		})

		It("produces unsealed copies", func() {
			c := t.Copy()
			Expect(c.IsSealed()).Should(BeFalse())
			field, _ := c.Field("name")
			Expect(field.IsSealed()).Should(BeFalse())
			Expect(field.Flags.Has(configuration.FieldFlagSealed)).Should(BeFalse())
			Expect(c.AddField(configuration.MustNewObjectField("age", nil))).Should(Succeed())
		})
	})

	Describe("CopyTo", func() {
		It("copies directives shallowly and the lists independently", func() {
			source := configuration.MustNewObjectType("User")
			source.Description = "A user"
			Expect(source.AddDirective(&configuration.DirectiveConfiguration{Name: "key"})).Should(Succeed())
			Expect(source.SetContextValue("a", 1)).Should(Succeed())
			Expect(source.AddDependency(configuration.TypeDependency{
				Reference: configuration.NamedSyntaxType("Node"),
			})).Should(Succeed())

			target := &configuration.ObjectTypeConfiguration{}
			Expect(source.CopyTo(target)).Should(Succeed())
			Expect(target.Name()).Should(Equal("User"))
			Expect(target.Description).Should(Equal("A user"))
			Expect(directiveNames(target)).Should(Equal([]string{"key"}))
			Expect(target.Directives()[0]).ShouldNot(BeIdenticalTo(source.Directives()[0]))
			Expect(target.Dependencies()).Should(HaveLen(1))

			Expect(target.SetContextValue("a", 2)).Should(Succeed())
			Expect(target.AddDirective(&configuration.DirectiveConfiguration{Name: "tag"})).Should(Succeed())
			value, _ := source.ContextValue("a")
			Expect(value).Should(Equal(1))
			Expect(directiveNames(source)).Should(Equal([]string{"key"}))
		})
	})

	Describe("DeduplicateDirectives", func() {
		repeatability := func(name string) (bool, bool) {
			switch name {
			case "key":
				return false, true
			case "tag":
				return true, true
			}
			return false, false
		}

		It("keeps the last application of non-repeatable directive at the first position", func() {
			t := configuration.MustNewObjectType("User")
			base := &configuration.DirectiveConfiguration{
				Name:      "key",
				Arguments: ast.ArgumentList{{Name: "fields", Value: &ast.Value{Kind: ast.StringValue, Raw: "id"}}},
			}
			extension := &configuration.DirectiveConfiguration{
				Name:      "key",
				Arguments: ast.ArgumentList{{Name: "fields", Value: &ast.Value{Kind: ast.StringValue, Raw: "uuid"}}},
			}
			for _, directive := range []*configuration.DirectiveConfiguration{
				base,
				{Name: "tag"},
				{Name: "unknown"},
				extension,
				{Name: "tag"},
				{Name: "unknown"},
			} {
				Expect(t.AddDirective(directive)).Should(Succeed())
			}

			replaced, err := t.DeduplicateDirectives(repeatability)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(replaced).Should(Equal([]string{"key"}))
			Expect(directiveNames(t)).Should(Equal([]string{"key", "tag", "unknown", "tag", "unknown"}))
			Expect(t.Directives()[0]).Should(BeIdenticalTo(extension))
		})
	})

	Describe("Walk", func() {
		It("stops at the first error", func() {
			t := configuration.MustNewObjectType("User")
			Expect(t.AddField(configuration.MustNewObjectField("a", nil))).Should(Succeed())
			Expect(t.AddField(configuration.MustNewObjectField("b", nil))).Should(Succeed())

			stop := errors.New("stop")
			var visited []string
			err := configuration.Walk(t, func(c configuration.Configuration) error {
				visited = append(visited, c.Name())
				if c.Name() == "a" {
					return stop
				}
				return nil
			})
			Expect(err).Should(BeIdenticalTo(stop))
			Expect(visited).Should(Equal([]string{"User", "a"}))
		})
	})
})

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

package result_test

import (
	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/graphql/result"
	"github.com/botobag/graphconf/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Optional", func() {
	It("has a value", func() {
		o := result.Some("abc")
		Expect(o.HasValue()).Should(BeTrue())
		Expect(o.IsEmpty()).Should(BeFalse())
		Expect(o.Value()).Should(Equal("abc"))
		Expect(o.String()).Should(Equal("abc"))
	})

	It("can have nil as value", func() {
		o := result.Some[*string](nil)
		Expect(o.HasValue()).Should(BeTrue())
		Expect(o.Value()).Should(BeNil())
	})

	It("is empty", func() {
		o := result.Empty[string]()
		Expect(o.HasValue()).Should(BeFalse())
		Expect(o.IsEmpty()).Should(BeTrue())
		Expect(o.Value()).Should(BeEmpty())
		Expect(o.String()).Should(Equal("unspecified"))
	})

	It("is empty with a default value", func() {
		o := result.Empty("abc")
		Expect(o.HasValue()).Should(BeFalse())
		Expect(o.Value()).Should(Equal("abc"))
		Expect(o.String()).Should(Equal("unspecified"))
	})

	It("compares", func() {
		Expect(result.Some("a").Equal(result.Some("a"))).Should(BeTrue())
		Expect(result.Some("a").Equal(result.Some("b"))).Should(BeFalse())
		Expect(result.Some("a").Equal(result.Empty[string]())).Should(BeFalse())
		Expect(result.Empty[string]().Equal(result.Empty("a"))).Should(BeTrue())
		Expect(result.Some([]int{1, 2}).Equal(result.Some([]int{1, 2}))).Should(BeTrue())
	})

	Describe("OptionalFrom", func() {
		It("converts an optional with value", func() {
			var source result.IOptional = result.Some[interface{}]("abc")
			o, err := result.OptionalFrom[string](source)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.HasValue()).Should(BeTrue())
			Expect(o.Value()).Should(Equal("abc"))
		})

		It("keeps emptiness and the default value", func() {
			o, err := result.OptionalFrom[string](result.Empty[interface{}]("abc"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.IsEmpty()).Should(BeTrue())
			Expect(o.Value()).Should(Equal("abc"))
		})

		It("converts nil into an empty optional", func() {
			o, err := result.OptionalFrom[string](nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.IsEmpty()).Should(BeTrue())
		})

		It("rejects values of other types", func() {
			_, err := result.OptionalFrom[string](result.Some(42))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Cannot convert optional value of type int to string."),
				testutil.KindIs(graphql.ErrKindInvalidArgument),
			))
		})
	})
})

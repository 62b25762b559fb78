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

package util_test

import (
	"github.com/botobag/graphconf/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SuggestionList", func() {
	It("suggests type names close to the misspelled one", func() {
		Expect(util.SuggestionList("Usr", []string{"User", "Query", "Role"})).Should(Equal([]string{"User"}))
	})

	It("returns nothing without options or similar names", func() {
		Expect(util.SuggestionList("Query", nil)).Should(BeEmpty())
		Expect(util.SuggestionList("Mutation", []string{"Query"})).Should(BeEmpty())
	})

	It("accepts any short option for an empty input", func() {
		Expect(util.SuggestionList("", []string{"a"})).Should(Equal([]string{"a"}))
	})

	It("counts a case change as a single edit", func() {
		Expect(util.SuggestionList("ID", []string{"Int", "id"})).Should(Equal([]string{"id"}))
	})

	It("counts a swap of adjacent characters as a single edit", func() {
		Expect(util.SuggestionList("Qeury", []string{"Query"})).Should(Equal([]string{"Query"}))
	})

	It("sorts suggestions by distance", func() {
		Expect(util.SuggestionList("Stirng", []string{"Strings", "String"})).Should(Equal([]string{"String", "Strings"}))
	})
})

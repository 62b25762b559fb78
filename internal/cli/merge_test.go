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

package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/botobag/graphconf/graphql"
	"github.com/botobag/graphconf/internal/cli"
	"github.com/botobag/graphconf/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("merge", func() {
	var (
		dir    string
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	writeFile := func(name string, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(util.Dedent(content)), 0o644)).Should(Succeed())
		return path
	}

	run := func(args ...string) error {
		cmd := cli.NewRootCommand()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs(append([]string{"merge"}, args...))
		return cmd.Execute()
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "graphconf")
		Expect(err).ShouldNot(HaveOccurred())
		stdout.Reset()
		stderr.Reset()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).Should(Succeed())
	})

	var schema, extension string

	BeforeEach(func() {
		schema = writeFile("schema.graphql", `
			type Query {
			  hello: String
			}
		`)
		extension = writeFile("extension.graphql", `
			extend type Query {
			  count: Int
			}
		`)
	})

	It("prints the merged type system in SDL", func() {
		Expect(run(schema, extension)).Should(Succeed())
		Expect(stdout.String()).Should(Equal(util.Dedent(`
			type Query {
			  hello: String
			  count: Int
			}
		`)))
	})

	It("prints the merged type system in JSON", func() {
		Expect(run("--format", "json", schema, extension)).Should(Succeed())
		Expect(stdout.String()).Should(MatchJSON(`{
			"types": [{
				"name": "Query",
				"kind": "OBJECT",
				"fields": [
					{"name": "hello", "type": "String"},
					{"name": "count", "type": "Int"}
				]
			}],
			"directives": []
		}`))
	})

	It("indents JSON by the number of spaces given", func() {
		Expect(run("--format", "json", "--indent", "\t", "--json-indent", "4", schema)).Should(Succeed())
		Expect(stdout.String()).Should(HavePrefix("{\n    \"types\": ["))

		stdout.Reset()
		Expect(run("--format", "json", "--json-indent", "0", schema)).Should(Succeed())
		Expect(stdout.String()).Should(HavePrefix(`{"types":[{"name":"Query"`))

		Expect(run("--format", "json", "--json-indent=-1", schema)).Should(MatchError("invalid JSON indentation -1"))
	})

	It("reads options from the environment", func() {
		Expect(os.Setenv("GRAPHCONF_INDENT", "\t")).Should(Succeed())
		defer os.Unsetenv("GRAPHCONF_INDENT")

		Expect(run(schema)).Should(Succeed())
		Expect(stdout.String()).Should(Equal("type Query {\n\thello: String\n}\n"))
	})

	It("reads options from a config file", func() {
		config := writeFile("graphconf.yaml", `
			format: json
			include-builtins: true
		`)
		Expect(run("--config", config, schema)).Should(Succeed())
		Expect(stdout.String()).Should(ContainSubstring(`"name": "Boolean"`))
		Expect(stdout.String()).Should(ContainSubstring(`"name": "deprecated"`))
	})

	It("prefers flags over the config file", func() {
		config := writeFile("graphconf.yaml", `
			format: json
		`)
		Expect(run("--config", config, "--format", "sdl", schema)).Should(Succeed())
		Expect(stdout.String()).Should(HavePrefix("type Query {"))
	})

	It("rejects unknown formats", func() {
		err := run("--format", "yaml", schema)
		Expect(err).Should(MatchError(`unknown output format "yaml", expected "sdl" or "json"`))
	})

	It("requires at least one file", func() {
		Expect(run()).ShouldNot(Succeed())
	})

	It("reports missing files", func() {
		err := run(filepath.Join(dir, "missing.graphql"))
		Expect(err).Should(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).Should(BeTrue())
	})

	It("reports syntax errors", func() {
		broken := writeFile("broken.graphql", `
			type Query {
		`)
		err := run(broken)
		Expect(err).Should(HaveOccurred())

		var errs graphql.Errors
		Expect(errors.As(err, &errs)).Should(BeTrue())
		Expect(errs.Errors).Should(HaveLen(1))
		Expect(graphql.IsErrKind(errs.Errors[0], graphql.ErrKindSyntax)).Should(BeTrue())
		Expect(stdout.Len()).Should(BeZero())
	})

	It("reports extensions of unknown types and logs a warning", func() {
		unknown := writeFile("unknown.graphql", `
			extend type Usr {
			  name: String
			}
		`)
		err := run(schema, unknown)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Unknown type "Usr" extended.`))
		Expect(stderr.String()).Should(ContainSubstring("skip extension of unknown type"))
		Expect(stdout.Len()).Should(BeZero())
	})

	It("writes debug logs when verbose", func() {
		Expect(run("--verbose", schema, extension)).Should(Succeed())
		Expect(stderr.String()).Should(ContainSubstring("merged extension"))
	})

	It("stays quiet by default", func() {
		Expect(run(schema, extension)).Should(Succeed())
		Expect(stderr.Len()).Should(BeZero())
	})
})

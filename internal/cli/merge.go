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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/botobag/graphconf/graphql/registry"
	"github.com/botobag/graphconf/graphql/sdl"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vektah/gqlparser/v2/ast"
)

// Output formats of the merge command
const (
	FormatSDL  = "sdl"
	FormatJSON = "json"
)

func newMergeCommand(v *viper.Viper) *cobra.Command {
	mergeCmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge type declarations and extensions and print the completed type system",
		Example: `graphconf merge schema.graphql extensions.graphql > merged.graphql
graphconf merge --format json schema.graphql`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, v, args)
		},
	}

	flags := mergeCmd.Flags()
	flags.StringP("format", "f", FormatSDL, "output format: sdl or json")
	flags.String("indent", sdl.DefaultIndent, "indentation of the SDL output")
	flags.Int("json-indent", 2, "number of spaces to indent the JSON output (0 for compact)")
	flags.Bool("include-builtins", false, "print built-in scalars and directives")
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("indent", flags.Lookup("indent"))
	_ = v.BindPFlag("json-indent", flags.Lookup("json-indent"))
	_ = v.BindPFlag("include-builtins", flags.Lookup("include-builtins"))

	return mergeCmd
}

func runMerge(cmd *cobra.Command, v *viper.Viper, files []string) error {
	format := v.GetString("format")
	if format != FormatSDL && format != FormatJSON {
		return fmt.Errorf("unknown output format %q, expected %q or %q", format, FormatSDL, FormatJSON)
	}

	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
	defer logger.Sync() // nolint: errcheck

	sources := make([]*ast.Source, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", file, err)
		}
		sources[i] = &ast.Source{Name: file, Input: string(data)}
	}

	configs, err := sdl.Load(sources...)
	if err != nil {
		return err
	}

	r := registry.New(registry.Options{Logger: logger})
	if err := r.Register(configs...); err != nil {
		return err
	}
	ts, errs := r.Complete()
	if errs.HaveOccurred() {
		return errs
	}

	includeBuiltins := v.GetBool("include-builtins")
	if format == FormatJSON {
		indent := v.GetInt("json-indent")
		if indent < 0 {
			return fmt.Errorf("invalid JSON indentation %d", indent)
		}
		return writeJSON(cmd.OutOrStdout(), ts, indent, includeBuiltins)
	}
	return sdl.Print(cmd.OutOrStdout(), ts, sdl.PrintOptions{
		IncludeBuiltins: includeBuiltins,
		Indent:          v.GetString("indent"),
	})
}

func writeJSON(w io.Writer, ts *registry.TypeSystem, indent int, includeBuiltins bool) error {
	api := jsoniter.Config{IndentionStep: indent}.Froze()
	stream := api.BorrowStream(w)
	defer api.ReturnStream(stream)

	ts.Encode(stream, includeBuiltins)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

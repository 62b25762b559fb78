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

// Package cli implements the graphconf command line.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "GRAPHCONF"

// NewRootCommand creates the graphconf command. Every command tree gets its own viper instance
// which reads flags, GRAPHCONF_* environment variables and the file given by --config.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "graphconf",
		Short:         "graphconf merges GraphQL type declarations and their extensions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.BoolP("verbose", "v", false, "print debug logs")
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(newMergeCommand(v))
	return rootCmd
}

func readConfig(v *viper.Viper) error {
	file := v.GetString("config")
	if len(file) == 0 {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cannot read config file %s: %w", file, err)
	}
	return nil
}

// newLogger writes human readable debug logs when verbose is set and JSON warnings otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if verbose {
		encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel), zap.Development())
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.WarnLevel))
}

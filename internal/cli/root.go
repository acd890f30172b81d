/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cli implements the dxcatalog command tree.
//
// Every subcommand is a thin wrapper over one catalog.Code operation: it
// parses its arguments, calls the operation and renders the result as text,
// JSON or YAML. No state is kept between invocations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/dxcatalog/internal/config"
	"dirpx.dev/dxcatalog/internal/logger"
)

type app struct {
	format        Format
	defaultOutput string
	logLevel      string
	zl            *zap.Logger
}

// NewRootCommand returns the dxcatalog root command with all subcommands
// attached. cfg supplies the defaults for --output and --log-level.
func NewRootCommand(cfg config.Config) *cobra.Command {
	a := &app{
		format:        FormatText,
		defaultOutput: cfg.Output,
	}

	root := &cobra.Command{
		Use:   "dxcatalog",
		Short: "Inspect and derive dotted-decimal catalog codes",
		Long: `dxcatalog parses, orders and derives hierarchical catalog codes
such as "1.2.3". The empty code and the literal "root" denote the root.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().VarP(&a.format, "output", "o", "result format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "minimum log level written to stderr")

	root.AddCommand(
		newParseCommand(a),
		newCompareCommand(a),
		newSortCommand(a),
		newParentCommand(a),
		newRelativeCommand(a),
		newAppendCommand(a),
		newOffsetCommand(a),
		newNextCommand(a),
		newSiblingsCommand(a),
		newChildCommand(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("output") && a.defaultOutput != "" {
		if err := a.format.Set(a.defaultOutput); err != nil {
			return fmt.Errorf("DXCATALOG_OUTPUT: %w", err)
		}
	}

	lvl, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	log, zl := logger.New(cmd.ErrOrStderr(), lvl)
	a.zl = zl
	cmd.SetContext(logger.WithLogger(cmd.Context(), log.WithValues(logger.CommandKey, cmd.Name())))
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	return logger.Sync(a.zl)
}

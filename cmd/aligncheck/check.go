package main

import (
	"errors"
	"fmt"

	"github.com/davejbax/memalign/internal/verify"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("alignment checks failed")

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var (
		format       string
		failuresOnly bool
		maxAlignment uint64
		types        []string
		parallelism  int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the alignment checks and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := opts.config
			flags := cmd.Flags()

			if flags.Changed("format") {
				config.Format = format
			}
			if flags.Changed("failures-only") {
				config.FailuresOnly = failuresOnly
			}
			if flags.Changed("max-alignment") {
				config.Check.MaxAlignment = maxAlignment
			}
			if flags.Changed("types") {
				config.Check.Types = types
			}
			if flags.Changed("parallelism") {
				config.Check.Parallelism = parallelism
			}

			if err := config.validate(); err != nil {
				return err
			}

			report, err := verify.Run(cmd.Context(), opts.logger, &config.Check)
			if err != nil {
				return fmt.Errorf("failed to run checks: %w", err)
			}

			output := report
			if config.FailuresOnly {
				output = report.FailuresOnly()
			}

			switch config.Format {
			case formatJSON:
				if err := output.WriteJSON(cmd.OutOrStdout()); err != nil {
					return err
				}
			default:
				if _, err := output.WriteTo(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
			}

			if report.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, report.Failed, len(report.Results))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Report format (text, json)")
	cmd.Flags().BoolVar(&failuresOnly, "failures-only", false, "Only print failed checks")
	cmd.Flags().Uint64Var(&maxAlignment, "max-alignment", 128, "Largest power-of-two alignment to check")
	cmd.Flags().StringSliceVar(&types, "types", nil, "Integer types to check")
	cmd.Flags().IntVar(&parallelism, "parallelism", 4, "Number of suites run at once")

	return cmd
}

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the integer types that can be checked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range verify.TypeNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

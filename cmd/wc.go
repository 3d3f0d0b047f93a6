package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/conneroisu/localvec/internal/wordcount"
)

var wcCmd = &cobra.Command{
	Use:     "wc FILE...",
	Aliases: []string{"count"},
	Short:   "Count lines, words and bytes",
	Long: `Count lines, words and bytes in one or more UTF-8 text files.

Bytes count line content only, without line terminators. A file that
cannot be read, or that is not valid UTF-8, is reported and skipped; the
remaining files are still counted and the command exits non-zero.

Examples:
  localvec wc main.go                 # Counts for one file
  localvec wc *.go                    # Per-file counts and a total
  localvec wc -o json notes.txt       # JSON output`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWC,
}

var wcOutput *OutputFlags

func init() {
	rootCmd.AddCommand(wcCmd)

	wcOutput = AddOutputFlags(wcCmd.Flags())
}

type wcReport struct {
	Files []wordcount.Result `json:"files" yaml:"files"`
	Total wordcount.Counts   `json:"total" yaml:"total"`
}

func runWC(cmd *cobra.Command, args []string) error {
	if err := wcOutput.Validate(); err != nil {
		return err
	}

	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	counter := wordcount.NewCounter(logger, cfg.Vec.InlineCapacity)
	results, countErr := counter.CountFiles(commandContext(cmd), args)
	total := wordcount.Total(results)

	out := cmd.OutOrStdout()
	if wcOutput.Structured() {
		report := wcReport{Files: results.AsSlice(), Total: total}
		if report.Files == nil {
			report.Files = []wordcount.Result{}
		}
		if err := writeStructured(out, wcOutput.Format, report); err != nil {
			return err
		}
		return countErr
	}

	printer := message.NewPrinter(cfg.Language())
	for result := range results.Values() {
		printer.Fprintf(out, "%s: %d lines, %d words, %d bytes\n",
			result.Path, result.Lines, result.Words, result.Bytes)
	}
	if results.Len() > 1 {
		printer.Fprintf(out, "total: %d lines, %d words, %d bytes\n",
			total.Lines, total.Words, total.Bytes)
	}

	return countErr
}

package cmd

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localvec/internal/configfile"
	"github.com/conneroisu/localvec/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and check service configuration files",
	Long: `Read and check service configuration files.

The decoder is chosen from the file extension: .json files are decoded as
JSON, .yml and .yaml files as YAML. Unknown keys are rejected.

Examples:
  localvec config show service.yaml           # Print the decoded config
  localvec config show service.json --watch   # Re-print on every change
  localvec config validate service.yaml       # Check required values
  localvec config settings                    # Show localvec's own settings`,
}

var configShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Decode and print a service configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a service configuration",
	Long: `Decode a service configuration and check every field:

- port must be non-zero
- base_url must be an absolute http or https URL
- s3_path must look like s3://bucket/prefix
- database_url must include a scheme

All problems are listed, not just the first.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigValidate,
}

var configSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show resolved localvec settings",
	Long: `Display localvec's own settings after merging the config file,
LOCALVEC_* environment variables, flags and defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigSettings,
}

var (
	configShowOutput     *OutputFlags
	configSettingsOutput *OutputFlags
	configWatch          bool
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSettingsCmd)

	configShowOutput = AddOutputFlags(configShowCmd.Flags())
	configShowCmd.Flags().BoolVarP(&configWatch, "watch", "w", false, "Re-print the configuration whenever the file changes")

	configSettingsOutput = AddOutputFlags(configSettingsCmd.Flags())
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if err := configShowOutput.Validate(); err != nil {
		return err
	}

	path := args[0]
	out := cmd.OutOrStdout()

	cfg, err := configfile.Read(path)
	if !configWatch {
		if err != nil {
			return err
		}
		return printServiceConfig(out, configShowOutput.Format, cfg)
	}

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
	} else if err := printServiceConfig(out, configShowOutput.Format, cfg); err != nil {
		return err
	}

	_, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	watcher := configfile.NewWatcher(path, logger)
	return watcher.Run(commandContext(cmd), func(cfg *configfile.ServiceConfig, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			return
		}
		if err := printServiceConfig(out, configShowOutput.Format, cfg); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
	})
}

func printServiceConfig(w io.Writer, format string, cfg *configfile.ServiceConfig) error {
	if format != formatText {
		return writeStructured(w, format, cfg)
	}

	_, err := fmt.Fprintf(w, "port: %d\nbase_url: %s\ns3_path: %s\ndatabase_url: %s\n",
		cfg.Port, cfg.BaseURL, cfg.S3Path, cfg.DatabaseURL)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := configfile.Read(args[0])
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}

	var joined interface{ Unwrap() []error }
	problems := []error{err}
	if stderrors.As(err, &joined) {
		problems = joined.Unwrap()
	}
	for _, problem := range problems {
		fmt.Fprintf(cmd.OutOrStdout(), "- %v\n", problem)
	}

	return errors.NewValidationError(errors.ErrCodeValidationFailed,
		fmt.Sprintf("%d problem(s) found", len(problems))).WithPath(args[0])
}

func runConfigSettings(cmd *cobra.Command, args []string) error {
	if err := configSettingsOutput.Validate(); err != nil {
		return err
	}

	cfg, _, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configSettingsOutput.Structured() {
		return writeStructured(out, configSettingsOutput.Format, cfg)
	}

	_, err = fmt.Fprintf(out, "log.level: %s\nlog.format: %s\nvec.inline_capacity: %d\nwc.locale: %s\n",
		cfg.Log.Level, cfg.Log.Format, cfg.Vec.InlineCapacity, cfg.WC.Locale)
	return err
}

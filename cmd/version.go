package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localvec/internal/version"
)

var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for localvec including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  localvec version              # Show version details
  localvec version --short      # Show short version
  localvec version -o json      # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

var versionOutput *OutputFlags

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionOutput = AddOutputFlags(versionCmd.Flags())
}

type versionReport struct {
	version.BuildInfo `yaml:",inline"`
	IsRelease         bool `json:"is_release" yaml:"is_release"`
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	if err := versionOutput.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if versionOutput.Structured() {
		return writeStructured(out, versionOutput.Format, versionReport{
			BuildInfo: *version.GetBuildInfo(),
			IsRelease: version.IsRelease(),
		})
	}

	if versionShort {
		fmt.Fprintln(out, version.GetShortVersion())
		return nil
	}

	info := version.GetBuildInfo()

	fmt.Fprintf(out, "localvec %s", info.Version)
	if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
		fmt.Fprintf(out, " (%s)", info.GitCommit[:7])
	}
	if info.Dirty {
		fmt.Fprint(out, " (dirty)")
	}
	fmt.Fprintln(out)

	if !info.BuildTime.IsZero() {
		fmt.Fprintf(out, "Built: %s\n", info.BuildTime.UTC().Format("2006-01-02 15:04:05 UTC"))
	}
	fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/config"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/manifest"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/pkgmgr"
)

var (
	checkManifest string

	doctorProbe  pkgmgr.Probe  = pkgmgr.PathProbe{}
	doctorRunner pkgmgr.Runner = &pkgmgr.ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
)

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that packages can be installed",
	Long: `Report which package managers are on PATH and their versions, and whether
the configured one satisfies min_version. With --check-manifest, validate a
package.json against the manifest schema instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}
		return runManagerCheck(cmd.Context(), out, config.Current())
	},
}

// runManagerCheck prints one status line per supported package manager and
// fails when the configured one is unusable.
func runManagerCheck(ctx context.Context, out io.Writer, s config.Settings) error {
	configured, err := pkgmgr.Lookup(s.PackageManager)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Package managers:")
	var configuredErr error
	for _, name := range pkgmgr.Names() {
		m, _ := pkgmgr.Lookup(name)
		isConfigured := m.Name == configured.Name
		marker := ""
		if isConfigured {
			marker = " (configured)"
		}

		path, err := pkgmgr.Preflight(doctorProbe, m)
		if err != nil {
			fmt.Fprintf(out, "  [MISS] %s%s not found: %s\n", m.Name, marker, m.InstallHint)
			if isConfigured {
				configuredErr = err
			}
			continue
		}

		v, err := pkgmgr.Version(ctx, doctorRunner, m)
		if err != nil {
			if isConfigured && s.MinVersion != "" {
				fmt.Fprintf(out, "  [FAIL] %s%s found at %s, %v\n", m.Name, marker, path, err)
				configuredErr = err
				continue
			}
			fmt.Fprintf(out, "  [WARN] %s%s found at %s, %v\n", m.Name, marker, path, err)
			continue
		}

		if isConfigured && s.MinVersion != "" {
			if err := pkgmgr.CheckVersion(v, s.MinVersion); err != nil {
				fmt.Fprintf(out, "  [FAIL] %s%s %s at %s: %v\n", m.Name, marker, v, path, err)
				configuredErr = fmt.Errorf("%s: %w", m.Name, err)
				continue
			}
		}
		fmt.Fprintf(out, "  [ OK ] %s%s %s at %s\n", m.Name, marker, v, path)
	}
	return configuredErr
}

func runManifestCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "  [MISS] %s not found\n", path)
		return fmt.Errorf("manifest %s not found", path)
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		pkg, err := manifest.Read(path)
		if err != nil {
			fmt.Fprintf(out, "  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid manifest: %s (v%s)\n", pkg.Name, pkg.Version)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}

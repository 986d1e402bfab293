package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/config"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/pkgmgr"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/platform"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/scaffold"
)

// newFlagKeys maps each flag of the new command to its config key.
var newFlagKeys = map[string]string{
	"gulp":             config.KeyGulp,
	"dev-packages":     config.KeyDevPackages,
	"dependencies":     config.KeyDependencies,
	"app-folder":       config.KeyAppFolder,
	"css-folder":       config.KeyCSSFolder,
	"fonts-folder":     config.KeyFontsFolder,
	"images-folder":    config.KeyImagesFolder,
	"js-folder":        config.KeyJSFolder,
	"sass-folder":      config.KeySassFolder,
	"html-file":        config.KeyHTMLFile,
	"dist-folder":      config.KeyDistFolder,
	"package-manager":  config.KeyPackageManager,
	"min-version":      config.KeyMinVersion,
	"on-install-error": config.KeyOnInstallError,
	"on-path-error":    config.KeyOnPathError,
	"batch":            config.KeyBatch,
	"skip-install":     config.KeySkipInstall,
}

func init() {
	f := newCmd.Flags()
	f.Bool("gulp", false, "Write a gulpfile.js with build, watch and serve tasks")
	f.StringSlice("dev-packages", nil, "Development packages to install, in order (default gulp toolchain)")
	f.StringSlice("dependencies", nil, "Runtime packages to install, in order (default jquery,bootstrap)")
	f.String("app-folder", "", "Application folder name (default \"app\")")
	f.String("css-folder", "", "CSS folder name inside the app folder (default \"css\")")
	f.String("fonts-folder", "", "Fonts folder name inside the app folder (default \"fonts\")")
	f.String("images-folder", "", "Images folder name inside the app folder (default \"images\")")
	f.String("js-folder", "", "JavaScript folder name inside the app folder (default \"js\")")
	f.String("sass-folder", "", "Sass folder name inside the app folder (default \"scss\")")
	f.String("html-file", "", "Entry HTML file name inside the app folder (default \"index.html\")")
	f.String("dist-folder", "", "Distribution folder name (default \"wwwroot\")")
	f.String("package-manager", "", "Package manager to install with: "+strings.Join(pkgmgr.Names(), ", ")+" (default \"npm\")")
	f.String("min-version", "", "Semver constraint the package manager must satisfy, e.g. \">= 7\"")
	f.String("on-install-error", "", "After a failed package install: continue or abort (default \"continue\")")
	f.String("on-path-error", "", "After a failed path: abort or continue (default \"abort\")")
	f.Bool("batch", false, "Install each package category with a single invocation")
	f.Bool("skip-install", false, "Create files only; do not run the package manager")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:     "new [path]...",
	Aliases: []string{"create"},
	Short:   "Scaffold a front-end web project",
	Long: `Create the folder layout, package.json and optional gulpfile.js for a
front-end web project at each path, then install its packages.

Paths are scaffolded in order. When no path is given you are asked for one.
Defaults for every flag can be stored with "config set" or WEBDEVENV_*
environment variables.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, newFlagKeys)
	},
	RunE: runNew,
}

// bindFlags ties flags to config keys so flag > env > file > default.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for name, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		path, err := askPath()
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	settings := config.Current()
	s, err := newScaffolder(settings, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reqs := make([]scaffold.Request, 0, len(paths))
	for _, p := range paths {
		reqs = append(reqs, settings.Request(p))
	}

	results, runErr := s.Run(cmd.Context(), reqs)
	printWarnings(cmd.ErrOrStderr(), results)
	if runErr != nil {
		return runErr
	}
	printNextSteps(cmd.OutOrStdout(), settings, paths)
	return nil
}

func askPath() (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Project path:",
		Default: "my-site",
	}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// newScaffolder wires the real probe, runner and working directory.
func newScaffolder(s config.Settings, stdout, stderr io.Writer) (*scaffold.Scaffolder, error) {
	m, err := pkgmgr.Lookup(s.PackageManager)
	if err != nil {
		return nil, err
	}
	installPolicy, err := pkgmgr.ParsePolicy(s.OnInstallError)
	if err != nil {
		return nil, fmt.Errorf("--on-install-error: %w", err)
	}
	pathPolicy, err := pkgmgr.ParsePolicy(s.OnPathError)
	if err != nil {
		return nil, fmt.Errorf("--on-path-error: %w", err)
	}

	runner := &pkgmgr.ExecRunner{Stdout: stdout, Stderr: stderr}
	sc := &scaffold.Scaffolder{
		Manager:    m,
		Probe:      pkgmgr.PathProbe{},
		Runner:     runner,
		PathPolicy: pathPolicy,
		MinVersion: s.MinVersion,
		Out:        stdout,
	}
	if !s.SkipInstall {
		sc.Installer = &pkgmgr.Installer{
			Manager: m,
			Runner:  runner,
			WorkDir: platform.OSWorkDir{},
			Policy:  installPolicy,
			Batch:   s.Batch,
			Out:     stdout,
		}
	}
	return sc, nil
}

func printWarnings(w io.Writer, results []*scaffold.Result) {
	for _, res := range results {
		for _, msg := range res.Warnings {
			fmt.Fprintf(w, "[WARN] %s: %s\n", res.BasePath, msg)
		}
	}
}

func printNextSteps(w io.Writer, s config.Settings, paths []string) {
	fmt.Fprintln(w, "\nNext steps:")
	for _, p := range paths {
		fmt.Fprintf(w, "  cd %s\n", p)
	}
	if s.SkipInstall {
		fmt.Fprintf(w, "  %s install\n", s.PackageManager)
	}
	if s.Gulp {
		fmt.Fprintln(w, "  npx gulp")
	}
}

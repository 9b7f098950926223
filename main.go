package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/phravins/layergen/internal/config"
	"github.com/phravins/layergen/internal/scaffold"
	"github.com/phravins/layergen/internal/templates"
	"github.com/phravins/layergen/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:     "layergen",
	Version: config.Version,
	Short:   "Generate layered-architecture FastAPI project skeletons",
	Long: `Layergen scaffolds a DDD-style FastAPI service: a four-layer source
tree (api, application, domain, infrastructure), a mirrored test tree,
dependency manifests, container files, lint/test configuration, and a
sample health endpoint with its schema and test.`,
	SilenceUsage: true,
}

var (
	newPath        string
	newName        string
	newForce       bool
	newInteractive bool
	newYAML        bool

	listFilter string
	listYAML   bool
)

func init() {
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new project skeleton",
		Long: `Generates the project skeleton under <path>/<name>. Existing files are
left untouched unless --force is set; a non-empty destination aborts the
run before anything is written.`,
		RunE: runNew,
	}
	newCmd.Flags().StringVarP(&newPath, "path", "p", "", "parent directory to generate the project in (default: workspace from config)")
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "project name")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite existing files")
	newCmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false, "prompt for missing inputs and overwrite confirmation")
	newCmd.Flags().BoolVar(&newYAML, "yaml", false, "print the run report as YAML")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the directories and files a run would generate",
		RunE:  runList,
	}
	listCmd.Flags().StringVar(&listFilter, "filter", "", "fuzzy-filter entries")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "print the catalog as YAML")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(newName)
	if name == "" && newInteractive {
		name, err = tui.PromptProjectName()
		if err != nil {
			return err
		}
	}
	if name == "" {
		return scaffold.ErrInvalidProjectName
	}

	parent := newPath
	if parent == "" {
		parent = cfg.Workspace
	}
	root := filepath.Join(parent, name)

	params := scaffold.Params{Root: root, ProjectName: name, Force: newForce}
	report, err := scaffold.Run(params)
	if errors.Is(err, scaffold.ErrDestinationNotEmpty) && newInteractive {
		ok, cerr := tui.ConfirmOverwrite(root)
		if cerr != nil {
			return cerr
		}
		if ok {
			params.Force = true
			report, err = scaffold.Run(params)
		}
	}
	if err != nil {
		return err
	}

	if newYAML {
		out, merr := yaml.Marshal(report)
		if merr != nil {
			return merr
		}
		cmd.OutOrStdout().Write(out)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(report, !cfg.NoColor))
	}

	if report.HasFailures() {
		return fmt.Errorf("scaffold finished with %d failed item(s)", report.Failed())
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	dirs := append([]string{}, templates.Dirs...)
	files := make([]string, 0, len(templates.Registry))
	for _, a := range templates.Registry {
		files = append(files, a.Path)
	}

	if listFilter != "" {
		dirs = fuzzyFilter(listFilter, dirs)
		files = fuzzyFilter(listFilter, files)
	}

	if listYAML {
		out, err := yaml.Marshal(struct {
			Directories []string `yaml:"directories"`
			Artifacts   []string `yaml:"artifacts"`
		}{dirs, files})
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(out)
		return nil
	}

	w := cmd.OutOrStdout()
	for _, d := range dirs {
		fmt.Fprintf(w, "dir   %s/\n", d)
	}
	for _, f := range files {
		fmt.Fprintf(w, "file  %s\n", f)
	}
	return nil
}

func fuzzyFilter(pattern string, entries []string) []string {
	matches := fuzzy.Find(pattern, entries)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package commands implements the CLI commands for the denv tool.
package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/denv/internal/app"
)

// CLI represents the command line interface for denv.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "denv",
		Short:         "Resolve, cache, and deploy declarative conda environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the declarative environment file")
	rootCmd.PersistentFlags().StringP("name", "n", "", "Name of an existing environment")
	rootCmd.PersistentFlags().StringP("directory", "d", "", "Directory of an existing environment")
	rootCmd.PersistentFlags().String("work-dir", "", "Base directory for identity-keyed deployments and caches")
	rootCmd.PersistentFlags().String("prefix", "", "Deployment prefix, overriding the identity-derived default")
	rootCmd.PersistentFlags().String("cache-dir", "", "Artifact cache directory, overriding the identity-derived default")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newPinCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newIDCmd())
	rootCmd.AddCommand(c.newSoftwareCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the root command's output streams. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// request assembles the environment request from the persistent flags.
func (c *CLI) request(cmd *cobra.Command) app.EnvRequest {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	name, _ := flags.GetString("name")
	directory, _ := flags.GetString("directory")
	workDir, _ := flags.GetString("work-dir")
	prefix, _ := flags.GetString("prefix")
	cacheDir, _ := flags.GetString("cache-dir")

	if workDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			workDir = filepath.Join(base, "denv")
		} else {
			workDir = filepath.Join(os.TempDir(), "denv")
		}
	}

	return app.EnvRequest{
		EnvFile:   file,
		Name:      name,
		Directory: directory,
		WorkDir:   workDir,
		Prefix:    prefix,
		CacheDir:  cacheDir,
	}
}

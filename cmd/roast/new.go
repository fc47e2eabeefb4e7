package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/roast/internal/scaffold"
)

func (a *app) newCmd() *cobra.Command {
	var (
		flavor  string
		groupID string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new Rust library with a Java project around it",
		Long: `Create a new project directory containing a cdylib crate, a roast.toml and
the build files of the chosen flavor, and initialize a git repository in it.
The crate author is read from the global git config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics := a.diagnostics(cmd)
			logger := a.logger()
			defer func() { _ = logger.Sync() }()

			result, err := scaffold.Create(scaffold.Options{
				Name:    args[0],
				Dir:     a.projectDir,
				Flavor:  flavor,
				GroupID: groupID,
				Logger:  logger.Named("scaffold"),
			})
			if err != nil {
				return err
			}

			diagnostics.RoastHeader("Created project " + args[0])
			if result.Author == "" {
				diagnostics.Warn("No author found in the global git config; edit Cargo.toml to add one")
			}
			for _, file := range result.Files {
				diagnostics.PhaseItem(file)
			}
			diagnostics.Success("Project ready in %s", result.Root)
			return nil
		},
	}

	cmd.Flags().StringVar(&flavor, "flavor", scaffold.DefaultFlavor, "Java build flavor")
	cmd.Flags().StringVar(&groupID, "groupid", scaffold.DefaultGroupID, "Java group id")
	return cmd
}

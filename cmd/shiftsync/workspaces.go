package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkspacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "List Grist workspaces and their documents",
		Args:  cobra.NoArgs,
		RunE:  runWorkspaces,
	}
	addGristFlags(cmd)
	return cmd
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	workspaces, err := newClient(cfg).ListWorkspaces(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, ws := range workspaces {
		fmt.Fprintf(out, "%d\t%s\n", ws.ID, ws.Name)
		for _, d := range ws.Docs {
			fmt.Fprintf(out, "\t%s\t%s\n", d.ID, d.Name)
		}
	}
	return nil
}

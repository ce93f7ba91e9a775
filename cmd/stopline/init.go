package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stopline/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default stopline.toml",
	Long: `Write stopline.toml with the default settings into dir (the current
directory when omitted). The directory is created if needed. An existing
manifest is only replaced with --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing stopline.toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	path, err := config.WriteDefault(dir, force)
	if err != nil {
		return err
	}
	if !appFrom(cmd).quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}

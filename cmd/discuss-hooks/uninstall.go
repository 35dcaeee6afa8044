package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/installer"
)

var uninstallPlatform string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the hook registrations",
	Long: `Remove the discuss-hooks entries from the AI tools' config files.

Only entries installed by discuss-hooks are touched; hook registrations
from other tools stay intact. Snapshot files inside workspaces are left
alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		targets, err := resolveTargets(uninstallPlatform)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(targets) == 0 {
			fmt.Println("No supported AI tool found, nothing to do")
			return
		}

		failed := 0
		for _, p := range targets {
			configPath, err := installer.Uninstall(p)
			if err != nil {
				fmt.Printf("%s %s: %v\n", red("✗"), p, err)
				failed++
				continue
			}
			fmt.Printf("%s %s hooks removed from %s\n", green("✓"), p, configPath)
		}

		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallPlatform, "platform", "", "Limit to one tool: claude or cursor")
	rootCmd.AddCommand(uninstallCmd)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
	"github.com/alienzhou/skill-discuss-for-specs/internal/installer"
	"github.com/alienzhou/skill-discuss-for-specs/internal/snapshot"
	"github.com/alienzhou/skill-discuss-for-specs/internal/workspace"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check installation and environment health",
	Long: `Run health checks to diagnose common discuss-hooks setup issues.

This command checks:
- per-user base directory and log directory writability
- which AI tools are detected and whether hooks are registered
- discuss roots under the current workspace
- snapshot files parse cleanly

Exit codes:
  0 - all checks passed
  1 - one or more checks failed`,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("Running discuss-hooks health checks...\n\n")
		failures := 0

		// Base directory writability.
		fmt.Printf("%s Base directory\n", cyan("→"))
		baseDir := config.BaseDir()
		if err := os.MkdirAll(filepath.Join(baseDir, "logs"), 0o755); err != nil {
			fmt.Printf("  %s %s not writable: %v\n", red("✗"), baseDir, err)
			failures++
		} else {
			fmt.Printf("  %s %s\n", green("✓"), baseDir)
		}

		// Detected tools and registrations.
		fmt.Printf("%s AI tools\n", cyan("→"))
		detected := installer.DetectPlatforms()
		if len(detected) == 0 {
			fmt.Printf("  %s no supported tool found (~/.claude, ~/.cursor)\n", yellow("⚠"))
		}
		for _, p := range detected {
			if v := installer.InstalledVersion(p); v != "" {
				fmt.Printf("  %s %s: hooks installed (v%s)\n", green("✓"), p, v)
			} else {
				fmt.Printf("  %s %s detected, hooks not installed (run 'discuss-hooks install')\n", yellow("⚠"), p)
			}
		}

		// Workspace discussions.
		fmt.Printf("%s Workspace\n", cyan("→"))
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("  %s cannot resolve working directory: %v\n", red("✗"), err)
			failures++
		} else {
			roots := workspace.DiscussRoots(cwd)
			if len(roots) == 0 {
				fmt.Printf("  %s no discuss root under %s\n", yellow("⚠"), cwd)
			}
			for _, discussRoot := range roots {
				snap := snapshot.Load(discussRoot)
				fmt.Printf("  %s %s: %d tracked discussion(s), threshold %d\n",
					green("✓"), discussRoot, len(snap.Discussions),
					snap.Threshold(config.StaleThreshold()))
			}
		}

		fmt.Println()
		if failures > 0 {
			fmt.Printf("%s %d check(s) failed\n", red("✗"), failures)
			os.Exit(1)
		}
		fmt.Printf("%s All checks passed\n", green("✓"))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/installer"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

var installPlatform string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the hooks with installed AI tools",
	Long: `Register track-edit and check with the AI tools found on this machine.

Claude Code registrations go into ~/.claude/settings.json, Cursor
registrations into ~/.cursor/hooks.json. Existing entries from other tools
are preserved; re-running replaces only the discuss-hooks entries.

Example:
  discuss-hooks install                      # all detected tools
  discuss-hooks install --platform claude    # Claude Code only
  discuss-hooks install --platform cursor    # Cursor only`,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		binPath, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot resolve own binary path: %v\n", err)
			os.Exit(1)
		}

		targets, err := resolveTargets(installPlatform)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(targets) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no supported AI tool found (looked for ~/.claude and ~/.cursor)\n")
			os.Exit(1)
		}

		failed := 0
		for _, p := range targets {
			result, err := installer.Install(p, binPath, version)
			if err != nil {
				fmt.Printf("%s %s: %v\n", red("✗"), p, err)
				failed++
				continue
			}

			switch result.Action {
			case installer.ActionUpgrade:
				fmt.Printf("%s %s %s (%s → %s)\n", green("✓"), p, result.Action, result.PrevVersion, version)
			case installer.ActionDowngrade:
				fmt.Printf("%s %s %s (%s → %s)\n", green("✓"), p, result.Action, result.PrevVersion, version)
			default:
				fmt.Printf("%s %s %s (v%s)\n", green("✓"), p, result.Action, version)
			}
			fmt.Printf("  Config: %s\n", cyan(result.ConfigPath))
		}

		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	installCmd.Flags().StringVar(&installPlatform, "platform", "", "Limit to one tool: claude or cursor")
	rootCmd.AddCommand(installCmd)
}

// resolveTargets maps the --platform flag to concrete platforms, falling
// back to auto-detection when the flag is empty.
func resolveTargets(flag string) ([]platform.Platform, error) {
	switch flag {
	case "":
		return installer.DetectPlatforms(), nil
	case "claude", "claude-code":
		return []platform.Platform{platform.ClaudeCode}, nil
	case "cursor":
		return []platform.Platform{platform.Cursor}, nil
	default:
		return nil, fmt.Errorf("unknown platform %q (want claude or cursor)", flag)
	}
}

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
	"github.com/alienzhou/skill-discuss-for-specs/internal/reminder"
	"github.com/alienzhou/skill-discuss-for-specs/internal/snapshot"
	"github.com/alienzhou/skill-discuss-for-specs/internal/workspace"
)

var statusCmd = &cobra.Command{
	Use:   "status [workspace-root]",
	Short: "Show tracked discussions and their change counters",
	Long: `Show the snapshot state for every discuss root under a workspace.

For each tracked discussion the current change count is printed together
with its staleness level:

  ok        below the stale threshold
  suggest   at or above the threshold — a reminder would fire
  force     at or above twice the threshold — the check hook would block

Defaults to the current working directory when no root is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := ""
		if len(args) > 0 {
			root = args[0]
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			root = cwd
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		discussRoots := workspace.DiscussRoots(root)
		if len(discussRoots) == 0 {
			fmt.Println("No discuss root found (looked for discuss/, discussions/, .discuss/)")
			return
		}

		for _, discussRoot := range discussRoots {
			snap := snapshot.Load(discussRoot)
			threshold := snap.Threshold(config.StaleThreshold())

			fmt.Printf("\n%s (threshold %d, force at %d)\n", cyan(discussRoot), threshold, 2*threshold)

			if len(snap.Discussions) == 0 {
				fmt.Println("  no tracked discussions")
				continue
			}

			keys := make([]string, 0, len(snap.Discussions))
			for key := range snap.Discussions {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				d := snap.Discussions[key]
				r := reminder.Reminder{ChangeCount: d.Outline.ChangeCount, Threshold: threshold}

				var marker string
				switch r.Severity() {
				case reminder.Force:
					marker = red("force")
				case reminder.Suggest:
					marker = yellow("suggest")
				default:
					marker = green("ok")
				}

				fmt.Printf("  %-45s changes=%d decisions=%d notes=%d  %s\n",
					key, d.Outline.ChangeCount, len(d.Decisions), len(d.Notes), marker)
			}
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

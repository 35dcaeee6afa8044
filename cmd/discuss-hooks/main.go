package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
)

// version is the release version recorded by the installer. Overridable at
// build time with -ldflags "-X main.version=...".
var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "discuss-hooks",
	Short: "Precipitation reminder hooks for AI pair-programming tools",
	Long: `discuss-hooks keeps discussion outlines honest.

A discussion is a dated topic folder (discuss/YYYY-MM-DD/topic-slug/) with an
outline.md plus decisions/ and notes/ subfolders. When an outline keeps being
edited without any decision or note being written down, the conversation is
going in circles: discuss-hooks counts those consecutive outline edits and
reminds the AI tool to precipitate the discussion into durable artifacts.

Two subcommands implement the hook protocol (JSON on stdin, JSON on stdout,
always exit 0) and are wired into the host tool by 'discuss-hooks install':

  track-edit   after-edit trigger: classifies the edited file
  check        conversation-end trigger: runs the staleness check

The rest are human-facing utilities (install, uninstall, status, doctor).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.OnInitialize(config.Init)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

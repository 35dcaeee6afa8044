package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/hooks"
	"github.com/alienzhou/skill-discuss-for-specs/internal/logging"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

var trackCmd = &cobra.Command{
	Use:   "track-edit",
	Short: "Edit-time hook: record a discussion file edit",
	Long: `Run as the after-edit hook of the host tool.

Reads the tool's hook payload from stdin, records outline edits in the
conversation session, and writes {} to stdout. Always exits 0: an edit is
never blocked, not even when this hook fails internally.

Registered automatically by 'discuss-hooks install' as:
  Claude Code: PostToolUse hook with matcher "Edit|Write|MultiEdit"
  Cursor:      afterFileEdit hook`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Setup("track-edit")
		runHook(func(in *platform.Input) platform.Response {
			return hooks.TrackEdit(in)
		})
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

// runHook executes a hook body with the protocol guarantees both triggers
// share: payload from stdin, exactly one JSON object to stdout, exit 0 no
// matter what. A panic anywhere inside degrades to an allow response.
func runHook(body func(*platform.Input) platform.Response) {
	resp := platform.Allow()

	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("hook panicked, degrading to allow", "panic", r)
				resp = platform.Allow()
			}
		}()
		resp = body(platform.ReadInput(os.Stdin))
	}()

	if err := platform.Write(os.Stdout, resp); err != nil {
		slog.Error("failed to write hook response", "error", err)
	}
	os.Exit(0)
}

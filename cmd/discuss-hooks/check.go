package main

import (
	"github.com/spf13/cobra"

	"github.com/alienzhou/skill-discuss-for-specs/internal/hooks"
	"github.com/alienzhou/skill-discuss-for-specs/internal/logging"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Conversation-end hook: run the precipitation staleness check",
	Long: `Run as the conversation-end (stop) hook of the host tool.

Reads the tool's hook payload from stdin, scans every discussion modified
within the detection window, advances the per-discussion change counters,
and writes the response to stdout:

  {}                                        when nothing is stale
  {"decision": "block", "reason": ...}      Claude Code, stale discussions
  {"followup_message": ...}                 Cursor, stale discussions

Always exits 0. A payload carrying stop_hook_active=true short-circuits to
{} so the reminder cannot loop.

Registered automatically by 'discuss-hooks install' as:
  Claude Code: Stop hook
  Cursor:      stop hook`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Setup("check")
		runHook(func(in *platform.Input) platform.Response {
			return hooks.Check(in)
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

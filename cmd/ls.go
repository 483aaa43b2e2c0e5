package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EugeneDevastator/TraVis/internal/presentation"
)

var lsCmd = &cobra.Command{
	Use:   "ls [step...]",
	Short: "Apply steps and print the resulting view as JSON",
	Long: `Build the navigator, apply each step in order and print where the cursor
ends up as JSON.

Examples:
  # The start view
  travis ls

  # Pick the disk branch of the root composite, then a volume
  travis ls 0:Disk /

  # Children only
  travis ls 0:Disk / home | jq -r '.children[]'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadedConfig()
		if err != nil {
			return err
		}
		s, err := openSession(c)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, step := range args {
			if err := s.step(cmd.Context(), step); err != nil {
				return fmt.Errorf("step %q: %w", step, err)
			}
		}
		view, err := s.view(cmd.Context())
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		return formatter.FormatView(presentation.FromView(s.cursor.Active(), view))
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

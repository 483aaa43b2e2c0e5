package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EugeneDevastator/TraVis/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Navigate with a line-oriented command loop",
	Long: `Print the current node and its children, then read commands:

  cd <name>   step into <name> (a child, an absolute path, or "0:Disk" on a composite)
  cd ..       go up one level
  exit        leave

Example:
  printf 'cd 0:Disk\ncd /\nexit\n' | travis repl`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadedConfig()
		if err != nil {
			return err
		}
		s, err := openSession(c)
		if err != nil {
			return err
		}
		defer s.Close()

		loop := repl.New(s.cursor, cmd.InOrStdin(), cmd.OutOrStdout(), repl.WithTimeout(timeout))
		return loop.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

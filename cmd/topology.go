package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EugeneDevastator/TraVis/internal/topology"
)

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Print the resolved provider registry as YAML",
	Args:  cobra.NoArgs,
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

		return topology.Encode(cmd.OutOrStdout(), topology.Describe(s.nav))
	},
}

func init() {
	rootCmd.AddCommand(topologyCmd)
}

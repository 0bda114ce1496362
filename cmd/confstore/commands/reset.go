package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to an empty document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(false)

		st.Reset()
		if err := st.Persist("", false); err != nil {
			return fmt.Errorf("persisting %s: %w", st.SourcePath(), err)
		}
		return nil
	},
}

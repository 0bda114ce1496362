package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpCompact bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the whole configuration document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(false)

		out := st.Serialize(!dumpCompact)
		fmt.Fprint(cmd.OutOrStdout(), out)
		if dumpCompact {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpCompact, "compact", false, "Dense output without whitespace")
}

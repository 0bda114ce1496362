package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Print the JSON value at PATH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(false)

		v := st.Get(args[0])
		if v.IsDiscarded() {
			return fmt.Errorf("no value at %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Raw())
		return nil
	},
}

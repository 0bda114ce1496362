package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	confstore "github.com/telnet2/go-confstore"
	"github.com/telnet2/go-confstore/internal/logging"
)

var setCmd = &cobra.Command{
	Use:   "set PATH VALUE",
	Short: "Write a value at PATH and persist the file",
	Long: `Writes VALUE at PATH, creating intermediate objects as needed,
and persists the document back to the config file. VALUE is parsed as
JSON; anything that does not parse is stored as a string literal.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(false)

		v := confstore.FromJSON(args[1])
		if v.IsDiscarded() {
			v = confstore.FromString(args[1])
		}
		st.Set(args[0], v)

		if err := st.Persist("", false); err != nil {
			return fmt.Errorf("persisting %s: %w", st.SourcePath(), err)
		}
		logging.Debug().Str("path", args[0]).Str("kind", v.Kind().String()).Msg("value set")
		return nil
	},
}

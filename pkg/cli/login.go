package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify credentials by acquiring a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := flags.connect(cmd)
			if err != nil {
				return err
			}
			if _, err := conn.sessions.Get(cmd.Context(), conn.creds); err != nil {
				return err
			}
			defer conn.logout(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "login ok for %s at %s\n", conn.creds.Username, conn.creds.URL)
			return nil
		},
	}
}

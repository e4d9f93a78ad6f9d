package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/common"
)

var userCmd = &cobra.Command{
	Use:   "user <token-id>",
	Short: "Show who is currently using the token",
	Long: `Shows the current legitimate user of the token: the active borrower when
the token is held by a trusted rental proxy, the nominal owner otherwise.

A proxy-held token with no active lease has no current user; in that case
nftenant says so instead of printing the proxy or the original owner.`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: CommonQueryPreprocess,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID := args[0]

		stop := startSpinner("querying the chain...")
		user, err := resolver.CurrentUser(context.Background(), tokenID, "")
		stop()
		if err != nil {
			return err
		}

		if user == "" {
			fmt.Printf("Token %s is held by a rental proxy but has no active borrower.\n", tokenID)
			return nil
		}
		fmt.Printf("Current user of token %s: %s\n", tokenID, common.AccountWithColor(user))
		return nil
	},
}

func init() {
	AddCommonFlagsToQueryCmds(userCmd)
	rootCmd.AddCommand(userCmd)
}

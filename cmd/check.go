package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/common"
)

var checkCmd = &cobra.Command{
	Use:   "check <account-id> <token-id>",
	Short: "Check whether an account is the current user of the token",
	Long: `Checks whether the given account is the current legitimate user of the
token, i.e. the active borrower when the token is rented out, the nominal
owner otherwise. The comparison is exact, no partial matches.`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: CommonQueryPreprocess,
	RunE: func(cmd *cobra.Command, args []string) error {
		account := args[0]
		tokenID := args[1]

		stop := startSpinner("querying the chain...")
		isUser, err := resolver.IsCurrentUser(context.Background(), account, tokenID, "")
		stop()
		if err != nil {
			return err
		}

		if isUser {
			fmt.Printf("%s is the current user of token %s.\n", common.InfoColor(account), tokenID)
		} else {
			fmt.Printf("%s is NOT the current user of token %s.\n", common.AlertColor(account), tokenID)
		}
		return nil
	},
}

func init() {
	AddCommonFlagsToQueryCmds(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

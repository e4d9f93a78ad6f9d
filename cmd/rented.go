package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rentedCmd = &cobra.Command{
	Use:   "rented <token-id>",
	Short: "Tell whether the token is held by a trusted rental proxy",
	Long: `Tells whether the token's nominal owner is one of the trusted rental proxy
contracts. This does not check that an active borrower exists; it answers
"could this token currently be under a rental arrangement", not "is
someone actively renting it".`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: CommonQueryPreprocess,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID := args[0]

		stop := startSpinner("querying the chain...")
		rented, err := resolver.IsRented(context.Background(), tokenID, "")
		stop()
		if err != nil {
			return err
		}

		if rented {
			fmt.Printf("Token %s is rented out through a trusted rental proxy.\n", tokenID)
		} else {
			fmt.Printf("Token %s is not rented through any known rental proxy.\n", tokenID)
		}
		return nil
	},
}

func init() {
	AddCommonFlagsToQueryCmds(rentedCmd)
	rootCmd.AddCommand(rentedCmd)
}

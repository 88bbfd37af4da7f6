package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/2beens/fitdash/pkg"

	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print the bcrypt hash for FITDASH_ADMIN_PASSWORD_HASH",
	Long: `Reads a password from stdin and prints its bcrypt hash.

  echo -n 'secret' | fitctl hash-password`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			return fmt.Errorf("empty password")
		}

		hash, err := pkg.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/hashit"
)

var errNoMatch = errors.New("password does not match hash")

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <value>",
		Short: "Print the lowercase hex MD5 of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hashit.Digest(args[0]))
			return nil
		},
	}
}

func newHashCmd() *cobra.Command {
	var salt, password string
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the pPassword value for a salt and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hashit.HashPassword(salt, password))
			return nil
		},
	}
	cmd.Flags().StringVar(&salt, "salt", "", "pass_salt of the account")
	cmd.Flags().StringVar(&password, "password", "", "Plain text password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var salt, password, hash string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against a stored pPassword value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !hashit.Matches(salt, password, hash) {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return errNoMatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&salt, "salt", "", "pass_salt of the account")
	cmd.Flags().StringVar(&password, "password", "", "Plain text password")
	cmd.Flags().StringVar(&hash, "hash", "", "Stored pPassword value")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

func newKeyHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyhash <admin-key>",
		Short: "Print a bcrypt hash of an admin key for ADMIN_KEY_MODE=bcrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, err := auth.HashAdminKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return nil
		},
	}
}

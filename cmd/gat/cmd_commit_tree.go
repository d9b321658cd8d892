package main

import (
	"fmt"

	"github.com/HugoLorent/gat/pkg/object"
	"github.com/HugoLorent/gat/pkg/repo"
	"github.com/spf13/cobra"
)

func newCommitTreeCmd() *cobra.Command {
	var message string
	var parentArgs []string
	var signKey string

	cmd := &cobra.Command{
		Use:   "commit-tree <tree>",
		Short: "Create a commit object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("commit message is required (-m)")
			}

			tree, err := object.ParseHash(args[0])
			if err != nil {
				return err
			}

			// Parent order is preserved: the first -p is the primary
			// parent.
			var parents []object.Hash
			for _, p := range parentArgs {
				h, err := object.ParseHash(p)
				if err != nil {
					return fmt.Errorf("parent %q: %w", p, err)
				}
				parents = append(parents, h)
			}

			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			var signer repo.CommitSigner
			if cmd.Flags().Changed("sign-key") {
				signer, _, err = newSSHCommitSigner(signKey)
				if err != nil {
					return err
				}
			}

			who, err := r.ResolveIdentity(nil)
			if err != nil {
				return err
			}

			h, err := r.CommitTree(tree, parents, message, who, signer)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringArrayVarP(&parentArgs, "parent", "p", nil, "parent commit hash (repeatable)")
	cmd.Flags().StringVar(&signKey, "sign-key", "", "SSH private key to sign the commit with (empty: default key)")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/HugoLorent/gat/pkg/object"
	"github.com/HugoLorent/gat/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object <file>",
		Short: "Compute object ID and optionally create a blob from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input file %s: %w", args[0], err)
			}

			var h object.Hash
			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				h, err = r.Store.WriteBlob(&object.Blob{Data: data})
				if err != nil {
					return err
				}
			} else {
				// Hash-only mode works outside a repository.
				h = object.HashObject(object.TypeBlob, data)
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object into the object database")
	return cmd
}

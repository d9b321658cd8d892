package main

import (
	"fmt"
	"io"

	"github.com/HugoLorent/gat/pkg/object"
	"github.com/HugoLorent/gat/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsTreeCmd() *cobra.Command {
	var nameOnly bool

	cmd := &cobra.Command{
		Use:   "ls-tree <hash>",
		Short: "List the contents of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := object.ParseHash(args[0])
			if err != nil {
				return err
			}

			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			tr, err := r.Store.ReadTree(h)
			if err != nil {
				return err
			}

			printTreeEntries(cmd.OutOrStdout(), tr, nameOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "list only filenames, one per line")
	return cmd
}

// printTreeEntries writes entries in stored (sorted) order, one per
// line: "<mode> <type> <hash>\t<name>", or just the name.
func printTreeEntries(w io.Writer, tr *object.Tree, nameOnly bool) {
	for _, e := range tr.Entries {
		if nameOnly {
			fmt.Fprintln(w, e.Name)
			continue
		}
		entryType := object.TypeBlob
		if e.IsDir() {
			entryType = object.TypeTree
		}
		fmt.Fprintf(w, "%s %s %s\t%s\n", e.Mode, entryType, e.Hash, e.Name)
	}
}

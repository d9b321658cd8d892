package main

import (
	"fmt"

	"github.com/HugoLorent/gat/pkg/object"
	"github.com/HugoLorent/gat/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	var prettyPrint bool
	var showType bool
	var showSize bool

	cmd := &cobra.Command{
		Use:   "cat-file <hash>",
		Short: "Provide contents or details of repository objects",
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

			switch {
			case showType:
				objType, _, err := r.Store.Read(h)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), objType)
				return nil
			case showSize:
				_, payload, err := r.Store.Read(h)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), len(payload))
				return nil
			case prettyPrint:
				o, err := r.Store.ReadObject(h)
				if err != nil {
					return err
				}
				return prettyPrintObject(cmd, o)
			}
			return fmt.Errorf("one of -p, -t, or -s is required")
		},
	}

	cmd.Flags().BoolVarP(&prettyPrint, "pretty-print", "p", false, "pretty-print the contents of the object")
	cmd.Flags().BoolVarP(&showType, "type", "t", false, "show the object type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "show the payload size in bytes")
	return cmd
}

func prettyPrintObject(cmd *cobra.Command, o object.Object) error {
	out := cmd.OutOrStdout()
	switch v := o.(type) {
	case *object.Blob:
		// Raw payload verbatim, no trailing newline added.
		_, err := out.Write(v.Data)
		return err
	case *object.Tree:
		printTreeEntries(out, v, false)
		return nil
	case *object.Commit:
		_, err := out.Write(object.MarshalCommit(v))
		return err
	}
	return fmt.Errorf("unknown object variant %T", o)
}

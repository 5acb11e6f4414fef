package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"toolboard/internal/drafts"
)

func newDraftsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Inspect saved essay drafts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved drafts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := drafts.Open(e.cfg.Drafts.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no drafts")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSAVED\tWORDS\tTOPIC")
			for _, d := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.ID, d.CreatedAt.Local().Format("2006-01-02 15:04"), d.Words, d.Topic)
			}
			return w.Flush()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a draft's text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := drafts.Open(e.cfg.Drafts.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			d, err := store.Get(args[0])
			if err != nil {
				return err
			}
			if d.Topic != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Topic: %s\n\n", d.Topic)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Body)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

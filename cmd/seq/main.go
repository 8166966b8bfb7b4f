package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"magicinc/internal/ctxlog"
	"magicinc/internal/rec"
	"magicinc/internal/seqstore"

	"github.com/spf13/cobra"
)

// withStore opens the store named by --db for the duration of f.
func withStore(cmd *cobra.Command, f func() error) (err error) {
	defer rec.Error(&err)

	file, _ := cmd.Flags().GetString("db")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	seqstore.Open(seqstore.Config{File: file, Timeout: timeout})
	defer ctxlog.Close(cmd.Context(), "store", seqstore.Closer())

	return f()
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "seq",
		Short:         "Manage named sequences of magic-incremented values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().String("db", "data/seq.db", "sequence database file")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Second, "how long to wait for the database lock")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func() error {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tVALUE\tSTEPS\tUPDATED")
				for name, seq := range seqstore.All() {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", name, seq.Value, seq.Steps, seq.Updated.Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}

	defineCmd := &cobra.Command{
		Use:   "define <name> [start]",
		Short: "Create a sequence unless it already exists",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) > 1 {
				start = args[1]
			}

			return withStore(cmd, func() error {
				created, err := seqstore.Define(args[0], start)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(out, "defined %s\n", args[0])
				} else {
					fmt.Fprintf(out, "%s already exists\n", args[0])
				}
				return nil
			})
		},
	}

	nextCmd := &cobra.Command{
		Use:   "next <name>...",
		Short: "Advance sequences and print their new values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func() error {
				values, err := seqstore.NextAll(args...)
				if err != nil {
					return err
				}

				if len(args) == 1 {
					fmt.Fprintln(out, values[0])
					return nil
				}
				for i, name := range args {
					fmt.Fprintf(out, "%s %s\n", name, values[i])
				}
				return nil
			})
		},
	}

	prevCmd := &cobra.Command{
		Use:   "prev <name>",
		Short: "Step a sequence back and print its new value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func() error {
				v, err := seqstore.Prev(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Overwrite the value of a sequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func() error {
				return seqstore.Set(args[0], args[1])
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func() error {
				return seqstore.Delete(args[0])
			})
		},
	}

	rootCmd.AddCommand(listCmd, defineCmd, nextCmd, prevCmd, setCmd, deleteCmd)
	return rootCmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "seq", ctxlog.Config{})

	logger := ctxlog.Get(ctx)

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shhac/gradebook/internal/bridge"
)

// bridgeAddrEnv names the variable holding a running instance's bridge address.
const bridgeAddrEnv = "GRADEBOOK_BRIDGE_ADDR"

// errNoBridgeAddr is returned when neither --addr nor GRADEBOOK_BRIDGE_ADDR is set.
var errNoBridgeAddr = errors.New("no bridge address: set " + bridgeAddrEnv + " or pass --addr")

// clientOptions are the flags shared by the bridge client subcommands.
type clientOptions struct {
	addr    string
	timeout time.Duration
}

// newClientCmds returns the subcommands that call a running instance.
func newClientCmds() []*cobra.Command {
	opts := &clientOptions{}

	locationCmd := &cobra.Command{
		Use:   "location",
		Short: "Print the path of the grade data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, c *bridge.Client) error {
				location, err := c.GetDataLocation(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), location)
				return nil
			})
		},
	}

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Print the stored grade document",
		Long: `Print the stored grade document exactly as saved.

Prints {} when nothing has been saved yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, c *bridge.Client) error {
				data, err := c.LoadData(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), data)
				return nil
			})
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save [data|-]",
		Short: "Replace the stored grade document",
		Long: `Replace the stored grade document with data.

Reads the document from standard input when data is "-" or omitted.
The content is stored verbatim.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := documentArg(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return opts.run(cmd, func(ctx context.Context, c *bridge.Client) error {
				return c.SaveData(ctx, data)
			})
		},
	}

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "List the bridge's document service methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, c *bridge.Client) error {
				methods, err := c.Describe(ctx)
				if err != nil {
					return err
				}
				for _, m := range methods {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
				return nil
			})
		},
	}

	cmds := []*cobra.Command{locationCmd, loadCmd, saveCmd, describeCmd}
	for _, cmd := range cmds {
		cmd.Flags().StringVar(&opts.addr, "addr", os.Getenv(bridgeAddrEnv), "bridge address of the running instance")
		cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "how long to wait for the bridge")
	}
	return cmds
}

// run dials the bridge and calls fn with a deadline.
func (o *clientOptions) run(cmd *cobra.Command, fn func(context.Context, *bridge.Client) error) error {
	if o.addr == "" {
		return errNoBridgeAddr
	}
	client, err := bridge.Dial(o.addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	return fn(ctx, client)
}

// documentArg returns the document given on the command line, or stdin for
// "-" and no argument.
func documentArg(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read document from stdin: %w", err)
	}
	return string(data), nil
}

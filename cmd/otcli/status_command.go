package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"otcli/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon identity and uptime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.dial()
			if err != nil {
				return err
			}
			defer client.Close()

			rows, err := statusRows(client)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}

// statusRows queries the informational commands one by one; a failing
// command reports its error as the value rather than aborting the table.
func statusRows(client *ipc.Client) ([][]string, error) {
	fields := []struct {
		label   string
		command string
	}{
		{"Version", "version"},
		{"Interface", "ifname"},
		{"Uptime", "uptime"},
	}

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		lines, err := client.Send(field.command)
		if err != nil {
			var cmdErr *ipc.CommandError
			if !errors.As(err, &cmdErr) {
				return rows, err
			}
			rows = append(rows, []string{field.label, err.Error()})
			continue
		}
		rows = append(rows, []string{field.label, strings.Join(lines, " ")})
	}
	return rows, nil
}

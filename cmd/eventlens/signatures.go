package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eventlens/internal/abidef"
)

func runSignatures(cmd *cobra.Command, _ []string) error {
	abiPath, _ := cmd.Flags().GetString("abi")
	if abiPath == "" {
		return fmt.Errorf("abi path is required")
	}

	abiText, err := os.ReadFile(abiPath)
	if err != nil {
		return fmt.Errorf("read abi: %w", err)
	}

	defs, err := abidef.Parse(string(abiText))
	if err != nil {
		return err
	}

	events := abidef.Events(defs)
	if len(events) == 0 {
		return fmt.Errorf("no events in abi")
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SIGNATURE\tTOPIC0")
	for _, event := range events {
		fmt.Fprintf(writer, "%s\t%s\n", event.Signature(), event.ID())
	}
	return writer.Flush()
}

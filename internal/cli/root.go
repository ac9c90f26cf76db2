// Package cli implements the ordkey command line surface. It owns all
// parsing and validation of user input: values are range-checked against
// the declared type before the codec ever sees them, and keys are accepted
// and printed as hex strings.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the ordkey CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ordkey",
		Short: "Order-preserving codec for fixed-width numbers",
		Long: `ordkey converts fixed-width integers and IEEE-754 floats to and from
fixed-length byte strings whose lexicographic order matches numeric order,
so they can be used as range-scannable keys in byte-ordered stores.

Supported types: int8 int16 int32 int64 uint8 uint16 uint32 uint64
float32 float64.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewEncodeCommand())
	cmd.AddCommand(NewDecodeCommand())

	return cmd
}

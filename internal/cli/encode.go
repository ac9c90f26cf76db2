package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/bearlytools/ordkey"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <type> <value>",
		Short: "Encode a number as an order-preserving key",
		Long: `Encode a number as an order-preserving key, printed as lowercase hex.

The value is decimal; floats also accept scientific notation and the
special values inf, -inf and nan.

Example:
  ordkey encode int32 1200       # prints 800004b0
  ordkey encode float32 -inf     # prints 007fffff`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := encodeArg(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	// Negative values like -128 and -inf are positional arguments, not
	// flags, so stop flag parsing at the first positional argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// encodeArg parses value as a typeName and returns the hex form of its key.
func encodeArg(typeName, value string) (string, error) {
	t, err := ordkey.ParseType(typeName)
	if err != nil {
		return "", err
	}
	key, err := encodeValue(t, value)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// encodeValue validates value against t's width and signedness, then
// encodes it. This is the only place user input crosses into the codec, so
// every range check lives here.
func encodeValue(t ordkey.Type, value string) ([]byte, error) {
	switch t {
	case ordkey.TInt8:
		return parseEncodeSigned[int8](value, 8)
	case ordkey.TInt16:
		return parseEncodeSigned[int16](value, 16)
	case ordkey.TInt32:
		return parseEncodeSigned[int32](value, 32)
	case ordkey.TInt64:
		return parseEncodeSigned[int64](value, 64)
	case ordkey.TUint8:
		return parseEncodeUnsigned[uint8](value, 8)
	case ordkey.TUint16:
		return parseEncodeUnsigned[uint16](value, 16)
	case ordkey.TUint32:
		return parseEncodeUnsigned[uint32](value, 32)
	case ordkey.TUint64:
		return parseEncodeUnsigned[uint64](value, 64)
	case ordkey.TFloat32:
		return parseEncodeFloat[float32](value, 32)
	case ordkey.TFloat64:
		return parseEncodeFloat[float64](value, 64)
	}
	return nil, errors.Errorf("unknown numeric type %q", t)
}

func parseEncodeSigned[N interface {
	constraints.Signed
	ordkey.Number
}](value string, bits int) ([]byte, error) {
	i, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		min := int64(-1) << (bits - 1)
		max := int64(1)<<(bits-1) - 1
		return nil, errors.Errorf("expected %d-bit signed integer (range [%d, %d]), got %q", bits, min, max, value)
	}
	return ordkey.Encode(N(i)), nil
}

func parseEncodeUnsigned[N interface {
	constraints.Unsigned
	ordkey.Number
}](value string, bits int) ([]byte, error) {
	u, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		max := ^uint64(0) >> (64 - bits)
		return nil, errors.Errorf("expected %d-bit unsigned integer (range [0, %d]), got %q", bits, max, value)
	}
	return ordkey.Encode(N(u)), nil
}

func parseEncodeFloat[N interface {
	constraints.Float
	ordkey.Number
}](value string, bits int) ([]byte, error) {
	f, err := strconv.ParseFloat(value, bits)
	if err != nil {
		return nil, errors.Errorf("expected %d-bit float, got %q", bits, value)
	}
	return ordkey.Encode(N(f)), nil
}

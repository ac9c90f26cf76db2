package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bearlytools/ordkey"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> <hex>",
		Short: "Decode an order-preserving key back to its number",
		Long: `Decode a hex key produced by encode back to its numeric value.

The key must be exactly the encoded width of the type: 2 hex digits per
byte, so int32 keys are 8 digits and float64 keys are 16.

Example:
  ordkey decode int32 800004b0   # prints 1200
  ordkey decode float32 ff800000 # prints +Inf`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := decodeArg(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// decodeArg decodes the hex key as a typeName value and formats it.
func decodeArg(typeName, hexKey string) (string, error) {
	t, err := ordkey.ParseType(typeName)
	if err != nil {
		return "", err
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return "", errors.Wrapf(err, "expected hex bytes, got %q", hexKey)
	}
	return decodeKey(t, key)
}

func decodeKey(t ordkey.Type, key []byte) (string, error) {
	switch t {
	case ordkey.TInt8:
		return formatSigned(ordkey.Decode[int8](key))
	case ordkey.TInt16:
		return formatSigned(ordkey.Decode[int16](key))
	case ordkey.TInt32:
		return formatSigned(ordkey.Decode[int32](key))
	case ordkey.TInt64:
		return formatSigned(ordkey.Decode[int64](key))
	case ordkey.TUint8:
		return formatUnsigned(ordkey.Decode[uint8](key))
	case ordkey.TUint16:
		return formatUnsigned(ordkey.Decode[uint16](key))
	case ordkey.TUint32:
		return formatUnsigned(ordkey.Decode[uint32](key))
	case ordkey.TUint64:
		return formatUnsigned(ordkey.Decode[uint64](key))
	case ordkey.TFloat32:
		v, err := ordkey.Decode[float32](key)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case ordkey.TFloat64:
		v, err := ordkey.Decode[float64](key)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", errors.Errorf("unknown numeric type %q", t)
}

func formatSigned[N int8 | int16 | int32 | int64](v N, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func formatUnsigned[N uint8 | uint16 | uint32 | uint64](v N, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(v), 10), nil
}

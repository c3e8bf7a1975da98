// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/kmscodec/abiencode"
	"github.com/luxfi/kmscodec/fhetype"
	"github.com/luxfi/kmscodec/handle"
	"github.com/luxfi/kmscodec/plaintext"
	"github.com/luxfi/kmscodec/requestid"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kmscodec",
		Short: "Inspect ciphertext handles and encode decryption results",
		Long: `kmscodec exposes the codec used by the KMS connector: it reads the
FHE type out of ciphertext handles, formats request ids for the KMS core and
ABI-encodes decrypted plaintexts for the gateway callback.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newHandleTypeCmd())
	rootCmd.AddCommand(newRequestIDCmd())
	rootCmd.AddCommand(newEncodeCmd())
	return rootCmd
}

func newHandleTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handle-type <handle>",
		Short: "Print the FHE type, index and version of a hex handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := handle.FromHex(args[0])
			if err != nil {
				return err
			}
			t, err := h.FheType()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "type:    %s (%d)\n", t, uint8(t))
			fmt.Fprintf(cmd.OutOrStdout(), "index:   %d\n", h.Index())
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", h.Version())
			return nil
		},
	}
}

func newRequestIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request-id <id>",
		Short: "Format a decimal or 0x-prefixed request id for the KMS core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := new(big.Int).SetString(args[0], 0)
			if !ok {
				return fmt.Errorf("invalid request id %q", args[0])
			}
			s, err := requestid.FormatBig(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "encode <type:hex>...",
		Short: "ABI-encode decrypted plaintexts",
		Long: `Each argument is a type name or numeric tag, a colon, and the
little-endian payload in hex, for example uint64:2a00000000000000.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ptxts := make([]plaintext.TypedPlaintext, 0, len(args))
			for _, arg := range args {
				p, err := parsePlaintext(arg)
				if err != nil {
					return err
				}
				ptxts = append(ptxts, p)
			}

			var reporter abiencode.Reporter
			if verbose {
				reporter = abiencode.NewLogReporter(log.NewTestLogger(log.InfoLevel))
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(abiencode.New(reporter).EncodePlaintexts(ptxts)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log payloads replaced by zero")
	return cmd
}

// parsePlaintext reads "<type>:<hex>". Unknown numeric tags are passed
// through so the encoder's drop behaviour can be observed.
func parsePlaintext(arg string) (plaintext.TypedPlaintext, error) {
	name, payload, ok := strings.Cut(arg, ":")
	if !ok {
		return plaintext.TypedPlaintext{}, fmt.Errorf("invalid plaintext %q: expected <type>:<hex>", arg)
	}

	var tag int32
	if n, err := strconv.ParseInt(name, 10, 32); err == nil {
		tag = int32(n)
	} else {
		t, err := fhetype.ParseName(name)
		if err != nil {
			return plaintext.TypedPlaintext{}, err
		}
		tag = int32(t)
	}

	if !strings.HasPrefix(payload, "0x") && !strings.HasPrefix(payload, "0X") {
		payload = "0x" + payload
	}
	b, err := hexutil.Decode(payload)
	if err != nil {
		return plaintext.TypedPlaintext{}, fmt.Errorf("invalid payload in %q: %w", arg, err)
	}
	return plaintext.TypedPlaintext{FheType: tag, Bytes: b}, nil
}

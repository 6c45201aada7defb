package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-authcodes/pkg/totp"
)

func main() {
	root := &cobra.Command{
		Use:          "totp_tool",
		Short:        "Generate and verify RFC 6238 time-based one-time passwords",
		SilenceUsage: true,
	}

	generate := &cobra.Command{
		Use:   "generate <base32-secret>",
		Short: "Print the current 6-digit code for a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := totp.Generate(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode base32 secret: %w", err)
			}
			fmt.Printf("TOTP: %s\n", code)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify <base32-secret> <code> [window]",
		Short: "Check a code against a secret, tolerating clock drift",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			window := 1
			if len(args) == 3 {
				w, err := strconv.Atoi(args[2])
				if err != nil || w < 0 {
					return fmt.Errorf("invalid window %q", args[2])
				}
				window = w
			}
			if !totp.Verify(args[0], args[1], window) {
				fmt.Println("INVALID")
				os.Exit(2)
			}
			fmt.Println("VALID")
			return nil
		},
	}

	root.AddCommand(generate, verify)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-authcodes/pkg/jwt"
)

func main() {
	root := &cobra.Command{
		Use:          "jwt_verify <jwt> <secret>",
		Short:        "Verify the HS256 signature of a compact JWT",
		Long:         "Checks the HMAC-SHA256 signature of a three-segment token and, when valid, prints the decoded payload. Only HS256 is applied regardless of the token header.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := jwt.Verify(args[0], args[1])
			if err != nil {
				return err
			}
			if !result.Valid {
				fmt.Println("Signature: INVALID")
				os.Exit(2)
			}
			fmt.Println("Signature: VALID")
			if result.Payload != nil {
				fmt.Printf("Payload: %s\n", result.Payload)
			}
			return nil
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// tauvslagrange demonstrates that a KZG-style commitment does not depend on
// the SRS basis: committing a polynomial's coefficients against a powers-of-tau
// SRS yields the same G1 point as committing its evaluations against the
// Lagrange-basis SRS derived from the same setup.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	fSize    uint64
	fSRSPath string
	fSeed    string
)

var rootCmd = &cobra.Command{
	Use:   "tauvslagrange",
	Short: "powers-of-tau vs Lagrange basis commitment demo",
	Long: `tauvslagrange generates a BLS12-381 structured reference string in both the
monomial and the Lagrange basis, commits the same random polynomial under
each, and checks that the two commitments are identical.

Without a subcommand it runs an interactive menu.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&fSize, "size", 1<<12, "domain size (power of two)")
	rootCmd.PersistentFlags().StringVar(&fSRSPath, "srs", "srs.bin", "path of the SRS file")
	generateCmd.Flags().StringVar(&fSeed, "seed", "", "derive the setup secret from a seed instead of crypto/rand")
	rootCmd.AddCommand(generateCmd, runCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\nOptions:")
		fmt.Println("1. Run commitment with pre-generated SRS")
		fmt.Println("2. Generate new SRS")
		fmt.Println("3. Exit")
		fmt.Print("> ")
		if !in.Scan() {
			return in.Err()
		}
		switch strings.TrimSpace(in.Text()) {
		case "1":
			if err := runCommitment(); err != nil {
				fmt.Println("error:", err)
			}
		case "2":
			if err := generateSRS(); err != nil {
				fmt.Println("error:", err)
			}
		case "3":
			fmt.Println("Bye!")
			return nil
		default:
			fmt.Println("Invalid option. Try again.")
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/tauvslagrange/commitment"
	"github.com/consensys/tauvslagrange/logger"
	"github.com/consensys/tauvslagrange/polynomial"
	"github.com/consensys/tauvslagrange/srs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "commit a random polynomial under both bases and compare",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommitment()
	},
}

func runCommitment() error {
	log := logger.Logger()

	start := time.Now()
	s, err := srs.ReadFile(fSRSPath)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Uint64("size", s.Size()).Msg("srs loading")

	d, err := polynomial.NewDomain(s.Size())
	if err != nil {
		return err
	}

	start = time.Now()
	witness, err := polynomial.Random(s.Size())
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("witness generation")

	start = time.Now()
	mono, lagrange, err := commitment.CommitBoth(s, d, witness)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("commitment calculation")

	fmt.Printf("Commitment[t] G1: (0x%s, 0x%s)\n", mono.X.Text(16), mono.Y.Text(16))
	fmt.Printf("Commitment[l] G1: (0x%s, 0x%s)\n", lagrange.X.Text(16), lagrange.Y.Text(16))

	if !mono.Equal(&lagrange) {
		return errors.New("commitments differ across bases")
	}
	fmt.Println("Commitments match.")
	return nil
}

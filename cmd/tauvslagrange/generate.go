package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/tauvslagrange/logger"
	"github.com/consensys/tauvslagrange/srs"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a fresh SRS in both bases and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateSRS()
	},
}

func generateSRS() error {
	log := logger.Logger().With().Str("path", fSRSPath).Uint64("size", fSize).Logger()

	var (
		s   *srs.SRS
		err error
	)
	start := time.Now()
	if fSeed != "" {
		s, err = srs.SeededSetup(fSize, []byte(fSeed))
	} else {
		s, err = srs.NewSetup(fSize)
	}
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("srs generation")

	start = time.Now()
	if err := s.WriteFile(fSRSPath); err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("srs serialization")

	return nil
}

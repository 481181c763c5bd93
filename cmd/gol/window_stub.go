//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func runWindow(*cobra.Command, *globals) error {
	return errors.New("window front-end requires building with -tags ebiten (try `gol term`)")
}

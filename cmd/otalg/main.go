// Command otalg computes in Orlik-Terao algebras of represented matroids.
package main

import (
	"os"

	"github.com/katalvlaran/orlikterao/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}

// Command mrfgen generates grid denoising MRFs as Gaussian factor graphs.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/factorgraph/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mrfgen:", err)
		os.Exit(cli.ExitCode(err))
	}
}

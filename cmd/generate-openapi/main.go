// Command generate-openapi regenerates the OpenAPI document at
// interfaces/openapi.json under the repository root. It reads no flags and
// ignores any arguments; run it directly or through go generate ./api.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fitplanpro/workout-backend/api"
)

func main() {
	err := run(repoRoot(), api.WriteDocument, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate-openapi:", err)
		os.Exit(1)
	}
}

type generateFunc func(dir string) error

// run invokes generate against dir and prints the confirmation line only
// once the generator has reported success, so a failed run never looks like
// a successful one.
func run(dir string, generate generateFunc, out io.Writer) error {
	err := generate(dir)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "OpenAPI specification regenerated at %s\n", api.DocumentPath)

	return err
}

// repoRoot resolves the repository root from this source file's own
// location rather than the invoking working directory, so the command
// behaves identically wherever it is run from.
func repoRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}

	// file is <root>/cmd/generate-openapi/main.go
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

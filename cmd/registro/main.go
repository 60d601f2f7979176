package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/registro"
)

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// openStore opens the store at the --data path. Commands that only read pass
// mustExist so a typo in the path does not create directories.
func openStore(ctx context.Context, mustExist bool, opts ...registro.Option) *registro.Store {
	base := []registro.Option{
		registro.WithLogger(slog.Default()),
		registro.WithMustExist(mustExist),
	}
	store, err := registro.New(ctx, dataFile, append(base, opts...)...)
	if err != nil {
		fatal("Error opening data file", err)
	}
	return store
}

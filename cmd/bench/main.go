package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/registro"
)

func main() {
	count := flag.Int("count", 1000, "Number of records to add")
	keep := flag.Bool("keep", false, "Keep the benchmark data file after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "registro_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()
	path := filepath.Join(benchDir, "personas.json")

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.TODO()

	store, err := registro.New(ctx, path, registro.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	// Every Add rewrites the whole snapshot, so this grows quadratically.
	fmt.Printf("Adding %d records to %s...\n", *count, path)
	startAdd := time.Now()
	for i := 0; i < *count; i++ {
		control := fmt.Sprintf("C%06d", i)
		if _, err := store.Add(ctx, fmt.Sprintf("Person %d", i), control, "Benchmark"); err != nil {
			panic(err)
		}
	}
	addDuration := time.Since(startAdd)

	startFind := time.Now()
	found := store.Find(ctx, "person 9")
	findDuration := time.Since(startFind)

	// Re-open to measure a cold load, as a new CLI command would.
	startLoad := time.Now()
	reopened, err := registro.New(ctx, path, registro.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	loadDuration := time.Since(startLoad)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d records):\n", *count)
	fmt.Printf("  Add (with persist): %v (%v/op)\n", addDuration, addDuration/time.Duration(max(*count, 1)))
	fmt.Printf("  Find:               %v (matches: %d)\n", findDuration, len(found))
	fmt.Printf("  Cold load:          %v (records: %d)\n", loadDuration, reopened.Len())
	fmt.Printf("--------------------------------------------------\n")
}

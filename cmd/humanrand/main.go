// Command humanrand prints a batch of pattern-filtered integers.
//
// Flags (all overridable via an optional humanrand.yaml in the working
// directory):
//
//	--seed   seed for the deterministic source; 0 draws nondeterministically
//	--min    lower bound, inclusive
//	--max    upper bound, inclusive
//	--count  how many values to emit
//
// Accepted values go to stdout one per line; diagnostics go to the logger.
// The classic smoke run reproduces the reference fixture:
//
//	humanrand --seed 576 --min 1 --max 100 --count 20
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/humanrand/filter"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit
	log := logger.Sugar()

	pflag.Uint64("seed", 0, "seed for the deterministic source (0 = nondeterministic)")
	pflag.Int64("min", 1, "lower bound, inclusive")
	pflag.Int64("max", 100, "upper bound, inclusive")
	pflag.Int("count", 20, "number of values to emit")
	pflag.Parse()

	if err = viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("cannot bind flags: %s", err)
	}

	// Optional config overlay; a missing file is fine, a broken one is not.
	viper.SetConfigName("humanrand")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("error reading config file: %s", err)
		}
	}

	seed := viper.GetUint64("seed")
	min := viper.GetInt64("min")
	max := viper.GetInt64("max")
	count := viper.GetInt("count")

	runID := ulid.Make()
	log.Infow("generating batch",
		"run_id", runID.String(),
		"seed", seed,
		"min", min,
		"max", max,
		"count", count,
	)

	var opts []filter.Option
	if seed != 0 {
		opts = append(opts, filter.WithSeed(seed))
	}
	g := filter.New(opts...)

	for i := 0; i < count; i++ {
		n, err := g.Next(min, max)
		if err != nil {
			log.Fatalf("generation failed: %s", err)
		}
		fmt.Println(n)
	}

	log.Infow("batch complete", "run_id", runID.String(), "emitted", count)
}

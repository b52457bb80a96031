package accuracy

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"github.com/tuneinsight/decmath/utils/bignum"
	"github.com/tuneinsight/decmath/utils/sampling"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

const keySize = 32

// Report summarises the sweep of one function.
type Report struct {
	Function string
	// Samples is the number of inputs drawn.
	Samples int
	// DomainErrors counts the inputs on which the function returned an error.
	DomainErrors int
	// Failures counts the inputs whose error exceeded Tolerance.
	Failures  int
	Tolerance float64
	// Max, Mean, Median and P99 are statistics of the errors as measured by
	// bignum.AbsError.
	Max, Mean, Median, P99 float64
	// Worst is the input of the largest error, formatted as a tuple.
	Worst string
	// Digest is the hex encoded blake3 hash of the outputs.
	Digest string
}

// Passed reports whether no sample exceeded the tolerance.
func (r Report) Passed() bool {
	return r.Failures == 0
}

// samplerKey derives the key of the input sampler of a function from the seed.
func samplerKey(seed, name string) []byte {
	hasher := blake3.New()
	hasher.Write([]byte(seed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(name))
	return hasher.Sum(nil)[:keySize]
}

// Run sweeps the configured functions concurrently, at most cfg.Workers at a
// time, and returns their reports in the order of the registry.
func Run(ctx context.Context, cfg Config) ([]Report, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fns, err := Lookup(cfg.Functions)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(fns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, f := range fns {
		i, f := i, f
		g.Go(func() (err error) {
			reports[i], err = Sweep(ctx, f, cfg)
			return
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Sweep evaluates f on cfg.Samples inputs drawn from its domain and compares
// the outputs with the oracle of f.
func Sweep(ctx context.Context, f Function, cfg Config) (r Report, err error) {

	logger := cfg.Logger.With().Str("function", f.Name).Logger()

	prng, err := sampling.NewKeyedPRNG(samplerKey(cfg.Seed, f.Name))
	if err != nil {
		return r, fmt.Errorf("%s: %w", f.Name, err)
	}

	r = Report{
		Function:  f.Name,
		Samples:   cfg.Samples,
		Tolerance: f.Tolerance,
	}

	if cfg.Tolerance > 0 {
		r.Tolerance = cfg.Tolerance
	}

	logger.Debug().Int("samples", cfg.Samples).Float64("tolerance", r.Tolerance).Msg("sweep started")

	hasher := blake3.New()
	errs := make([]float64, 0, cfg.Samples)
	args := make([]decimal.Decimal, len(f.Args))
	bigArgs := make([]*big.Float, len(f.Args))

	for i := 0; i < cfg.Samples; i++ {

		if err = ctx.Err(); err != nil {
			return r, fmt.Errorf("%s: %w", f.Name, err)
		}

		for j, in := range f.Args {
			places := cfg.Places
			if in.Integer {
				places = 0
			}
			if args[j], err = sampling.RandDecimal(prng, in.Min, in.Max, places); err != nil {
				return r, fmt.Errorf("%s: %w", f.Name, err)
			}
			bigArgs[j] = bignum.FromDecimal(args[j], cfg.Prec)
		}

		y, evalErr := f.Eval(args...)
		if evalErr != nil {
			r.DomainErrors++
			logger.Warn().Err(evalErr).Msg("domain error")
			hasher.Write([]byte("error\n"))
			continue
		}

		hasher.Write([]byte(y.String()))
		hasher.Write([]byte{'\n'})

		e := bignum.AbsError(bignum.FromDecimal(y, cfg.Prec), f.Oracle(bigArgs...))

		if e > r.Tolerance {
			r.Failures++
			logger.Debug().Str("args", formatArgs(args)).Str("have", y.String()).Float64("error", e).Msg("tolerance exceeded")
		}

		if len(errs) == 0 || e > r.Max {
			r.Max = e
			r.Worst = formatArgs(args)
		}

		errs = append(errs, e)
	}

	r.Digest = hex.EncodeToString(hasher.Sum(nil))

	if len(errs) != 0 {
		if r.Mean, err = stats.Mean(errs); err != nil {
			return r, fmt.Errorf("%s: %w", f.Name, err)
		}
		if r.Median, err = stats.Median(errs); err != nil {
			return r, fmt.Errorf("%s: %w", f.Name, err)
		}
		if r.P99, err = stats.Percentile(errs, 99); err != nil {
			return r, fmt.Errorf("%s: %w", f.Name, err)
		}
	}

	event := logger.Info()
	if !r.Passed() {
		event = logger.Error()
	}

	event.Float64("max", r.Max).Float64("mean", r.Mean).Int("failures", r.Failures).Str("digest", r.Digest).Msg("sweep done")

	return r, nil
}

func formatArgs(args []decimal.Decimal) string {
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

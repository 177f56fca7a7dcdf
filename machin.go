// Package machin searches for 6-term Machin-like formulas: integer linear
// relations between arctangents of unit fractions that sum to a rational
// multiple of π. Candidate denominators a are drawn from a bounded range and
// restricted so that every prime factor of a²+1 lies in a chosen 6-prime set;
// exact integer linear algebra over the signed prime-exponent matrix yields
// the coefficients, and a floating-point check filters degenerate relations.
//
// Design goals:
//   - Exact arithmetic everywhere a relation is derived (math/big)
//   - Deterministic enumeration and stable output, parallel or not
//   - Small composable stages, each testable in isolation
package machin

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinTerm and DefaultMaxTerm bound the arctangent denominators:
	// the search considers arctan(1/a) for a in [MinTerm, MaxTerm].
	DefaultMinTerm = 100
	DefaultMaxTerm = 463

	// DegenerateThreshold rejects formulas whose weighted arctangent sum is
	// numerically near zero. Empirical constant from the source algorithm.
	DegenerateThreshold = 0.01

	subsetPrimes = 5 // odd primes per subset; the prime 2 is always implied
	formulaTerms = 6
)

// Options configures a search. The zero value selects the defaults.
type Options struct {
	MinTerm int // smallest denominator, default 100
	MaxTerm int // largest denominator, default 463
	Workers int // prime-subset fan-out; <= 1 runs sequentially
	Logger  *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.MinTerm == 0 {
		o.MinTerm = DefaultMinTerm
	}
	if o.MaxTerm == 0 {
		o.MaxTerm = DefaultMaxTerm
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ============================================================
// Formula
// ============================================================

// Formula is an accepted relation: Total / 4 = Σ Coef[i]·arctan(1/Terms[i]).
// For a genuine relation Total is a multiple of π.
type Formula struct {
	Terms []int      // arctangent denominators, strictly increasing
	Coef  []*big.Int // integer coefficients from the kernel
	Total float64    // 4·Σ Coef[i]·arctan(1/Terms[i])
}

func (f Formula) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(f.Total, 'g', -1, 64))
	b.WriteString(" / 4 = ")
	for i, a := range f.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s*arctan(1/%d)", f.Coef[i], a)
	}
	return b.String()
}

func (f Formula) LaTeX() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\frac{%s}{4} = ", strconv.FormatFloat(f.Total, 'g', -1, 64))
	for i, a := range f.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s\\arctan\\frac{1}{%d}", f.Coef[i], a)
	}
	return b.String()
}

// arctanTotal evaluates 4·Σ coef[i]·arctan(1/terms[i]) in double precision,
// which is enough resolution for the 0.01 degeneracy threshold.
func arctanTotal(coef []*big.Int, terms []int) float64 {
	total := 0.0
	for i, a := range terms {
		c, _ := new(big.Float).SetInt(coef[i]).Float64()
		total += c * math.Atan(1/float64(a)) * 4
	}
	return total
}

// ============================================================
// Search
// ============================================================

// Search runs the full enumeration over the configured bounds and calls emit
// for every accepted formula. Emission order is deterministic: lexicographic
// over prime-subset index tuples, then square-subset index tuples, regardless
// of Options.Workers. The context is only consulted between prime subsets.
func Search(ctx context.Context, opt Options, emit func(Formula)) error {
	if emit == nil {
		panic("machin: nil emit func")
	}
	opt = opt.withDefaults()

	table := NewFactorTable(opt.MinTerm, opt.MaxTerm)
	primes := Primes4k1(opt.MaxTerm)
	opt.Logger.Info("search space ready",
		zap.Int("min_term", opt.MinTerm),
		zap.Int("max_term", opt.MaxTerm),
		zap.Int("primes", len(primes)),
		zap.Int("workers", opt.Workers))

	var found int
	var err error
	if opt.Workers == 1 {
		found, err = searchSequential(ctx, opt, table, primes, emit)
	} else {
		found, err = searchParallel(ctx, opt, table, primes, emit)
	}
	if err != nil {
		return err
	}
	opt.Logger.Info("search complete", zap.Int("formulas", found))
	return nil
}

func searchSequential(ctx context.Context, opt Options, table FactorTable, primes []uint32, emit func(Formula)) (int, error) {
	odd := make([]uint32, subsetPrimes)
	found := 0
	comb := Combinations(len(primes), subsetPrimes)
	for idx, ok := comb.Next(); ok; idx, ok = comb.Next() {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		for i, x := range idx {
			odd[i] = primes[x]
		}
		for _, f := range searchSubset(table, odd, opt.MinTerm, opt.MaxTerm) {
			emit(f)
			found++
		}
	}
	return found, nil
}

type subsetJob struct {
	seq int
	odd []uint32
}

type subsetResult struct {
	seq      int
	formulas []Formula
}

// searchParallel fans prime subsets out across Workers goroutines. The caches
// are immutable, so workers share them without locking; a reorder buffer on
// the result side restores the sequential emission order.
func searchParallel(ctx context.Context, opt Options, table FactorTable, primes []uint32, emit func(Formula)) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan subsetJob)
	results := make(chan subsetResult, opt.Workers)

	g.Go(func() error {
		defer close(jobs)
		seq := 0
		comb := Combinations(len(primes), subsetPrimes)
		for idx, ok := comb.Next(); ok; idx, ok = comb.Next() {
			odd := make([]uint32, subsetPrimes)
			for i, x := range idx {
				odd[i] = primes[x]
			}
			select {
			case jobs <- subsetJob{seq: seq, odd: odd}:
			case <-gctx.Done():
				return gctx.Err()
			}
			seq++
		}
		return nil
	})
	for w := 0; w < opt.Workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				r := subsetResult{seq: j.seq, formulas: searchSubset(table, j.odd, opt.MinTerm, opt.MaxTerm)}
				select {
				case results <- r:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		g.Wait() //nolint:errcheck // the error is returned below
		close(results)
	}()

	next, found := 0, 0
	pending := make(map[int][]Formula)
	for r := range results {
		pending[r.seq] = r.formulas
		for {
			fs, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			for _, f := range fs {
				emit(f)
				found++
			}
			next++
		}
	}
	return found, g.Wait()
}

// searchSubset evaluates one 6-prime subset ({2} ∪ odd): filter the term
// range down to admissible squares, then try every 6-square selection.
// A subset with fewer than 6 admissible squares cannot produce a 6-term
// relation and is abandoned outright.
func searchSubset(table FactorTable, odd []uint32, minTerm, maxTerm int) []Formula {
	inSet := make(map[uint32]bool, formulaTerms)
	inSet[2] = true
	for _, p := range odd {
		inSet[p] = true
	}

	var squares []int
	for a := minTerm; a <= maxTerm; a++ {
		if table.SmoothOver(a, inSet) {
			squares = append(squares, a)
		}
	}
	if len(squares) < formulaTerms {
		return nil
	}

	var out []Formula
	pick := make([]int, formulaTerms)
	comb := Combinations(len(squares), formulaTerms)
	for idx, ok := comb.Next(); ok; idx, ok = comb.Next() {
		for i, x := range idx {
			pick[i] = squares[x]
		}
		basis := KernelBasis(SignedExponents(odd, pick, table))
		if len(basis) == 0 {
			continue
		}
		// Only the first basis vector is used, even when the kernel has
		// higher dimension; further independent relations are ignored.
		coef := basis[0]
		total := arctanTotal(coef, pick)
		if math.Abs(total) < DegenerateThreshold {
			continue
		}
		out = append(out, Formula{
			Terms: append([]int(nil), pick...),
			Coef:  coef,
			Total: total,
		})
	}
	return out
}

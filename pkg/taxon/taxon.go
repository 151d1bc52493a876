// Package taxon canonicalizes species names to genus+species
// binomials. Subspecies-qualified names lose their infraspecific
// epithets; the pre-normalization value is preserved as OriginalName.
package taxon

import (
	"context"
	"strings"
	"sync"

	"github.com/gnames/gnoccur/pkg/parserpool"
	"github.com/gnames/gnoccur/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// Normalize returns a copy of the occurrence set with Species replaced
// by its genus+species binomial and OriginalName holding the previous
// value. Unique names are parsed once, concurrently; the result is a
// pure function of the input, so output order never changes.
//
// A name with fewer than two tokens cannot form a binomial and is kept
// as-is. This is a deliberate best-effort fallback for malformed
// provider data, not an error.
func Normalize(
	ctx context.Context,
	occs []schema.Occurrence,
	pool parserpool.Pool,
	jobs int,
) ([]schema.Occurrence, error) {
	unique := make(map[string]struct{}, len(occs))
	for i := range occs {
		unique[occs[i].Species] = struct{}{}
	}

	binomials, err := parseNames(ctx, unique, pool, jobs)
	if err != nil {
		return nil, err
	}

	res := make([]schema.Occurrence, len(occs))
	copy(res, occs)
	for i := range res {
		res[i].OriginalName = res[i].Species
		res[i].Species = binomials[res[i].Species]
	}
	return res, nil
}

func parseNames(
	ctx context.Context,
	unique map[string]struct{},
	pool parserpool.Pool,
	jobs int,
) (map[string]string, error) {
	if jobs < 1 {
		jobs = 1
	}

	names := make(chan string)
	binomials := make(map[string]string, len(unique))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(names)
		for name := range unique {
			select {
			case names <- name:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range jobs {
		g.Go(func() error {
			for name := range names {
				b := binomial(name, pool)
				mu.Lock()
				binomials[name] = b
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return binomials, nil
}

// binomial reduces a name to its first two tokens, preferring the
// parser's canonical form so authorship and annotations do not leak
// into the epithets.
func binomial(name string, pool parserpool.Pool) string {
	candidate := name
	parsed := pool.Parse(name)
	if parsed.Parsed && parsed.Canonical != nil {
		candidate = parsed.Canonical.Simple
	}

	tokens := strings.Fields(candidate)
	if len(tokens) < 2 {
		// Malformed or uninomial name, passed through unchanged.
		return name
	}
	return tokens[0] + " " + tokens[1]
}

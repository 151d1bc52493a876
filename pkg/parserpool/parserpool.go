// Package parserpool provides a pool of gnparser instances for
// concurrent name parsing. This is a pure package - parsing is
// computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser from
	// the pool, parses the name, and returns the parser to the pool.
	// This method is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// poolImpl implements the Pool interface using gnparser.NewPool.
type poolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of
// workers. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig()
	ch := gnparser.NewPool(cfg, poolSize)

	return &poolImpl{
		ch:       ch,
		poolSize: poolSize,
	}
}

// Parse parses a scientific name string, blocking while all parsers
// are busy.
func (p *poolImpl) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser

	return res
}

// Close shuts down the parser pool and releases resources.
func (p *poolImpl) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}

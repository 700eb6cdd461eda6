package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mhr3/strbench/internal/bytealg"
)

// Driver repeats the measure-and-report cycle over a growing corpus.
type Driver struct {
	Registry *Registry
	Corpus   *Corpus
	// Pattern is the target every registered engine was built for; the
	// reference answer of each cycle is computed from it.
	Pattern string
	Rounds  int
	Cycles  int
	// Parallelism bounds how many algorithms are timed at once.
	// Zero or one times them one after the other.
	Parallelism int

	Out     io.Writer    // ranking stream, defaults to os.Stdout
	Logger  *slog.Logger // defaults to slog.Default()
	Metrics *Metrics     // optional
}

// Run executes Cycles cycles and prints a completion marker. Before each
// cycle it appends " -> i" to the corpus so that every cycle scans a text no
// earlier cycle has seen.
func (d *Driver) Run() error {
	if d.Rounds <= 0 || d.Cycles <= 0 {
		return ErrInvalidRounds
	}
	if d.Registry == nil || d.Corpus == nil {
		return errors.New("bench: driver needs a registry and a corpus")
	}

	for i := 0; i < d.Cycles; i++ {
		if _, err := fmt.Fprintf(d.out(), "***** loop %d/%d *****\n", i+1, d.Cycles); err != nil {
			return err
		}
		d.Corpus.Append(fmt.Sprintf(" -> %d", i))

		ranked, err := d.RunCycle(d.Corpus.Snapshot())
		if err != nil {
			return err
		}
		if err := WriteReport(d.out(), d.Rounds, ranked); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(d.out(), "***** END *****")
	return err
}

// RunCycle gates every registered algorithm on text, times the survivors and
// returns them ranked. text must not change while the cycle runs.
func (d *Driver) RunCycle(text string) ([]Result, error) {
	log := d.logger()
	start := time.Now()
	want := bytealg.Index(text, d.Pattern) >= 0
	d.Metrics.observeCorpus(len(text))

	var accepted []Entry
	for _, e := range d.Registry.All() {
		if err := Validate(e.Probe(text), want); err != nil {
			if _, werr := fmt.Fprintf(d.out(), "invalid result on algorithm: %s\n", e.Name); werr != nil {
				return nil, werr
			}
			log.Warn("algorithm excluded from cycle", "algorithm", e.Name, "error", err)
			d.Metrics.observeRejected(e.Name)
			continue
		}
		accepted = append(accepted, e)
	}

	results, err := d.measureAll(accepted, text)
	if err != nil {
		return nil, err
	}

	ranked := Rank(results)
	d.Metrics.observeRanking(d.Rounds, ranked)
	log.Debug("cycle complete",
		"corpus_bytes", len(text),
		"found", want,
		"accepted", len(accepted),
		"rejected", d.Registry.Len()-len(accepted),
		"elapsed", time.Since(start))
	return ranked, nil
}

// measureAll times every entry against the same snapshot. Results come back
// in entry order, and only once every measurement has finished.
func (d *Driver) measureAll(entries []Entry, text string) ([]Result, error) {
	results := make([]Result, len(entries))

	if d.Parallelism <= 1 {
		for i, e := range entries {
			secs, err := Measure(d.Rounds, e.Probe(text))
			if err != nil {
				return nil, fmt.Errorf("measure %s: %w", e.Name, err)
			}
			results[i] = Result{Name: e.Name, Seconds: secs}
		}
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(d.Parallelism)
	for i, e := range entries {
		g.Go(func() error {
			secs, err := Measure(d.Rounds, e.Probe(text))
			if err != nil {
				return fmt.Errorf("measure %s: %w", e.Name, err)
			}
			results[i] = Result{Name: e.Name, Seconds: secs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Driver) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"bradfield/csi/algorithms/analyzer/config"
	"bradfield/csi/algorithms/analyzer/gen"
	"bradfield/csi/algorithms/analyzer/timer"
)

type Sample struct {
	Size    int
	Elapsed time.Duration
}

type Runner struct {
	cfg      *config.Config
	out      io.Writer
	sections []Section
}

func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{
		cfg:      cfg,
		out:      out,
		sections: Sections(),
	}
}

// Run measures every section in order and writes one table per section.
func (r *Runner) Run() error {
	for _, s := range r.sections {
		samples := r.RunSection(s)
		if err := WriteTable(r.out, s.Name, samples); err != nil {
			return fmt.Errorf("writing %s table: %w", s.Name, err)
		}
	}
	return nil
}

func (r *Runner) RunSection(s Section) []Sample {
	samples := make([]Sample, 0, len(r.cfg.Sizes))
	for _, size := range r.cfg.Sizes {
		samples = append(samples, r.measure(s, size))
	}
	return samples
}

func (r *Runner) measure(s Section, size int) Sample {
	g := gen.New(gen.Derive(r.cfg.Seed, s.Name+"/"+strconv.Itoa(size)))
	arr, target := g.Array(size)
	if s.Prepare != nil {
		target = s.Prepare(g, arr, target)
	}

	start := timer.Now()
	s.Exec(arr, target)
	elapsed := timer.Since(start)

	return Sample{Size: size, Elapsed: elapsed}
}

const (
	tableHeader = "Input Size | Time (ms)"
	tableRule   = "-------------------------"
)

func WriteTable(w io.Writer, name string, samples []Sample) error {
	if _, err := fmt.Fprintf(w, "Algorithm: %s\n%s\n%s\n", name, tableHeader, tableRule); err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "%-10d | %.4f\n", s.Size, timer.Millis(s.Elapsed)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

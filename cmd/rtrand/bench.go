package main

import (
	"fmt"
	"runtime"

	"github.com/TomTonic/rtrand"
	"github.com/TomTonic/rtrand/internal/stats"
	"github.com/TomTonic/rtrand/internal/timing"
)

// costSamples is the number of draws used to measure bit source calls per draw.
const costSamples = 100_000

type benchCommand struct {
	AMax      uint64    `long:"a-max" default:"255" description:"range A is [0, a-max]"`
	BMax      uint64    `long:"b-max" default:"254" description:"range B is [0, b-max]"`
	Repeats   int       `long:"repeats" default:"31" description:"runtime samples per range"`
	Calls     int       `long:"calls" default:"200000" description:"draws per runtime sample"`
	Speedups  []float64 `long:"speedup" description:"relative speedup of A over B to test; may be repeated (default 0)"`
	Precision uint64    `long:"precision" default:"10000" description:"bootstrap repetitions"`

	cfg *config
}

// callsPerDraw measures the average number of bit source calls per draw of [0, max].
func callsPerDraw(src rtrand.BitSource, max uint64) (float64, error) {
	counting := rtrand.NewCountingSource(src)
	g, err := rtrand.NewRangeCCGenerator(counting, 0, max)
	if err != nil {
		return 0, err
	}
	for range costSamples {
		g.Next()
	}
	return float64(counting.Calls()) / costSamples, nil
}

func (c *benchCommand) Execute(args []string) error {
	if c.Repeats < stats.MinimumDataPoints {
		return fmt.Errorf("--repeats must be at least %d", stats.MinimumDataPoints)
	}
	if c.Calls <= 0 {
		return fmt.Errorf("--calls must be positive")
	}
	src, err := c.cfg.newSource()
	if err != nil {
		return err
	}
	a, err := rtrand.NewRangeCCGenerator(src, 0, c.AMax)
	if err != nil {
		return err
	}
	b, err := rtrand.NewRangeCCGenerator(src, 0, c.BMax)
	if err != nil {
		return err
	}
	c.cfg.log.Debugf("Timer precision %d ns", timing.Precision())

	var sink uint64
	timesA := make([]float64, 0, c.Repeats)
	timesB := make([]float64, 0, c.Repeats)
	for range c.Repeats {
		runtime.GC()
		timesA = append(timesA, timing.PerCall(c.Calls, func() { sink += a.Next() }))
		runtime.GC()
		timesB = append(timesB, timing.PerCall(c.Calls, func() { sink += b.Next() }))
	}
	c.cfg.log.Tracef("Checksum %d", sink)

	costA, err := callsPerDraw(src, c.AMax)
	if err != nil {
		return err
	}
	costB, err := callsPerDraw(src, c.BMax)
	if err != nil {
		return err
	}

	results, err := stats.CompareRuntimes(timesA, timesB, c.Speedups, c.Precision)
	if err != nil {
		return err
	}

	c.printRange("A", c.AMax, a.Descriptor(), timesA, costA)
	c.printRange("B", c.BMax, b.Descriptor(), timesB, costB)
	for _, r := range results {
		fmt.Fprintf(c.cfg.out, "A faster by >= %.1f%%: confidence %.3f\n", r.RelativeSpeedup*100, r.Confidence)
	}
	return nil
}

// printRange prints the runtime summary of one range.
func (c *benchCommand) printRange(name string, hi uint64, d rtrand.RangeDescriptor, times []float64, cost float64) {
	mean, _, stddev := stats.Statistics(times)
	fmt.Fprintf(c.cfg.out, "%s [0, %d] %v: median %.2f ns/draw (mean %.2f, stddev %.2f), %.4f calls/draw\n",
		name, hi, d.Shape, stats.Median(times), mean, stddev, cost)
}

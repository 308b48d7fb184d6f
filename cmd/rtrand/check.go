package main

import (
	"errors"
	"fmt"

	"github.com/TomTonic/rtrand"
	"github.com/TomTonic/rtrand/internal/stats"
)

// maxCheckBins bounds the number of distinct values a check may count.
const maxCheckBins = 1 << 24

var errNotUniform = errors.New("uniformity rejected")

type checkCommand struct {
	Min      int64   `long:"min" default:"0" description:"lower bound"`
	Max      int64   `long:"max" default:"6" description:"upper bound"`
	Interval string  `short:"i" long:"interval" default:"CC" description:"included bounds: CC, CO, OC or OO"`
	Count    int     `short:"n" long:"count" default:"1000000" description:"number of draws"`
	Alpha    float64 `long:"alpha" default:"0.01" description:"significance level"`

	cfg *config
}

func (c *checkCommand) Execute(args []string) error {
	iv, err := rtrand.ParseInterval(c.Interval)
	if err != nil {
		return err
	}
	src, err := c.cfg.newSource()
	if err != nil {
		return err
	}
	counting := rtrand.NewCountingSource(src)
	g, err := rtrand.NewRangeGenerator(counting, c.Min, c.Max, iv)
	if err != nil {
		return err
	}
	d := g.Descriptor()
	if d.SizeMinusOne >= maxCheckBins {
		return fmt.Errorf("range [%d, %d] has more than %d values", g.Min(), g.Max(), maxCheckBins)
	}

	counts := make([]int, d.SizeMinusOne+1)
	for range c.Count {
		counts[g.Next()-g.Min()]++
	}
	x2, p := stats.UniformityTest(counts)

	fmt.Fprintf(c.cfg.out, "range      [%d, %d] (%v, mask %#x, %d bits)\n", g.Min(), g.Max(), d.Shape, d.BitMask, d.BitCount)
	fmt.Fprintf(c.cfg.out, "draws      %d\n", c.Count)
	if c.Count > 0 {
		fmt.Fprintf(c.cfg.out, "calls/draw %.4f\n", float64(counting.Calls())/float64(c.Count))
	}
	fmt.Fprintf(c.cfg.out, "chi2       %.3f (df %d)\n", x2, len(counts)-1)
	fmt.Fprintf(c.cfg.out, "p-value    %.4f\n", p)

	if p < c.Alpha {
		c.cfg.log.Warnf("H0 rejected at alpha=%.3f; this test is probabilistic and fails by chance with probability alpha", c.Alpha)
		return fmt.Errorf("%w: p=%.4f < alpha=%.3f", errNotUniform, p, c.Alpha)
	}
	c.cfg.log.Infof("No evidence against uniformity at alpha=%.3f", c.Alpha)
	return nil
}

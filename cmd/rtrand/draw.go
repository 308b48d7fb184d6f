package main

import (
	"fmt"
	"strconv"

	"github.com/TomTonic/rtrand"
)

type drawCommand struct {
	Kind     string `short:"k" long:"kind" default:"int" choice:"int" choice:"uint" choice:"float32" choice:"float64" choice:"precise32" choice:"precise64" description:"kind of value; precise kinds ignore --min/--max and draw from the unit interval"`
	Min      string `long:"min" default:"0" description:"lower bound"`
	Max      string `long:"max" default:"100" description:"upper bound"`
	Interval string `short:"i" long:"interval" default:"CC" description:"included bounds: CC, CO, OC or OO"`
	Signed   bool   `long:"signed" description:"precise kinds: draw from (-1, 1) instead of (0, 1)"`
	Count    int    `short:"n" long:"count" default:"10" description:"number of values"`

	cfg *config
}

// preciseUnits32 and preciseUnits64 are indexed by [signed][interval].
var (
	preciseUnits32 = [2][4]func(rtrand.BitSource) float32{
		{rtrand.PreciseFloat32CC, rtrand.PreciseFloat32CO, rtrand.PreciseFloat32OC, rtrand.PreciseFloat32OO},
		{rtrand.PreciseFloat32SignedCC, rtrand.PreciseFloat32SignedCO, rtrand.PreciseFloat32SignedOC, rtrand.PreciseFloat32SignedOO},
	}
	preciseUnits64 = [2][4]func(rtrand.BitSource) float64{
		{rtrand.PreciseFloat64CC, rtrand.PreciseFloat64CO, rtrand.PreciseFloat64OC, rtrand.PreciseFloat64OO},
		{rtrand.PreciseFloat64SignedCC, rtrand.PreciseFloat64SignedCO, rtrand.PreciseFloat64SignedOC, rtrand.PreciseFloat64SignedOO},
	}
)

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (c *drawCommand) Execute(args []string) error {
	iv, err := rtrand.ParseInterval(c.Interval)
	if err != nil {
		return err
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	src, err := c.cfg.newSource()
	if err != nil {
		return err
	}

	var next func() string
	switch c.Kind {
	case "int":
		next, err = intDrawer[int64](src, c.Min, c.Max, iv, func(s string) (int64, error) {
			return strconv.ParseInt(s, 0, 64)
		})
	case "uint":
		next, err = intDrawer[uint64](src, c.Min, c.Max, iv, func(s string) (uint64, error) {
			return strconv.ParseUint(s, 0, 64)
		})
	case "float32":
		next, err = floatDrawer[float32](src, c.Min, c.Max, iv)
	case "float64":
		next, err = floatDrawer[float64](src, c.Min, c.Max, iv)
	case "precise32":
		unit := preciseUnits32[boolIndex(c.Signed)][iv]
		next = func() string { return strconv.FormatFloat(float64(unit(src)), 'g', -1, 32) }
	case "precise64":
		unit := preciseUnits64[boolIndex(c.Signed)][iv]
		next = func() string { return strconv.FormatFloat(unit(src), 'g', -1, 64) }
	default:
		err = fmt.Errorf("unknown kind %q", c.Kind)
	}
	if err != nil {
		return err
	}

	for range c.Count {
		fmt.Fprintln(c.cfg.out, next())
	}
	return nil
}

func intDrawer[T int64 | uint64](src rtrand.BitSource, min, max string, iv rtrand.Interval, parse func(string) (T, error)) (func() string, error) {
	lo, err := parse(min)
	if err != nil {
		return nil, fmt.Errorf("invalid --min: %w", err)
	}
	hi, err := parse(max)
	if err != nil {
		return nil, fmt.Errorf("invalid --max: %w", err)
	}
	g, err := rtrand.NewRangeGenerator(src, lo, hi, iv)
	if err != nil {
		return nil, err
	}
	return func() string { return fmt.Sprint(g.Next()) }, nil
}

func floatDrawer[F float32 | float64](src rtrand.BitSource, min, max string, iv rtrand.Interval) (func() string, error) {
	var zero F
	bitSize := 64
	if _, ok := any(zero).(float32); ok {
		bitSize = 32
	}
	lo, err := strconv.ParseFloat(min, bitSize)
	if err != nil {
		return nil, fmt.Errorf("invalid --min: %w", err)
	}
	hi, err := strconv.ParseFloat(max, bitSize)
	if err != nil {
		return nil, fmt.Errorf("invalid --max: %w", err)
	}
	g, err := rtrand.NewFloatRangeGenerator(src, F(lo), F(hi), iv)
	if err != nil {
		return nil, err
	}
	return func() string { return strconv.FormatFloat(float64(g.Next()), 'g', -1, bitSize) }, nil
}

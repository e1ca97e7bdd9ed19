package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sandfall/internal/sims/sandbox"
)

var (
	gridW   int
	gridH   int
	seed    int64
	ticks   int
	workers int
	grains  int
	graph   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandbench",
		Short: "headless falling-sand benchmarks and parameter sweeps",
	}
	rootCmd.PersistentFlags().IntVar(&gridW, "w", 120, "grid width in cells")
	rootCmd.PersistentFlags().IntVar(&gridH, "h", 120, "grid height in cells")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1337, "simulation seed")
	rootCmd.PersistentFlags().IntVar(&ticks, "ticks", 2000, "maximum ticks per scenario")
	rootCmd.PersistentFlags().BoolVar(&graph, "graph", true, "print an asciigraph time series")

	settleCmd := &cobra.Command{
		Use:   "settle",
		Short: "sweep slide chance and measure how fast poured sand settles",
		RunE:  runSettle,
	}
	settleCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "worker goroutines")
	settleCmd.Flags().IntVar(&grains, "grains", 600, "sand grains to pour")

	burnCmd := &cobra.Command{
		Use:   "burn",
		Short: "sweep fire spread chance and measure sand consumption",
		RunE:  runBurn,
	}
	burnCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "worker goroutines")

	rootCmd.AddCommand(settleCmd, burnCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type settleResult struct {
	slideChance float64
	settleTick  int
	settled     bool
	movers      []float64
}

// runSettle pours a burst of sand above a wall floor for each slide
// chance option and reports the tick at which the pile stops moving.
func runSettle(cmd *cobra.Command, args []string) error {
	options := []float64{0.0, 0.1, 0.2, 0.3, 0.45, 0.6}

	results := make([]settleResult, len(options))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j] = settleScenario(options[j])
			}
		}()
	}
	for j := range options {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].slideChance < results[j].slideChance })

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "slide_chance\tsettle_tick\tsettled")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%d\t%v\n", r.slideChance, r.settleTick, r.settled)
	}
	tw.Flush()

	if graph && len(results) > 0 {
		r := results[len(results)/2]
		fmt.Printf("\nmoving cells per tick (slide_chance=%.2f):\n", r.slideChance)
		fmt.Println(asciigraph.Plot(downsample(r.movers, 72), asciigraph.Height(12)))
	}
	return nil
}

func settleScenario(slideChance float64) settleResult {
	cfg := sandbox.DefaultConfig()
	cfg.Width = gridW
	cfg.Height = gridH
	cfg.Seed = seed
	cfg.Params.SlideChance = slideChance

	world := sandbox.NewWithConfig(cfg)
	world.Reset(seed)
	world.Grid().StampLine(sandbox.Wall, 0, gridH-2, gridW-1, gridH-2, 1, sandbox.WallColor())
	world.DepositBurst(sandbox.Sand, gridW/2, 4, gridW/8, 3, sandbox.SandColor(world.RNG()), grains)

	res := settleResult{slideChance: slideChance, settleTick: ticks}
	prev := append([]uint8(nil), world.Cells()...)
	for t := 0; t < ticks; t++ {
		world.Step()
		moved := diffCount(prev, world.Cells())
		res.movers = append(res.movers, float64(moved))
		copy(prev, world.Cells())
		if moved == 0 {
			res.settleTick = t
			res.settled = true
			break
		}
	}
	return res
}

type burnResult struct {
	spreadChance float64
	startSand    int
	endSand      int
	consumedTick int
	consumed     bool
	series       []float64
}

// runBurn seeds a fire next to a sand block for each spread chance
// option and reports how quickly the block is consumed.
func runBurn(cmd *cobra.Command, args []string) error {
	options := []float64{0.02, 0.05, 0.08, 0.12, 0.2}

	results := make([]burnResult, len(options))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j] = burnScenario(options[j])
			}
		}()
	}
	for j := range options {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].spreadChance < results[j].spreadChance })

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "fire_spread_chance\tstart_sand\tend_sand\tconsumed_tick\tfully_consumed")
	for _, r := range results {
		fmt.Fprintf(tw, "%.3f\t%d\t%d\t%d\t%v\n", r.spreadChance, r.startSand, r.endSand, r.consumedTick, r.consumed)
	}
	tw.Flush()

	if graph && len(results) > 0 {
		r := results[len(results)/2]
		fmt.Printf("\nsand count per tick (fire_spread_chance=%.3f):\n", r.spreadChance)
		fmt.Println(asciigraph.Plot(downsample(r.series, 72), asciigraph.Height(12)))
	}
	return nil
}

func burnScenario(spreadChance float64) burnResult {
	cfg := sandbox.DefaultConfig()
	cfg.Width = gridW
	cfg.Height = gridH
	cfg.Seed = seed
	cfg.Params.FireSpreadChance = spreadChance
	// Keep the flame alive for the whole scenario.
	cfg.Params.FireDecayChance = 0

	world := sandbox.NewWithConfig(cfg)
	world.Reset(seed)

	blockW, blockH := gridW/4, gridH/8
	x0, y0 := gridW/2-blockW/2, gridH-1-blockH
	for y := y0; y < y0+blockH; y++ {
		for x := x0; x < x0+blockW; x++ {
			world.Deposit(sandbox.Sand, x, y, sandbox.SandColor(world.RNG()))
		}
	}
	world.Deposit(sandbox.Fire, x0+blockW/2, y0+blockH-1, sandbox.FireColor(world.RNG()))

	res := burnResult{
		spreadChance: spreadChance,
		startSand:    world.SandCount(),
		consumedTick: ticks,
	}
	for t := 0; t < ticks; t++ {
		world.Step()
		res.series = append(res.series, float64(world.SandCount()))
		if world.SandCount() == 0 {
			res.consumedTick = t
			res.consumed = true
			break
		}
	}
	res.endSand = world.SandCount()
	return res
}

// diffCount reports how many cells differ between two material buffers.
func diffCount(a, b []uint8) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// downsample thins a series to at most n points so the graph fits a
// terminal row.
func downsample(series []float64, n int) []float64 {
	if len(series) <= n || n <= 0 {
		return series
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, series[i*len(series)/n])
	}
	return out
}

// Command dla-bench runs a registered simulation to completion a number of
// times, headless, and reports the average step throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"dla-ca/internal/core"
	_ "dla-ca/internal/sims/dla"
)

func main() {
	simName := flag.String("sim", "dla", "registered simulation to benchmark")
	width := flag.Int("width", 400, "grid width in cells")
	height := flag.Int("height", 0, "grid height in cells (defaults to width)")
	particles := flag.Int("particles", 10_000, "number of particles to stick")
	seed := flag.Int64("seed", 1337, "random seed for the first iteration")
	iterations := flag.Int("iterations", 10, "how many full runs to average over")
	flag.Parse()

	if *height <= 0 {
		*height = *width
	}
	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}
	sim := factory(map[string]string{
		"w":         strconv.Itoa(*width),
		"h":         strconv.Itoa(*height),
		"particles": strconv.Itoa(*particles),
		"seed":      strconv.FormatInt(*seed, 10),
	})

	log.Printf("benchmarking %s: %d particles on a %dx%d grid, %d iterations",
		sim.Name(), *particles, *width, *height, *iterations)

	var total float64
	for i := 0; i < *iterations; i++ {
		sim.Reset(*seed + int64(i))
		meter := core.NewRateMeter()
		for !sim.Complete() {
			sim.Step()
		}
		rate := meter.Average(sim.Updates())
		total += rate
		fmt.Printf("iteration %d of %d: %.0f updates/s\n", i+1, *iterations, rate)
	}
	fmt.Printf("average: %.0f updates/s\n", total/float64(*iterations))
}

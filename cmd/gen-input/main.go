package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/velumanohar2000/eecs570-hw1/internal/beamform"
)

// gen-input writes a synthetic input file for the given grid size.
// OUTPUT overrides the file name, SEED the noise seed.
func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s {16|32|64}\n", os.Args[0])
		os.Exit(1)
	}
	size, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Printf("Usage: %s {16|32|64}\n", os.Args[0])
		os.Exit(1)
	}
	dims, err := beamform.DefaultDims(size)
	if err != nil {
		fmt.Printf("Usage: %s {16|32|64}\n", os.Args[0])
		os.Exit(1)
	}

	out := fmt.Sprintf(beamform.DefaultInput, size)
	if v := os.Getenv("OUTPUT"); v != "" {
		out = v
	}
	seed := int64(1)
	if v := os.Getenv("SEED"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			fmt.Printf("Error: SEED=%q: %v\n", v, err)
			os.Exit(1)
		}
	}

	geom, samples, err := beamform.Synthesize(dims, beamform.DefaultParams(), seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := beamform.SaveInput(out, geom, samples); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, beamform.InputBytes(dims))
}

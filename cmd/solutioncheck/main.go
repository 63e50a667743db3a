package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/velumanohar2000/eecs570-hw1/internal/beamform"
)

// solutioncheck prints the RMS difference between a beamformed image and the
// golden reference. OUTPUT and REFERENCE override the default file names.
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

	test := beamform.DefaultOutput
	if v := os.Getenv("OUTPUT"); v != "" {
		test = v
	}
	ref := fmt.Sprintf(beamform.DefaultReference, size)
	if v := os.Getenv("REFERENCE"); v != "" {
		ref = v
	}

	rms, err := beamform.CompareFiles(test, ref, dims.Points())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("RMS: %e\n", rms)
}

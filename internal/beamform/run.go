package beamform

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Run executes one complete CLI run described by cfg: load the input,
// beamform, write the image, then the optional RMS check, exports and ledger
// entry. cfg must have been finalised.
func Run(cfg *Config) error {
	dims, err := DefaultDims(cfg.Size)
	if err != nil {
		return err
	}
	return run(cfg, dims)
}

func run(cfg *Config, dims Dims) error {
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	params := DefaultParams()

	geom, samples, err := LoadInput(cfg.Input, dims, params)
	if err != nil {
		return err
	}
	ws, err := NewWorkspace(geom, samples, params)
	if err != nil {
		return err
	}

	if cfg.TracePoint != nil {
		logs, err := TraceEcho(ws, *cfg.TracePoint)
		if err != nil {
			return err
		}
		logTrace(dims, *cfg.TracePoint, logs)
	}

	fmt.Println("Beginning computation")
	start := time.Now()
	if err := Beamform(ws, plan); err != nil {
		var fault *IndexFault
		if errors.As(err, &fault) {
			if logs, terr := TraceEcho(ws, fault.Point); terr == nil {
				logTrace(dims, fault.Point, logs)
			}
		}
		return err
	}
	elapsed := time.Since(start)
	fmt.Printf("@@@ Elapsed time (usec): %d\n", elapsed.Microseconds())

	if err := SaveImage(cfg.Output, ws.Image); err != nil {
		return fmt.Errorf("write output %s: %w", cfg.Output, err)
	}
	st := Stats(ws.Image)
	logger().Info("image written",
		"path", cfg.Output,
		"points", len(ws.Image),
		"min", st.Min,
		"max", st.Max,
		"mean", st.Mean,
		"stddev", st.StdDev,
	)

	var rms *float64
	if cfg.Reference != "" {
		ref, err := LoadImage(cfg.Reference, dims.Points())
		if err != nil {
			return err
		}
		v, err := RMS(ws.Image, ref)
		if err != nil {
			return err
		}
		fmt.Printf("RMS: %e\n", v)
		rms = &v
	}

	if cfg.PNGOut != "" {
		prefix := strings.TrimSuffix(cfg.PNGOut, ".png")
		if err := SavePNGSequence16(ws.Image, dims, prefix, cfg.Gamma); err != nil {
			return err
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
	}
	if cfg.GIFOut != "" {
		if err := SaveAnimatedGIF(ws.Image, dims, cfg.GIFOut, cfg.GIFDelay, cfg.Gamma); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	}
	if cfg.PlotOut != "" {
		theta, phi := dims.SlsT/2, dims.SlsP/2
		if cfg.PlotTheta != nil {
			theta = *cfg.PlotTheta
		}
		if cfg.PlotPhi != nil {
			phi = *cfg.PlotPhi
		}
		if err := SaveScanlinePlot(ws.Image, dims, theta, phi, cfg.PlotOut); err != nil {
			return err
		}
	}

	if cfg.Ledger != "" {
		l, err := OpenLedger(cfg.Ledger)
		if err != nil {
			return fmt.Errorf("open ledger %s: %w", cfg.Ledger, err)
		}
		defer l.Close()
		id, err := l.Record(RunRecord{
			Size:          cfg.Size,
			Strategy:      plan.Strategy.String(),
			Topology:      plan.Topology.String(),
			Phase1Workers: plan.Phase1Workers,
			Phase2Workers: plan.phase2Workers(),
			ElapsedUsec:   elapsed.Microseconds(),
			RMS:           rms,
		})
		if err != nil {
			return err
		}
		logger().Info("run recorded", "ledger", cfg.Ledger, "id", id.String())
	}

	fmt.Println("Output complete.")
	return nil
}

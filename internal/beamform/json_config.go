package beamform

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config is everything one CLI run needs. It can be loaded from JSON and
// then overridden from the environment.
type Config struct {
	Size          int     `json:"size"`
	Input         string  `json:"input,omitempty"`
	Output        string  `json:"output,omitempty"`
	Reference     string  `json:"reference,omitempty"`
	Strategy      string  `json:"strategy,omitempty"`
	Topology      string  `json:"topology,omitempty"`
	Threads       int     `json:"threads,omitempty"`
	Phase2Threads int     `json:"phase2Threads,omitempty"`
	LockShards    int     `json:"lockShards,omitempty"`
	Progress      bool    `json:"progress,omitempty"`
	PNGOut        string  `json:"pngOut,omitempty"`
	GIFOut        string  `json:"gifOut,omitempty"`
	GIFDelay      int     `json:"gifDelay,omitempty"`
	Gamma         float64 `json:"gamma,omitempty"`
	PlotOut       string  `json:"plotOut,omitempty"`
	PlotTheta     *int    `json:"plotTheta,omitempty"` // nil means the centre scanline
	PlotPhi       *int    `json:"plotPhi,omitempty"`
	Ledger        string  `json:"ledger,omitempty"`
	TracePoint    *int    `json:"tracePoint,omitempty"` // flat index of a point to trace
}

// LoadConfig reads a JSON config. An empty path yields an empty Config.
// Defaults are applied by Finalize, after any environment overrides.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: %+v", path, cfg)
	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv:
// INPUT, OUTPUT, REFERENCE, STRATEGY, TOPOLOGY, THREADS, PHASE2_THREADS,
// LOCK_SHARDS, PROGRESS, PNG, GIF, PLOT, LEDGER, TRACE_POINT.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := getenv(key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, v, err)
		}
		*dst = n
		return nil
	}
	str("INPUT", &c.Input)
	str("OUTPUT", &c.Output)
	str("REFERENCE", &c.Reference)
	str("STRATEGY", &c.Strategy)
	str("TOPOLOGY", &c.Topology)
	str("PNG", &c.PNGOut)
	str("GIF", &c.GIFOut)
	str("PLOT", &c.PlotOut)
	str("LEDGER", &c.Ledger)
	for key, dst := range map[string]*int{
		"THREADS":        &c.Threads,
		"PHASE2_THREADS": &c.Phase2Threads,
		"LOCK_SHARDS":    &c.LockShards,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	if v := getenv("TRACE_POINT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRACE_POINT=%q: %w", v, err)
		}
		c.TracePoint = &n
	}
	if getenv("PROGRESS") != "" {
		c.Progress = true
	}
	return nil
}

// Finalize validates the size and fills defaults.
func (c *Config) Finalize() error {
	if _, err := DefaultDims(c.Size); err != nil {
		return err
	}
	if c.Input == "" {
		c.Input = fmt.Sprintf(DefaultInput, c.Size)
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.Phase2Threads < 0 {
		c.Phase2Threads = 0
	}
	if c.LockShards <= 0 {
		c.LockShards = DefaultLockShards
	}
	if c.GIFDelay <= 0 {
		c.GIFDelay = DefaultGIFDelay
	}
	if c.Gamma <= 0 {
		c.Gamma = DefaultGamma
	}
	_, err := c.Plan()
	return err
}

// Plan builds the execution plan described by the config.
func (c *Config) Plan() (Plan, error) {
	s, err := ParseStrategy(c.Strategy)
	if err != nil {
		return Plan{}, err
	}
	t, err := ParseTopology(c.Topology)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{
		Strategy:      s,
		Topology:      t,
		Phase1Workers: c.Threads,
		Phase2Workers: c.Phase2Threads,
		LockShards:    c.LockShards,
		Progress:      c.Progress,
	}
	return p, p.Validate()
}

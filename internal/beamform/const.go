package beamform

// Acquisition constants of the 32x32 probe dataset.
const (
	TransX      = 32
	TransY      = 32
	PtsR        = 1560
	DataLen     = 12308
	IdxConst    = 0.000009625 // round-trip metres per sample
	FilterDelay = 140         // off by 1 from the MATLAB model
	TxX         = 0
	TxY         = 0
	TxZ         = -0.001
	RxZ         = 0
)

// Defaults for the CLI and the exports.
const (
	DefaultInput      = "beamforming_input_%d.bin"
	DefaultOutput     = "beamforming_output.bin"
	DefaultReference  = "beamforming_solution_%d.bin"
	DefaultGIFDelay   = 10 // 100ths of a second per frame
	DefaultGamma      = 2.2
	DefaultLockShards = 1
	MaxLockShards     = 4096
)

// ValidSizes are the accepted scanline counts per angular axis.
var ValidSizes = [...]int{16, 32, 64}

package matrix

import (
	"fmt"

	archregistry "github.com/cwbudde/algo-matrix/matrix/internal/arch/registry"
)

// Scaler scales float32 matrices with a size check chosen at run time.
// The zero value is not usable; construct with NewScaler.
type Scaler struct {
	check  bool
	kernel archregistry.ScaleBlockFn
	name   string
}

// Option configures a Scaler.
type Option func(*scalerConfig)

type scalerConfig struct {
	check  bool
	kernel string
}

func defaultScalerConfig() scalerConfig {
	return scalerConfig{check: true}
}

// WithSizeCheck enables or disables the shape comparison.
func WithSizeCheck(enabled bool) Option {
	return func(c *scalerConfig) {
		c.check = enabled
	}
}

// WithKernel pins a registered kernel by name instead of the CPU default.
func WithKernel(name string) Option {
	return func(c *scalerConfig) {
		c.kernel = name
	}
}

// NewScaler returns a Scaler. The size check is on unless disabled with
// WithSizeCheck(false). It returns an error if WithKernel names an
// unregistered kernel.
func NewScaler(opts ...Option) (*Scaler, error) {
	cfg := defaultScalerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scaler{check: cfg.check}
	if cfg.kernel == "" {
		scaleBlockInitOnce.Do(initScaleBlockKernel)
		s.kernel = scaleBlockImpl
		s.name = scaleBlockName
		return s, nil
	}

	entry := archregistry.Global.LookupName(cfg.kernel)
	if entry == nil || entry.ScaleBlock == nil {
		return nil, fmt.Errorf("matrix: unknown kernel %q", cfg.kernel)
	}
	s.kernel = entry.ScaleBlock
	s.name = entry.Name
	return s, nil
}

// SizeCheck reports whether the Scaler compares shapes.
func (s *Scaler) SizeCheck() bool {
	return s.check
}

// Kernel returns the name of the kernel used by the Scaler.
func (s *Scaler) Kernel() string {
	return s.name
}

// Scale behaves like ScaleChecked when the size check is on and like
// ScaleUnchecked otherwise.
func (s *Scaler) Scale(src *F32, scale float32, dst *F32) Status {
	if s.check && !src.SizeCompatible(dst) {
		return SizeMismatch
	}

	scaleWith(s.kernel, src, scale, dst)
	return Success
}

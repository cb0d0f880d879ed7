package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/easecurve/anim"
	"github.com/npillmayer/easecurve/bezfit"
	"github.com/npillmayer/easecurve/reduce"
)

// ErrInvalidConfig is returned, wrapped with details, for configurations
// which cannot drive a conversion.
var ErrInvalidConfig = errors.New("invalid conversion configuration")

// Config parameterizes a conversion.
type Config struct {
	SampleSteps           int         // samples over [0,1]
	MaxStepsBetweenPoints float64     // max gap between retained samples, in steps
	PreprocessMode        reduce.Mode // point reduction before building keys
	LinearizeDistance     float64     // tolerance of reduce.Linearize
	RDPError              float64     // tolerance of reduce.RDP
	UseCurveFit           bool        // fit Bézier segments before building keys
	FitError              float64     // tolerance of the fitter
	DefaultTangentMode    anim.TangentMode
	CornerAngleDegrees    float64       // keys turning more than this get Linear tangents
	Fitter                bezfit.Fitter // nil selects bezfit.LeastSquares
}

// DefaultConfig returns the standard conversion parameters.
func DefaultConfig() Config {
	return Config{
		SampleSteps:           1000,
		MaxStepsBetweenPoints: 1,
		PreprocessMode:        reduce.RDP,
		LinearizeDistance:     0.01,
		RDPError:              0.0035,
		UseCurveFit:           false,
		FitError:              0.001,
		DefaultTangentMode:    anim.Auto,
		CornerAngleDegrees:    60,
	}
}

// Validate checks cfg, returning an error wrapping ErrInvalidConfig for the
// first problem found. Tolerances are checked only if they are in use.
func (cfg Config) Validate() error {
	if cfg.SampleSteps < 1 {
		return fmt.Errorf("%w: sample steps must be positive, is %d", ErrInvalidConfig, cfg.SampleSteps)
	}
	if !positive(cfg.MaxStepsBetweenPoints) {
		return fmt.Errorf("%w: max steps between points must be positive, is %g", ErrInvalidConfig,
			cfg.MaxStepsBetweenPoints)
	}
	switch cfg.PreprocessMode {
	case reduce.Linearize:
		if !positive(cfg.LinearizeDistance) {
			return fmt.Errorf("%w: linearize distance must be positive, is %g", ErrInvalidConfig,
				cfg.LinearizeDistance)
		}
	case reduce.RDP:
		if !positive(cfg.RDPError) {
			return fmt.Errorf("%w: RDP error must be positive, is %g", ErrInvalidConfig, cfg.RDPError)
		}
	}
	if cfg.UseCurveFit && !positive(cfg.FitError) {
		return fmt.Errorf("%w: fit error must be positive, is %g", ErrInvalidConfig, cfg.FitError)
	}
	if !cfg.DefaultTangentMode.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, cfg.DefaultTangentMode)
	}
	if !(cfg.CornerAngleDegrees > 0 && cfg.CornerAngleDegrees <= 180) {
		return fmt.Errorf("%w: corner angle must be in (0,180], is %g", ErrInvalidConfig,
			cfg.CornerAngleDegrees)
	}
	return nil
}

func (cfg Config) fitter() bezfit.Fitter {
	if cfg.Fitter == nil {
		return bezfit.LeastSquares{}
	}
	return cfg.Fitter
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

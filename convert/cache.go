package convert

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/easecurve/anim"
	"github.com/npillmayer/easecurve/easing"
)

// Cache holds a converted curve for every function of a registry.
//
// Configuration fields must not be changed while Rebuild runs. All other
// methods are safe for concurrent use; a curve is never edited while the
// cache is rebuilt.
type Cache struct {
	Registry     *easing.Registry
	Config       Config
	Workers      int                       // concurrent conversions; < 2 converts sequentially
	CornerAngles map[easing.Family]float64 // per-family overrides of Config.CornerAngleDegrees

	mu     sync.RWMutex
	curves map[string]*anim.Curve
}

// NewCache creates an empty cache for the functions of r, with the default
// per-family corner angles.
func NewCache(r *easing.Registry, cfg Config) *Cache {
	return &Cache{
		Registry:     r,
		Config:       cfg,
		CornerAngles: DefaultCornerAngles(),
		curves:       make(map[string]*anim.Curve),
	}
}

// DefaultCornerAngles returns corner thresholds of 60° for bouncing
// functions and 180°, i.e. no corners, for all other families.
func DefaultCornerAngles() map[easing.Family]float64 {
	angles := make(map[easing.Family]float64)
	for f := easing.QuadFamily; f <= easing.LinearFamily; f++ {
		angles[f] = 180
	}
	angles[easing.BounceFamily] = 60
	return angles
}

func (c *Cache) configFor(name string) Config {
	cfg := c.Config
	if family, ok := easing.FamilyOf(name); ok {
		if angle, found := c.CornerAngles[family]; found {
			cfg.CornerAngleDegrees = angle
		}
	}
	return cfg
}

type conversion struct {
	name  string
	curve *anim.Curve
	err   error
}

// Rebuild converts every function of the registry. Functions which fail to
// convert keep their previous curve, if any; their errors are joined into
// the returned error.
func (c *Cache) Rebuild() error {
	if c.Registry == nil {
		return fmt.Errorf("%w: cache has no registry", ErrInvalidConfig)
	}
	if err := c.Config.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.curves == nil {
		c.curves = make(map[string]*anim.Curve)
	}
	names := c.Registry.Names()
	results := make([]conversion, len(names))
	if c.Workers < 2 {
		for i, name := range names {
			results[i] = c.convert(name)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < min(c.Workers, len(names)); w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = c.convert(names[i])
				}
			}()
		}
		for i := range names {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}
	var errs []error
	for _, r := range results {
		if r.err != nil {
			tracer().Errorf("%s: %v", r.name, r.err)
			errs = append(errs, r.err)
			continue
		}
		c.curves[r.name] = r.curve
	}
	tracer().Infof("converted %d of %d functions", len(names)-len(errs), len(names))
	return errors.Join(errs...)
}

func (c *Cache) convert(name string) conversion {
	f, err := c.Registry.Lookup(name)
	if err != nil {
		return conversion{name: name, err: err}
	}
	curve, err := Convert(f, c.configFor(name))
	if err != nil {
		return conversion{name: name, err: fmt.Errorf("%s: %w", name, err)}
	}
	tracer().Debugf("%s: %s", name, anim.AsString(curve))
	return conversion{name: name, curve: curve}
}

// Curve returns a copy of the curve converted for name.
func (c *Cache) Curve(name string) (*anim.Curve, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	curve, ok := c.curves[name]
	if !ok {
		return nil, false
	}
	return curve.Clone(), true
}

// Edit applies fn to the curve for name, for example a single key edit. If
// fn fails, the curve is left unchanged.
func (c *Cache) Edit(name string, fn func(*anim.Curve) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	curve, ok := c.curves[name]
	if !ok {
		return fmt.Errorf("%w: no curve for %q", easing.ErrUnknownFunction, name)
	}
	edited := curve.Clone()
	if err := fn(edited); err != nil {
		return fmt.Errorf("editing %s: %w", name, err)
	}
	c.curves[name] = edited
	return nil
}

// Len is the number of converted curves.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.curves)
}

// Package: prizecycle/config
//
// config.go — experiment configuration: types, defaults and validation.
//
// Contract:
//   • Default() is always valid; a document only overrides the keys it names.
//   • Validate() runs go-playground/validator struct tags, the custom "method"
//     and "strategy" tags, and per-layout struct-level rules.
//   • Field names in validation errors are the YAML keys.

package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/prizecycle/construct"
	"github.com/katalvlaran/prizecycle/localsearch"
)

// Layout names accepted by InstanceConfig.Layout.
const (
	LayoutUniform   = "uniform"
	LayoutClustered = "clustered"
	LayoutGrid      = "grid"
	LayoutRing      = "ring"
)

// Cost distributions accepted by CostConfig.Distribution.
const (
	CostConstant    = "constant"
	CostUniform     = "uniform"
	CostNormal      = "normal"
	CostExponential = "exponential"
)

// Config describes one experiment: the instance to generate, the descents
// to run on it and how many times.
type Config struct {
	// Instance selects the synthetic point layout.
	Instance InstanceConfig `yaml:"instance"`

	// Methods lists descent methods by name (see localsearch.Methods).
	Methods []string `yaml:"methods" validate:"min=1,dive,method"`

	// Start is the construction used for initial solutions ("random", "regret").
	Start string `yaml:"start" validate:"required,strategy"`

	// Regret holds the weights of the regret construction.
	Regret RegretConfig `yaml:"regret"`

	// Runs is the number of descents per method.
	Runs int `yaml:"runs" validate:"min=1"`

	// Seed is the parent of every per-run random stream.
	Seed int64 `yaml:"seed"`

	// Workers bounds concurrent descents; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`

	// CandidateK is the candidate list length of the candidate methods.
	CandidateK int `yaml:"candidate_k" validate:"min=1"`

	// TimeLimit stops scheduling new descents once elapsed; 0 disables it.
	TimeLimit time.Duration `yaml:"time_limit" validate:"gte=0"`
}

// InstanceConfig selects a builder layout and its parameters. Only the
// parameters of the chosen layout are read.
type InstanceConfig struct {
	Layout string `yaml:"layout" validate:"required,oneof=uniform clustered grid ring"`

	// uniform, ring
	Points int `yaml:"points" validate:"gte=0"`

	// clustered
	Clusters   int     `yaml:"clusters" validate:"gte=0"`
	PerCluster int     `yaml:"per_cluster" validate:"gte=0"`
	Spread     float64 `yaml:"spread" validate:"gte=0"`

	// grid
	Rows int   `yaml:"rows" validate:"gte=0"`
	Cols int   `yaml:"cols" validate:"gte=0"`
	Step int64 `yaml:"step" validate:"gte=0"`

	// ring
	Radius float64 `yaml:"radius" validate:"gte=0"`

	Width  int64 `yaml:"width" validate:"min=1"`
	Height int64 `yaml:"height" validate:"min=1"`
	Seed   int64 `yaml:"seed"`

	Cost CostConfig `yaml:"cost"`
}

// CostConfig selects the point-cost distribution. Value is read by
// "constant", Min and Max by "uniform", Mean and Stddev by "normal" and Rate
// by "exponential".
type CostConfig struct {
	Distribution string  `yaml:"distribution" validate:"required,oneof=constant uniform normal exponential"`
	Value        int64   `yaml:"value" validate:"gte=0"`
	Min          int64   `yaml:"min" validate:"gte=0"`
	Max          int64   `yaml:"max" validate:"gte=0"`
	Mean         float64 `yaml:"mean"`
	Stddev       float64 `yaml:"stddev" validate:"gte=0"`
	Rate         float64 `yaml:"rate" validate:"gte=0"`
}

// RegretConfig holds the weights of construct.WeightedRegret.
type RegretConfig struct {
	Weight     float64 `yaml:"weight" validate:"gte=0"`
	BestWeight float64 `yaml:"best_weight" validate:"gte=0"`
}

// Default returns a valid configuration: 200 uniform points with uniform
// costs, every method, 20 runs each from the regret construction.
func Default() *Config {
	methods := localsearch.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}

	return &Config{
		Instance: InstanceConfig{
			Layout: LayoutUniform,
			Points: 200,
			Width:  4000,
			Height: 2000,
			Seed:   1,
			Cost: CostConfig{
				Distribution: CostUniform,
				Min:          0,
				Max:          2000,
			},
		},
		Methods: names,
		Start:   string(construct.StrategyRegret),
		Regret: RegretConfig{
			Weight:     construct.DefaultRegretWeight,
			BestWeight: construct.DefaultBestWeight,
		},
		Runs:       20,
		Seed:       1,
		Workers:    0,
		CandidateK: 10,
	}
}

// Validate checks c and returns an error wrapping ErrInvalid and the
// validator.ValidationErrors on failure.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ParsedMethods returns Methods as localsearch values. Call after Validate.
func (c *Config) ParsedMethods() ([]localsearch.Method, error) {
	out := make([]localsearch.Method, len(c.Methods))
	for i, name := range c.Methods {
		m, err := localsearch.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

// Strategy returns Start as a construct.Strategy. Call after Validate.
func (c *Config) Strategy() (construct.Strategy, error) {
	return construct.ParseStrategy(c.Start)
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report YAML keys instead of Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("method", func(fl validator.FieldLevel) bool {
		_, err := localsearch.ParseMethod(fl.Field().String())
		return err == nil
	})
	mustRegister("strategy", func(fl validator.FieldLevel) bool {
		_, err := construct.ParseStrategy(fl.Field().String())
		return err == nil
	})

	validate.RegisterStructValidation(validateLayout, InstanceConfig{})
	validate.RegisterStructValidation(validateCost, CostConfig{})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("config: register %q: %v", tag, err))
	}
}

// validateLayout requires the parameters of the selected layout.
func validateLayout(sl validator.StructLevel) {
	ic := sl.Current().Interface().(InstanceConfig)
	need := func(ok bool, value interface{}, field, yamlKey string) {
		if !ok {
			sl.ReportError(value, yamlKey, field, "required_for_layout", ic.Layout)
		}
	}

	switch ic.Layout {
	case LayoutUniform:
		need(ic.Points >= 1, ic.Points, "Points", "points")
	case LayoutRing:
		need(ic.Points >= 1, ic.Points, "Points", "points")
		need(ic.Radius > 0, ic.Radius, "Radius", "radius")
	case LayoutClustered:
		need(ic.Clusters >= 1, ic.Clusters, "Clusters", "clusters")
		need(ic.PerCluster >= 1, ic.PerCluster, "PerCluster", "per_cluster")
		need(ic.Spread > 0, ic.Spread, "Spread", "spread")
	case LayoutGrid:
		need(ic.Rows >= 1, ic.Rows, "Rows", "rows")
		need(ic.Cols >= 1, ic.Cols, "Cols", "cols")
		need(ic.Step > 0, ic.Step, "Step", "step")
	}
}

// validateCost checks the cross-field rules of the distributions.
func validateCost(sl validator.StructLevel) {
	cc := sl.Current().Interface().(CostConfig)
	switch cc.Distribution {
	case CostUniform:
		if cc.Max < cc.Min {
			sl.ReportError(cc.Max, "max", "Max", "gtefield", "min")
		}
	case CostExponential:
		if !(cc.Rate > 0) {
			sl.ReportError(cc.Rate, "rate", "Rate", "required_for_distribution", cc.Distribution)
		}
	}
}

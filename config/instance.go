package config

import (
	"github.com/katalvlaran/prizecycle/builder"
	"github.com/katalvlaran/prizecycle/instance"
)

// Build generates the instance described by ic. ic must be valid; builder
// option constructors panic on the values Validate rejects.
func (ic InstanceConfig) Build() (*instance.Instance, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(ic.Seed),
		builder.WithArea(ic.Width, ic.Height),
		ic.Cost.option(),
	}

	var cons builder.Constructor
	switch ic.Layout {
	case LayoutClustered:
		cons = builder.Clustered(ic.Clusters, ic.PerCluster, ic.Spread)
	case LayoutGrid:
		cons = builder.Grid(ic.Rows, ic.Cols, ic.Step)
	case LayoutRing:
		cons = builder.Ring(ic.Points, ic.Radius)
	default:
		cons = builder.Uniform(ic.Points)
	}

	return builder.BuildInstance(opts, cons)
}

func (cc CostConfig) option() builder.BuilderOption {
	switch cc.Distribution {
	case CostUniform:
		return builder.WithUniformCost(cc.Min, cc.Max)
	case CostNormal:
		return builder.WithNormalCost(cc.Mean, cc.Stddev)
	case CostExponential:
		return builder.WithExponentialCost(cc.Rate)
	default:
		return builder.WithConstantCost(cc.Value)
	}
}

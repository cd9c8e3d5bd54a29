// Package builder defines shared constants used by the layout constructors,
// ensuring consistent error context and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodClustered is the canonical name for the Clustered constructor.
	MethodClustered = "Clustered"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRing is the canonical name for the Ring constructor.
	MethodRing = "Ring"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPoints is the smallest point count accepted by Uniform and Ring.
const MinPoints = 1

// MinGridDim is the smallest row or column count accepted by Grid.
const MinGridDim = 1

// MinClusters is the smallest cluster count accepted by Clustered.
const MinClusters = 1

package colormap

// Alternative names for the mapping functions, in both spellings.
var (
	ApplyColourMap = Apply
	ApplyColorMap  = Apply

	ApplyColourMapRange = ApplyRange
	ApplyColorMapRange  = ApplyRange

	ApplyDivergingColourMap = ApplyDiverging
	ApplyDivergingColorMap  = ApplyDiverging

	ApplyCyclicColourMap = ApplyCyclic
	ApplyCyclicColorMap  = ApplyCyclic

	TernaryImage = Ternary
)

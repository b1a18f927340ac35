package domain

// Bucket names for the batch hand-off. The wire surfaces and the notebook
// builder validate against exactly this set.
const (
	BucketConstraints       = "constraints"
	BucketEquations         = "equations"
	BucketInitialConditions = "initial conditions"
	BucketRateValues        = "rate values"
	BucketRawStates         = "raw states"
)

// BucketNames returns the five bucket names in emission order.
func BucketNames() []string {
	return []string{
		BucketConstraints,
		BucketEquations,
		BucketInitialConditions,
		BucketRateValues,
		BucketRawStates,
	}
}

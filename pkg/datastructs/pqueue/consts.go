package pqueue

const (
	// minCapacity is the initial capacity and the floor the store never shrinks below.
	minCapacity = 10

	// growFactor multiplies the capacity when a full store receives an insert.
	growFactor = 2

	// shrinkRatio: capacity halves once size <= capacity/shrinkRatio after an extraction.
	shrinkRatio = 4
)

package build

// Status is the aggregate outcome of one build invocation.
type Status int

const (
	// UpToDate means nothing needed building.
	UpToDate Status = iota
	// Rebuilt means at least one vertex was rebuilt successfully.
	Rebuilt
	// Failed means a fatal condition aborted the build.
	Failed
)

func (s Status) String() string {
	switch s {
	case UpToDate:
		return "up-to-date"
	case Rebuilt:
		return "rebuilt"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Cycle is a diagnostic for a dependency that was still being built when one
// of its dependents reached it again.
type Cycle struct {
	// From is the vertex whose dependency list closed the cycle.
	From string
	// To is the revisited vertex.
	To string
}

// Result summarizes a build invocation.
type Result struct {
	Target string
	Status Status
	// Order lists every vertex in the order it finished post-order processing.
	Order []string
	// Rebuilt lists the vertices that were rebuilt, in build order.
	Rebuilt []string
	// Cycles lists every revisit of an unfinished vertex.
	Cycles []Cycle
}

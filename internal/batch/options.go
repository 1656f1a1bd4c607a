package batch

const (
	// DefaultDepth is the number of robot-held directional keypads in the
	// small puzzle; the large one uses 25.
	DefaultDepth   = 2
	DefaultWorkers = 1
)

// Options configures a Runner.
type Options struct {
	Depth   int // Directional keypads between the human and the door keypad
	Workers int // Codes evaluated concurrently by Run (<= 1 = sequential)
}

// DefaultOptions returns standard runner options for depth.
func DefaultOptions(depth int) *Options {
	return &Options{
		Depth:   max(depth, 0),
		Workers: DefaultWorkers,
	}
}

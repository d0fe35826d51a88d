package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// TickInterval is the simulation step interval
	TickInterval = time.Second / TicksPerSecond

	// MaxTickLag is how far behind the scheduler may fall before it drops the backlog
	MaxTickLag = 2 * TickInterval
)

// Input Timing
const (
	// KeyHoldTimeout is how long a key counts as held after its last press or repeat
	// Terminals report no key release; auto-repeat refreshes the hold
	KeyHoldTimeout = 150 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 256
)

// Logging
const (
	// LogDir is the debug log directory relative to the working directory
	LogDir = "logs"

	// LogFileName is the debug log file name
	LogFileName = "space-courier.log"

	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024
)

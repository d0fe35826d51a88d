package parameter

// Arena
const (
	// ArenaWidth is the playable width in arena units
	ArenaWidth = 800.0

	// ArenaHeight is the playable height in arena units
	ArenaHeight = 600.0

	// StationX, StationY is the player spawn and respawn point
	StationX = 50.0
	StationY = 50.0

	// GoalX, GoalY is the delivery planet position
	GoalX = 700.0
	GoalY = 500.0
)

// EnemySpawns is the fixed roster of enemy spawn points (also their patrol centers)
var EnemySpawns = [...][2]float64{
	{300, 200},
	{400, 400},
	{200, 350},
}

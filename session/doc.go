// Package session is the command surface a UI or CLI drives: it owns one
// grid, starts Dijkstra and A* runs on it, steps them by handle and
// regenerates the board.
//
// Commands map one to one onto the engine:
//
//	Configure(w, h)                     new empty board
//	SetObstacle / SetStart / SetEnd     board edits
//	ResetSearchState                    abort any run, clear search fields
//	RunDijkstra / RunAStar / Run        start a run, get a Handle
//	Step / State / ReconstructPath      drive and inspect a run
//	GenerateMaze / GenerateObstacles*   regenerate the board
//	Drive                               step a run on a ticker until terminal
//
// Board-changing commands are rejected with gridgraph.ErrAlreadyRunning
// while a run holds the grid. Only one run may hold the grid at a time.
//
// A Session logs through logrus and counts runs, steps, widenings and
// generations on a Prometheus registerer. It is not safe for concurrent
// use; Drive calls Step from the calling goroutine only.
package session

package engine

import "time"

// WorkerStat describes the share of a frame rendered by one worker
type WorkerStat struct {
	// The worker id, which is also the first row it renders.
	ID int

	// Number of rows assigned to the worker.
	Rows int

	// Time spent on the assigned rows.
	RenderTime time.Duration
}

// FrameStats describes one rendered frame
type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for the entire frame, including the join.
	RenderTime time.Duration
}

package engine

import "errors"

var (
	ErrSceneNotDefined = errors.New("engine: no scene defined")
	ErrNoWorkers       = errors.New("engine: at least one worker is required")
	ErrNoFrame         = errors.New("engine: no frame rendered yet")
	ErrFrameSize       = errors.New("engine: frame size does not match the output")
)

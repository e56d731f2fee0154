package sldsphere

import "go.uber.org/zap"

var (
	Logger  = zap.NewNop() // replaced by the CLI; silent for library callers and tests
	Workers = 0            // curve evaluation goroutines, <= 0 means runtime.NumCPU()
)

// Package executor spawns the resolved command lines as local processes.
//
// It is a collaborator of the resolution engine, not part of it: the engine
// hands over flat command strings and the executor decides pacing. A bounded
// pool of workers consumes the run list; results are reported in run order
// regardless of completion order, so logs stay aligned with the expansion
// sequence.
package executor

// Package statsview serves runtime statistics of the emulator process over
// HTTP. It is only functional when built with the statsview build tag:
//
//	go build -tags statsview
//
// The charts are then available at localhost:12600/debug/statsview and the
// standard pprof pages at localhost:12600/debug/pprof/.
package statsview

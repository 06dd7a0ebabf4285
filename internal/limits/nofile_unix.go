//go:build unix

// Package limits adjusts process resource limits before a sweep.
//
// A full sweep opens on the order of services × regions sockets; raising
// the open-file soft limit up front avoids resource-exhaustion failures
// halfway through. This is an environment precondition, not a
// correctness guarantee.
package limits

import (
	"syscall"

	"go.uber.org/zap"
)

// DesiredNoFile should be comfortably larger than services × regions.
const DesiredNoFile = 6000

// RaiseNoFile lifts the soft open-file limit toward
// min(DesiredNoFile, hard limit). A hard limit below the desired value
// is logged as a warning; the sweep still proceeds.
func RaiseNoFile(logger *zap.Logger) {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &lim); err != nil {
		logger.Warn("cannot read open-file limit", zap.Error(err))
		return
	}

	if lim.Max < DesiredNoFile {
		logger.Warn("open-file hard limit is low; large sweeps may fail mid-run",
			zap.Uint64("hard_limit", lim.Max),
			zap.Uint64("desired", DesiredNoFile))
	}

	target := uint64(DesiredNoFile)
	if lim.Max < target {
		target = lim.Max
	}
	if target <= lim.Cur {
		return
	}

	lim.Cur = target
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &lim); err != nil {
		logger.Warn("cannot raise open-file limit", zap.Error(err))
		return
	}
	logger.Info("raised open-file soft limit", zap.Uint64("nofile", target))
}

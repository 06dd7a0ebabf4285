//go:build !unix

package limits

import "go.uber.org/zap"

// DesiredNoFile should be comfortably larger than services × regions.
const DesiredNoFile = 6000

// RaiseNoFile is a no-op on platforms without rlimits (Windows).
func RaiseNoFile(logger *zap.Logger) {
	logger.Debug("open-file limits not adjustable on this platform")
}

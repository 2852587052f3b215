package quack

import "errors"

var (
	// ErrThresholdExceedsMax is returned by New when the requested threshold
	// exceeds the process-wide T_MAX configured via
	// GlobalConfigSetMaxPowerSumThreshold.
	ErrThresholdExceedsMax = errors.New("quack: threshold exceeds the configured maximum")

	// ErrThresholdMismatch is returned by SubAssign/Sub when the two
	// accumulators were built with different thresholds.
	ErrThresholdMismatch = errors.New("quack: accumulators have mismatched thresholds")

	// ErrSerializationFormat is returned by Deserialize when the input bytes
	// are the wrong length or otherwise inconsistent with the header.
	ErrSerializationFormat = errors.New("quack: malformed serialized accumulator")
)

package constants

import "github.com/eigerco/ore/internal/safemath"

// SmoothRewardRate clamps a proposed reward rate so it is at most
// SmoothingFactor times larger or smaller than the previous rate.
func SmoothRewardRate(prev, next uint64) uint64 {
	upper := safemath.SaturatingMul64(prev, SmoothingFactor)
	lower := prev / SmoothingFactor
	if next > upper {
		return upper
	}
	if next < lower {
		return lower
	}
	return next
}

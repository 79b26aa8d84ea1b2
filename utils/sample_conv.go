// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample in [-1, 1] to a 16-bit PCM
// value. Inputs outside the range saturate instead of wrapping.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}

	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM value to a normalized sample in
// [-1, 1]. The scale matches Float32ToInt16, so every int16 value survives
// a round trip unchanged.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

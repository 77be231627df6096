// ABOUTME: Audio type definitions
// ABOUTME: Defines the channel layout and float32/integer sample conversions
package audio

import "math"

// Channels is the channel count of every Buffer. Decoders upmix or drop
// channels so the editor only ever sees interleaved left/right pairs.
const Channels = 2

// FloatToInt16 converts a float sample in [-1, 1] to int16 with clipping
func FloatToInt16(sample float32) int16 {
	return int16(FloatToInt(sample, 16))
}

// Int16ToFloat converts an int16 sample to float in [-1, 1)
func Int16ToFloat(sample int16) float32 {
	return float32(sample) / 32768.0
}

// IntToFloat converts a signed integer sample of the given bit depth to float
func IntToFloat(sample int32, bitDepth int) float32 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 0
	}
	scale := math.Ldexp(1, bitDepth-1)
	return float32(float64(sample) / scale)
}

// FloatToInt converts a float sample to a signed integer of the given bit
// depth, clipping values outside [-1, 1]
func FloatToInt(sample float32, bitDepth int) int32 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 0
	}
	max := math.Ldexp(1, bitDepth-1) - 1
	min := -math.Ldexp(1, bitDepth-1)

	scaled := math.Round(float64(sample) * max)
	if scaled > max {
		scaled = max
	} else if scaled < min {
		scaled = min
	}
	return int32(scaled)
}

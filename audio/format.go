// SPDX-License-Identifier: EPL-2.0

package audio

// SampleFormat identifies the numeric representation used when samples are
// serialized. In memory the library always works with normalized float32 in
// [-1, 1]; conversion happens only at container boundaries.
type SampleFormat int

const (
	// Int16 is 16-bit signed integer PCM. Conversion from the normalized
	// domain saturates, it never wraps.
	Int16 SampleFormat = iota
	// Float32 is 32-bit IEEE floating point PCM. Conversion from the
	// normalized domain is the identity.
	Float32
)

// BitsPerSample returns the serialized width of one sample.
func (f SampleFormat) BitsPerSample() int {
	if f == Float32 {
		return 32
	}
	return 16
}

func (f SampleFormat) String() string {
	if f == Float32 {
		return "float32"
	}
	return "int16"
}

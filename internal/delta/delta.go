// Package delta implements the PRS image codec's reversible per-channel
// byte predictor.
package delta

// Encode applies the forward predictor to buf in place: each byte from
// the end down to index stride has the byte stride positions earlier
// subtracted from it, modulo 256. stride is the image's bytes-per-pixel
// (3 or 4).
func Encode(buf []byte, stride int) {
	for i := len(buf) - 1; i >= stride; i-- {
		buf[i] = buf[i] - buf[i-stride]
	}
}

// Decode reverses Encode in place: each byte from index stride onward
// has the byte stride positions earlier added back to it, modulo 256.
func Decode(buf []byte, stride int) {
	for i := stride; i < len(buf); i++ {
		buf[i] = buf[i] + buf[i-stride]
	}
}

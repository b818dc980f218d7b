// Package spectrum provides spectrum-domain helpers for the drawing tools.
//
// FFTs are delegated to algo-fft plans. The package turns frames of real
// samples into one-sided power spectra and short-time spectrograms.
package spectrum

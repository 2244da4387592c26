// This file is part of Gopher32X.
//
// Gopher32X is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher32X is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher32X.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of PWM output to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher32x/curated"
	"github.com/jetsetilly/gopher32x/logger"
)

const (
	numChannels = 2
	bitDepth    = 16

	// PCM format in the WAV header
	formatPCM = 1
)

// WavWriter implements the pwm.Mixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SetSampleRate changes the sample rate of the file. Useful when the rate is
// not known until mixing has finished.
func (aw *WavWriter) SetSampleRate(sampleRate int) error {
	if sampleRate <= 0 {
		return curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}
	aw.sampleRate = sampleRate
	return nil
}

// SetSample implements the pwm.Mixer interface.
func (aw *WavWriter) SetSample(left int16, right int16) error {
	aw.buffer = append(aw.buffer, int(left), int(right))
	return nil
}

// NumSamples returns the number of stereo samples in the buffer.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer) / numChannels
}

// EndMixing writes the buffered samples to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, formatPCM)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	// the header is completed by closing the encoder
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

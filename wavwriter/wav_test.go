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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher32x/test"
	"github.com/jetsetilly/gopher32x/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pwm.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)

	samples := []int16{0, 0, 100, -100, 0x7fff, -0x8000}
	for i := 0; i < len(samples); i += 2 {
		test.ExpectSuccess(t, aw.SetSample(samples[i], samples[i+1]))
	}
	test.ExpectEquality(t, aw.NumSamples(), 3)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(22050))
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, buf.Data[i], int(s))
	}
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("unused.wav", 0)
	test.ExpectFailure(t, err)
}

func TestSetSampleRate(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rate.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.SetSampleRate(-1))
	test.ExpectSuccess(t, aw.SetSampleRate(44100))
	test.DemandSuccess(t, aw.SetSample(1, -1))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	test.ExpectEquality(t, dec.SampleRate, uint32(44100))
}

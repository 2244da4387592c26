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

package pwm_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/mars/pwm"
	"github.com/jetsetilly/gopher32x/logger"
	"github.com/jetsetilly/gopher32x/test"
)

type mixer struct {
	left  []int16
	right []int16
}

func (m *mixer) SetSample(l int16, r int16) error {
	m.left = append(m.left, l)
	m.right = append(m.right, r)
	return nil
}

func TestFIFOStatus(t *testing.T) {
	p := pwm.NewPWM(logger.Allow)

	test.ExpectEquality(t, p.Read(pwm.Left), pwm.StatusEmpty)
	test.ExpectEquality(t, p.Read(pwm.Mono), pwm.StatusEmpty)

	p.Write(pwm.Left, 100)
	test.ExpectEquality(t, p.Read(pwm.Left), 0)
	test.ExpectEquality(t, p.Read(pwm.Right), pwm.StatusEmpty)

	p.Write(pwm.Mono, 100)
	p.Write(pwm.Mono, 100)
	test.ExpectEquality(t, p.Read(pwm.Left), pwm.StatusFull)
	test.ExpectEquality(t, p.Read(pwm.Right), 0)
	test.ExpectEquality(t, p.Read(pwm.Mono), pwm.StatusFull)
}

func TestStep(t *testing.T) {
	p := pwm.NewPWM(logger.Allow)
	m := &mixer{}
	p.AttachMixer(m)

	// stopped PWM does nothing
	test.ExpectFailure(t, p.Step(10000))
	test.ExpectEquality(t, p.CyclesToInterrupt(), -1)

	// left from left, right from right. interrupt every 2 samples
	p.Write(pwm.Control, 0x0205)
	p.Write(pwm.Cycle, 101)
	test.ExpectSuccess(t, p.Running())
	test.ExpectEquality(t, p.CyclesToInterrupt(), 200)
	test.ExpectEquality(t, p.SampleRate(23000000), 230000)

	p.Write(pwm.Left, 100)
	p.Write(pwm.Right, 0)

	test.ExpectFailure(t, p.Step(150))
	test.ExpectEquality(t, len(m.left), 1)
	test.ExpectEquality(t, m.left[0], 0x7fff)
	test.ExpectEquality(t, m.right[0], -0x7fff)
	test.ExpectEquality(t, p.CyclesToInterrupt(), 50)

	test.ExpectSuccess(t, p.Step(50))
	test.ExpectEquality(t, len(m.left), 2)

	// empty FIFO repeats the last sample
	test.ExpectEquality(t, m.left[1], 0x7fff)
}

func TestWrite8(t *testing.T) {
	p := pwm.NewPWM(logger.Allow)

	p.Write8(pwm.Cycle, 0x01)
	p.Write8(pwm.Cycle+1, 0x23)
	test.ExpectEquality(t, p.Read(pwm.Cycle), 0x0123)

	// high byte of a channel register does not push a sample
	p.Write8(pwm.Left, 0x01)
	test.ExpectEquality(t, p.Read(pwm.Left), pwm.StatusEmpty)
	p.Write8(pwm.Left+1, 0x00)
	test.ExpectEquality(t, p.Read(pwm.Left), 0)
}

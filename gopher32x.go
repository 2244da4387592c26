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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeandeaual/go-locale"
	"github.com/jetsetilly/gopher32x/cartridgeloader"
	"github.com/jetsetilly/gopher32x/digest"
	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/mars"
	"github.com/jetsetilly/gopher32x/hardware/mars/pwm"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher32x/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
	"github.com/jetsetilly/gopher32x/modalflag"
	"github.com/jetsetilly/gopher32x/prefs"
	"github.com/jetsetilly/gopher32x/script"
	"github.com/jetsetilly/gopher32x/statsview"
	"github.com/jetsetilly/gopher32x/version"
	"github.com/jetsetilly/gopher32x/wavwriter"
	"golang.org/x/text/message"
)

// exit values
const (
	exitOK        = 0
	exitParse     = 10
	exitModeError = 20
)

func main() {
	// ctrl-c ends the program immediately. there is nothing to save
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Stdout, os.Args[1:])
	}()

	exitVal := exitOK
	select {
	case <-intChan:
		fmt.Println("\r")
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MAP", "SCRIPT", "MEMVIZ", "VERSION")
	md.AdditionalHelp("use -help after a sub-mode for the flags of that sub-mode")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "MAP":
		err = addressMap(md)

	case "SCRIPT":
		err = runScript(md)

	case "MEMVIZ":
		err = memoryViz(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// flags shared by all modes
type common struct {
	log       *bool
	prefs     *string
	biosPrim  *string
	biosMast  *string
	biosSlave *string
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		log:       md.AddBool("log", false, "echo log to stdout"),
		prefs:     md.AddString("prefs", "", "preferences group for this run. eg. mars.hle::false; mars.pal::true"),
		biosPrim:  md.AddString("bios68k", "", "primary BIOS image"),
		biosMast:  md.AddString("biosm", "", "master SH2 BIOS image"),
		biosSlave: md.AddString("bioss", "", "slave SH2 BIOS image"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// machine is the bus with stub processors attached.
type machine struct {
	cart  *cartridge.Cartridge
	mars  *mars.Mars
	stubs map[processor.ID]*processor.Stub
}

func loadBIOS(filename string) ([]byte, error) {
	if filename == "" {
		return nil, nil
	}
	ld := cartridgeloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return ld.Data, nil
}

func newMachine(md *modalflag.Modes, c common, romFile string) (*machine, error) {
	if *c.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(md.Output)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopher32x", "unused preferences: %s", unused)
			}
		}()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if !cartridgeloader.IsCartridgeFile(romFile) {
		logger.Logf(logger.Allow, "gopher32x", "unrecognised file extension: %s", romFile)
	}

	cart, err := cartridge.NewCartridgeFromLoader(cartridgeloader.NewLoader(romFile))
	if err != nil {
		return nil, err
	}

	var bios mars.BIOS
	if bios.Primary, err = loadBIOS(*c.biosPrim); err != nil {
		return nil, err
	}
	if bios.Master, err = loadBIOS(*c.biosMast); err != nil {
		return nil, err
	}
	if bios.Slave, err = loadBIOS(*c.biosSlave); err != nil {
		return nil, err
	}

	mc := &machine{
		cart: cart,
		stubs: map[processor.ID]*processor.Stub{
			processor.Primary: processor.NewStub(processor.Primary),
			processor.Master:  processor.NewStub(processor.Master),
			processor.Slave:   processor.NewStub(processor.Slave),
		},
	}

	mc.mars, err = mars.NewMars(env, cart,
		mc.stubs[processor.Primary], mc.stubs[processor.Master], mc.stubs[processor.Slave],
		bios)
	if err != nil {
		return nil, err
	}

	return mc, nil
}

// printer for numbers in the user's locale
func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "gopher32x", "locale: %v", err)
	}
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// sample rate of the wav file if the PWM is not running at the end of a script
const defaultSampleRate = 22050

// origin of the system registers in the primary address space
const primaryRegs = 0xa15100

// styles for the address map
var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4))
	styleRange   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
	styleUnmap   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
	styleResolve = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2))
)

func writeSummary(output io.Writer, title string, t *addrspace.Table) {
	fmt.Fprintln(output, styleHeader.Render(fmt.Sprintf(" %s ", title)))
	for _, l := range strings.Split(strings.TrimSpace(addrspace.Summary(t)), "\n") {
		rng, name, _ := strings.Cut(l, "\t")
		if name == "unmapped" {
			fmt.Fprintf(output, "%s  %s\n", styleRange.Render(rng), styleUnmap.Render(name))
		} else {
			fmt.Fprintf(output, "%s  %s\n", styleRange.Render(rng), styleName.Render(name))
		}
	}
}

func addressMap(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	enable := md.AddBool("enable", true, "enable the adapter before printing the map")
	bank := md.AddInt("bank", 0, "cartridge bank to select (only valid if -enable=true)")
	resolve := md.AddAddress("addr", 0, "resolve address in each address space")
	writes := md.AddBool("writes", false, "print the write tables rather than the read tables")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("32X cartridge required for %s mode", md)
	case 1:
		mc, err := newMachine(md, c, md.GetArg(0))
		if err != nil {
			return err
		}

		if *enable {
			mc.mars.Write16(primaryRegs+registers.AdapterCtrl, registers.NRES|registers.ADEN, processor.Primary)
			mc.mars.Write8(primaryRegs+registers.BankSet+1, uint8(*bank), processor.Primary)
		}

		pr := newPrinter()
		pr.Fprintf(md.Output, "%s: %d bytes, %d banks, sha1 %s\n\n", mc.cart.Filename, mc.cart.Size(), mc.cart.NumBanks(0x100000), mc.cart.Hash)

		var resolving bool
		md.Visit(func(flag string) {
			resolving = resolving || flag == "addr"
		})

		for _, id := range []processor.ID{processor.Primary, processor.Master, processor.Slave} {
			v := mc.mars.View(id)
			if *writes {
				writeSummary(md.Output, fmt.Sprintf("%s (write)", id), v.Write16)
			} else {
				writeSummary(md.Output, fmt.Sprintf("%s (read)", id), v.Read16)
			}

			if resolving {
				r := v.Read16.Lookup(*resolve)
				w := v.Write16.Lookup(*resolve)
				s := fmt.Sprintf("$%08x read: %s write: %s", *resolve, r, w)
				if b, ok := v.Peek(*resolve); ok {
					s = fmt.Sprintf("%s value: %02x", s, b)
				}
				fmt.Fprintln(md.Output, styleResolve.Render(s))
			}
			fmt.Fprintln(md.Output)
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// mixers sends PWM samples to more than one mixer
type mixers []pwm.Mixer

func (mx mixers) SetSample(left int16, right int16) error {
	for _, m := range mx {
		if err := m.SetSample(left, right); err != nil {
			return err
		}
	}
	return nil
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	wav := md.AddString("wav", "", "record PWM output to wav file")
	rate := md.AddInt("rate", 0, "sample rate of wav file. zero to use the rate of the PWM at the end of the script")
	digests := md.AddBool("digest", false, "print digests of the PWM output and of the bus state at the end of the script")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("32X cartridge and script file required for %s mode", md)
	case 2:
		mc, err := newMachine(md, c, md.GetArg(0))
		if err != nil {
			return err
		}

		audio := digest.NewAudio()
		mix := mixers{audio}

		var aw *wavwriter.WavWriter
		if *wav != "" {
			// the rate is replaced at the end of the script if necessary
			aw, err = wavwriter.New(*wav, max(*rate, 1))
			if err != nil {
				return err
			}
			mix = append(mix, aw)
		}
		mc.mars.AttachMixer(mix)

		src, err := os.ReadFile(md.GetArg(1))
		if err != nil {
			return err
		}

		err = script.Run(md.GetArg(1), src, mc.mars, mc.stubs, md.Output)
		if err != nil {
			return err
		}

		mc.mars.AttachMixer(nil)

		if aw != nil {
			if *rate <= 0 {
				r := mc.mars.PWMSampleRate()
				if r == 0 {
					r = defaultSampleRate
				}
				if err := aw.SetSampleRate(r); err != nil {
					return err
				}
			}
			if err := aw.EndMixing(); err != nil {
				return err
			}
		}

		if *digests {
			st, err := digest.State(mc.mars)
			if err != nil {
				return err
			}
			fmt.Fprintf(md.Output, "pwm: %s\n", audio)
			fmt.Fprintf(md.Output, "state: %s\n", st)
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func memoryViz(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	out := md.AddString("out", "mars.dot", "graphviz output file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var mc *machine

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("32X cartridge required for %s mode", md)
	case 1, 2:
		mc, err = newMachine(md, c, md.GetArg(0))
		if err != nil {
			return err
		}

		// optional script to put the bus into an interesting state
		if len(md.RemainingArgs()) == 2 {
			src, err := os.ReadFile(md.GetArg(1))
			if err != nil {
				return err
			}
			err = script.Run(md.GetArg(1), src, mc.mars, mc.stubs, md.Output)
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	st := mc.mars.Snapshot()
	memviz.Map(f, &st.Regs, &st.Poll, &st.DMAC, st.PWM)

	fmt.Fprintf(md.Output, "register bank written to %s\n", *out)

	return nil
}

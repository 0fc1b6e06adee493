// This file is part of libchip8.
//
// libchip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// libchip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with libchip8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kamchy/libchip8/disassembly"
	"github.com/kamchy/libchip8/logger"
	"github.com/kamchy/libchip8/modalflag"
	"github.com/kamchy/libchip8/performance"
	"github.com/kamchy/libchip8/playmode"
	"github.com/kamchy/libchip8/prefs"
	"github.com/kamchy/libchip8/romloader"
	"github.com/kamchy/libchip8/statsview"
	"github.com/kamchy/libchip8/version"
)

// the SDL and ebiten front ends must run on the program's main thread. every
// mode is called synchronously from main() so the requirement holds without
// any further ceremony.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "TERM", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "TERM":
		err = playTerm(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// setLogEcho attends to the -log flag common to several modes.
func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}
}

// launchStatsview attends to the -statsview flag common to several modes.
func launchStatsview(md *modalflag.Modes) {
	if statsview.Available() {
		statsview.Launch(md.Output)
	} else {
		fmt.Fprintln(md.Output, "! statsview not compiled into this binary. rebuild with the statsview build tag")
	}
}

// pushPrefOverrides attends to the -pref flag common to several modes. The
// returned function pops the overrides and reports any that went unused,
// which is what a mistyped preference key looks like.
func pushPrefOverrides(md *modalflag.Modes, overrides string) func() {
	if overrides == "" {
		return func() {}
	}

	prefs.PushCommandLineStack(overrides)

	return func() {
		if s := prefs.PopCommandLineStack(); s != "" {
			fmt.Fprintf(md.Output, "! unused preference overrides: %s\n", s)
		}
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	frontend := md.AddString("gui", "SDL", "front end to use: SDL, EBITEN, TERM")
	scaling := md.AddFloat64("scale", 0.0, "window scaling (SDL and EBITEN front ends)")
	override := md.AddString("pref", "", "preference overrides (key :: value; key :: value)")
	stats := md.AddBool("statsview", false, "run the statsview server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fe := strings.ToLower(*frontend)

	// echoing the log to stdout would garble the terminal front end's own
	// output. the log is still collected and can be inspected afterwards
	setLogEcho(*log && fe != playmode.FrontEndTerm)

	if *stats {
		launchStatsview(md)
	}

	popOverrides := pushPrefOverrides(md, *override)
	defer popOverrides()

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		err := playmode.Play(cartload, fe, *scaling)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// playTerm is shorthand for the terminal front end. "term smile.ch8" is the
// same as "play -gui term smile.ch8".
func playTerm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log is collected but never echoed. see the play mode comment
	setLogEcho(false)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		err := playmode.Play(cartload, playmode.FrontEndTerm, 0.0)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromLoader(cartload)
		if err != nil {
			return err
		}

		err = dsm.Write(md.Output)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "profiles to make: comma separated list of cpu, mem, trace. or all or none")
	withDigest := md.AddBool("digest", false, "print a digest of the final display state")
	override := md.AddString("pref", "", "preference overrides (key :: value; key :: value)")
	stats := md.AddBool("statsview", false, "run the statsview server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if *stats {
		launchStatsview(md)
	}

	popOverrides := pushPrefOverrides(md, *override)
	defer popOverrides()

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		cartload := romloader.NewLoader(md.GetArg(0))

		err := performance.Check(md.Output, prof, cartload, *duration, *withDigest)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	vers, rev, release := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, vers)
	if *revision || !release {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}

package cli

import (
	"os"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
)

// startProfile wires --profile, ported from optitree/main.go's
// profile.Start(...).Stop() switch, plus an additional "wall" mode
// using fgprof for combined on-CPU/off-CPU sampling (promoted from an
// indirect dependency of the teacher's optitree module to direct use
// here). The returned func must be deferred by the caller; it is a
// no-op when mode is "".
func startProfile(mode string) func() {
	const profilePath = "."
	switch mode {
	case "cpu":
		p := profile.Start(profile.ProfilePath(profilePath), profile.CPUProfile)
		return p.Stop
	case "mem":
		p := profile.Start(profile.ProfilePath(profilePath), profile.MemProfile)
		return p.Stop
	case "mutex":
		p := profile.Start(profile.ProfilePath(profilePath), profile.MutexProfile)
		return p.Stop
	case "block":
		p := profile.Start(profile.ProfilePath(profilePath), profile.BlockProfile)
		return p.Stop
	case "trace":
		p := profile.Start(profile.ProfilePath(profilePath), profile.TraceProfile)
		return p.Stop
	case "wall":
		f, err := os.Create("fgprof.pprof")
		if err != nil {
			return func() {}
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		return func() {
			_ = stop()
			_ = f.Close()
		}
	default:
		return func() {}
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// profiler wraps a running pkg/profile session, if one was requested.
type profiler struct {
	session interface{ Stop() }
}

// start begins profiling in mode (cpu, mem or block), writing to dir. An
// empty mode is a no-op.
func (p *profiler) start(mode, dir string) error {
	var m func(*profile.Profile)
	switch strings.ToLower(mode) {
	case "":
		return nil
	case "cpu":
		m = profile.CPUProfile
	case "mem":
		m = profile.MemProfile
	case "block":
		m = profile.BlockProfile
	default:
		return fmt.Errorf("unknown profile mode %q, expected one of cpu|mem|block", mode)
	}

	if dir == "" {
		dir = "."
	}
	p.session = profile.Start(m, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
	return nil
}

// stop flushes the profile to disk.
func (p *profiler) stop() {
	if p.session != nil {
		p.session.Stop()
		p.session = nil
	}
}

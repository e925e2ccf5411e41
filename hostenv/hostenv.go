// Package hostenv classifies which supported host application, if any, the
// current process is embedded in. Detection is best effort: every probe
// failure downgrades to "host not present" and is never surfaced to callers.
package hostenv

import (
	"os"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// Kind identifies a supported host application.
type Kind int

const (
	// None means no supported host was detected.
	None Kind = iota
	// Maya is the Autodesk Maya host.
	Maya
	// Nuke is the Foundry Nuke host.
	Nuke
)

// String returns the lowercase host name.
func (k Kind) String() string {
	switch k {
	case Maya:
		return "maya"
	case Nuke:
		return "nuke"
	default:
		return "none"
	}
}

// Probe checks for the presence of a single host. Check must not panic and
// must treat internal errors as "not present".
type Probe struct {
	Kind  Kind
	Check func() bool
}

// maxAncestorDepth bounds the parent-process walk. Hosts launch embedded
// interpreters at most a few levels deep.
const maxAncestorDepth = 5

// DefaultProbes returns the built-in probes in priority order: Maya first,
// then Nuke.
func DefaultProbes() []Probe {
	return []Probe{
		{Kind: Maya, Check: mayaPresent},
		{Kind: Nuke, Check: nukePresent},
	}
}

// Detect runs the default probes in order and returns the first host whose
// probe succeeds, or None.
func Detect() Kind {
	return DetectWith(DefaultProbes())
}

// DetectWith runs the given probes in order and returns the first host whose
// probe succeeds, or None. A nil or panicking Check counts as "not present".
func DetectWith(probes []Probe) Kind {
	for _, p := range probes {
		if p.Check == nil {
			continue
		}
		if safeCheck(p.Check) {
			return p.Kind
		}
	}
	return None
}

var (
	cacheOnce sync.Once
	cached    Kind
)

// Cached returns the detected host, running the default probes at most once
// per process. The host does not change during a process's lifetime.
// Safe for concurrent use.
func Cached() Kind {
	cacheOnce.Do(func() {
		cached = Detect()
	})
	return cached
}

func safeCheck(check func() bool) (present bool) {
	defer func() {
		if r := recover(); r != nil {
			present = false
		}
	}()
	return check()
}

func mayaPresent() bool {
	return envAny("MAYA_LOCATION", "MAYA_APP_DIR") || ancestorNamed("maya")
}

func nukePresent() bool {
	return envAny("NUKE_PATH", "NUKE_TEMP_DIR") || ancestorNamed("nuke")
}

func envAny(keys ...string) bool {
	for _, key := range keys {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ancestorNamed walks up the parent-process chain looking for an executable
// whose name contains the given fragment. Any inspection error ends the walk.
func ancestorNamed(fragment string) bool {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return false
	}
	for depth := 0; depth < maxAncestorDepth; depth++ {
		parent, err := proc.Parent()
		if err != nil || parent == nil {
			return false
		}
		name, err := parent.Name()
		if err == nil && strings.Contains(strings.ToLower(name), fragment) {
			return true
		}
		proc = parent
	}
	return false
}

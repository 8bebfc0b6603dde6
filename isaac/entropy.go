package isaac

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Default entropy devices and read sizes.
const (
	DefaultStrongDevice = "/dev/urandom"
	DefaultStrongBytes  = 32
	DefaultWeakDevice   = "/dev/random"
	DefaultWeakBytes    = 16
)

// EntropySource contributes seed material to a generator being seeded.
// Sources must not fail; one with nothing to offer writes nothing. Write
// errors from w are ignored: *State never returns one, and a writer that
// drops seed material only weakens the seed.
type EntropySource interface {
	Contribute(w io.Writer)
}

// EntropyFunc adapts a function to EntropySource.
type EntropyFunc func(w io.Writer)

func (f EntropyFunc) Contribute(w io.Writer) { f(w) }

// Seed runs the whole seeding protocol on s, feeding each source in order.
// With no sources s becomes the reference zero-seed generator.
func Seed(s *State, sources ...EntropySource) {
	s.SeedStart()
	for _, src := range sources {
		src.Contribute(s)
	}
	s.SeedFinish()
}

// SeedBytes contributes p verbatim. Seeding only from SeedBytes gives the
// same sequence on every platform.
func SeedBytes(p []byte) EntropySource {
	return EntropyFunc(func(w io.Writer) {
		_, _ = w.Write(p)
	})
}

// ProcessIdentity contributes the process id, parent process id, effective
// user id and effective group id, each as a native-order int32.
func ProcessIdentity() EntropySource {
	return EntropyFunc(func(w io.Writer) {
		for _, id := range []int{os.Getpid(), os.Getppid(), os.Geteuid(), os.Getegid()} {
			_ = binary.Write(w, binary.NativeEndian, int32(id))
		}
	})
}

// Timestamp contributes the clock's current time in nanoseconds as a
// native-order int64.
func Timestamp(clock quartz.Clock) EntropySource {
	return EntropyFunc(func(w io.Writer) {
		_ = binary.Write(w, binary.NativeEndian, clock.Now().UnixNano())
	})
}

// EntropyConfig selects the devices SystemEntropy reads from. The zero value
// of any field means its default.
type EntropyConfig struct {
	StrongDevice string
	StrongBytes  int
	WeakDevice   string
	WeakBytes    int

	Clock quartz.Clock
	// Logger receives fallback notices. Nil keeps seeding silent.
	Logger *log.Logger
}

func (c *EntropyConfig) withDefaults() EntropyConfig {
	var out EntropyConfig
	if c != nil {
		out = *c
	}
	if out.StrongDevice == "" {
		out.StrongDevice = DefaultStrongDevice
	}
	if out.StrongBytes <= 0 {
		out.StrongBytes = DefaultStrongBytes
	}
	if out.WeakDevice == "" {
		out.WeakDevice = DefaultWeakDevice
	}
	if out.WeakBytes <= 0 {
		out.WeakBytes = DefaultWeakBytes
	}
	if out.Clock == nil {
		out.Clock = quartz.NewReal()
	}
	return out
}

// SystemEntropy returns the recommended sources in order: process identity,
// timestamp, then device bytes. cfg may be nil.
func SystemEntropy(cfg *EntropyConfig) []EntropySource {
	c := cfg.withDefaults()
	return []EntropySource{
		ProcessIdentity(),
		Timestamp(c.Clock),
		DeviceEntropy(&c),
	}
}

// DeviceEntropy reads up to StrongBytes from the strong device or, if that
// fails, up to WeakBytes from the weak device opened non-blocking. When both
// fail it contributes nothing; seeding carries on with weaker material.
func DeviceEntropy(cfg *EntropyConfig) EntropySource {
	c := cfg.withDefaults()
	return EntropyFunc(func(w io.Writer) {
		buf, err := readDevice(c.StrongDevice, strongOpenFlags, c.StrongBytes)
		if err == nil {
			_, _ = w.Write(buf)
			return
		}
		if c.Logger != nil {
			c.Logger.Debug("strong entropy device unavailable", "device", c.StrongDevice, "err", err)
		}

		buf, err = readDevice(c.WeakDevice, weakOpenFlags, c.WeakBytes)
		if err == nil {
			_, _ = w.Write(buf)
			return
		}
		if c.Logger != nil {
			c.Logger.Warn("no entropy device available, seeding from process identity and time only",
				"strong", c.StrongDevice, "weak", c.WeakDevice, "err", err)
		}
	})
}

var errNoEntropy = errors.New("device returned no bytes")

func readDevice(path string, flags int, n int) ([]byte, error) {
	f, err := os.OpenFile(path, flags, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	got, err := f.Read(buf)
	if got > 0 {
		return buf[:got], nil
	}
	if err == nil {
		err = errNoEntropy
	}
	return nil, err
}

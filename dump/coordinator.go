package dump

import (
	"bytes"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Ranamom/cpuid-dump/affinity"
	"github.com/Ranamom/cpuid-dump/cpuid"
)

// Options is the resolved run configuration.
type Options struct {
	Style Style
	// All samples every logical processor instead of only the current one.
	All bool
	// SkipZero drops entries whose four registers are all zero.
	SkipZero bool
	// Diff reduces non-first processors to their diff against the first.
	Diff bool
	// Only restricts the run to a single query.
	Only *cpuid.Query
}

var (
	threadsFunc = affinity.Threads
	sweepThread = pinnedSweep
)

// pinnedSweep locks the goroutine to an OS thread, binds that thread to
// the given logical processor and runs the sweep there. There is no
// unbind: the thread is reclaimed when the goroutine ends. A binding
// failure is fatal since sampling an arbitrary processor would silently
// produce meaningless data.
func pinnedSweep(cpu int, plan []cpuid.Query, skipZero bool) (Sample, error) {
	runtime.LockOSThread()
	if err := affinity.Pin(cpu); err != nil {
		return nil, fmt.Errorf("bind to processor %d: %w", cpu, err)
	}
	return Sweep(plan, skipZero), nil
}

// Run executes the configured dump and returns the assembled byte buffer.
func Run(opts Options) ([]byte, error) {
	rend := newRenderer(opts.Style, cpuid.IdentifyVendor())

	if opts.Only != nil {
		r := probeFunc(opts.Only.Leaf, opts.Only.Sub)
		var buf bytes.Buffer
		buf.WriteString(rend.ThreadHead(0, false))
		buf.WriteString(rend.Head())
		buf.WriteString(rend.Entry(r))
		return buf.Bytes(), nil
	}

	plan := BuildPlan(DiscoverRanges())

	if !opts.All {
		return runCurrent(rend, plan, opts), nil
	}

	cpus, err := threadsFunc()
	if err != nil || len(cpus) == 0 {
		slog.Warn("cannot enumerate logical processors, falling back to the current one",
			"error", err)
		return runCurrent(rend, plan, opts), nil
	}
	sort.Ints(cpus)

	// The first processor runs before anything is shared: its sample
	// becomes the read-only baseline every other task diffs against. A
	// dedicated task confines the thread binding.
	var (
		base     Sample
		baseHead string
	)
	var first errgroup.Group
	first.Go(func() error {
		s, err := sweepThread(cpus[0], plan, opts.SkipZero)
		if err != nil {
			return err
		}
		base = s
		baseHead = rend.ThreadHead(cpus[0], true)
		return nil
	})
	if err := first.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if est := len(plan) * rend.EntryWidth() * len(cpus); opts.Diff {
		buf.Grow(est / 2)
	} else {
		buf.Grow(est * 2)
	}
	buf.WriteString(baseHead)
	buf.WriteString(rend.Head())
	writeSample(&buf, rend, base)

	// One task per remaining processor. Blocks land in their slot so the
	// output stays in ascending processor order regardless of completion
	// order.
	blocks := make([][]byte, len(cpus))
	var g errgroup.Group
	for i := 1; i < len(cpus); i++ {
		i := i
		g.Go(func() error {
			cpu := cpus[i]
			s, err := sweepThread(cpu, plan, opts.SkipZero)
			if err != nil {
				return err
			}
			if opts.Diff {
				s = s.Diff(base)
			}

			var bb bytes.Buffer
			bb.Grow(len(s)*rend.EntryWidth() + 64)
			bb.WriteString(rend.ThreadHead(cpu, true))
			writeSample(&bb, rend, s)
			blocks[i] = bb.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, b := range blocks[1:] {
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// runCurrent samples whichever processor the caller is running on, without
// binding.
func runCurrent(rend renderer, plan []cpuid.Query, opts Options) []byte {
	s := Sweep(plan, opts.SkipZero)

	var buf bytes.Buffer
	buf.Grow(len(plan) * rend.EntryWidth())
	buf.WriteString(rend.ThreadHead(0, false))
	buf.WriteString(rend.Head())
	writeSample(&buf, rend, s)
	return buf.Bytes()
}

func writeSample(buf *bytes.Buffer, rend renderer, s Sample) {
	for _, r := range s {
		buf.WriteString(rend.Entry(r))
	}
}

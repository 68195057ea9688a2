//go:build linux

package affinity

import (
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestThreads(t *testing.T) {
	cpus, err := Threads()
	require.NoError(t, err)
	require.NotEmpty(t, cpus)
	require.True(t, sort.IntsAreSorted(cpus))
}

func TestPin(t *testing.T) {
	cpus, err := Threads()
	require.NoError(t, err)
	require.NotEmpty(t, cpus)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	require.NoError(t, Pin(cpus[0]))

	// The set reported afterwards collapses to the pinned processor.
	now, err := Threads()
	require.NoError(t, err)
	require.Equal(t, []int{cpus[0]}, now)

	// Restore the original mask for the remaining tests on this thread.
	var set unix.CPUSet
	set.Zero()
	for _, cpu := range cpus {
		set.Set(cpu)
	}
	require.NoError(t, unix.SchedSetaffinity(0, &set))
}

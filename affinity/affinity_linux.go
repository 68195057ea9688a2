//go:build linux

package affinity

import "golang.org/x/sys/unix"

// Threads lists, in ascending order, the logical processors the process is
// allowed to run on.
func Threads() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}

	cpus := make([]int, 0, set.Count())
	for i := 0; i < len(set)*64; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}

// Pin binds the calling thread to one logical processor. The caller must
// hold runtime.LockOSThread so the binding stays with its goroutine.
func Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}

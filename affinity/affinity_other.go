//go:build !linux

package affinity

func Threads() ([]int, error) {
	return nil, ErrUnsupported
}

func Pin(cpu int) error {
	return ErrUnsupported
}

package format

import "fmt"

const (
	Byte     = 1
	KibiByte = Byte * 1024
	MebiByte = KibiByte * 1024
	GibiByte = MebiByte * 1024
)

// CacheSize renders a cache capacity with the largest binary unit that
// keeps the value integral, right-aligned the way the dump column expects.
func CacheSize(b uint64) string {
	switch {
	case b >= GibiByte && b%GibiByte == 0:
		return fmt.Sprintf("%4d-GiB", b/GibiByte)
	case b >= MebiByte && b%MebiByte == 0:
		return fmt.Sprintf("%4d-MiB", b/MebiByte)
	case b >= KibiByte:
		return fmt.Sprintf("%4d-KiB", b/KibiByte)
	default:
		return fmt.Sprintf("%4d-B", b)
	}
}

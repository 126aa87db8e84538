package stats

import "fmt"

// FormatSize renders a nonnegative bits-per-second value as a short
// human-readable string, base 1024, capped at the Mib/s tier.
func FormatSize(bitsPerSecond float64) string {
	if bitsPerSecond < 1024 {
		return fmt.Sprintf("%.2f Bit/s", bitsPerSecond)
	}
	kib := bitsPerSecond / 1024
	if kib < 1024 {
		return fmt.Sprintf("%.2f Kib/s", kib)
	}
	mib := kib / 1024
	return fmt.Sprintf("%.2f Mib/s", mib)
}

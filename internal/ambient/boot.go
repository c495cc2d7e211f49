package ambient

import "time"

// DefaultBootDuration is how long the boot screen stays up.
const DefaultBootDuration = 5 * time.Second

var bootLog = []string{
	"[ OK ] Initializing mar.iOS kernel",
	"[ OK ] Mounting /home/marios",
	"[ OK ] Starting matrix renderer",
	"[ OK ] Loading portfolio modules",
	"[ OK ] Establishing secure channels",
	"[ OK ] Starting window manager",
	"[ OK ] Welcome, operator",
}

// BootLog returns the boot lines visible after elapsed of a boot lasting
// total, and the overall progress in [0,1].
func BootLog(elapsed, total time.Duration) ([]string, float64) {
	if total <= 0 || elapsed >= total {
		return append([]string(nil), bootLog...), 1
	}
	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(total)
	shown := int(progress*float64(len(bootLog))) + 1
	if shown > len(bootLog) {
		shown = len(bootLog)
	}
	return append([]string(nil), bootLog[:shown]...), progress
}

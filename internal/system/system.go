package system

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit (macOS/Linux). GDAL keeps
// sidecar and overview handles open while datasets are loaded.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not read the open-file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not raise the open-file limit: %v", err)
	}
}

// ReportMemory prints how much host memory is available before the
// raster-heavy stage starts.
func ReportMemory() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	fmt.Printf("[*] Host memory: %.1f GiB total, %.1f GiB available\n",
		float64(vm.Total)/(1<<30), float64(vm.Available)/(1<<30))
}

// EnsureDirs creates the given directories if they are missing.
func EnsureDirs(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

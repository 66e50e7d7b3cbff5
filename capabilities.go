package syllabus

import (
	"os"
	"os/exec"
)

// Capabilities reports which PDF conversion backends are usable on this
// machine. The direct renderer needs no external software and is always
// available.
type Capabilities struct {
	SOfficePath string
	SOffice     bool
	ChromePath  string
	Chrome      bool
	Direct      bool
}

// chromeCandidates are browser executables probed on PATH when
// ROD_BROWSER_BIN is not set.
var chromeCandidates = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome",
}

// ProbeCapabilities inspects the local machine for conversion backends.
func ProbeCapabilities() Capabilities {
	caps := Capabilities{Direct: true}

	if path, err := FindSOffice(); err == nil {
		caps.SOffice = true
		caps.SOfficePath = path
	}

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		caps.Chrome = true
		caps.ChromePath = bin
	} else {
		for _, name := range chromeCandidates {
			if path, err := exec.LookPath(name); err == nil {
				caps.Chrome = true
				caps.ChromePath = path
				break
			}
		}
	}
	return caps
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	syllabus "github.com/avolette/go-syllabus"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status      string      `json:"status"` // "ready", "warnings", "errors"
	LibreOffice backendInfo `json:"libreoffice"`
	Chrome      backendInfo `json:"chrome"`
	Env         envInfo     `json:"environment"`
	System      systemInfo  `json:"system"`
	Warnings    []string    `json:"warnings,omitempty"`
}

// backendInfo describes one external PDF conversion backend.
type backendInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// The direct renderer always works, so missing backends are warnings,
// not errors; only an unusable system yields exit 1.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	caps := syllabus.ProbeCapabilities()

	result := &doctorResult{
		Status: "ready",
		LibreOffice: backendInfo{
			Found: caps.SOffice,
			Path:  caps.SOfficePath,
		},
		Chrome: backendInfo{
			Found: caps.Chrome,
			Path:  caps.ChromePath,
		},
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if !caps.SOffice {
		result.Warnings = append(result.Warnings,
			"LibreOffice not found. PDF output will not match the DOCX layout exactly.")
	}
	if !caps.Chrome {
		result.Warnings = append(result.Warnings,
			"Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN.")
	}
	if caps.Chrome && result.Env.CI && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1.")
	}

	checkSystem(result)

	if !result.System.TempWritable {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkSystem verifies the temp directory is writable; every conversion
// path stages intermediate files there.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "syllabus-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "syllabus doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LibreOffice")
	if r.LibreOffice.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.LibreOffice.Path)
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings (built-in PDF renderer available)")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// Package cli holds the operations behind the astgen command: decoding tree
// documents, printing and checking them, and watching them for changes.
// The cobra commands in cmd/astgen are thin wrappers around it.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
)

// Version information for astgen. CommitSHA is set with -ldflags at build
// time.
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-19"
)

var CommitSHA = "unknown"

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// WriteVersion writes version information for tool to w, as indented JSON
// when jsonOutput is set.
func WriteVersion(w io.Writer, tool string, jsonOutput bool) error {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         tool,
			"version_info": info,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "%s v%s\n", tool, info.Version)
	fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Fprintf(w, "Commit: %s\n", info.CommitSHA)
	}
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	_, err := fmt.Fprintf(w, "Platform: %s/%s\n", info.Platform, info.Arch)
	return err
}

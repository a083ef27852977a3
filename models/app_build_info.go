// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries build-time metadata injected by linker flags and shown
// in the TUI build info window.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit injected with -ldflags.
// It is immutable once built.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims its arguments; blank values read back as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(buildVersion),
		date:    strings.TrimSpace(buildDate),
		commit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.version != "" && a.version != notAvailable
}

// String formats the build as "version (commit, date)".
func (a AppBuildInfo) String() string {
	return a.BuildVersion() + " (" + a.BuildCommit() + ", " + a.BuildDate() + ")"
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

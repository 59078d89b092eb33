package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_PrefersLdflags(t *testing.T) {
	orig := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = orig[0], orig[1], orig[2] })
	Version, Commit, Date = "1.4.0", "abc123", "2026-01-02"

	assert.Equal(t, BuildInfo{
		Version:   "1.4.0",
		Commit:    "abc123",
		Date:      "2026-01-02",
		GoVersion: runtime.Version(),
	}, Info())
}

func TestInfo_Defaults(t *testing.T) {
	info := Info()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

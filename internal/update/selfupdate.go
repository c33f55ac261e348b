package update

import (
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const releaseRepo = "rulegaze/rulegaze"

// SelfUpdate replaces the running binary with the latest GitHub release.
func SelfUpdate(version string) error {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// The selfupdate API still takes the v3 semver type.
	_, err = selfupdate.UpdateSelf(semver3.MustParse(ver.String()), releaseRepo)
	return err
}

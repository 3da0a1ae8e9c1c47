package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// EngineVersion is this demo harness's fixture schema version. The
// teacher gates feature compatibility with Masterminds/semver/v3; here
// it gates the on-disk hjson fixture schema instead of a feature flag.
const EngineVersion = "1.0.0"

// fixtureConstraint accepts any fixture declaring the same major
// version as EngineVersion.
var fixtureConstraint = semver.MustParse(EngineVersion)

// checkFixtureVersion verifies a loaded fixture's declared
// engineVersion is compatible with this build, per SPEC_FULL.md's
// domain-stack wiring for Masterminds/semver/v3.
func checkFixtureVersion(declared string) error {
	if declared == "" {
		return nil // fixtures may omit it; treated as "matches"
	}
	v, err := semver.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("fixture engineVersion %q: %w", declared, err)
	}
	constraint, err := semver.NewConstraint(fmt.Sprintf("^%d.0.0", fixtureConstraint.Major()))
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("fixture engineVersion %s is not compatible with demo engine %s", v, EngineVersion)
	}
	return nil
}

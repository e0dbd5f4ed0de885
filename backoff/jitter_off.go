//go:build lfkit_nojitter

// File: backoff/jitter_off.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Built with -tags lfkit_nojitter: no random source is linked into NewRandom.

package backoff

import "github.com/momentics/lfkit/internal/fastrand"

// JitterEnabled reports whether NewRandom jitters spin counts.
const JitterEnabled = false

func defaultJitter() fastrand.Source {
	return nil
}

package sync

import "time"

// summaryDurationPrecision rounds the run duration shown in the
// summary footer.
const summaryDurationPrecision = 100 * time.Millisecond

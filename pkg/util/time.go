package util

import "time"

// TimeFromUnix converts Unix seconds into time.Time
func TimeFromUnix(ts int64) time.Time {
	return time.Unix(ts, 0)
}

package sysvar

import "time"

// Clock reports the current unix time in seconds.
type Clock interface {
	UnixTimestamp() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) UnixTimestamp() int64 {
	return time.Now().Unix()
}

// FixedClock always reports the same instant.
type FixedClock int64

func (c FixedClock) UnixTimestamp() int64 {
	return int64(c)
}

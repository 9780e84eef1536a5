package services

import "time"

// Clock returns the current time. Services default to time.Now; tests pin it.
type Clock func() time.Time

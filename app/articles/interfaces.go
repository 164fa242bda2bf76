package articles

import "time"

// Recorder receives pipeline events for metrics
type Recorder interface {
	ManifestLoaded(ok bool)
	ArticleFetched(ok bool)
	PassCompleted(duration time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ManifestLoaded(bool)                {}
func (nopRecorder) ArticleFetched(bool)                {}
func (nopRecorder) PassCompleted(time.Duration, error) {}

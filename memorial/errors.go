package memorial

import (
	"errors"
	"fmt"
)

// ErrStartupDependencyMissing means a collaborator needed to start (the dataset or the
// map surface) is not available. Nothing else initialises after it.
var ErrStartupDependencyMissing = errors.New("startup dependency missing")

// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor CSV.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrStartupDependencyMissing, what)
}

// ImageLoadError reports an image reference that failed to resolve at display time.
// It is recovered by hiding the image and never stops anything else.
type ImageLoadError struct {
	Ref string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("image %q: %v", e.Ref, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

package game

import "errors"

// ErrAssetLoad marks an external asset that failed to load. The instance
// that wanted it keeps running without it; there is no retry.
var ErrAssetLoad = errors.New("asset load failed")

package domain

import "errors"

// ErrGeneration marks script-stage failures. They have no degrade path and
// terminate the job.
var ErrGeneration = errors.New("script generation failed")

// ErrEncodeEmpty marks an encode stage that produced no playable output,
// either because every scene was dropped or because the encoder itself failed.
var ErrEncodeEmpty = errors.New("no playable segments produced")

// ErrNotFound is returned for status or download queries against an unknown
// id, or a download that is not ready yet.
var ErrNotFound = errors.New("generation not found")

// ErrUnknownStyle rejects submissions naming a style the catalog does not
// carry.
var ErrUnknownStyle = errors.New("unknown style")

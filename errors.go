package iconsheet

import "github.com/pkg/errors"

// Errors returned while validating a manifest or encoding its icons. They are
// wrapped with the offending entry so use errors.Is to test for them.
var (
	ErrMissingSheet   = errors.New("missing sprite sheet image")
	ErrNoIcons        = errors.New("manifest has no icons")
	ErrMissingName    = errors.New("icon entry missing name")
	ErrInvalidName    = errors.New("icon name must be a valid C identifier (letters/digits/underscore, not starting with digit)")
	ErrDuplicateName  = errors.New("duplicate icon name")
	ErrCropSize       = errors.New("failed to crop tile")
	ErrUnknownFormat  = errors.New("unknown manifest format")
	errBadTileSize    = errors.New("tile size must be positive")
	errBadSpacing     = errors.New("spacing must not be negative")
	errBadThreshold   = errors.New("threshold must be between 0 and 255")
	errBadCoordinates = errors.New("icon position must not be negative")
)

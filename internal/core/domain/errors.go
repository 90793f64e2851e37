package domain

import "errors"

var ErrUnknownKind = errors.New("unknown entity kind")
var ErrDepthTooLarge = errors.New("depth budget exceeds configured maximum")

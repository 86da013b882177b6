package eventstream

import "errors"

// ErrNilTranslationEvent indicates a nil translation event payload was provided to a publisher.
var ErrNilTranslationEvent = errors.New("nil translation event")

package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnknownAnchor   = fmt.Errorf("%w: unknown anchor", ErrParse)
	ErrDuplicateKey    = fmt.Errorf("%w: duplicate mapping key", ErrParse)
	ErrCoreTag         = fmt.Errorf("%w: value does not fit its tag", ErrParse)
	ErrMultipleDocs    = fmt.Errorf("%w: expected a single document", ErrParse)
	ErrUnsupportedYAML = fmt.Errorf("%w: unsupported node", ErrParse)
)

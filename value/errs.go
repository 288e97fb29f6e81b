package value

import (
	"errors"
	"fmt"
)

var (
	ErrMerge = errors.New("merge error")
	ErrPath  = errors.New("path error")

	ErrScalarInMerge          = fmt.Errorf("%w: expected a mapping or list of mappings for merging, but found scalar", ErrMerge)
	ErrTaggedInMerge          = fmt.Errorf("%w: unexpected tagged value in merge", ErrMerge)
	ErrScalarInMergeElement   = fmt.Errorf("%w: expected a mapping for merging, but found scalar", ErrMerge)
	ErrSequenceInMergeElement = fmt.Errorf("%w: expected a mapping for merging, but found sequence", ErrMerge)
)

package slots

import "github.com/pkg/errors"

var errEpochStartOverflow = errors.New("start slot calculation overflows")

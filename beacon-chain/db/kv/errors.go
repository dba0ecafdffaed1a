package kv

import "github.com/pkg/errors"

// ErrNotFound can be used directly, or as a wrapped DBError, whenever a db method needs to
// indicate that a value couldn't be found.
var ErrNotFound = errors.New("not found in db")

var errEmptyBlockRoot = errors.New("empty block root")

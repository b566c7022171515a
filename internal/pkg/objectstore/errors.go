package objectstore

import "errors"

var ErrDisabled = errors.New("object storage is not configured")

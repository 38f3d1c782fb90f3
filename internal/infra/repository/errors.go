package repository

import "errors"

var ErrInvalidMarkData = errors.New("invalid dedup mark data")

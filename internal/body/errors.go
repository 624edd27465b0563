package body

import "errors"

var ErrInvalidBody = errors.New("body: invalid body")

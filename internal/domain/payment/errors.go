package payment

import "errors"

var ErrNothingToSettle = errors.New("no balance to settle")

package commission

import "errors"

var ErrRuleNotFound = errors.New("commission rule not found")

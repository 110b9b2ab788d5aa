package timer

import "errors"

var errClosed = errors.New("таймер закрыт")

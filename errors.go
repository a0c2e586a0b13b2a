package pinin

import "errors"

// ErrUnknownKeyboard is returned by Configure when the "keyboard" option
// names a layout this module does not recognise.
var ErrUnknownKeyboard = errors.New("pinin: unknown keyboard layout")

// ErrUnknownOption is returned by Configure when a config map key is not
// one of the options documented for Context configuration.
var ErrUnknownOption = errors.New("pinin: unknown configuration option")

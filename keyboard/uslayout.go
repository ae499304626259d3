package keyboard

// usDescriptors is the built-in en-US layout, used whenever no layout file
// is configured or the configured one fails to load.
var usDescriptors = []Descriptor{
	{KeyC1, 'a', 'A', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB5, 'b', 'B', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB3, 'c', 'C', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC3, 'd', 'D', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD3, 'e', 'E', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC4, 'f', 'F', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC5, 'g', 'G', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC6, 'h', 'H', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD8, 'i', 'I', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC7, 'j', 'J', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC8, 'k', 'K', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC9, 'l', 'L', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB7, 'm', 'M', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB6, 'n', 'N', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD9, 'o', 'O', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD10, 'p', 'P', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD1, 'q', 'Q', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD4, 'r', 'R', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyC2, 's', 'S', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD5, 't', 'T', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD7, 'u', 'U', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB4, 'v', 'V', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD2, 'w', 'W', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB2, 'x', 'X', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyD6, 'y', 'Y', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyB1, 'z', 'Z', 0, 0, ModNone, AffectedByShift | AffectedByCapsLock},
	{KeyE1, '1', '!', 0, 0, ModNone, AffectedByShift},
	{KeyE2, '2', '@', 0, 0, ModNone, AffectedByShift},
	{KeyE3, '3', '#', 0, 0, ModNone, AffectedByShift},
	{KeyE4, '4', '$', 0, 0, ModNone, AffectedByShift},
	{KeyE5, '5', '%', 0, 0, ModNone, AffectedByShift},
	{KeyE6, '6', '^', 0, 0, ModNone, AffectedByShift},
	{KeyE7, '7', '&', 0, 0, ModNone, AffectedByShift},
	{KeyE8, '8', '*', 0, 0, ModNone, AffectedByShift},
	{KeyE9, '9', '(', 0, 0, ModNone, AffectedByShift},
	{KeyE10, '0', ')', 0, 0, ModNone, AffectedByShift},
	{KeyEnter, 0x0D, 0x0D, 0, 0, ModNone, 0},
	{KeyEsc, 0x1B, 0x1B, 0, 0, ModNone, 0},
	{KeyBackSpace, 0x08, 0x08, 0, 0, ModNone, 0},
	{KeyTab, 0x09, 0x09, 0, 0, ModNone, 0},
	{KeySpaceBar, ' ', ' ', 0, 0, ModNone, 0},
	{KeyE11, '-', '_', 0, 0, ModNone, AffectedByShift},
	{KeyE12, '=', '+', 0, 0, ModNone, AffectedByShift},
	{KeyD11, '[', '{', 0, 0, ModNone, AffectedByShift},
	{KeyD12, ']', '}', 0, 0, ModNone, AffectedByShift},
	{KeyD13, '\\', '|', 0, 0, ModNone, AffectedByShift},
	{KeyC12, '\\', '|', 0, 0, ModNone, AffectedByShift},
	{KeyC10, ';', ':', 0, 0, ModNone, AffectedByShift},
	{KeyC11, '\'', '"', 0, 0, ModNone, AffectedByShift},
	{KeyE0, '`', '~', 0, 0, ModNone, AffectedByShift},
	{KeyB8, ',', '<', 0, 0, ModNone, AffectedByShift},
	{KeyB9, '.', '>', 0, 0, ModNone, AffectedByShift},
	{KeyB10, '/', '?', 0, 0, ModNone, AffectedByShift},
	{KeyCapsLock, 0, 0, 0, 0, ModCapsLock, 0},
	{KeyF1, 0, 0, 0, 0, ModF1, 0},
	{KeyF2, 0, 0, 0, 0, ModF2, 0},
	{KeyF3, 0, 0, 0, 0, ModF3, 0},
	{KeyF4, 0, 0, 0, 0, ModF4, 0},
	{KeyF5, 0, 0, 0, 0, ModF5, 0},
	{KeyF6, 0, 0, 0, 0, ModF6, 0},
	{KeyF7, 0, 0, 0, 0, ModF7, 0},
	{KeyF8, 0, 0, 0, 0, ModF8, 0},
	{KeyF9, 0, 0, 0, 0, ModF9, 0},
	{KeyF10, 0, 0, 0, 0, ModF10, 0},
	{KeyF11, 0, 0, 0, 0, ModF11, 0},
	{KeyF12, 0, 0, 0, 0, ModF12, 0},
	{KeyPrint, 0, 0, 0, 0, ModPrint, 0},
	{KeySLck, 0, 0, 0, 0, ModScrollLock, 0},
	{KeyPause, 0, 0, 0, 0, ModPause, 0},
	{KeyIns, 0, 0, 0, 0, ModInsert, 0},
	{KeyHome, 0, 0, 0, 0, ModHome, 0},
	{KeyPgUp, 0, 0, 0, 0, ModPageUp, 0},
	{KeyDel, 0, 0, 0, 0, ModDelete, 0},
	{KeyEnd, 0, 0, 0, 0, ModEnd, 0},
	{KeyPgDn, 0, 0, 0, 0, ModPageDown, 0},
	{KeyRightArrow, 0, 0, 0, 0, ModRightArrow, 0},
	{KeyLeftArrow, 0, 0, 0, 0, ModLeftArrow, 0},
	{KeyDownArrow, 0, 0, 0, 0, ModDownArrow, 0},
	{KeyUpArrow, 0, 0, 0, 0, ModUpArrow, 0},
	{KeyNLck, 0, 0, 0, 0, ModNumLock, 0},
	{KeySlash, '/', '/', 0, 0, ModNone, 0},
	{KeyAsterisk, '*', '*', 0, 0, ModNone, 0},
	{KeyMinus, '-', '-', 0, 0, ModNone, 0},
	{KeyPlus, '+', '+', 0, 0, ModNone, 0},
	{KeyOne, '1', '1', 0, 0, ModEnd, AffectedByShift | AffectedByNumLock},
	{KeyTwo, '2', '2', 0, 0, ModDownArrow, AffectedByShift | AffectedByNumLock},
	{KeyThree, '3', '3', 0, 0, ModPageDown, AffectedByShift | AffectedByNumLock},
	{KeyFour, '4', '4', 0, 0, ModLeftArrow, AffectedByShift | AffectedByNumLock},
	{KeyFive, '5', '5', 0, 0, ModNone, AffectedByShift | AffectedByNumLock},
	{KeySix, '6', '6', 0, 0, ModRightArrow, AffectedByShift | AffectedByNumLock},
	{KeySeven, '7', '7', 0, 0, ModHome, AffectedByShift | AffectedByNumLock},
	{KeyEight, '8', '8', 0, 0, ModUpArrow, AffectedByShift | AffectedByNumLock},
	{KeyNine, '9', '9', 0, 0, ModPageUp, AffectedByShift | AffectedByNumLock},
	{KeyZero, '0', '0', 0, 0, ModInsert, AffectedByShift | AffectedByNumLock},
	{KeyPeriod, '.', '.', 0, 0, ModDelete, AffectedByShift | AffectedByNumLock},
	{KeyA4, 0, 0, 0, 0, ModMenu, 0},
	{KeyLCtrl, 0, 0, 0, 0, ModLeftControl, 0},
	{KeyLShift, 0, 0, 0, 0, ModLeftShift, 0},
	{KeyLAlt, 0, 0, 0, 0, ModLeftAlt, 0},
	{KeyA0, 0, 0, 0, 0, ModLeftLogo, 0},
	{KeyRCtrl, 0, 0, 0, 0, ModRightControl, 0},
	{KeyRShift, 0, 0, 0, 0, ModRightShift, 0},
	{KeyA2, 0, 0, 0, 0, ModRightAlt, 0},
	{KeyA3, 0, 0, 0, 0, ModRightLogo, 0},
}

// DefaultLayout builds the built-in en-US layout.
func DefaultLayout() *Layout {
	return NewLayout("en-US", usDescriptors)
}

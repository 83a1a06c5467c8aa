package page

import (
	"fmt"
	"unicode"
)

// metaShiftOn is the Android meta-state flag for a held shift key
const metaShiftOn = 1

// androidKeyCodes maps characters to Android key codes. Only latin letters,
// digits and space have key events; anything else must be sent through the
// WebView's own input methods.
var androidKeyCodes = map[rune]int{
	'0': 7, '1': 8, '2': 9, '3': 10, '4': 11,
	'5': 12, '6': 13, '7': 14, '8': 15, '9': 16,

	'a': 29, 'b': 30, 'c': 31, 'd': 32, 'e': 33, 'f': 34, 'g': 35,
	'h': 36, 'i': 37, 'j': 38, 'k': 39, 'l': 40, 'm': 41, 'n': 42,
	'o': 43, 'p': 44, 'q': 45, 'r': 46, 's': 47, 't': 48, 'u': 49,
	'v': 50, 'w': 51, 'x': 52, 'y': 53, 'z': 54,

	' ': 62,
}

// KeyText types text through per-character Android key events. Only lowercase
// letters, digits and spaces are supported.
func (p *Page) KeyText(text string) error {
	return p.keyText(text, 0)
}

// KeyTextCapital types uppercase text by holding shift for every key event
func (p *Page) KeyTextCapital(text string) error {
	return p.keyText(text, metaShiftOn)
}

func (p *Page) keyText(text string, metastate int) error {
	for _, r := range text {
		keycode, ok := androidKeyCodes[unicode.ToLower(r)]
		if !ok {
			return fmt.Errorf("unsupported character %q, only letters, digits and spaces have key events", r)
		}

		if err := p.d.PressKeyCode(keycode, metastate); err != nil {
			return err
		}
	}
	return nil
}

package dochtml

import "strings"

// CheckboxMarker is the literal sequence that marks an unchecked box.
const CheckboxMarker = "[ ]"

// CheckboxOptions splits text on every CheckboxMarker and returns the
// trimmed, non-empty fragments as option labels.
// The bool result is false when text contains no marker; options is then nil.
// Text made only of markers and whitespace yields no options but reports true.
func CheckboxOptions(text string) (options []string, ok bool) {
	if !strings.Contains(text, CheckboxMarker) {
		return nil, false
	}
	for _, frag := range strings.Split(text, CheckboxMarker) {
		if frag = strings.TrimSpace(frag); frag != "" {
			options = append(options, frag)
		}
	}
	return options, true
}

package validators

import (
	"errors"
	"regexp"
)

var (
	ErrColorInvalid = errors.New("please provide a valid hex color")

	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ColorValidator checks that c is a #RRGGBB hex color
func ColorValidator(c string) error {
	if !hexColor.MatchString(c) {
		return ErrColorInvalid
	}

	return nil
}

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, EmailValidator("ann@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator("a@"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, PasswordValidator("password1"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
}

func TestColorValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ColorValidator("#10b981"))
	assert.NoError(t, ColorValidator("#FFFFFF"))
	assert.ErrorIs(t, ColorValidator(""), ErrColorInvalid)
	assert.ErrorIs(t, ColorValidator("10b981"), ErrColorInvalid)
	assert.ErrorIs(t, ColorValidator("#10b98"), ErrColorInvalid)
	assert.ErrorIs(t, ColorValidator("#10b98g"), ErrColorInvalid)
	assert.ErrorIs(t, ColorValidator("#10b9811"), ErrColorInvalid)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		name, err := NewName("John")
		require.NoError(t, err)
		assert.Equal(t, "John", name.Value())
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		name, err := NewName("  John Doe \t")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", name.Value())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewName("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("WhitespaceOnly", func(t *testing.T) {
		_, err := NewName("   \t\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestNewPhone(t *testing.T) {
	t.Run("PlainDigits", func(t *testing.T) {
		phone, err := NewPhone("1234567890")
		require.NoError(t, err)
		assert.Equal(t, "1234567890", phone.Value())
	})

	t.Run("StripsFormatting", func(t *testing.T) {
		phone, err := NewPhone("(555) 555-5555")
		require.NoError(t, err)
		assert.Equal(t, "5555555555", phone.Value())
	})

	t.Run("TooShort", func(t *testing.T) {
		_, err := NewPhone("123-456-789")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("TooLong", func(t *testing.T) {
		_, err := NewPhone("12345678901")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPhoneDigits)
	})

	t.Run("NoDigits", func(t *testing.T) {
		_, err := NewPhone("not a number")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "1234567890", NormalizePhone("123-456-7890"))
	assert.Equal(t, "5555555555", NormalizePhone("(555) 555-5555"))
	assert.Equal(t, "", NormalizePhone("n/a"))
}

func TestFieldRendering(t *testing.T) {
	name, err := NewName("Jane")
	require.NoError(t, err)
	phone, err := NewPhone("987-654-3210")
	require.NoError(t, err)

	fields := []Field{name, phone}
	assert.Equal(t, "Jane", fields[0].String())
	assert.Equal(t, "9876543210", fields[1].String())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	t.Run("valid without phone", func(t *testing.T) {
		a, err := NewAuthor("Ada", nil)
		require.NoError(t, err)
		assert.Equal(t, "Ada", a.Name)
		assert.Nil(t, a.PhoneNumber)
		assert.Zero(t, a.ID)
	})

	t.Run("valid with phone", func(t *testing.T) {
		a, err := NewAuthor("Ada", ptr("5551234567"))
		require.NoError(t, err)
		require.NotNil(t, a.PhoneNumber)
		assert.Equal(t, "5551234567", *a.PhoneNumber)
	})

	t.Run("empty name", func(t *testing.T) {
		a, err := NewAuthor("", nil)
		assert.Nil(t, a)
		assertCode(t, err, "name", CodeRequired)
	})

	t.Run("bad phone", func(t *testing.T) {
		a, err := NewAuthor("Ada", ptr("12345"))
		assert.Nil(t, a)
		assertCode(t, err, "phone_number", CodeInvalidFormat)
	})
}

func TestAuthor_SetName_leavesValueOnError(t *testing.T) {
	a := &Author{ID: 3, Name: "Ada"}

	err := a.SetName("")
	assertCode(t, err, "name", CodeRequired)
	assert.Equal(t, "Ada", a.Name)

	require.NoError(t, a.SetName("Grace"))
	assert.Equal(t, "Grace", a.Name)
}

func TestAuthor_SetPhoneNumber(t *testing.T) {
	a := &Author{Name: "Ada", PhoneNumber: ptr("5551234567")}

	err := a.SetPhoneNumber(ptr("555"))
	assertCode(t, err, "phone_number", CodeInvalidFormat)
	assert.Equal(t, "5551234567", *a.PhoneNumber)

	require.NoError(t, a.SetPhoneNumber(nil))
	assert.Nil(t, a.PhoneNumber)
}

func TestAuthor_SetPhoneNumber_copiesInput(t *testing.T) {
	phone := "5551234567"
	a := &Author{Name: "Ada"}
	require.NoError(t, a.SetPhoneNumber(&phone))

	phone = "not-a-phone"
	assert.Equal(t, "5551234567", *a.PhoneNumber)
}

func TestAuthor_Validate(t *testing.T) {
	assert.NoError(t, (&Author{Name: "Ada"}).Validate())
	assertCode(t, (&Author{}).Validate(), "name", CodeRequired)
	assertCode(t, (&Author{Name: "Ada", PhoneNumber: ptr("x")}).Validate(), "phone_number", CodeInvalidFormat)
}

func TestAuthor_String(t *testing.T) {
	a := &Author{ID: 7, Name: "Ada"}
	assert.Equal(t, "Author(id=7, name=Ada)", a.String())
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sushishop/internal/transport"
)

func TestValidatePass(t *testing.T) {
	v := New()
	errs := v.Validate(transport.RegisterRequest{
		Username: "hana",
		Email:    "hana@example.com",
		Password: "secret123",
	})
	require.Nil(t, errs)
}

func TestValidateFieldErrors(t *testing.T) {
	v := New()
	errs := v.Validate(transport.RegisterRequest{
		Username: "",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Len(t, errs, 3)

	byField := map[string]string{}
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}
	require.Equal(t, "field is required", byField["Username"])
	require.Equal(t, "must be a valid email address", byField["Email"])
	require.Equal(t, "must be at least 6", byField["Password"])
}

func TestValidateOmitempty(t *testing.T) {
	v := New()

	errs := v.Validate(transport.ProfileUpdateRequest{
		Username: "hana",
		Email:    "hana@example.com",
	})
	require.Nil(t, errs)

	errs = v.Validate(transport.ProfileUpdateRequest{
		Username:    "hana",
		Email:       "hana@example.com",
		NewPassword: "123",
	})
	require.Len(t, errs, 1)
}

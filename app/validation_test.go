package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() *signupValidator {
	return &signupValidator{
		Name:     "Lena Ortiz",
		Email:    "lena@example.com",
		Password: "hunter22",
		Age:      14,
		Grade:    8,
		Place:    "Springfield",
		Address:  "12 Elm St",
		Phone:    "555-0142",
	}
}

func TestSignupValidator(t *testing.T) {
	ok, msg := validSignup().isOk()
	assert.True(t, ok, msg)
}

func TestSignupValidatorRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*signupValidator)
	}{
		{"bad email", func(v *signupValidator) { v.Email = "not-an-email" }},
		{"short password", func(v *signupValidator) { v.Password = "abc" }},
		{"password with space", func(v *signupValidator) { v.Password = "abc def gh" }},
		{"missing name", func(v *signupValidator) { v.Name = "" }},
		{"grade too high", func(v *signupValidator) { v.Grade = 13 }},
		{"age too low", func(v *signupValidator) { v.Age = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validSignup()
			tt.mutate(v)
			ok, msg := v.isOk()
			assert.False(t, ok)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestOtpValidator(t *testing.T) {
	ok, _ := (&otpValidator{SessionID: "abc", Otp: "123456"}).isOk()
	assert.True(t, ok)

	ok, _ = (&otpValidator{SessionID: "abc", Otp: "12345"}).isOk()
	assert.False(t, ok)

	ok, _ = (&otpValidator{SessionID: "abc", Otp: "12345a"}).isOk()
	assert.False(t, ok)

	ok, _ = (&otpValidator{Otp: "123456"}).isOk()
	assert.False(t, ok)
}

func TestSigninValidator(t *testing.T) {
	ok, _ := validate(&signinValidator{Email: "a@b.co", Password: "x"})
	assert.True(t, ok)

	ok, _ = validate(&signinValidator{Email: "nope", Password: "x"})
	assert.False(t, ok)

	ok, _ = validate(&signinValidator{Email: "a@b.co"})
	assert.False(t, ok)
}

func TestResetValidator(t *testing.T) {
	ok, _ := (&resetValidator{SessionID: "t", Password: "newpass1"}).isOk()
	assert.True(t, ok)

	ok, msg := (&resetValidator{SessionID: "t", Password: "new pass"}).isOk()
	assert.False(t, ok)
	assert.Contains(t, msg, "whitespace")

	// the reset body carries the token as sessionId
	ok, _ = (&resetValidator{Password: "newpass1"}).isOk()
	assert.False(t, ok)
}

func TestGroupValidator(t *testing.T) {
	ok, _ := validate(&groupValidator{Name: "grade 8", Students: []string{"uid-1"}})
	assert.True(t, ok)

	ok, _ = validate(&groupValidator{Students: []string{"uid-1"}})
	assert.False(t, ok)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/fitkeeper/internal/client/client"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(c *fakeClient, s *fakeStore) *AuthService {
	return NewAuthService(c, s, logging.NewNop())
}

func TestRegister_InvalidFormSkipsServer(t *testing.T) {
	tests := []struct {
		name string
		form RegisterForm
		want map[string]string
	}{
		{
			name: "all empty",
			form: RegisterForm{},
			want: map[string]string{
				"username":        "Username is required",
				"password":        "Password is required",
				"confirmPassword": "Confirm password is required",
			},
		},
		{
			name: "weak password",
			form: RegisterForm{Username: "alice", Password: "abcdef", ConfirmPassword: "abcdef"},
			want: map[string]string{"password": validation.MsgPasswordNoDigit},
		},
		{
			name: "short username and mismatch",
			form: RegisterForm{Username: "al", Password: "Passw0rd", ConfirmPassword: "Passw0rd!"},
			want: map[string]string{
				"username":        "Username must be at least 3 characters",
				"confirmPassword": msgPasswordMismatch,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{}
			res, err := newAuth(c, newFakeStore()).Register(context.Background(), tt.form)

			require.ErrorIs(t, err, ErrInvalidForm)
			assert.False(t, res.IsValid)
			assert.Equal(t, tt.want, res.Errors)
			assert.Zero(t, c.registerCalls)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	c := &fakeClient{}
	res, err := newAuth(c, newFakeStore()).Register(context.Background(),
		RegisterForm{Username: "alice", Password: "Passw0rd", ConfirmPassword: "Passw0rd"})

	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "alice", c.lastUser)
	assert.Equal(t, "Passw0rd", c.lastPassword)
	assert.Empty(t, c.lastRole)
}

func TestRegister_PassesRole(t *testing.T) {
	c := &fakeClient{}
	_, err := newAuth(c, newFakeStore()).Register(context.Background(),
		RegisterForm{Username: "coach", Password: "Passw0rd", ConfirmPassword: "Passw0rd", Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "admin", c.lastRole)
}

func TestRegister_ServerError(t *testing.T) {
	c := &fakeClient{registerErr: client.ErrConflict}
	res, err := newAuth(c, newFakeStore()).Register(context.Background(),
		RegisterForm{Username: "alice", Password: "Passw0rd", ConfirmPassword: "Passw0rd"})

	assert.True(t, res.IsValid)
	assert.ErrorIs(t, err, client.ErrConflict)
}

func TestLogin_StoresToken(t *testing.T) {
	ctx := context.Background()
	c := &fakeClient{loginToken: "tok"}
	s := newFakeStore()
	a := newAuth(c, s)

	res, err := a.Login(ctx, LoginForm{Username: "alice", Password: "whatever"})
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "tok", s.items[TokenKey])

	got := a.Token(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "tok", *got)
}

func TestLogin_InvalidForm(t *testing.T) {
	c := &fakeClient{}
	res, err := newAuth(c, newFakeStore()).Login(context.Background(), LoginForm{Username: "  "})

	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Len(t, res.Errors, 2)
	assert.Zero(t, c.loginCalls)
}

func TestLogin_ServerErrorStoresNothing(t *testing.T) {
	s := newFakeStore()
	c := &fakeClient{loginErr: client.ErrUnauthorized}

	_, err := newAuth(c, s).Login(context.Background(), LoginForm{Username: "alice", Password: "x"})

	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, s.items)
}

func TestLogin_StoreFailureKeepsSession(t *testing.T) {
	s := newFakeStore()
	s.failing = true
	c := &fakeClient{loginToken: "tok"}

	_, err := newAuth(c, s).Login(context.Background(), LoginForm{Username: "alice", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "tok", c.token)
}

func TestRestoreAndLogout(t *testing.T) {
	ctx := context.Background()
	s := newFakeStore()
	c := &fakeClient{}
	a := newAuth(c, s)

	assert.False(t, a.Restore(ctx))

	s.items[TokenKey] = "saved"
	assert.True(t, a.Restore(ctx))
	assert.Equal(t, "saved", c.token)

	assert.True(t, a.Logout(ctx))
	assert.Equal(t, "", c.token)
	assert.Nil(t, a.Token(ctx))
}

func TestPing(t *testing.T) {
	boom := errors.New("down")
	assert.ErrorIs(t, newAuth(&fakeClient{pingErr: boom}, newFakeStore()).Ping(context.Background()), boom)
}

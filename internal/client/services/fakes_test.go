package services

import (
	"context"

	pb "github.com/dmitrijs2005/fitkeeper/internal/proto"
)

type fakeClient struct {
	registerErr error
	loginToken  string
	loginErr    error
	pingErr     error
	profile     *pb.GetProfileResponse
	profileErr  error
	photoKey    string
	photoURL    string
	photoErr    error
	confirmErr  error

	registerCalls int
	loginCalls    int
	lastUser      string
	lastPassword  string
	lastRole      string
	confirmedKey  string
	token         string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Register(ctx context.Context, username, password, role string) error {
	f.registerCalls++
	f.lastUser, f.lastPassword, f.lastRole = username, password, role
	return f.registerErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	f.lastUser, f.lastPassword = username, password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = f.loginToken
	return f.loginToken, nil
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) GetProfile(ctx context.Context) (*pb.GetProfileResponse, error) {
	return f.profile, f.profileErr
}

func (f *fakeClient) PhotoUpload(ctx context.Context) (string, string, error) {
	return f.photoKey, f.photoURL, f.photoErr
}

func (f *fakeClient) ConfirmPhoto(ctx context.Context, key string) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmedKey = key
	return nil
}

type fakeStore struct {
	items   map[string]string
	failing bool
}

func newFakeStore() *fakeStore { return &fakeStore{items: map[string]string{}} }

func (s *fakeStore) Set(ctx context.Context, key, value string) bool {
	if s.failing {
		return false
	}
	s.items[key] = value
	return true
}

func (s *fakeStore) Get(ctx context.Context, key string) *string {
	if s.failing {
		return nil
	}
	v, ok := s.items[key]
	if !ok {
		return nil
	}
	return &v
}

func (s *fakeStore) Delete(ctx context.Context, key string) bool {
	if s.failing {
		return false
	}
	delete(s.items, key)
	return true
}

package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	model "kemazon-client/internal/models"
)

func TestSession_LoginLogout(t *testing.T) {
	t.Parallel()

	s := New()
	require.False(t, s.IsLoggedIn())
	require.Empty(t, s.Token())
	require.Zero(t, s.UserID())

	s.Login("token-abc", model.User{ID: 2, Name: "Ana"})
	require.True(t, s.IsLoggedIn())
	require.Equal(t, "token-abc", s.Token())
	require.Equal(t, 2, s.UserID())

	current := s.Current()
	require.True(t, current.IsLoggedIn)
	require.Equal(t, "Ana", current.User.Name)

	s.Logout()
	require.False(t, s.IsLoggedIn())
	require.Empty(t, s.Token())
	require.Zero(t, s.UserID())
}

// Incomplete stored credentials must not produce a half-authenticated session.
func TestSession_LoadRejectsPartialCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		user  model.User
		want  bool
	}{
		{name: "complete", token: "token-abc", user: model.User{ID: 2, Name: "Ana"}, want: true},
		{name: "missing_token", token: "", user: model.User{ID: 2}, want: false},
		{name: "missing_user", token: "token-abc", user: model.User{}, want: false},
		{name: "nothing_stored", token: "", user: model.User{}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			s.Load(tc.token, tc.user)
			require.Equal(t, tc.want, s.IsLoggedIn())
			if !tc.want {
				require.Empty(t, s.Token())
			}
		})
	}
}

func TestSession_OnChange(t *testing.T) {
	t.Parallel()

	s := New()

	var snaps []Snapshot
	cancel := s.OnChange(func(snap Snapshot) {
		snaps = append(snaps, snap)
	})

	s.Login("token-abc", model.User{ID: 2})
	s.Logout()
	require.Len(t, snaps, 2)
	require.True(t, snaps[0].IsLoggedIn)
	require.False(t, snaps[1].IsLoggedIn)

	cancel()
	cancel() // safe to call again
	s.Login("token-def", model.User{ID: 3})
	require.Len(t, snaps, 2, "detached listener must not fire")
}

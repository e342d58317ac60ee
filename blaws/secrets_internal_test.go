package blaws

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type mockSecretReader struct {
	secrets map[string]string
	calls   int
}

func (m *mockSecretReader) GetSecretString(_ context.Context, secretID string) (string, error) {
	m.calls++

	s, ok := m.secrets[secretID]
	if !ok {
		return "", errors.Newf("secret %q not found", secretID)
	}

	return s, nil
}

func TestSecretFromReader(t *testing.T) {
	reader := &mockSecretReader{secrets: map[string]string{
		"plain": "hunter2",
		"db":    `{"username":"admin","password":"p4ss","nested":{"port":5432}}`,
	}}

	for _, tt := range []struct {
		name     string
		secretID string
		path     []string
		want     string
		wantErr  string
	}{
		{name: "raw", secretID: "plain", want: "hunter2"},
		{name: "empty path is raw", secretID: "plain", path: []string{""}, want: "hunter2"},
		{name: "json path", secretID: "db", path: []string{"password"}, want: "p4ss"},
		{name: "nested path", secretID: "db", path: []string{"nested.port"}, want: "5432"},
		{name: "missing path", secretID: "db", path: []string{"token"}, wantErr: `secret path "token" not found`},
		{name: "missing secret", secretID: "nope", wantErr: `secret "nope" not found`},
		{name: "too many paths", secretID: "db", path: []string{"a", "b"}, wantErr: "at most one jsonPath"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secretFromReader(context.Background(), reader, tt.secretID, tt.path...)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegistrySecret(t *testing.T) {
	reader := &mockSecretReader{secrets: map[string]string{"api": `{"key":"k-1"}`}}

	reg := NewRegistry()
	require.Same(t, reader, reg.InitSecrets(reader))

	got, err := reg.Secret(context.Background(), "api", "key")
	require.NoError(t, err)
	require.Equal(t, "k-1", got)
	require.Equal(t, 1, reader.calls)

	reg.ResetSecrets()
	_, ok := reg.secrets.get()
	require.False(t, ok)
}

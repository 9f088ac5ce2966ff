package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/selmenealex/my-finance/internal/repo"

	"github.com/stretchr/testify/require"
)

func newDataFixture(t *testing.T) (*DataService, repo.UserRepo) {
	t.Helper()
	r := repo.NewFileUserRepo(filepath.Join(t.TempDir(), "users.json"))
	return NewDataService(r, nil), r
}

func TestDataService_GetSeededBlob(t *testing.T) {
	svc, r := newDataFixture(t)
	ctx := context.Background()

	seed := json.RawMessage(`{"mode":"personal","transactions":[]}`)
	require.NoError(t, r.Create(ctx, "alice", "h", seed))

	got, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, string(seed), string(got))
}

func TestDataService_ReplaceRoundTrip(t *testing.T) {
	svc, r := newDataFixture(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, "alice", "h", json.RawMessage(`{}`)))

	blob := `{"foo":1,"nested":{"list":[1,2,3],"ok":true},"s":"text"}`
	require.NoError(t, svc.Replace(ctx, "alice", json.RawMessage(blob)))

	got, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, blob, string(got))
}

func TestDataService_UnknownUser(t *testing.T) {
	svc, _ := newDataFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "ghost")
	require.ErrorIs(t, err, repo.ErrNotFound)

	err = svc.Replace(ctx, "ghost", json.RawMessage(`{}`))
	require.ErrorIs(t, err, repo.ErrNotFound)
}

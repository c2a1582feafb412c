package userphoto

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/userphoto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/upload"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
)

type memStore struct {
	mu      sync.Mutex
	keys    []string
	version int
	signErr error
}

func (m *memStore) Put(_ context.Context, key, _ string, _ []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return nil
}

func (m *memStore) SignedURL(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.signErr != nil {
		return "", m.signErr
	}
	m.version++
	return "https://cdn.test/" + key + "?v=" + string(rune('0'+m.version%10)), nil
}

type fixture struct {
	svc    *Service
	store  *memStore
	users  *user.Service
	userID string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	store := &memStore{}

	users := user.NewService(repository.NewUserGormRepository(db), audit.Nop{}, false)
	u, err := users.Create(context.Background(), user.CreateInput{Name: "Ana", Email: "ana@salon.com", Password: "pw"})
	require.NoError(t, err)

	svc := NewService(
		repository.NewUserPhotoGormRepository(db),
		users,
		upload.NewService(store),
		store,
		audit.Nop{},
	)
	return &fixture{svc: svc, store: store, users: users, userID: u.ID}
}

func photo(t *testing.T, name string) upload.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 3))))
	return upload.File{Name: name, Data: buf.Bytes()}
}

func TestCreateStoresUnderUserDir(t *testing.T) {
	f := setup(t)

	p, err := f.svc.Create(context.Background(), f.userID, photo(t, "me.png"))
	require.NoError(t, err)

	assert.Equal(t, "me.png", p.OriginalName)
	assert.True(t, strings.HasPrefix(p.Path, "users/"+f.userID+"/"))
	assert.Contains(t, p.URL, p.Path)
	assert.Positive(t, p.Size)
	require.NotNil(t, p.User)
	assert.Equal(t, f.userID, p.User.ID)
}

func TestCreateSecondPhotoIsConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.userID, photo(t, "a.png"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.userID, photo(t, "b.png"))
	assert.Equal(t, domain.ErrAlreadyOwned, err)
	assert.Len(t, f.store.keys, 1)
}

func TestCreateRejectsNonImage(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(context.Background(), f.userID, upload.File{Name: "cv.pdf", Data: []byte("%PDF-1.4")})
	require.Error(t, err)
	assert.Equal(t, "File cv.pdf is not an image!", err.Error())
	assert.Empty(t, f.store.keys)
}

func TestCreateForMissingUser(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(context.Background(), "7c9e6679-7425-40de-944b-e07fc1f90ae7", photo(t, "a.png"))
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.Empty(t, f.store.keys)
}

func TestReadsRefreshURL(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.userID, photo(t, "a.png"))
	require.NoError(t, err)

	again, err := f.svc.FindOne(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEqual(t, p.URL, again.URL)

	f.store.signErr = errors.New("signer down")
	stale, err := f.svc.FindOne(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stale.URL)

	all, err := f.svc.FindAll(ctx, domain.Filter{UserID: &f.userID})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateReplacesFileAndOwner(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.userID, photo(t, "old.png"))
	require.NoError(t, err)

	other, err := f.users.Create(ctx, user.CreateInput{Name: "Bia", Email: "bia@salon.com", Password: "pw"})
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, p.ID, photo(t, "new.png"), &other.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.png", got.OriginalName)
	assert.Equal(t, other.ID, got.UserID)
	assert.True(t, strings.HasPrefix(got.Path, "users/"+other.ID+"/"))

	got, err = f.svc.Update(ctx, p.ID, photo(t, "newer.png"), nil)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.UserID)
}

func TestRemove(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.userID, photo(t, "a.png"))
	require.NoError(t, err)

	affected, err := f.svc.Remove(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = f.svc.FindOne(ctx, p.ID)
	assert.Equal(t, "Photo not found!", err.Error())

	_, err = f.svc.Create(ctx, f.userID, photo(t, "b.png"))
	assert.NoError(t, err)
}

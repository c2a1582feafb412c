package branch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/branch"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/offering"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/user"
)

const missingID = "3d1b3c8a-5a0f-4d9a-8f5e-0e6c2b7d9f10"

type fixture struct {
	db       *gorm.DB
	svc      *Service
	userID   string
	services []string
}

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)

	users := user.NewService(repository.NewUserGormRepository(db), audit.Nop{}, false)
	offerings := offering.NewService(repository.NewServiceGormRepository(db), users, audit.Nop{})

	u, err := users.Create(ctx, user.CreateInput{Name: "Owner", Email: "owner@salon.com", Password: "pw"})
	require.NoError(t, err)

	f := &fixture{
		db:     db,
		svc:    NewService(repository.NewBranchGormRepository(db), users, offerings, audit.Nop{}),
		userID: u.ID,
	}

	for _, name := range []string{"Corte", "Barba"} {
		s, err := offerings.Create(ctx, offering.CreateInput{Name: name, Value: 2500, ExpectedTime: "00:30", UserID: u.ID})
		require.NoError(t, err)
		f.services = append(f.services, s.ID)
	}
	return f
}

func (f *fixture) input() CreateInput {
	return CreateInput{
		Fields: domain.Fields{
			Name:         "Centro",
			Street:       "Rua Direita",
			CEP:          "01002000",
			City:         "São Paulo",
			District:     "Sé",
			LocalNumber:  "100",
			OpeningHours: "08:00",
			ClosingHours: "20:00",
			UserID:       f.userID,
		},
		ServiceIDs: f.services,
	}
}

func (f *fixture) branchCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Branch{}).Count(&n).Error)
	return n
}

func TestCreateWithMissingUserWritesNothing(t *testing.T) {
	f := setup(t)
	in := f.input()
	in.UserID = missingID

	_, err := f.svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.Equal(t, "User not found!", err.Error())
	assert.EqualValues(t, 0, f.branchCount(t))
}

func TestCreateWithMissingServiceWritesNothing(t *testing.T) {
	f := setup(t)
	in := f.input()
	in.ServiceIDs = []string{f.services[0], missingID}

	_, err := f.svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "Service with ID "+missingID+" not found.", err.Error())
	assert.EqualValues(t, 0, f.branchCount(t))
}

func TestCreateRejectsMalformedHours(t *testing.T) {
	f := setup(t)

	for _, bad := range []string{"25:00", "8:00"} {
		in := f.input()
		in.ClosingHours = bad

		_, err := f.svc.Create(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindBadRequest))
	}
	assert.EqualValues(t, 0, f.branchCount(t))
}

func TestCreateLoadsRelations(t *testing.T) {
	f := setup(t)

	b, err := f.svc.Create(context.Background(), f.input())
	require.NoError(t, err)
	assert.Len(t, b.Services, 2)
	require.NotNil(t, b.User)
	assert.Equal(t, f.userID, b.User.ID)
}

func TestUpdateIsPartial(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, b.ID, UpdateInput{City: ptr("Campinas")})
	require.NoError(t, err)
	assert.Equal(t, "Campinas", got.City)
	assert.Equal(t, "Centro", got.Name)
	assert.Equal(t, "08:00", got.OpeningHours)
	assert.Len(t, got.Services, 2)
}

func TestUpdateReplacesServicesWhenGiven(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	got, err := f.svc.Update(ctx, b.ID, UpdateInput{ServiceIDs: &[]string{f.services[1]}})
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, f.services[1], got.Services[0].ID)

	got, err = f.svc.Update(ctx, b.ID, UpdateInput{ServiceIDs: &[]string{}})
	require.NoError(t, err)
	assert.Empty(t, got.Services)
}

func TestUpdateValidatesBeforeWriting(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, b.ID, UpdateInput{Name: ptr("Novo"), OpeningHours: ptr("7:00")})
	assert.True(t, httperr.IsKind(err, httperr.KindBadRequest))

	_, err = f.svc.Update(ctx, b.ID, UpdateInput{Name: ptr("Novo"), UserID: ptr(missingID)})
	assert.Equal(t, "User not found!", err.Error())

	got, err := f.svc.FindOne(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centro", got.Name)
}

func TestRemoveAndFindAll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	all, err := f.svc.FindAll(ctx, domain.Filter{City: ptr("Paulo")})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	affected, err := f.svc.Remove(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	page, err := f.svc.Paginate(ctx, domain.Filter{}, pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.Meta.TotalItems)

	_, err = f.svc.FindOne(ctx, b.ID)
	assert.Equal(t, "Branch not found!", err.Error())
}

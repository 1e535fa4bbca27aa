package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/apperror"
)

// memoryAuthorRepo is an in-memory author.Repository for service tests.
type memoryAuthorRepo struct {
	authors map[uuid.UUID]author.Author
	failAll error
}

func newMemoryAuthorRepo() *memoryAuthorRepo {
	return &memoryAuthorRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (m *memoryAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	created := *a
	created.ID = uuid.New()
	m.authors[created.ID] = created
	return &created, nil
}

func (m *memoryAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	a, ok := m.authors[id]
	if !ok {
		return nil, apperror.AuthorNotFound(id)
	}
	return &a, nil
}

func (m *memoryAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	out := make([]author.Author, 0, len(m.authors))
	for _, a := range m.authors {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	if _, ok := m.authors[a.ID]; !ok {
		return nil, apperror.AuthorNotFound(a.ID)
	}
	m.authors[a.ID] = *a
	updated := *a
	return &updated, nil
}

func (m *memoryAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.failAll != nil {
		return m.failAll
	}
	if _, ok := m.authors[id]; !ok {
		return apperror.AuthorNotFound(id)
	}
	delete(m.authors, id)
	return nil
}

func (m *memoryAuthorRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.failAll != nil {
		return false, m.failAll
	}
	_, ok := m.authors[id]
	return ok, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAuthor(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name:            strPtr("Ursula K. Le Guin"),
		Age:             intPtr(88),
		FollowersNumber: intPtr(120000),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Ursula K. Le Guin", created.Name)
	assert.Equal(t, 88, created.Age)
	assert.Equal(t, 120000, created.FollowersNumber)
}

func TestCreateAuthorInvalid(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name: strPtr("X"),
		Age:  intPtr(-5),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsFunctional(err))
	assert.Empty(t, repo.authors, "nothing should be persisted on validation failure")
}

func TestGetAuthorNotFound(t *testing.T) {
	svc := NewAuthorService(newMemoryAuthorRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindFunctional, appErr.Kind)
	assert.Equal(t, apperror.ReasonAuthorNotFoundID, appErr.Reason)
}

func TestUpdateAuthorMergesOnlyPresentFields(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name:            strPtr("Original Name"),
		Age:             intPtr(40),
		FollowersNumber: intPtr(500),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &author.AuthorRequest{
		FollowersNumber: intPtr(750),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "id must survive every update")
	assert.Equal(t, "Original Name", updated.Name, "absent field must keep stored value")
	assert.Equal(t, 40, updated.Age, "absent field must keep stored value")
	assert.Equal(t, 750, updated.FollowersNumber)
}

func TestUpdateAuthorEmptyRequestIsNoOp(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name:            strPtr("Stable"),
		Age:             intPtr(33),
		FollowersNumber: intPtr(10),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &author.AuthorRequest{})
	require.NoError(t, err)
	assert.Equal(t, *created, *updated)
}

func TestUpdateAuthorNotFound(t *testing.T) {
	svc := NewAuthorService(newMemoryAuthorRepo())

	_, err := svc.Update(context.Background(), uuid.New(), &author.AuthorRequest{Name: strPtr("Ghost")})
	require.Error(t, err)
	assert.True(t, apperror.IsFunctional(err))
}

func TestDeleteAuthor(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.AuthorRequest{Name: strPtr("Gone Soon")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsFunctional(err))
}

func TestListAuthors(t *testing.T) {
	repo := newMemoryAuthorRepo()
	svc := NewAuthorService(repo)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(context.Background(), &author.AuthorRequest{Name: strPtr("A")})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &author.AuthorRequest{Name: strPtr("B")})
	require.NoError(t, err)

	list, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListAuthorsRepoFailureStaysTechnical(t *testing.T) {
	repo := newMemoryAuthorRepo()
	repo.failAll = errors.New("connection reset")
	svc := NewAuthorService(repo)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.False(t, apperror.IsFunctional(err))
}

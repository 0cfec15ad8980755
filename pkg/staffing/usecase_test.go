package staffing

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/staffing/pkg/document"
)

type memRepo struct {
	mu   sync.Mutex
	rows []Request
}

func (r *memRepo) Create(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, req)
	return nil
}

func (r *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.rows {
		if req.ID == id && req.OwnerID == ownerID {
			return req, nil
		}
	}
	return Request{}, ErrNotFound
}

func (r *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Request
	for _, req := range r.rows {
		if req.OwnerID == ownerID {
			out = append(out, req)
		}
	}
	if offset >= len(out) {
		return []Request{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.rows {
		if req.ID == id && req.OwnerID == ownerID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type stubExporter struct{ got []Request }

func (e *stubExporter) RequestXLSX(_ context.Context, r Request) ([]byte, error) {
	e.got = append(e.got, r)
	return []byte("xlsx:" + r.ID.String()), nil
}

type stubModel struct {
	answer string
	err    error
	calls  int
}

func (m *stubModel) Ask(_ context.Context, _, _ string) (string, error) {
	m.calls++
	return m.answer, m.err
}

func newTestService(t *testing.T, model *stubModel) (*service, *memRepo, *stubExporter) {
	t.Helper()
	repo := &memRepo{}
	exp := &stubExporter{}
	var uc UseCase
	if model != nil {
		uc = NewService(repo, nil, exp, model, Options{ModelName: "test-model"}, nil)
	} else {
		uc = NewService(repo, nil, exp, nil, Options{}, nil)
	}
	return uc.(*service), repo, exp
}

func TestParseTextStoresRequest(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	owner := uuid.New()

	r, err := svc.ParseText(context.Background(), owner, sampleRequest)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, owner, r.OwnerID)
	assert.Equal(t, "R-12793", r.Extraction.Meta.RequestID)
	assert.Empty(t, r.Summary)
	assert.False(t, r.CreatedAt.IsZero())
	require.Len(t, repo.rows, 1)

	got, err := svc.Get(context.Background(), owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New(), r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseTextEmpty(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := svc.ParseText(context.Background(), uuid.New(), text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
	_, err := svc.Preview(context.Background(), " \r\n ")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, repo.rows)
}

func TestParseFile(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	r, err := svc.Parse(context.Background(), uuid.New(), "request.txt", []byte(sampleRequest))
	require.NoError(t, err)
	assert.Equal(t, "request.txt", r.Filename)
	assert.Equal(t, []int{3}, r.Extraction.MissingItems)

	_, err = svc.Parse(context.Background(), uuid.New(), "scan.png", []byte{1, 2, 3})
	assert.ErrorIs(t, err, document.ErrUnsupportedFormat)
}

func TestParseUsesCache(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	owner := uuid.New()

	first, err := svc.ParseText(context.Background(), owner, sampleRequest)
	require.NoError(t, err)
	second, err := svc.ParseText(context.Background(), owner, sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.cache.Len())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Extraction.Items, second.Extraction.Items)
	assert.Len(t, repo.rows, 2)

	preview, err := svc.Preview(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, first.Extraction.Meta, preview.Meta)
	assert.Equal(t, 1, svc.cache.Len())
	assert.Len(t, repo.rows, 2)
}

func TestParseWithSummary(t *testing.T) {
	model := &stubModel{answer: "  Ищут QA-автоматизатора в FinTech.  "}
	svc, _, _ := newTestService(t, model)

	r, err := svc.ParseText(context.Background(), uuid.New(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, "Ищут QA-автоматизатора в FinTech.", r.Summary)
	assert.Equal(t, "test-model", r.Model)
	assert.Equal(t, 1, model.calls)
}

func TestParseSummaryFailureIsNotFatal(t *testing.T) {
	model := &stubModel{err: errors.New("rate limited")}
	svc, repo, _ := newTestService(t, model)

	r, err := svc.ParseText(context.Background(), uuid.New(), sampleRequest)
	require.NoError(t, err)
	assert.Empty(t, r.Summary)
	assert.Empty(t, r.Model)
	assert.Len(t, repo.rows, 1)
}

func TestListDeleteExport(t *testing.T) {
	svc, _, exp := newTestService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	a, err := svc.ParseText(ctx, owner, "1. Java")
	require.NoError(t, err)
	_, err = svc.ParseText(ctx, owner, "1. Go")
	require.NoError(t, err)
	_, err = svc.ParseText(ctx, uuid.New(), "1. Kotlin")
	require.NoError(t, err)

	list, err := svc.List(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	b, err := svc.Export(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "xlsx:"+a.ID.String(), string(b))
	require.Len(t, exp.got, 1)
	assert.Equal(t, a.ID, exp.got[0].ID)

	require.NoError(t, svc.Delete(ctx, owner, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, a.ID), ErrNotFound)

	_, err = svc.Export(ctx, owner, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err = svc.List(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

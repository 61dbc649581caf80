package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCreateDerivesSlugUntilEdited(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	publisher := &fakePublisher{}
	editor := NewEditor[domain.Product](ProductResource{backend: backend}, publisher)

	editor.AddNew()
	require.NoError(t, editor.Patch([]byte(`{"name":"Bảng hiệu Mica!","price":250000}`)))
	view := editor.View()
	require.NotNil(t, view.Draft)
	assert.Equal(t, ModeEditor, view.Mode)
	assert.True(t, view.Creating)
	assert.Equal(t, "bang-hieu-mica", view.Draft.Slug)

	require.NoError(t, editor.Patch([]byte(`{"slug":"custom-slug"}`)))
	require.NoError(t, editor.Patch([]byte(`{"name":"Something else"}`)))
	assert.Equal(t, "custom-slug", editor.View().Draft.Slug)
	assert.Equal(t, 250000.0, editor.View().Draft.Price)

	require.NoError(t, editor.Submit(ctx))
	view = editor.View()
	assert.Equal(t, ModeList, view.Mode)
	assert.Nil(t, view.Draft)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "custom-slug", view.Items[0].Slug)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, dto.EventCatalogChanged, publisher.events[0].EventType)
}

func TestEditorUpdateNeverRewritesSlug(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.categories = []domain.Category{{ID: "c1", Name: "Neon", Slug: "neon-signs"}}
	editor := NewEditor[domain.Category](CategoryResource{backend: backend}, nil)
	require.NoError(t, editor.Refresh(ctx))

	require.NoError(t, editor.Edit("c1"))
	require.NoError(t, editor.Patch([]byte(`{"name":"Đèn Neon"}`)))
	assert.Equal(t, "neon-signs", editor.View().Draft.Slug)

	require.NoError(t, editor.Submit(ctx))
	assert.Equal(t, domain.Category{ID: "c1", Name: "Đèn Neon", Slug: "neon-signs"}, backend.updated["c1"])

	// the listed item is untouched by draft edits
	assert.Equal(t, "Neon", editor.View().Items[0].Name)
}

func TestEditorEditIsDeepCopy(t *testing.T) {
	backend := newFakeBackend()
	backend.products = []domain.Product{{ID: "p1", Name: "Neon", Type: domain.ProductTypeReady, Images: []string{"a", "b"}}}
	editor := NewEditor[domain.Product](ProductResource{backend: backend}, nil)
	require.NoError(t, editor.Refresh(context.Background()))

	require.NoError(t, editor.Edit("p1"))
	require.NoError(t, editor.RemoveImage("a"))

	assert.Equal(t, []string{"b"}, editor.View().Draft.Images)
	assert.Equal(t, []string{"a", "b"}, editor.View().Items[0].Images)
	assert.ErrorIs(t, editor.Edit("missing"), errs.ErrNotFound)
}

func TestEditorSubmitFailureKeepsDraft(t *testing.T) {
	backend := newFakeBackend()
	backend.writeErr = errors.New("Slug already exists.")
	editor := NewEditor[domain.Product](ProductResource{backend: backend}, nil)

	editor.AddNew()
	require.NoError(t, editor.Patch([]byte(`{"name":"Neon"}`)))
	err := editor.Submit(context.Background())
	assert.EqualError(t, err, "Slug already exists.")

	view := editor.View()
	assert.Equal(t, ModeEditor, view.Mode)
	assert.Equal(t, "Neon", view.Draft.Name)
	assert.Equal(t, "Slug already exists.", view.Error)
}

func TestEditorValidation(t *testing.T) {
	testCases := []struct {
		Name     string
		Submit   func() error
		Expected []string
	}{
		{
			Name: "product",
			Submit: func() error {
				e := NewEditor[domain.Product](ProductResource{backend: newFakeBackend()}, nil)
				e.AddNew()
				if err := e.Patch([]byte(`{"price":-5,"type":"rental"}`)); err != nil {
					return err
				}
				return e.Submit(context.Background())
			},
			Expected: []string{"name", "price", "type"},
		},
		{
			Name: "project",
			Submit: func() error {
				e := NewEditor[domain.Project](ProjectResource{backend: newFakeBackend()}, nil)
				e.AddNew()
				if err := e.Patch([]byte(`{"name":"Vinamilk HQ"}`)); err != nil {
					return err
				}
				return e.Submit(context.Background())
			},
			Expected: []string{"company_slug", "image_urls"},
		},
		{
			Name: "company",
			Submit: func() error {
				e := NewEditor[domain.Company](CompanyResource{backend: newFakeBackend()}, nil)
				e.AddNew()
				return e.Submit(context.Background())
			},
			Expected: []string{"name", "slug"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var vErr *errs.ValidationError
			require.True(t, errors.As(tc.Submit(), &vErr))
			assert.Equal(t, tc.Expected, vErr.Fields)
		})
	}
}

func TestEditorDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	editor := NewEditor[domain.Product](ProductResource{backend: backend}, nil)

	assert.ErrorIs(t, editor.Delete(ctx, "p1", false), errs.ErrConfirmationRequired)
	assert.Equal(t, 0, backend.calls)

	require.NoError(t, editor.Delete(ctx, "p1", true))
	assert.Equal(t, []string{"p1"}, backend.deleted)
}

func TestEditorUnsupportedOperations(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.companies = []domain.Company{{ID: "co1", Name: "Acme", Slug: "acme"}}

	companies := NewEditor[domain.Company](CompanyResource{backend: backend}, nil)
	require.NoError(t, companies.Refresh(ctx))
	calls := backend.calls

	assert.ErrorIs(t, companies.Delete(ctx, "co1", true), errs.ErrNotSupported)
	require.NoError(t, companies.Edit("co1"))
	assert.ErrorIs(t, companies.Submit(ctx), errs.ErrNotSupported)
	assert.ErrorIs(t, companies.AppendImages("x"), errs.ErrNotSupported)
	assert.Equal(t, calls, backend.calls)

	projects := NewEditor[domain.Project](ProjectResource{backend: backend}, nil)
	assert.ErrorIs(t, projects.Delete(ctx, "pr1", true), errs.ErrNotSupported)
}

func TestEditorImageOperations(t *testing.T) {
	editor := NewEditor[domain.Project](ProjectResource{backend: newFakeBackend()}, nil)
	assert.ErrorIs(t, editor.AppendImages("a"), errs.ErrNotEditing)

	editor.AddNew()
	require.NoError(t, editor.AppendImages("a", "b", "c", "a"))
	require.NoError(t, editor.ReorderImages([]string{"b", "a", "c"}))
	assert.Equal(t, []string{"b", "a", "c"}, editor.View().Draft.ImageURLs)

	require.NoError(t, editor.MoveImage("c", "b"))
	assert.Equal(t, []string{"c", "b", "a"}, editor.View().Draft.ImageURLs)

	require.NoError(t, editor.MoveImage("c", ""))
	assert.Equal(t, []string{"c", "b", "a"}, editor.View().Draft.ImageURLs)

	editor.Cancel()
	assert.Equal(t, ModeList, editor.View().Mode)
	assert.ErrorIs(t, editor.Patch([]byte(`{"name":"x"}`)), errs.ErrNotEditing)
}

func TestEditorRefreshFailureKeepsList(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.categories = []domain.Category{{ID: "c1", Name: "Neon", Slug: "neon"}}
	editor := NewEditor[domain.Category](CategoryResource{backend: backend}, nil)
	require.NoError(t, editor.Refresh(ctx))

	backend.listErr = errors.New("boom")
	assert.Error(t, editor.Refresh(ctx))
	assert.Len(t, editor.View().Items, 1)
}

func TestEditorCanAcceptImages(t *testing.T) {
	backend := newFakeBackend()

	projects := NewEditor[domain.Project](ProjectResource{backend: backend}, nil)
	assert.ErrorIs(t, projects.CanAcceptImages(), errs.ErrNotEditing)
	projects.AddNew()
	require.NoError(t, projects.AppendImages("a"))
	assert.NoError(t, projects.CanAcceptImages())
	assert.Equal(t, []string{"a"}, projects.View().Draft.ImageURLs)

	categories := NewEditor[domain.Category](CategoryResource{backend: backend}, nil)
	categories.AddNew()
	assert.ErrorIs(t, categories.CanAcceptImages(), errs.ErrNotSupported)
}

func TestProjectPatchCompletionDate(t *testing.T) {
	type TestCase struct {
		Name     string
		Patch    string
		Expected *time.Time
	}

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	testCases := []TestCase{
		{Name: "calendar day", Patch: `{"completion_date":"2024-03-15"}`, Expected: &day},
		{Name: "rfc3339", Patch: `{"completion_date":"2024-03-15T09:30:00Z"}`, Expected: &instant},
		{Name: "empty clears", Patch: `{"completion_date":""}`, Expected: nil},
		{Name: "null clears", Patch: `{"completion_date":null}`, Expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			editor := NewEditor[domain.Project](ProjectResource{backend: newFakeBackend()}, nil)
			editor.AddNew()
			require.NoError(t, editor.Patch([]byte(`{"completion_date":"2020-01-01"}`)))
			require.NoError(t, editor.Patch([]byte(tc.Patch)))

			got := editor.View().Draft.CompletionDate
			if tc.Expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.Expected.Equal(*got), "got %s", got)
		})
	}

	editor := NewEditor[domain.Project](ProjectResource{backend: newFakeBackend()}, nil)
	editor.AddNew()
	assert.ErrorIs(t, editor.Patch([]byte(`{"completion_date":"15/03/2024"}`)), errs.ErrClient)
}

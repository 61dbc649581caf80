package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/slug"
	"github.com/rs/zerolog/log"
)

type Mode string

const (
	ModeList   Mode = "list"
	ModeEditor Mode = "editor"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Fields points into an entity's identifying fields. Images is nil for
// resources without an image list.
type Fields struct {
	ID     string
	Name   string
	Slug   *string
	Images *[]string
}

// Resource adapts one backend collection to the editor.
type Resource[T any] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id string, item T) error
	Delete(ctx context.Context, id string) error
	Blank() T
	Validate(item T) error
	Fields(item *T) Fields
}

// PatchNormalizer is implemented by resources that rewrite incoming patch
// fields before they are decoded into the draft.
type PatchNormalizer interface {
	NormalizePatch(fields map[string]json.RawMessage) error
}

type EditorView[T any] struct {
	Resource   string `json:"resource"`
	Mode       Mode   `json:"mode"`
	Items      []T    `json:"items"`
	Draft      *T     `json:"draft,omitempty"`
	EditingID  string `json:"editing_id,omitempty"`
	Creating   bool   `json:"creating"`
	SlugManual bool   `json:"slug_manual"`
	HasImages  bool   `json:"has_images"`
	Error      string `json:"error,omitempty"`
}

type Editor[T any] struct {
	resource  Resource[T]
	publisher EventPublisher

	mu         sync.Mutex
	mode       Mode
	items      []T
	draft      T
	editingID  string
	slugManual bool
	lastErr    error
}

func NewEditor[T any](resource Resource[T], publisher EventPublisher) *Editor[T] {
	return &Editor[T]{resource: resource, publisher: publisher, mode: ModeList, items: []T{}}
}

func (e *Editor[T]) Name() string {
	return e.resource.Name()
}

// Refresh reloads the list. On failure the previous list is kept.
func (e *Editor[T]) Refresh(ctx context.Context) error {
	items, err := e.resource.List(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EditorRefresh").Str("resource", e.Name()).Msg("")
		e.mu.Lock()
		e.lastErr = err
		e.mu.Unlock()
		return err
	}
	if items == nil {
		items = []T{}
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()
	return nil
}

func (e *Editor[T]) AddNew() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeEditor
	e.draft = e.resource.Blank()
	e.editingID = ""
	e.slugManual = false
	e.lastErr = nil
}

// Edit opens a deep copy of the listed item with the given id.
func (e *Editor[T]) Edit(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.resource.Fields(&e.items[i]).ID != id {
			continue
		}
		draft, err := clone(e.items[i])
		if err != nil {
			return err
		}
		e.mode = ModeEditor
		e.draft = draft
		e.editingID = id
		e.slugManual = false
		e.lastErr = nil
		return nil
	}
	return fmt.Errorf("%s %q: %w", e.Name(), id, errs.ErrNotFound)
}

// Patch merges the JSON fields present in patch into the draft. Sending a
// slug marks it as manually edited.
func (e *Editor[T]) Patch(patch []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeEditor {
		return errs.ErrNotEditing
	}

	current, err := json.Marshal(e.draft)
	if err != nil {
		return err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &merged); err != nil {
		return err
	}
	if n, ok := e.resource.(PatchNormalizer); ok {
		if err := n.NormalizePatch(fields); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrClient, err)
		}
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		merged[k] = v
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	var next T
	if err := json.Unmarshal(raw, &next); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	if _, ok := fields["slug"]; ok {
		e.slugManual = true
	}
	e.draft = next
	e.deriveSlug()
	return nil
}

// deriveSlug follows the name only while creating and until the slug is edited by hand.
func (e *Editor[T]) deriveSlug() {
	if e.editingID != "" || e.slugManual {
		return
	}
	f := e.resource.Fields(&e.draft)
	if f.Slug != nil {
		*f.Slug = slug.Make(f.Name)
	}
}

// Submit creates or updates the draft. On failure the editor stays open
// with the draft and the error.
func (e *Editor[T]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.mode != ModeEditor {
		e.mu.Unlock()
		return errs.ErrNotEditing
	}

	f := e.resource.Fields(&e.draft)
	if f.Slug != nil && *f.Slug == "" {
		*f.Slug = slug.Make(f.Name)
	}
	if err := e.resource.Validate(e.draft); err != nil {
		e.lastErr = err
		e.mu.Unlock()
		return err
	}

	item, err := clone(e.draft)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	id := e.editingID
	e.mu.Unlock()

	action := ActionCreated
	if id == "" {
		err = e.resource.Create(ctx, item)
	} else {
		action = ActionUpdated
		err = e.resource.Update(ctx, id, item)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EditorSubmit").Str("resource", e.Name()).Msg("")
		e.mu.Lock()
		e.lastErr = err
		e.mu.Unlock()
		return err
	}

	e.mu.Lock()
	e.mode = ModeList
	e.draft = e.resource.Blank()
	e.editingID = ""
	e.slugManual = false
	e.lastErr = nil
	e.mu.Unlock()

	e.changed(ctx, action, id)
	e.Refresh(ctx)
	return nil
}

func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeList
	e.draft = e.resource.Blank()
	e.editingID = ""
	e.slugManual = false
	e.lastErr = nil
}

// Delete removes id only when confirmed, then reloads the list.
func (e *Editor[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errs.ErrConfirmationRequired
	}

	if err := e.resource.Delete(ctx, id); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EditorDelete").Str("resource", e.Name()).Msg("")
		e.mu.Lock()
		e.lastErr = err
		e.mu.Unlock()
		return err
	}

	e.changed(ctx, ActionDeleted, id)
	e.Refresh(ctx)
	return nil
}

func (e *Editor[T]) ReorderImages(urls []string) error {
	return e.withImages(func(l *domain.ImageList) { l.Reorder(urls) })
}

func (e *Editor[T]) RemoveImage(url string) error {
	return e.withImages(func(l *domain.ImageList) { l.Remove(url) })
}

func (e *Editor[T]) MoveImage(active, over string) error {
	return e.withImages(func(l *domain.ImageList) { l.Drop(active, over) })
}

func (e *Editor[T]) AppendImages(urls ...string) error {
	return e.withImages(func(l *domain.ImageList) { l.Append(urls...) })
}

// CanAcceptImages fails when images could not be added to the draft, so an
// upload can be refused before anything reaches the image host.
func (e *Editor[T]) CanAcceptImages() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.draftImages()
	return err
}

func (e *Editor[T]) withImages(fn func(l *domain.ImageList)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	images, err := e.draftImages()
	if err != nil {
		return err
	}

	list := domain.NewImageList(*images)
	fn(list)
	*images = list.URLs()
	return nil
}

// draftImages must be called with e.mu held.
func (e *Editor[T]) draftImages() (*[]string, error) {
	if e.mode != ModeEditor {
		return nil, errs.ErrNotEditing
	}
	f := e.resource.Fields(&e.draft)
	if f.Images == nil {
		return nil, errs.ErrNotSupported
	}
	return f.Images, nil
}

func (e *Editor[T]) View() EditorView[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	blank := e.resource.Blank()
	view := EditorView[T]{
		Resource:   e.Name(),
		Mode:       e.mode,
		Items:      append([]T{}, e.items...),
		EditingID:  e.editingID,
		Creating:   e.mode == ModeEditor && e.editingID == "",
		SlugManual: e.slugManual,
		HasImages:  e.resource.Fields(&blank).Images != nil,
	}
	if e.mode == ModeEditor {
		if draft, err := clone(e.draft); err == nil {
			view.Draft = &draft
		}
	}
	if e.lastErr != nil {
		view.Error = e.lastErr.Error()
	}
	return view
}

func (e *Editor[T]) Snapshot() interface{} {
	return e.View()
}

func (e *Editor[T]) changed(ctx context.Context, action, id string) {
	if e.publisher == nil {
		return
	}
	msg := dto.KafkaMessage{
		EventType: dto.EventCatalogChanged,
		Data:      dto.CatalogChange{Resource: e.Name(), Action: action, ID: id},
	}
	if err := e.publisher.Publish(ctx, e.Name(), msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "EditorChanged").Msg("failed to publish catalog event")
	}
}

func clone[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

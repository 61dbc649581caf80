package admin

import (
	"fmt"
	"sync"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/errs"
)

// Workspace is one session's admin state.
type Workspace struct {
	Products   *Editor[domain.Product]
	Categories *Editor[domain.Category]
	Projects   *Editor[domain.Project]
	Companies  *Editor[domain.Company]
	Orders     *OrderBoard

	mu       sync.Mutex
	lastUsed time.Time
}

func NewWorkspace(backend Backend, publisher EventPublisher) *Workspace {
	return &Workspace{
		Products:   NewEditor[domain.Product](ProductResource{backend: backend}, publisher),
		Categories: NewEditor[domain.Category](CategoryResource{backend: backend}, publisher),
		Projects:   NewEditor[domain.Project](ProjectResource{backend: backend}, publisher),
		Companies:  NewEditor[domain.Company](CompanyResource{backend: backend}, publisher),
		Orders:     NewOrderBoard(backend, publisher),
	}
}

// Editor looks up a resource editor by its route name.
func (w *Workspace) Editor(resource string) (Handle, error) {
	switch resource {
	case ResourceProducts:
		return w.Products, nil
	case ResourceCategories:
		return w.Categories, nil
	case ResourceProjects:
		return w.Projects, nil
	case ResourceCompanies:
		return w.Companies, nil
	}
	return nil, fmt.Errorf("admin resource %q: %w", resource, errs.ErrNotFound)
}

type Registry struct {
	backend   Backend
	publisher EventPublisher
	now       func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func CreateRegistry(backend Backend, publisher EventPublisher) *Registry {
	return &Registry{
		backend:    backend,
		publisher:  publisher,
		now:        time.Now,
		workspaces: map[string]*Workspace{},
	}
}

// Get returns the session's workspace, creating it on first use.
func (r *Registry) Get(sessionID string) *Workspace {
	r.mu.Lock()
	w, ok := r.workspaces[sessionID]
	if !ok {
		w = NewWorkspace(r.backend, r.publisher)
		r.workspaces[sessionID] = w
	}
	r.mu.Unlock()

	w.mu.Lock()
	w.lastUsed = r.now()
	w.mu.Unlock()
	return w
}

func (r *Registry) Evict(sessionIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range sessionIDs {
		delete(r.workspaces, id)
	}
}

// Sweep drops workspaces unused for longer than idle and returns how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	n := 0
	for id, w := range r.workspaces {
		w.mu.Lock()
		stale := w.lastUsed.Before(cutoff)
		w.mu.Unlock()
		if stale {
			delete(r.workspaces, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

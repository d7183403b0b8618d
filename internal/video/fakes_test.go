// AngelaMos | 2026
// fakes_test.go

package video

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tkprod/portfolio-api/internal/core"
)

type memoryRepo struct {
	mu     sync.Mutex
	videos map[string]*Video
	last   ListParams
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{videos: make(map[string]*Video)}
}

func (m *memoryRepo) Create(_ context.Context, v *Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *v
	m.videos[v.ID] = &cp
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[id]
	if !ok {
		return nil, fmt.Errorf("get video: %w", core.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

func (m *memoryRepo) Update(_ context.Context, v *Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.videos[v.ID]; !ok {
		return fmt.Errorf("update video: %w", core.ErrNotFound)
	}
	cp := *v
	m.videos[v.ID] = &cp
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.videos[id]; !ok {
		return fmt.Errorf("delete video: %w", core.ErrNotFound)
	}
	delete(m.videos, id)
	return nil
}

func (m *memoryRepo) List(_ context.Context, params ListParams) ([]Video, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = params

	var out []Video
	for _, v := range m.videos {
		if params.Category != "" && params.Category != AllCategories &&
			v.Category != params.Category {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	total := len(out)
	start := min(params.Offset(), total)
	end := min(start+params.Limit, total)
	return out[start:end], total, nil
}

func (m *memoryRepo) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.videos), nil
}

type categorySet map[string]bool

func (c categorySet) CategoryExists(_ context.Context, id string) (bool, error) {
	return c[id], nil
}

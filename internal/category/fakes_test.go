// AngelaMos | 2026
// fakes_test.go

package category

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tkprod/portfolio-api/internal/core"
	"github.com/tkprod/portfolio-api/internal/video"
)

// memoryStore backs both fake repositories so a rename is visible to the
// video side exactly as the shared tables would be.
type memoryStore struct {
	mu         sync.Mutex
	categories map[string]Category
	videos     map[string]video.Video
	renames    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		categories: make(map[string]Category),
		videos:     make(map[string]video.Video),
	}
}

type categoryRepo struct{ s *memoryStore }

func (r categoryRepo) List(context.Context) ([]Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NamePT < out[j].NamePT })
	return out, nil
}

func (r categoryRepo) GetByID(_ context.Context, id string) (*Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	return &c, nil
}

func (r categoryRepo) ExistsByCategoryID(_ context.Context, slug string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.slugTakenLocked(slug, ""), nil
}

func (r categoryRepo) Create(_ context.Context, c *Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.slugTakenLocked(c.CategoryID, "") {
		return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) Update(_ context.Context, c *Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.updateLocked(c)
}

func (r categoryRepo) Rename(_ context.Context, c *Category, previous string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.updateLocked(c); err != nil {
		return 0, err
	}
	r.s.renames++

	var moved int64
	for id, v := range r.s.videos {
		if v.Category == previous {
			v.Category = c.CategoryID
			r.s.videos[id] = v
			moved++
		}
	}
	return moved, nil
}

func (r categoryRepo) CountVideos(_ context.Context, slug string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, v := range r.s.videos {
		if v.Category == slug {
			n++
		}
	}
	return n, nil
}

func (r categoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return fmt.Errorf("delete category: %w", core.ErrNotFound)
	}
	delete(r.s.categories, id)
	return nil
}

func (r categoryRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.categories), nil
}

func (s *memoryStore) slugTakenLocked(slug, exceptID string) bool {
	for id, c := range s.categories {
		if c.CategoryID == slug && id != exceptID {
			return true
		}
	}
	return false
}

func (s *memoryStore) updateLocked(c *Category) error {
	if _, ok := s.categories[c.ID]; !ok {
		return fmt.Errorf("update category: %w", core.ErrNotFound)
	}
	if s.slugTakenLocked(c.CategoryID, c.ID) {
		return fmt.Errorf("update category: %w", core.ErrDuplicateKey)
	}
	s.categories[c.ID] = *c
	return nil
}

type videoRepo struct{ s *memoryStore }

func (r videoRepo) Create(_ context.Context, v *video.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.videos[v.ID] = *v
	return nil
}

func (r videoRepo) GetByID(_ context.Context, id string) (*video.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.videos[id]
	if !ok {
		return nil, fmt.Errorf("get video: %w", core.ErrNotFound)
	}
	return &v, nil
}

func (r videoRepo) Update(_ context.Context, v *video.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.videos[v.ID] = *v
	return nil
}

func (r videoRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.videos[id]; !ok {
		return fmt.Errorf("delete video: %w", core.ErrNotFound)
	}
	delete(r.s.videos, id)
	return nil
}

func (r videoRepo) List(_ context.Context, p video.ListParams) ([]video.Video, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []video.Video
	for _, v := range r.s.videos {
		if p.Category != "" && p.Category != video.AllCategories && v.Category != p.Category {
			continue
		}
		out = append(out, v)
	}
	return out, len(out), nil
}

func (r videoRepo) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.videos), nil
}

func (s *memoryStore) videoCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v.Category)
	}
	return out
}

// Package memory provides in-memory repositories with the same ordering and
// referential rules as the PostgreSQL schema. It backs service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

// Store holds all tables behind one lock.
type Store struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      map[int64]model.User
	categories map[int64]model.Category
	courses    map[int64]model.Course
	nextUser   int64
	nextCat    int64
	nextCourse int64
}

func New() *Store {
	return &Store{
		now:        time.Now,
		users:      map[int64]model.User{},
		categories: map[int64]model.Category{},
		courses:    map[int64]model.Course{},
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Users() repository.UserRepository          { return userRepo{s} }
func (s *Store) Categories() repository.CategoryRepository { return categoryRepo{s} }
func (s *Store) Courses() repository.CourseRepository      { return courseRepo{s} }

// DeleteUser removes a user and cascades to the courses they teach.
func (s *Store) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for cid, c := range s.courses {
		if c.InstructorID == id {
			delete(s.courses, cid)
		}
	}
}

func duplicate(constraint string) error {
	return &repository.ConstraintError{Err: repository.ErrDuplicate, Constraint: constraint}
}

func foreignKey(constraint string) error {
	return &repository.ConstraintError{Err: repository.ErrForeignKey, Constraint: constraint}
}

type userRepo struct{ s *Store }

func (r userRepo) CreateUser(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return duplicate(repository.UsersUsernameKey)
		}
		if existing.Email == u.Email {
			return duplicate(repository.UsersEmailKey)
		}
	}
	r.s.nextUser++
	u.ID = r.s.nextUser
	u.IsActive = true
	u.DateJoined = r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, _ := r.GetUserByUsername(ctx, username)
	return u != nil, nil
}

func (r userRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r userRepo) UpdateUserNames(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	r.s.users[u.ID] = existing
	*u = existing
	return nil
}

type categoryRepo struct{ s *Store }

func (r categoryRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r categoryRepo) GetCategoryByID(_ context.Context, id int64) (*model.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r categoryRepo) nameTaken(name string, except int64) bool {
	for _, c := range r.s.categories {
		if c.Name == name && c.ID != except {
			return true
		}
	}
	return false
}

func (r categoryRepo) CreateCategory(_ context.Context, c *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return duplicate(repository.CategoriesNameKey)
	}
	r.s.nextCat++
	now := r.s.now()
	c.ID, c.CreatedAt, c.UpdatedAt = r.s.nextCat, now, now
	r.s.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) UpdateCategory(_ context.Context, c *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.categories[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.nameTaken(c.Name, c.ID) {
		return duplicate(repository.CategoriesNameKey)
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.s.now()
	r.s.categories[c.ID] = *c
	return nil
}

// DeleteCategory clears the category on referencing courses, like ON DELETE SET NULL.
func (r categoryRepo) DeleteCategory(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.categories, id)
	for cid, c := range r.s.courses {
		if c.CategoryID != nil && *c.CategoryID == id {
			c.CategoryID = nil
			r.s.courses[cid] = c
		}
	}
	return nil
}

type courseRepo struct{ s *Store }

// joined fills the read-only names the SQL query gets from joins. Caller holds the lock.
func (r courseRepo) joined(c model.Course) model.Course {
	c.CategoryName = nil
	if c.CategoryID != nil {
		if cat, ok := r.s.categories[*c.CategoryID]; ok {
			name := cat.Name
			c.CategoryName = &name
		}
	}
	c.InstructorUsername = r.s.users[c.InstructorID].Username
	return c
}

func (r courseRepo) ListCourses(_ context.Context) ([]model.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		out = append(out, r.joined(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r courseRepo) GetCourseByID(_ context.Context, id int64) (*model.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.courses[id]
	if !ok {
		return nil, nil
	}
	c = r.joined(c)
	return &c, nil
}

func (r courseRepo) checkRefs(c *model.Course) error {
	if c.CategoryID != nil {
		if _, ok := r.s.categories[*c.CategoryID]; !ok {
			return foreignKey(repository.CoursesCategoryFKey)
		}
	}
	if _, ok := r.s.users[c.InstructorID]; !ok {
		return foreignKey(repository.CoursesInstructorFKey)
	}
	return nil
}

func (r courseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(c); err != nil {
		return err
	}
	r.s.nextCourse++
	now := r.s.now()
	c.ID, c.CreatedAt, c.UpdatedAt = r.s.nextCourse, now, now
	r.s.courses[c.ID] = *c
	*c = r.joined(*c)
	return nil
}

func (r courseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.courses[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	c.InstructorID = existing.InstructorID
	if err := r.checkRefs(c); err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.s.now()
	r.s.courses[c.ID] = *c
	*c = r.joined(*c)
	return nil
}

func (r courseRepo) DeleteCourse(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.courses, id)
	return nil
}

package impl

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"lectern/internal/domain/entity"
	"lectern/internal/domain/repository"
)

// In-memory repository fakes. Each supports a forced error so failure paths
// can be exercised without a database.

type fakeTeacherRepo struct {
	mu       sync.Mutex
	nextID   int64
	byEmail  map[string]*entity.Teacher
	forceErr error
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{byEmail: make(map[string]*entity.Teacher)}
}

func (r *fakeTeacherRepo) FindByEmail(_ context.Context, email string) (*entity.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	teacher, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrTeacherNotFound
	}
	copied := *teacher

	return &copied, nil
}

func (r *fakeTeacherRepo) FindByUUID(_ context.Context, uuid string) (*entity.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	for _, teacher := range r.byEmail {
		if teacher.UUID == uuid {
			copied := *teacher

			return &copied, nil
		}
	}

	return nil, repository.ErrTeacherNotFound
}

func (r *fakeTeacherRepo) Create(_ context.Context, teacher *entity.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	if _, ok := r.byEmail[teacher.Email]; ok {
		return repository.ErrUniqueViolation
	}

	r.nextID++
	teacher.ID = r.nextID
	copied := *teacher
	r.byEmail[teacher.Email] = &copied

	return nil
}

func (r *fakeTeacherRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.byEmail)), nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	nextID   int64
	byUUID     map[string]*entity.Session
	forceErr   error
	saveErr    error
	destroyErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byUUID: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) FindByUUID(_ context.Context, uuid string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return nil, r.forceErr
	}

	session, ok := r.byUUID[uuid]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	copied := *session

	return &copied, nil
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forceErr != nil {
		return r.forceErr
	}

	r.nextID++
	session.ID = r.nextID
	copied := *session
	r.byUUID[session.UUID] = &copied

	return nil
}

func (r *fakeSessionRepo) Save(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	if r.forceErr != nil {
		return r.forceErr
	}

	stored, ok := r.byUUID[session.UUID]
	if !ok {
		return repository.ErrSessionNotFound
	}
	stored.AccessToken = session.AccessToken
	stored.AccessTokenExpiresAt = session.AccessTokenExpiresAt

	return nil
}

func (r *fakeSessionRepo) Destroy(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyErr != nil {
		return r.destroyErr
	}
	if r.forceErr != nil {
		return r.forceErr
	}

	if _, ok := r.byUUID[session.UUID]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.byUUID, session.UUID)

	return nil
}

func (r *fakeSessionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.byUUID)), nil
}

// fakeHasher is a transparent stand-in for the argon2 hasher.
type fakeHasher struct {
	digestCalls int
	digestErr   error
	verifyErr   error
}

func (h *fakeHasher) Digest(password string) (string, error) {
	h.digestCalls++
	if h.digestErr != nil {
		return "", h.digestErr
	}

	return "digest:" + password, nil
}

func (h *fakeHasher) Verify(password, digest string) (bool, error) {
	if h.verifyErr != nil {
		return false, h.verifyErr
	}

	return strings.TrimPrefix(digest, "digest:") == password, nil
}

// fakeTokenGen hands out predictable sequential tokens.
type fakeTokenGen struct {
	counter int
	err     error
}

func (g *fakeTokenGen) Generate() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.counter++

	return fmt.Sprintf("token-%d", g.counter), nil
}

// recordingReporter captures everything reported.
type recordingReporter struct {
	mu       sync.Mutex
	reported []error
}

func (r *recordingReporter) Report(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reported = append(r.reported, err)
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.reported)
}

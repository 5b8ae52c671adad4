package services

import (
	"context"
	"fmt"
	"strings"

	"eventsplatform/internal/domain"
)

// In-memory fakes for the repository and adapter ports. Each fake exposes
// err fields so tests can force failures on specific calls.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
	nextID    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeTokenService struct {
	issued      []string
	invalidated []string
	issueErr    error
}

func (f *fakeTokenService) Issue(userID string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	token := "token-for-" + userID
	f.issued = append(f.issued, token)
	return token, nil
}

func (f *fakeTokenService) Verify(_ context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, "token-for-") {
		return "", domain.ErrUnauthorized
	}
	return strings.TrimPrefix(token, "token-for-"), nil
}

func (f *fakeTokenService) Invalidate(_ context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}

type fakeEventRepo struct {
	events    map[string]*domain.Event
	createErr error
	updateErr error
	nextID    int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = fmt.Sprintf("event-%d", f.nextID)
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeGalleryRepo struct {
	galleries map[string]*domain.EventGallery
	createErr error
	updateErr error
	nextID    int
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{galleries: make(map[string]*domain.EventGallery)}
}

func (f *fakeGalleryRepo) Create(_ context.Context, g *domain.EventGallery) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	g.ID = fmt.Sprintf("gallery-%d", f.nextID)
	cp := *g
	f.galleries[g.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) List(_ context.Context) ([]*domain.EventGallery, error) {
	var out []*domain.EventGallery
	for _, g := range f.galleries {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeGalleryRepo) GetByID(_ context.Context, id string) (*domain.EventGallery, error) {
	g, ok := f.galleries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGalleryRepo) Update(_ context.Context, g *domain.EventGallery) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.galleries[g.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *g
	f.galleries[g.ID] = &cp
	return nil
}

func (f *fakeGalleryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.galleries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.galleries, id)
	return nil
}

type fakeContactRepo struct {
	messages  []*domain.ContactMessage
	createErr error
}

func (f *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	msg.ID = fmt.Sprintf("contact-%d", len(f.messages)+1)
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	return f.messages, nil
}

// fakeBlobStore records saved files by path and can fail a save once a
// given number of files already exist (failAfter) or fail every delete.
type fakeBlobStore struct {
	files     map[string][]byte
	saveErr   error
	failAfter int
	deleteErr error
	deleted   []string
	seq       int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{files: make(map[string][]byte), failAfter: -1}
}

func (f *fakeBlobStore) Save(_ context.Context, dir, name string, data []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if f.failAfter >= 0 && len(f.files) >= f.failAfter {
		return "", fmt.Errorf("disk full")
	}
	f.seq++
	path := fmt.Sprintf("%s/%s", dir, name)
	f.files[path] = data
	return path, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.files, path)
	return nil
}

func (f *fakeBlobStore) URL(path string) string {
	return "http://localhost:8080/" + path
}

type fakeMailer struct {
	sent    []string
	sendErr error
}

func (f *fakeMailer) Send(to, subject, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"questlog/internal/domain"
)

// DB is the shared in-memory store. A single mutex guards all collections so
// cross-collection operations (the user cascade, folder nullification) stay
// atomic. Repositories are obtained from the New*Repo methods.
type DB struct {
	mu       sync.Mutex
	users    []domain.User
	journals []domain.Journal
	folders  []domain.Folder
	quests   []domain.Quest
	sessions map[string]domain.Session

	userIDCounter    int64
	journalIDCounter int64
	folderIDCounter  int64
	questIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.JournalRepository = (*JournalRepo)(nil)
var _ domain.FolderRepository = (*FolderRepo)(nil)
var _ domain.QuestRepository = (*QuestRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// UserRepo implements user persistence over the shared store.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a user repository.
func (db *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: db}
}

// GetByUsername retrieves a user by username, nil if absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID, nil if absent.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, in *domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == in.Username {
			return nil, errors.New("user already exists")
		}
	}

	r.db.userIDCounter++
	u := *in
	u.ID = r.db.userIDCounter
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.db.users = append(r.db.users, u)
	cp := u
	return &cp, nil
}

// Update replaces the stored user record.
func (r *UserRepo) Update(ctx context.Context, in *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID == in.ID {
			cp := *in
			cp.UpdatedAt = time.Now().UTC()
			r.db.users[i] = cp
			return nil
		}
	}
	return errors.New("user not found")
}

// Delete removes the user and cascades to journals, folders, quests, and
// sessions, all under one lock.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID == id {
			r.db.users = append(r.db.users[:i], r.db.users[i+1:]...)

			r.db.journals = filterJournals(r.db.journals, func(j domain.Journal) bool { return j.UserID != id })
			r.db.folders = filterFolders(r.db.folders, func(f domain.Folder) bool { return f.UserID != id })
			r.db.quests = filterQuests(r.db.quests, func(q domain.Quest) bool { return q.UserID != id })
			for token, s := range r.db.sessions {
				if s.UserID == id {
					delete(r.db.sessions, token)
				}
			}
			return nil
		}
	}
	return nil
}

// Count returns the total number of users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.users), nil
}

// --- JournalRepository ---

// JournalRepo implements journal persistence over the shared store.
type JournalRepo struct {
	db *DB
}

// NewJournalRepo creates a journal repository.
func (db *DB) NewJournalRepo() *JournalRepo {
	return &JournalRepo{db: db}
}

// Create stores a new journal.
func (r *JournalRepo) Create(ctx context.Context, in *domain.Journal) (*domain.Journal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.journalIDCounter++
	j := *in
	j.ID = r.db.journalIDCounter
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	j.UpdatedAt = j.CreatedAt
	r.db.journals = append(r.db.journals, j)
	cp := j
	return &cp, nil
}

// GetByID returns one of the user's journals, nil if absent or foreign.
func (r *JournalRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Journal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, j := range r.db.journals {
		if j.ID == id && j.UserID == userID {
			cp := j
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's journals, newest first.
func (r *JournalRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Journal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.listLocked(userID, func(domain.Journal) bool { return true }), nil
}

// ListByFolder returns the user's journals filed in the given folder.
func (r *JournalRepo) ListByFolder(ctx context.Context, userID, folderID int64) ([]domain.Journal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.listLocked(userID, func(j domain.Journal) bool {
		return j.FolderID != nil && *j.FolderID == folderID
	}), nil
}

// ListUnassigned returns the user's journals with no folder.
func (r *JournalRepo) ListUnassigned(ctx context.Context, userID int64) ([]domain.Journal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.listLocked(userID, func(j domain.Journal) bool { return j.FolderID == nil }), nil
}

func (r *JournalRepo) listLocked(userID int64, keep func(domain.Journal) bool) []domain.Journal {
	out := make([]domain.Journal, 0)
	for _, j := range r.db.journals {
		if j.UserID == userID && keep(j) {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Update replaces the stored journal record, keyed by owner and id.
func (r *JournalRepo) Update(ctx context.Context, in *domain.Journal) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.journals {
		if r.db.journals[i].ID == in.ID && r.db.journals[i].UserID == in.UserID {
			cp := *in
			cp.UpdatedAt = time.Now().UTC()
			r.db.journals[i] = cp
			return nil
		}
	}
	return errors.New("journal not found")
}

// Delete removes one of the user's journals.
func (r *JournalRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.journals = filterJournals(r.db.journals, func(j domain.Journal) bool {
		return !(j.ID == id && j.UserID == userID)
	})
	return nil
}

// CountByUser counts the user's journals.
func (r *JournalRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := 0
	for _, j := range r.db.journals {
		if j.UserID == userID {
			n++
		}
	}
	return n, nil
}

// CreationTimes returns the creation timestamps of the user's journals.
func (r *JournalRepo) CreationTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]time.Time, 0)
	for _, j := range r.db.journals {
		if j.UserID == userID {
			out = append(out, j.CreatedAt)
		}
	}
	return out, nil
}

// --- FolderRepository ---

// FolderRepo implements folder persistence over the shared store.
type FolderRepo struct {
	db *DB
}

// NewFolderRepo creates a folder repository.
func (db *DB) NewFolderRepo() *FolderRepo {
	return &FolderRepo{db: db}
}

// Create stores a new folder.
func (r *FolderRepo) Create(ctx context.Context, in *domain.Folder) (*domain.Folder, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.folderIDCounter++
	f := *in
	f.ID = r.db.folderIDCounter
	f.CreatedAt = time.Now().UTC()
	f.Journals = nil
	r.db.folders = append(r.db.folders, f)
	cp := f
	return &cp, nil
}

// GetByID returns one of the user's folders, nil if absent or foreign.
func (r *FolderRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Folder, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, f := range r.db.folders {
		if f.ID == id && f.UserID == userID {
			cp := f
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's folders in creation order.
func (r *FolderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Folder, 0)
	for _, f := range r.db.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

// Update replaces the stored folder record, keyed by owner and id.
func (r *FolderRepo) Update(ctx context.Context, in *domain.Folder) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.folders {
		if r.db.folders[i].ID == in.ID && r.db.folders[i].UserID == in.UserID {
			cp := *in
			cp.Journals = nil
			r.db.folders[i] = cp
			return nil
		}
	}
	return errors.New("folder not found")
}

// Delete removes one of the user's folders and nullifies the folder
// reference on any journals filed in it.
func (r *FolderRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.folders = filterFolders(r.db.folders, func(f domain.Folder) bool {
		return !(f.ID == id && f.UserID == userID)
	})
	for i := range r.db.journals {
		j := &r.db.journals[i]
		if j.UserID == userID && j.FolderID != nil && *j.FolderID == id {
			j.FolderID = nil
		}
	}
	return nil
}

// --- QuestRepository ---

// QuestRepo implements quest persistence over the shared store.
type QuestRepo struct {
	db *DB
}

// NewQuestRepo creates a quest repository.
func (db *DB) NewQuestRepo() *QuestRepo {
	return &QuestRepo{db: db}
}

// Create stores a new quest.
func (r *QuestRepo) Create(ctx context.Context, in *domain.Quest) (*domain.Quest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.questIDCounter++
	q := *in
	q.ID = r.db.questIDCounter
	q.CreatedAt = time.Now().UTC()
	q.UpdatedAt = q.CreatedAt
	r.db.quests = append(r.db.quests, q)
	cp := q
	return &cp, nil
}

// GetByID returns one of the user's quests, nil if absent or foreign.
func (r *QuestRepo) GetByID(ctx context.Context, userID, id int64) (*domain.Quest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, q := range r.db.quests {
		if q.ID == id && q.UserID == userID {
			cp := q
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's quests in creation order.
func (r *QuestRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Quest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Quest, 0)
	for _, q := range r.db.quests {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

// Update replaces the stored quest record, keyed by owner and id.
func (r *QuestRepo) Update(ctx context.Context, in *domain.Quest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.quests {
		if r.db.quests[i].ID == in.ID && r.db.quests[i].UserID == in.UserID {
			cp := *in
			cp.UpdatedAt = time.Now().UTC()
			r.db.quests[i] = cp
			return nil
		}
	}
	return errors.New("quest not found")
}

// Delete removes one of the user's quests.
func (r *QuestRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.quests = filterQuests(r.db.quests, func(q domain.Quest) bool {
		return !(q.ID == id && q.UserID == userID)
	})
	return nil
}

// CountCompleted counts the user's quests with completed set.
func (r *QuestRepo) CountCompleted(ctx context.Context, userID int64) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := 0
	for _, q := range r.db.quests {
		if q.UserID == userID && q.Completed {
			n++
		}
	}
	return n, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence over the shared store.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token, nil if absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := s
		return &cp, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}

func filterJournals(in []domain.Journal, keep func(domain.Journal) bool) []domain.Journal {
	out := in[:0]
	for _, j := range in {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out
}

func filterFolders(in []domain.Folder, keep func(domain.Folder) bool) []domain.Folder {
	out := in[:0]
	for _, f := range in {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func filterQuests(in []domain.Quest, keep func(domain.Quest) bool) []domain.Quest {
	out := in[:0]
	for _, q := range in {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	dom "github.com/selmenealex/my-finance/internal/domain"
)

// FileUserRepo implements UserRepo with a single JSON file holding the whole
// user list. Every call reloads the file and every mutation rewrites it in
// full. Writes go through a temp file and rename so a reader never sees a
// torn file, but there is no lock across the read-modify-write cycle:
// concurrent writers race and the last rename wins, dropping the other
// write. The original deployment behaved the same way; keep it that way.
type FileUserRepo struct {
	path string
}

// NewFileUserRepo returns a repo backed by the JSON file at path. A missing
// file reads as an empty user list.
func NewFileUserRepo(path string) *FileUserRepo {
	return &FileUserRepo{path: path}
}

// GetByUsername returns the user by username.
func (r *FileUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	users, err := r.load()
	if err != nil {
		return dom.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, ErrNotFound
}

// Create appends a new user and rewrites the file.
func (r *FileUserRepo) Create(ctx context.Context, username, passwordHash string, data json.RawMessage) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username {
			return ErrDuplicateUsername
		}
	}
	users = append(users, dom.User{Username: username, PasswordHash: passwordHash, Data: data})
	return r.save(users)
}

// ReplaceData overwrites the user's data blob and rewrites the file.
func (r *FileUserRepo) ReplaceData(ctx context.Context, username string, data json.RawMessage) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	idx := -1
	for i, u := range users {
		if u.Username == username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	users[idx].Data = data
	return r.save(users)
}

func (r *FileUserRepo) load() ([]dom.User, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var users []dom.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *FileUserRepo) save(users []dom.User) error {
	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	// Unique temp file per writer: concurrent saves each rename their own
	// complete file, so the survivor is always whole.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

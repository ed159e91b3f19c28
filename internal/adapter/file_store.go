package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"game-library/internal/core/model"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON document per game, named <id>.json, in a directory.
// Catalog order is filename order.
type FileStore struct {
	Dir string
	log *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{Dir: dir, log: logger}
}

// LoadGames reads every *.json file. Files that cannot be read or decoded, or
// whose id does not match the file name, are skipped with a warning; a missing
// directory is an empty catalog.
func (s *FileStore) LoadGames(ctx context.Context) ([]model.RawGame, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.RawGame{}, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", s.Dir, err)
	}

	out := make([]model.RawGame, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			s.log.WarnContext(ctx, "skipping unreadable game file", "file", e.Name(), "err", err)
			continue
		}
		raw, err := model.DecodeRawGame(data)
		if err != nil {
			s.log.WarnContext(ctx, "skipping malformed game file", "file", e.Name(), "err", err)
			continue
		}
		if id, _ := raw["id"].(string); id != strings.TrimSuffix(e.Name(), ".json") {
			s.log.WarnContext(ctx, "skipping game file with mismatched id", "file", e.Name(), "id", id)
			continue
		}
		out = append(out, raw)
	}
	return out, nil
}

func (s *FileStore) GetByID(_ context.Context, id string) (model.Game, error) {
	path, err := s.path(id)
	if err != nil {
		return model.Game{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Game{}, model.GameNotFound(id)
	}
	if err != nil {
		return model.Game{}, model.UnknownPersistenceError(err)
	}
	raw, err := model.DecodeRawGame(data)
	if err != nil {
		return model.Game{}, model.UnknownPersistenceError(err)
	}
	return model.NewGame(raw)
}

// Save writes the record to a temporary file and renames it into place so a
// reader never sees a half-written document.
func (s *FileStore) Save(_ context.Context, g model.Game) error {
	path, err := s.path(g.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return model.UnknownPersistenceError(err)
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return model.UnknownPersistenceError(err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+g.ID+".*.tmp")
	if err != nil {
		return model.UnknownPersistenceError(err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return model.UnknownPersistenceError(err)
	}
	if err := tmp.Close(); err != nil {
		return model.UnknownPersistenceError(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return model.UnknownPersistenceError(err)
	}
	return nil
}

// path maps an id to its file, rejecting ids that would escape the directory.
func (s *FileStore) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", model.InvalidPath(filepath.Join(s.Dir, id+".json"))
	}
	return filepath.Join(s.Dir, id+".json"), nil
}

package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rangemap/aoc/internal/config"
)

var (
	ErrNoSession = errors.New("no session cookie configured")
	ErrFetch     = errors.New("fetching puzzle input")
)

// Fetcher loads puzzle input, preferring a cached copy on disk and
// downloading it with the user's session cookie otherwise.
type Fetcher struct {
	cfg    config.Config
	client *http.Client
	log    *zap.Logger
}

func NewFetcher(cfg config.Config, log *zap.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Path returns the cache file for day's input.
func (f *Fetcher) Path(day int) string {
	return filepath.Join(f.cfg.InputDir, fmt.Sprintf("%d.input", day))
}

// Input returns day's input, from the cache file if present.
// Downloaded input is written to the cache.
func (f *Fetcher) Input(ctx context.Context, day int) ([]byte, error) {
	path := f.Path(day)
	b, err := os.ReadFile(path)
	if err == nil {
		f.log.Debug("using cached input", zap.String("path", path))
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	session, err := f.session()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(f.cfg.BaseURL, "/"), f.cfg.Year, day)
	f.log.Info("fetching input", zap.String("url", url))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: bad status: %v", ErrFetch, res.Status)
	}
	b, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if err := os.MkdirAll(f.cfg.InputDir, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return nil, err
	}
	f.log.Debug("cached input", zap.String("path", path), zap.Int("bytes", len(b)))
	return b, nil
}

func (f *Fetcher) session() (string, error) {
	if s := strings.TrimSpace(f.cfg.Session); s != "" {
		return s, nil
	}
	if f.cfg.SessionFile == "" {
		return "", ErrNoSession
	}
	b, err := os.ReadFile(f.cfg.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrNoSession, f.cfg.SessionFile)
	}
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", ErrNoSession
	}
	return s, nil
}

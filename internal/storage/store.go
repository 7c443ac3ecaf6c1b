package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/blissart/internal/paint"
)

const (
	metadataFile = "metadata.json"
	canvasFile   = "canvas.txt"
)

// Store keeps painted canvases under baseDir, one directory per render.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}
	return nil
}

type RenderMetadata struct {
	ID        string    `json:"id"`
	Style     string    `json:"style"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Theme     string    `json:"theme"`
}

// Save records canvas with its metadata and returns the render id. A
// failed save leaves no render directory behind.
func (s *Store) Save(canvas *paint.Canvas, seed int64, theme string) (string, error) {
	now := s.now()
	renderID := fmt.Sprintf("%s_%d", canvas.Style, now.UnixNano())
	renderDir := filepath.Join(s.baseDir, renderID)

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}

	meta := RenderMetadata{
		ID:        renderID,
		Style:     canvas.Style,
		Timestamp: now,
		Seed:      seed,
		Width:     canvas.Width,
		Height:    canvas.Height,
		Theme:     theme,
	}

	if err := s.writeRender(renderDir, &meta, canvas); err != nil {
		os.RemoveAll(renderDir)
		return "", err
	}

	return renderID, nil
}

func (s *Store) writeRender(renderDir string, meta *RenderMetadata, canvas *paint.Canvas) error {
	metaFile, err := os.Create(filepath.Join(renderDir, metadataFile))
	if err != nil {
		return fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}

	return WriteText(filepath.Join(renderDir, canvasFile), canvas)
}

// List returns every readable render, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}

	sort.Slice(renders, func(i, j int) bool {
		return renders[i].Timestamp.Before(renders[j].Timestamp)
	})
	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, renderID, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: render %s: %v", paint.ErrIOFailure, renderID, err)
	}

	return &meta, nil
}

// LoadCanvas reads a stored render back into a canvas.
func (s *Store) LoadCanvas(renderID string) (*RenderMetadata, *paint.Canvas, error) {
	meta, err := s.Load(renderID)
	if err != nil {
		return nil, nil, err
	}

	style, err := paint.Lookup(meta.Style)
	if err != nil {
		return nil, nil, err
	}

	lines, err := ReadLines(filepath.Join(s.baseDir, renderID, canvasFile))
	if err != nil {
		return nil, nil, err
	}

	canvas, err := paint.FromLines(style, lines)
	if err != nil {
		return nil, nil, err
	}
	return meta, canvas, nil
}

// WriteText writes the canvas rows joined by newlines, with no trailing
// newline, to path.
func WriteText(path string, canvas *paint.Canvas) error {
	if err := os.WriteFile(path, []byte(canvas.String()), 0644); err != nil {
		return fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}
	return nil
}

// ReadLines reads a text canvas as written by WriteText.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", paint.ErrIOFailure, err)
	}
	return lines, nil
}

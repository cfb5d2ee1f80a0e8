package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/webp"
)

// searchRoots are tried in order, so the game finds its sprites whether it
// runs from the repo root, cmd/game or a test directory.
var searchRoots = []string{"", "assets", filepath.Join("internal", "assets")}

type Request struct {
	Key  string
	Path string
}

type Result struct {
	Key   string
	Image image.Image
	Err   error
}

// Loader decodes images off the main thread. Requests and results travel
// over buffered channels; results are dropped once the loader is closed.
type Loader struct {
	Req  chan Request
	Res  chan Result
	quit chan struct{}
	once sync.Once
}

func NewLoader() *Loader {
	l := &Loader{
		Req:  make(chan Request, 16),
		Res:  make(chan Result, 16),
		quit: make(chan struct{}),
	}

	go l.loop()

	return l
}

// Close stops the worker. It is safe to call more than once.
func (l *Loader) Close() {
	l.once.Do(func() { close(l.quit) })
}

func (l *Loader) loop() {
	for {
		select {
		case <-l.quit:
			return
		case req := <-l.Req:
			img, err := loadImage(req.Path)
			select {
			case l.Res <- Result{Key: req.Key, Image: img, Err: err}:
			case <-l.quit:
				return
			}
		}
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := openFirst(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	return img, nil
}

func openFirst(path string) (*os.File, error) {
	if filepath.IsAbs(path) {
		return os.Open(path)
	}
	for _, root := range searchRoots {
		f, err := os.Open(filepath.Join(root, path))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("asset %s: %w", path, fs.ErrNotExist)
}

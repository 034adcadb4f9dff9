package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"pomotick/internal/core/timer"
)

// DirName is the asset directory looked up next to the data dir and the binary.
const DirName = "res"

// IconName is the optional application icon inside the asset directory.
const IconName = "icon.png"

// Library serves state graphics and the application icon from an asset tree.
type Library struct {
	assets fs.FS
	cache  sync.Map
}

// NewLibrary creates a Library over assets.
func NewLibrary(assets fs.FS) *Library {
	return &Library{assets: assets}
}

// FS returns the underlying asset tree, shared with the audio player.
func (library *Library) FS() fs.FS {
	return library.assets
}

// Graphic returns the image for key, trying <state>_<rest>.png before <state>.png.
func (library *Library) Graphic(key timer.GraphicKey) (fyne.Resource, error) {
	candidates := []string{key.Name() + ".png", key.State.Key() + ".png"}
	var lastErr error
	for _, name := range candidates {
		resource, err := library.load(name)
		if err == nil {
			return resource, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("graphic for %s: %w", key.Name(), lastErr)
}

// Icon returns the application icon.
func (library *Library) Icon() (fyne.Resource, error) {
	return library.load(IconName)
}

func (library *Library) load(name string) (fyne.Resource, error) {
	if cached, ok := library.cache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}
	if library.assets == nil {
		return nil, fmt.Errorf("load resource %s: %w", name, fs.ErrNotExist)
	}

	data, err := fs.ReadFile(library.assets, name)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	library.cache.Store(name, resource)
	return resource, nil
}

// Locate returns the first existing asset directory among dataDir/res and
// <executable dir>/res. The second return value is the chosen path.
func Locate(dataDir string) (fs.FS, string, error) {
	var candidates []string
	if dataDir != "" {
		candidates = append(candidates, filepath.Join(dataDir, DirName))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DirName))
	}

	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return os.DirFS(dir), dir, nil
		}
	}
	return nil, "", errors.New("no asset directory found")
}

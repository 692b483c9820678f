package sdlttf

import (
	"github.com/flopp/go-findfont"
)

// OpenFontMatch locates an installed system font whose file name matches
// name (for example "DejaVuSans" or "arial.ttf") and opens it at ptsize.
// Matching is fuzzy and platform dependent; use [OpenFont] with an explicit
// path when an exact font is required.
func OpenFontMatch(name string, ptsize int) (*Font, error) {
	if ptsize <= 0 {
		return nil, ErrInvalidPointSize
	}
	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}
	Logger().Debug("sdlttf: system font matched", "name", name, "path", path)
	return OpenFont(path, ptsize)
}

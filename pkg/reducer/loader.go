package reducer

import (
	"context"

	"github.com/rmohr/allergens/pkg/api"
	"github.com/rmohr/allergens/pkg/food"
)

type FoodLoader interface {
	Load() (api.Foods, error)
}

type FileLoader struct {
	ctx  context.Context
	path string
}

func (f FileLoader) Load() (api.Foods, error) {
	return food.LoadFile(f.ctx, f.path)
}

func NewFileLoader(ctx context.Context, path string) FileLoader {
	return FileLoader{ctx: ctx, path: path}
}

// StaticLoader serves foods which were already loaded.
type StaticLoader api.Foods

func (s StaticLoader) Load() (api.Foods, error) {
	return api.Foods(s), nil
}

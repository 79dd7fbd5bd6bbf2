package orderjson

import (
	"context"
	"fmt"
	"os"

	"warehouse/internal/core/domain/model/order"
)

// FileReader implements ports.OrderReader over a JSON file on disk.
type FileReader struct {
	path string
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// GetAll reads and decodes the whole file on every call.
func (r *FileReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	orders, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return orders, nil
}

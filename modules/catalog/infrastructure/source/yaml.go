package source

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

//go:embed seed/products.yaml
var seedFS embed.FS

const embeddedSeed = "seed/products.yaml"

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Image       string  `yaml:"image"`
	Price       *string `yaml:"price"`
}

// YAMLSource reads products from a YAML seed file. A nil fsys means the
// path is on disk.
type YAMLSource struct {
	fsys fs.FS
	path string
}

// NewYAMLSource reads the seed at path on disk, or the embedded seed when
// path is empty.
func NewYAMLSource(path string) *YAMLSource {
	if path == "" {
		return &YAMLSource{fsys: seedFS, path: embeddedSeed}
	}
	return &YAMLSource{path: path}
}

// NewYAMLSourceFS reads the seed at path within fsys.
func NewYAMLSourceFS(fsys fs.FS, path string) *YAMLSource {
	return &YAMLSource{fsys: fsys, path: path}
}

func (s *YAMLSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", s.path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed %s: %w", s.path, err)
	}

	products := make([]domain.Product, 0, len(seed.Products))
	for _, p := range seed.Products {
		id, err := types.ParseProductID(p.ID)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		var price decimal.NullDecimal
		if p.Price != nil {
			d, err := decimal.NewFromString(*p.Price)
			if err != nil {
				return nil, fmt.Errorf("product %q price: %w", p.ID, err)
			}
			price = decimal.NewNullDecimal(d)
		}
		products = append(products, domain.Product{
			ID:          id,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Price:       price,
		})
	}
	return products, nil
}

func (s *YAMLSource) read() ([]byte, error) {
	if s.fsys == nil {
		return os.ReadFile(s.path)
	}
	return fs.ReadFile(s.fsys, s.path)
}

var _ domain.ProductSource = (*YAMLSource)(nil)

package browse

import (
	"context"

	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/omdb"
)

// Catalog searches and discovers titles
type Catalog interface {
	Search(ctx context.Context, text string, page int) (*kinopoisk.Page, error)
	Discover(ctx context.Context, params kinopoisk.DiscoverParams) (*kinopoisk.Page, error)
	PageSize() int
}

// DetailSource fetches the detailed record of one title
type DetailSource interface {
	GetMovie(ctx context.Context, imdbID string) (*omdb.Movie, error)
}

// Ensure implementations satisfy the interfaces
var (
	_ Catalog      = (*kinopoisk.Client)(nil)
	_ DetailSource = (*omdb.Client)(nil)
)

// Package kinopoisk provides a client for the Kinopoisk unofficial API
// (api.kinopoisk.dev), used for keyword search and filtered discovery.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := kinopoisk.NewClient(
//		kinopoisk.DefaultBaseURL,
//		os.Getenv("REELSCOUT_KINOPOISK_API_KEY"),
//		logger,
//		kinopoisk.WithTimeout(10*time.Second),
//		kinopoisk.WithPageSize(10),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.Search(ctx, "batman", 1)
//
// Discovery takes repeated genre filters; each value becomes its own
// genres.name query parameter:
//
//	page, err := client.Discover(ctx, kinopoisk.DiscoverParams{
//		Type:   kinopoisk.TypeMovie,
//		Genres: []string{"драма", "криминал"},
//		Year:   "1990-2000",
//	})
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the provider's
// message. Transport failures wrap ErrNoConnection. Both expose a
// PublicMessage that never includes the API key or request URL.
package kinopoisk

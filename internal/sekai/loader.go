package sekai

import (
	"context"

	"github.com/ayutaki/sekai-dl/internal/http"
	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/ayutaki/sekai-dl/internal/sekai/dto"
)

// Loader fetches and parses the four master-data datasets into a
// Catalog.
//
// Loading is atomic: the four fetch+decode steps run sequentially
// inside one retry loop, and any failure in any step discards the
// whole attempt. A partial catalog is never returned. The loop only
// terminates once a pass fully succeeds and the outside-character
// dataset is non-empty.
//
// There is no backoff and no attempt cap. The master-data mirror
// occasionally serves truncated responses, and the pipeline's
// contract is to keep fetching until a consistent snapshot arrives.
//
// Example:
//
//	loader := sekai.NewLoader(client, sekai.DefaultMasterDataBaseURL, onStep, onRetry)
//	catalog, err := loader.LoadCatalog(ctx)
type Loader struct {
	client  *http.Client
	baseURL string

	// onStep receives an informational message after each successful
	// fetch+decode step. May be nil.
	onStep func(message string)

	// onRetry receives the error that discarded an attempt. Retried
	// errors are warnings, never run failures. May be nil.
	onRetry func(err error)
}

// NewLoader creates a Loader against the given master-data base URL.
func NewLoader(client *http.Client, baseURL string, onStep func(string), onRetry func(error)) *Loader {
	return &Loader{
		client:  client,
		baseURL: baseURL,
		onStep:  onStep,
		onRetry: onRetry,
	}
}

// LoadCatalog fetches all four datasets, retrying the whole batch
// until a fully successful pass yields a non-empty outside-character
// collection.
//
// The only error ever returned is the context's, when the run is
// cancelled mid-load.
func (l *Loader) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		catalog, err := l.loadOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.retry(err)
			continue
		}
		if len(catalog.OutsideCharacters) == 0 {
			l.step("Outside characters empty, refetching.")
			continue
		}
		return catalog, nil
	}
}

// loadOnce performs one full four-step attempt. Every step must
// succeed for the attempt to count; the caller discards the result
// otherwise.
func (l *Loader) loadOnce(ctx context.Context) (*model.Catalog, error) {
	var jsonMusics []dto.JSONMusic
	if err := l.client.GetJSON(ctx, l.baseURL+"/musics.json", &jsonMusics); err != nil {
		return nil, err
	}
	musics := make([]*model.Music, 0, len(jsonMusics))
	for i := range jsonMusics {
		musics = append(musics, jsonMusics[i].ToMusic())
	}
	l.step("Fetched music list.")

	var jsonVocals []dto.JSONVocal
	if err := l.client.GetJSON(ctx, l.baseURL+"/musicVocals.json", &jsonVocals); err != nil {
		return nil, err
	}
	vocals := make([]*model.Vocal, 0, len(jsonVocals))
	for i := range jsonVocals {
		vocals = append(vocals, jsonVocals[i].ToVocal())
	}
	l.step("Fetched vocal list.")

	var jsonGame []dto.JSONGameCharacter
	if err := l.client.GetJSON(ctx, l.baseURL+"/gameCharacters.json", &jsonGame); err != nil {
		return nil, err
	}
	game := make(map[int]*model.GameCharacter, len(jsonGame))
	for i := range jsonGame {
		c := jsonGame[i].ToGameCharacter()
		game[c.ID] = c
	}
	l.step("Fetched game characters.")

	var jsonOutside []dto.JSONOutsideCharacter
	if err := l.client.GetJSON(ctx, l.baseURL+"/outsideCharacters.json", &jsonOutside); err != nil {
		return nil, err
	}
	outside := make(map[int]*model.OutsideCharacter, len(jsonOutside))
	for i := range jsonOutside {
		c := jsonOutside[i].ToOutsideCharacter()
		outside[c.ID] = c
	}
	l.step("Fetched outside characters.")

	return model.NewCatalog(musics, vocals, game, outside), nil
}

func (l *Loader) step(message string) {
	if l.onStep != nil {
		l.onStep(message)
	}
}

func (l *Loader) retry(err error) {
	if l.onRetry != nil {
		l.onRetry(err)
	}
}

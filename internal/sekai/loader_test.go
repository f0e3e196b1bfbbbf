package sekai

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ayutaki/sekai-dl/internal/http"
)

const (
	testMusics = `[{"id": 1, "title": "Song A", "lyricist": "X", "composer": "X", "arranger": "-", "assetbundleName": "jacket_s_001"}]`
	testVocals = `[{"id": 10, "musicId": 1, "musicVocalType": "sekai", "characters": [{"characterType": "game_character", "characterId": 21}], "assetbundleName": "se_0001_01"}]`
	testGame   = `[{"id": 21, "firstName": "初音", "givenName": "ミク"}]`
	testGuests = `[{"id": 3, "name": "DECO*27"}]`
)

// masterDataServer serves the four datasets, failing musics.json for
// the first failMusics requests.
func masterDataServer(t *testing.T, failMusics int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var musicsRequests atomic.Int32
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/musics.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if int(musicsRequests.Add(1)) <= failMusics {
			nethttp.Error(w, "upstream error", nethttp.StatusBadGateway)
			return
		}
		w.Write([]byte(testMusics))
	})
	mux.HandleFunc("/musicVocals.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testVocals))
	})
	mux.HandleFunc("/gameCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testGame))
	})
	mux.HandleFunc("/outsideCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testGuests))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &musicsRequests
}

func TestLoader_LoadCatalog(t *testing.T) {
	server, _ := masterDataServer(t, 0)

	var steps []string
	loader := NewLoader(http.NewClient(), server.URL, func(msg string) {
		steps = append(steps, msg)
	}, nil)

	catalog, err := loader.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if len(catalog.Musics) != 1 || catalog.Musics[0].Title != "Song A" {
		t.Errorf("unexpected musics: %+v", catalog.Musics)
	}
	if len(catalog.VocalsFor(1)) != 1 {
		t.Errorf("VocalsFor(1) = %v, want one vocal", catalog.VocalsFor(1))
	}
	if catalog.GameCharacters[21] == nil || catalog.OutsideCharacters[3] == nil {
		t.Error("character catalogs not populated")
	}
	if len(steps) != 4 {
		t.Errorf("got %d step messages, want 4: %v", len(steps), steps)
	}
}

func TestLoader_RetriesWholeBatch(t *testing.T) {
	// First attempt fails at step one; the loader must restart from
	// the first step and still produce a complete catalog.
	server, musicsRequests := masterDataServer(t, 1)

	var retries int
	loader := NewLoader(http.NewClient(), server.URL, nil, func(err error) {
		retries++
	})

	catalog, err := loader.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if retries != 1 {
		t.Errorf("retries = %d, want 1", retries)
	}
	if musicsRequests.Load() != 2 {
		t.Errorf("musics.json requested %d times, want 2", musicsRequests.Load())
	}
	if len(catalog.Musics) != 1 {
		t.Errorf("partial catalog exposed: %+v", catalog.Musics)
	}
}

func TestLoader_DiscardsAttemptOnLateFailure(t *testing.T) {
	// Fail a later step: every earlier step must be refetched on the
	// next attempt, never reused.
	var guestRequests, musicsRequests atomic.Int32

	mux := nethttp.NewServeMux()
	mux.HandleFunc("/musics.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		musicsRequests.Add(1)
		w.Write([]byte(testMusics))
	})
	mux.HandleFunc("/musicVocals.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testVocals))
	})
	mux.HandleFunc("/gameCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testGame))
	})
	mux.HandleFunc("/outsideCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if guestRequests.Add(1) == 1 {
			w.Write([]byte("not json"))
			return
		}
		w.Write([]byte(testGuests))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	loader := NewLoader(http.NewClient(), server.URL, nil, nil)
	if _, err := loader.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if musicsRequests.Load() != 2 {
		t.Errorf("musics.json requested %d times, want 2 (batch restarted)", musicsRequests.Load())
	}
}

func TestLoader_RefetchesWhenGuestsEmpty(t *testing.T) {
	var guestRequests atomic.Int32

	mux := nethttp.NewServeMux()
	mux.HandleFunc("/musics.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testMusics))
	})
	mux.HandleFunc("/musicVocals.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testVocals))
	})
	mux.HandleFunc("/gameCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(testGame))
	})
	mux.HandleFunc("/outsideCharacters.json", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if guestRequests.Add(1) == 1 {
			w.Write([]byte("[]"))
			return
		}
		w.Write([]byte(testGuests))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	loader := NewLoader(http.NewClient(), server.URL, nil, nil)
	catalog, err := loader.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog.OutsideCharacters) == 0 {
		t.Error("catalog accepted with empty outside characters")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	server, _ := masterDataServer(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(http.NewClient(), server.URL, nil, nil)
	if _, err := loader.LoadCatalog(ctx); err == nil {
		t.Error("LoadCatalog should fail on cancelled context")
	}
}

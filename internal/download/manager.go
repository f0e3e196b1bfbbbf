package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ayutaki/sekai-dl/internal/audio"
	"github.com/ayutaki/sekai-dl/internal/config"
	"github.com/ayutaki/sekai-dl/internal/http"
	ioutils "github.com/ayutaki/sekai-dl/internal/io"
	"github.com/ayutaki/sekai-dl/internal/model"
	"github.com/ayutaki/sekai-dl/internal/sekai"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the whole acquisition pipeline: master-data
// loading, per-track workers, tagging and the two progress counters.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	loader     *sekai.Loader
	tagger     *audio.Tagger
	covers     *ioutils.CoverProcessor
	playlist   *audio.PlaylistCreator
	pathConfig *model.PathConfig
	retry      RetryPolicy

	catalog *model.Catalog

	totalMusics     int32
	completedMusics int32
	totalVocals     int32
	completedVocals int32

	// claimedPaths guards against two vocals resolving to the same
	// destination; path computation is deterministic so this should
	// never fire, but a collision would silently corrupt output.
	claimedPaths map[string]int

	playlistEntries map[string][]audio.PlaylistEntry

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new pipeline Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	var playlistFormat audio.PlaylistFormat
	if settings.PlaylistFormat == "pls" {
		playlistFormat = audio.FormatPLS
	} else {
		playlistFormat = audio.FormatM3U
	}

	m := &Manager{
		settings:   settings,
		httpClient: http.NewClient(),
		tagger: audio.NewTagger(&audio.TagConfig{
			ModifyTags: settings.ModifyTags,
			EmbedCover: settings.SaveCoverArtInTags,
		}),
		covers:     ioutils.NewCoverProcessor(),
		playlist:   audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		pathConfig: settings.ToPathConfig(),
		retry: RetryPolicy{
			MaxAttempts: settings.DownloadMaxAttempts,
			Cooldown:    time.Duration(settings.DownloadRetryCooldown * float64(time.Second)),
		},
		claimedPaths:    make(map[string]int),
		playlistEntries: make(map[string][]audio.PlaylistEntry),
		onProgress:      onProgress,
	}

	m.loader = sekai.NewLoader(m.httpClient, settings.MasterDataBaseURL,
		func(message string) {
			m.progress(ProgressEvent{Message: message, Level: LevelInfo})
		},
		func(err error) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Master data fetch failed, retrying: %v", err), Level: LevelWarning})
		})

	return m
}

// Initialize loads the master-data catalog and computes the two
// progress totals. It must complete before StartDownloads; no worker
// ever sees a partial catalog.
func (m *Manager) Initialize(ctx context.Context) error {
	catalog, err := m.loader.LoadCatalog(ctx)
	if err != nil {
		return err
	}

	m.catalog = catalog
	m.totalMusics = int32(len(catalog.MusicsWithVocals()))
	m.totalVocals = int32(catalog.VocalCount())

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Catalog ready: %d tracks, %d vocals", m.totalMusics, m.totalVocals),
		Level:   LevelInfo,
	})
	return nil
}

// StartDownloads runs one worker per track with at least one vocal,
// all concurrently, and blocks until every worker finishes.
//
// The first fatal error (reference-integrity or local I/O) cancels
// the shared context, drains the remaining workers and is returned as
// the run's failure. Transient network errors never surface here;
// they are absorbed by the retry policy.
func (m *Manager) StartDownloads(ctx context.Context) error {
	if m.catalog == nil {
		return fmt.Errorf("manager not initialized")
	}

	g, ctx := errgroup.WithContext(ctx)
	if m.settings.MaxConcurrentTracks > 0 {
		g.SetLimit(m.settings.MaxConcurrentTracks)
	}

	for _, music := range m.catalog.MusicsWithVocals() {
		g.Go(func() error {
			return m.downloadMusic(ctx, music)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylists()
	}
	return nil
}

// GetProgress returns the two counter pairs: tracks completed/total
// and vocals completed/total. Skipped vocals count as completed.
func (m *Manager) GetProgress() (musicsDone, musicsTotal, vocalsDone, vocalsTotal int32) {
	return atomic.LoadInt32(&m.completedMusics), m.totalMusics,
		atomic.LoadInt32(&m.completedVocals), m.totalVocals
}

// GetMusicNames returns a display line per scheduled track.
func (m *Manager) GetMusicNames() []string {
	if m.catalog == nil {
		return nil
	}
	musics := m.catalog.MusicsWithVocals()
	names := make([]string, len(musics))
	for i, music := range musics {
		names[i] = fmt.Sprintf("%s (%d vocals)", music.Title, len(m.catalog.VocalsFor(music.ID)))
	}
	return names
}

// musicWorker carries the per-track state: the track, its cached
// cover bytes and whether the cover was fetched yet. Vocals of one
// track run strictly sequentially, so the state needs no locking.
type musicWorker struct {
	m     *Manager
	music *model.Music

	cover        []byte
	coverMime    string
	coverFetched bool
}

// downloadMusic is the per-track worker: fetch the cover once (on the
// first vocal that needs it), then process the track's vocals
// strictly sequentially.
func (m *Manager) downloadMusic(ctx context.Context, music *model.Music) error {
	w := &musicWorker{m: m, music: music, coverMime: ioutils.MimePNG}

	for _, vocal := range m.catalog.VocalsFor(music.ID) {
		if err := w.downloadVocal(ctx, vocal); err != nil {
			return err
		}
	}

	atomic.AddInt32(&m.completedMusics, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %s", music.Title), Level: LevelSuccess})
	return nil
}

// ensureCover fetches and prepares the track's cover on first use.
// The result is cached for every later vocal of the track. Deferring
// the fetch until a vocal actually needs downloading keeps a fully
// deduplicated re-run free of network traffic.
func (w *musicWorker) ensureCover(ctx context.Context) error {
	if w.coverFetched || !w.m.settings.SaveCoverArtInTags {
		return nil
	}

	coverURL := sekai.CoverURL(w.m.settings.AssetBaseURL, w.music.AssetBundleName)
	err := w.m.retry.Do(ctx, func() error {
		var fetchErr error
		w.cover, fetchErr = w.m.httpClient.DownloadBytes(ctx, coverURL)
		return fetchErr
	}, func(err error) {
		w.m.progress(ProgressEvent{Message: fmt.Sprintf("%s cover - %v", w.music.Title, err), Level: LevelWarning})
	})
	if err != nil {
		return err
	}
	w.m.progress(ProgressEvent{Message: fmt.Sprintf("Got cover for %s", w.music.Title), Level: LevelSuccess})

	w.cover, w.coverMime = w.prepareCover(w.cover)
	w.coverFetched = true
	return nil
}

// prepareCover applies the optional resize/convert settings. Cover
// processing failures degrade to the raw CDN bytes with a warning;
// they never fail the track.
func (w *musicWorker) prepareCover(cover []byte) ([]byte, string) {
	m := w.m
	mime := ioutils.MimePNG

	if m.settings.CoverArtInTagsResize {
		resized, resizedMime, err := m.covers.Resize(cover, m.settings.CoverArtInTagsMaxSize, m.settings.CoverArtInTagsMaxSize)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Resizing cover for %s: %v", w.music.Title, err), Level: LevelWarning})
		} else {
			cover, mime = resized, resizedMime
		}
	}

	if m.settings.ConvertCoverArtToJPG {
		converted, convertedMime, err := m.covers.ConvertToJPEG(cover)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Converting cover for %s: %v", w.music.Title, err), Level: LevelWarning})
		} else {
			cover, mime = converted, convertedMime
		}
	}

	return cover, mime
}

// downloadVocal processes one vocal variant: resolve performers,
// build the destination path, skip if it already exists, otherwise
// fetch, write and tag.
func (w *musicWorker) downloadVocal(ctx context.Context, vocal *model.Vocal) error {
	m := w.m

	names, err := sekai.ResolveCharacterNames(vocal, m.catalog)
	if err != nil {
		return err
	}

	path := vocal.FilePath(w.music, names, m.pathConfig)
	fileName := filepath.Base(path)

	if err := m.claimPath(path, vocal.ID); err != nil {
		return err
	}
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	if _, err := os.Stat(path); err == nil {
		// A completed prior run already produced this file: no fetch,
		// no tag write, no overwrite. The skip still advances the
		// vocal counter.
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s already exists.", fileName), Level: LevelInfo})
		m.vocalDone(w.music, vocal, path, names)
		return nil
	}

	if err := w.ensureCover(ctx); err != nil {
		return err
	}

	var payload []byte
	audioURL := sekai.AudioURL(m.settings.AssetBaseURL, vocal.AssetBundleName)
	if err := m.retry.Do(ctx, func() error {
		var fetchErr error
		payload, fetchErr = m.httpClient.DownloadBytes(ctx, audioURL)
		return fetchErr
	}, func(err error) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s - %v", fileName, err), Level: LevelWarning})
	}); err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Got %s", fileName), Level: LevelSuccess})

	if err := ioutils.WriteFile(path, payload); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %s", fileName), Level: LevelVerbose})

	if m.settings.ModifyTags || (m.settings.SaveCoverArtInTags && w.cover != nil) {
		if err := m.tagger.SaveTags(path, w.music, vocal, names, w.cover, w.coverMime); err != nil {
			return err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s metadata.", fileName), Level: LevelSuccess})
	}

	m.vocalDone(w.music, vocal, path, names)
	return nil
}

// vocalDone advances the vocal counter and records the playlist
// entry. Skips and fresh downloads count the same.
func (m *Manager) vocalDone(music *model.Music, vocal *model.Vocal, path string, names []string) {
	atomic.AddInt32(&m.completedVocals, 1)

	title := music.Title
	if len(names) > 0 {
		title = fmt.Sprintf("%s (%s)", music.Title, strings.Join(names, ", "))
	}

	m.mu.Lock()
	m.playlistEntries[vocal.VocalType] = append(m.playlistEntries[vocal.VocalType], audio.PlaylistEntry{
		Path:  path,
		Title: title,
	})
	m.mu.Unlock()
}

// claimPath registers a destination path for a vocal, failing if a
// different vocal already claimed it.
func (m *Manager) claimPath(path string, vocalID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.claimedPaths[path]; ok && prev != vocalID {
		return fmt.Errorf("vocals %d and %d resolve to the same destination %s", prev, vocalID, path)
	}
	m.claimedPaths[path] = vocalID
	return nil
}

// writePlaylists emits one playlist per vocal-type directory.
// Playlist failures are warnings, never run failures.
func (m *Manager) writePlaylists() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for vocalType, entries := range m.playlistEntries {
		// Workers finish in arbitrary order; sort for stable output.
		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

		content := m.playlist.CreatePlaylist(vocalType, entries)
		path := filepath.Join(m.settings.DownloadsPath, vocalType, vocalType+m.playlist.Extension())
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist for %s: %v", vocalType, err), Level: LevelWarning})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", vocalType), Level: LevelSuccess})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

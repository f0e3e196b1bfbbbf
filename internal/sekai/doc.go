// Package sekai loads and resolves the Project Sekai master data.
//
// # Loading
//
// Loader fetches the four datasets (musics, musicVocals,
// gameCharacters, outsideCharacters) as one atomic batch and builds
// the read-only Catalog the download pipeline runs against:
//
//	loader := sekai.NewLoader(client, sekai.DefaultMasterDataBaseURL, onStep, onRetry)
//	catalog, err := loader.LoadCatalog(ctx)
//
// Any failure discards the whole attempt; a partial catalog is never
// exposed.
//
// # Resolution
//
// ResolveCharacterNames turns a vocal's character references into
// display names. Unknown ids are fatal (ErrUnknownCharacter): they
// mean the dataset snapshot itself is inconsistent.
//
// # Assets
//
// CoverURL and AudioURL build the CDN URLs from asset-bundle names.
// The dto subpackage holds the wire-format JSON records, including
// the "assetbundleName" alias mapping.
package sekai

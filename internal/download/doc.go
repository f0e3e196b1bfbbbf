// Package download implements the acquisition pipeline: master-data
// loading, concurrent per-track workers, asset fetching with an
// explicit retry policy, tagging and progress accounting.
//
// # Manager
//
// Manager is the orchestrator. A run has two phases:
//
//	manager := download.NewManager(settings, onProgress)
//	err := manager.Initialize(ctx)     // atomic catalog load + totals
//	err = manager.StartDownloads(ctx)  // one worker per track
//
// Workers run concurrently, one per track with at least one vocal;
// within a worker, vocals are processed strictly sequentially so the
// cached cover bytes are never written concurrently. A vocal whose
// destination file already exists is skipped without fetching or
// tagging, which makes interrupted runs resumable.
//
// # Errors
//
// Transient network failures are absorbed inside the RetryPolicy
// loops and reported as warnings. Reference-integrity failures
// (unknown character ids) and local I/O failures are fatal: the first
// one cancels the run's context and becomes the run's error.
//
// # Progress
//
// Two counter pairs (tracks and vocals, completed/total) are exposed
// via GetProgress for polling frontends; a ProgressEvent callback
// carries the human-readable messages. Skipped vocals count as
// completed.
package download

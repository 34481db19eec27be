// Package storage provides access to catalogue documents.
//
// The pipeline reads whole documents up front and never writes back, so the
// surface here is deliberately small: a Source interface with Check and
// Fetch, backed either by a local directory (the common case during data
// work) or by an S3/MinIO bucket holding a catalogue repository snapshot.
//
// # Usage
//
//	src, err := storage.NewSource(cfg.Storage)
//	if err := src.Check(ctx); err != nil { ... }
//	data, err := src.Fetch(ctx, "Imperium - Space Marines.cat")
//
// Fetch returns ErrNotFound for missing documents; the driver logs and skips
// those instead of failing the batch.
package storage

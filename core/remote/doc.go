// Package remote is the narrow client the reconciliation engine uses to talk
// to the cloud folder holding the save files.
//
// # Store
//
// Store lists a folder, downloads an object to a local path, uploads a local
// file as a new object and renames an object. ObjectStore implements it on top
// of an S3-compatible bucket (core/storage):
//
//   - a folder id is a key prefix inside the configured bucket;
//   - an object id is the full object key;
//   - an object's hash is its ETag, the MD5 of the content because uploads are
//     always single-part;
//   - rename is a server-side copy followed by a delete.
//
// # Provider
//
// Provider hands out an authenticated Store. Credential handling stays behind
// it so the engine never touches tokens or keys.
//
//	provider := remote.NewStaticProvider(cfg.Storage, afero.NewOsFs(), logg)
//	store, err := provider.Client(ctx)
//	objects, err := store.ListFolder(ctx, cfg.General.DriveFolderID)
package remote

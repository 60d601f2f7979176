// Package registro is the Composition Root of the person registry.
//
// It connects the Record Store (pkg/core) with the JSON snapshot on disk
// (pkg/adapters/fs) using the Hexagonal Architecture pattern. The HTTP API and
// the command-line front end in cmd/registro both sit on top of it.
//
// Features:
//
//   - **Unique Control Numbers**: Every record is keyed by a control that no
//     other record may hold, including across a rename.
//   - **Durable by Default**: Every successful mutation rewrites the snapshot
//     atomically; a failed write is reported but never loses the in-memory set.
//   - **Live Reload**: The snapshot can be watched so edits from another
//     process show up without a restart.
//   - **Exports**: JSON, XML, YAML and CSV renderings of the record set.
//
// Usage:
//
//	store, err := registro.New(ctx, "personas.json",
//		registro.WithLogger(logger),
//	)
//
//	p, err := store.Add(ctx, "Ana", "C001", "Systems")
package registro

// Package haste is the composition root of a client for hastebin-style
// text-sharing stores.
//
// It connects the document lifecycle in pkg/core with a store adapter (the
// HTTP API by default) and the optional render pipeline.
//
// A Session shows one active Document at a time. A Document starts editable
// and becomes locked, under the key the store assigned, the first time it is
// saved or loaded. Locked documents are never modified: Duplicate starts a new
// editable copy instead.
//
// Usage:
//
//	session, err := haste.New(
//		haste.WithBaseURL("https://paste.example"),
//		haste.WithLogger(logger),
//	)
//
//	session.View().Set("hello", haste.ModeWrite)
//	key, err := session.LockDocument(ctx)
package haste

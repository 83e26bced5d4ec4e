// Package runtimeclient is a client for a hosted conversational runtime.
//
// An App holds one conversation. Start launches it from the version's
// initial state, and every Send* call performs a single round trip to the
// interaction endpoint. Each reply replaces the App's Context, a read-only
// snapshot of the runtime state and the trace sequence of the last turn.
//
//	app, err := runtimeclient.NewApp(runtimeclient.Config{VersionID: versionID})
//	if err != nil {
//		return err
//	}
//	conversation, err := app.Start(ctx)
//	if err != nil {
//		return err
//	}
//	for !conversation.IsEnding() {
//		conversation, err = app.SendText(ctx, readLine())
//		...
//	}
//
// Traces of a Context can be routed to typed handlers with the dispatch
// package.
package runtimeclient

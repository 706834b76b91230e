// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reverso is a client library for the Reverso Context translation
// service (https://context.reverso.net).
//
// A [Client] holds a default language pair and, optionally, account
// credentials. Its lookup methods return lazy, pull-based iterators: no
// network traffic happens until the iterator is first advanced, and paginated
// endpoints are fetched one page at a time as the caller consumes results.
//
//	client, err := reverso.New(reverso.Config{SourceLang: "de", TargetLang: "en"})
//	if err != nil {
//		// ...
//	}
//
//	it := client.Translations(ctx, "braucht")
//	for it.Next() {
//		fmt.Println(it.Value().Term) // "needed", "required", ...
//	}
//	if err := it.Err(); err != nil {
//		// transport, parse, and service errors all surface here
//	}
//
// Favorites and History require Config.Credentials; the account login is
// performed lazily on the first advance and the session is reused afterwards.
// A query with no results yields an empty sequence, not an error.
package reverso

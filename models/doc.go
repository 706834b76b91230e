// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the record types yielded by the Reverso Context
// client together with the wire-level request and response shapes of the
// Reverso web endpoints.
//
// Record types (TranslationEntry, ContextSample, FavoriteEntry, HistoryEntry)
// are plain value types with no identity beyond their contents. Wire types
// (QueryRequest, QueryResponse, SuggestRequest, SuggestResponse,
// FavoritesPage, HistoryPage) mirror the JSON bodies exchanged with
// context.reverso.net and are primarily consumed by the transport layer in
// internal/session.
package models

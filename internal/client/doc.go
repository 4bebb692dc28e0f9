// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the address book command-line client.
//
// Every invocation runs a single subcommand (login, list, get, add, update,
// delete, search, logout, version) against the server through an
// [adapter.AddressBookAdapter]. The session token issued by login is kept in
// a file between invocations.
package client

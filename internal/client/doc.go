// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The keyadmin Authors

// Package client implements the interactive client application runtime.
//
// It drives the terminal UI flows over the client services: restoring a
// stored session on startup, running the sign-in screen when there is none,
// and looping back to sign-in after a logout or an expired session.
package client

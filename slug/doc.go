// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slug normalizes session titles into URL-safe identifiers.

Make is a pure function: it lowercases, keeps ASCII alphanumerics, and
collapses everything else into single hyphens. Collision handling (the -1, -2
suffix loop) lives in the session store because it needs to run inside the
transaction that consumes the slug.
*/
package slug

// Package urlnorm resolves and canonicalizes outbound links the way the
// crawler requires: relative references made absolute against the page
// that linked to them, then reduced to a single canonical form so that
// "unseen" is a plain string-equality check.
package urlnorm

import (
	"net/url"

	"github.com/PuerkitoBio/purell"
)

// normalizeFlags mirrors purell.FlagsSafe plus fragment removal: safe,
// conservative rewrites (scheme/host lower-casing, default port removal,
// escape normalization) that never change what a link points at. Dot
// segments are not removed by these flags; in Resolve they are already gone
// after ResolveReference.
const normalizeFlags = purell.FlagsSafe | purell.FlagRemoveFragment

// Resolve makes ref absolute against base, normalizes it to canonical form,
// and reports whether its scheme is http or https. Non-HTTP(S) links (mailto:,
// javascript:, ftp:, ...) are rejected here, so callers never have to
// re-check the scheme themselves.
func Resolve(baseURL, ref string) (canonical string, ok bool) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", false
	}

	abs := base.ResolveReference(rel)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}

	normalized, err := purell.NormalizeURLString(abs.String(), normalizeFlags)
	if err != nil {
		return "", false
	}
	return normalized, true
}

// Canonical normalizes an already-absolute URL (a seed URL, for example) to
// the same canonical form Resolve produces, so seed identity and
// link-resolved identity are always comparable by plain string equality.
func Canonical(rawURL string) (canonical string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	normalized, err := purell.NormalizeURLString(rawURL, normalizeFlags)
	if err != nil {
		return "", false
	}
	return normalized, true
}

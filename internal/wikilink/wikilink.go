// Package wikilink builds wiki-style markup for cross-note references:
// shortened link targets, block anchors, and the append format used when
// registering a section inside a target note.
package wikilink

import (
	"crypto/rand"
	"path"
	"regexp"
	"strings"

	"github.com/marcus/inkwell/internal/vault"
)

// Ellipsis is the centered-ellipsis fragment inserted by the dramatic-pause
// command. Rendered as HTML so Markdown viewers center it.
const Ellipsis = `<p style="text-align: center;">. . .</p>`

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

var (
	idSeparators = regexp.MustCompile(`[\s_]+`)
	idDisallowed = regexp.MustCompile(`[^A-Za-z0-9-]`)
)

// Shorten returns the shortest reference to target that is unambiguous
// across all notes at the time of the call: the bare base name when no other
// note shares it, otherwise the full path with the extension removed.
//
// This is a point-in-time computation. Collisions introduced after a link
// was created are not fixed retroactively.
func Shorten(target vault.Note, all []vault.Note) string {
	count := 0
	for _, n := range all {
		if n.Base == target.Base {
			count++
		}
	}
	if count <= 1 {
		return target.Base
	}
	return strings.TrimSuffix(target.Path, path.Ext(target.Path))
}

// GenerateID returns a random 6-character lowercase alphanumeric block ID,
// drawn uniformly. No uniqueness check against existing anchors is
// performed; with 36^6 possible values a collision is an accepted tradeoff.
func GenerateID() string {
	// Bytes at or above this threshold are rejected; keeping only the
	// range evenly divisible by the alphabet size makes every character
	// equally likely.
	const limit = 256 - 256%len(idAlphabet)

	id := make([]byte, 0, idLength)
	var buf [16]byte
	for len(id) < idLength {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand does not fail on supported platforms
			panic("wikilink: rand.Read: " + err.Error())
		}
		for _, b := range buf[:] {
			if int(b) >= limit {
				continue
			}
			id = append(id, idAlphabet[int(b)%len(idAlphabet)])
			if len(id) == idLength {
				break
			}
		}
	}
	return string(id)
}

// NormalizeID sanitizes a user-supplied block ID: trims it, collapses runs
// of whitespace and underscores into single hyphens, and strips every
// character outside [A-Za-z0-9-]. An empty result means the caller should
// generate an ID instead.
func NormalizeID(s string) string {
	s = strings.TrimSpace(s)
	s = idSeparators.ReplaceAllString(s, "-")
	return idDisallowed.ReplaceAllString(s, "")
}

// Compose builds a plain reference: [[target]].
func Compose(target string) string {
	return "[[" + target + "]]"
}

// ComposeAliased builds an aliased reference: [[target|alias]].
// Alias text is inserted verbatim; '|' or ']]' inside it produces malformed
// markup, which mirrors how the link syntax itself behaves.
func ComposeAliased(target, alias string) string {
	return "[[" + target + "|" + alias + "]]"
}

// ComposeAnchor builds a block-anchor reference with display text:
// [[target#^id|display]].
func ComposeAnchor(target, id, display string) string {
	return "[[" + target + "#^" + id + "|" + display + "]]"
}

// Block renders an anchored section block: "text ^id\n".
func Block(text, id string) string {
	return text + " ^" + id + "\n"
}

// AppendBlock returns existing with an anchored section block appended.
// An empty target gets the bare block; otherwise trailing whitespace is
// trimmed and the configured separator inserted before the block. The trim
// is for notes rewritten on disk; appends through an open buffer keep the
// author's trailing whitespace and use Block directly.
func AppendBlock(existing, separator, text, id string) string {
	if existing == "" {
		return Block(text, id)
	}
	return strings.TrimRight(existing, " \t\r\n") + separator + Block(text, id)
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// canonical lists the fields that change a frame, in a fixed order.
func (o FrameKeyOpts) canonical() string {
	return "measurer=" + o.Measurer + ";edit=" + strconv.FormatBool(o.Edit)
}

// canonical lists the fields that change an artifact, in a fixed order.
// The scale is written in its shortest form so 2 and 2.0 share a key.
func (o ArtifactKeyOpts) canonical() string {
	return strings.Join([]string{
		"format=" + o.Format,
		"handles=" + strconv.FormatBool(o.Handles),
		"fonts=" + strconv.FormatBool(o.EmbeddedFonts),
		"scale=" + strconv.FormatFloat(o.Scale, 'g', -1, 64),
	}, ";")
}

// frameKey is "frame:<hash>".
func frameKey(inputHash string, opts FrameKeyOpts) string {
	return "frame:" + Hash([]byte(inputHash+"|"+opts.canonical()))
}

// artifactKey is "artifact:<format>:<hash>"; the format stays readable so
// cached artifacts can be listed per format.
func artifactKey(frameHash string, opts ArtifactKeyOpts) string {
	format := opts.Format
	if format == "" {
		format = "unknown"
	}
	return "artifact:" + format + ":" + Hash([]byte(frameHash+"|"+opts.canonical()))
}

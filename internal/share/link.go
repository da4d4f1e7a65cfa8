// Package share encodes trait selections into self-contained links.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

const (
	FragmentPrefix = "#share="
	Version        = "1.0"
	DefaultName    = "Shared Profile"
)

var ErrInvalidShareLink = errors.New("invalid share link")

type Payload struct {
	Name       string            `json:"name"`
	Selections domain.Selections `json:"selections"`
	Version    string            `json:"version,omitempty"`
}

// wire is the compact form carried in links.
type wire struct {
	S domain.Selections `json:"s"`
	N string            `json:"n"`
	V string            `json:"v"`
}

// legacy links used long key names.
type anyKeys struct {
	S          domain.Selections `json:"s"`
	N          string            `json:"n"`
	V          string            `json:"v"`
	Selections domain.Selections `json:"selections"`
	Name       string            `json:"name"`
}

// Encode returns the base64 payload that follows "#share=".
func Encode(name string, selections domain.Selections) (string, error) {
	if selections == nil {
		selections = domain.Selections{}
	}
	b, err := json.Marshal(wire{S: selections, N: name, V: Version})
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Link builds baseURL + "#share=" + payload. Any fragment already on
// baseURL is replaced.
func Link(baseURL, name string, selections domain.Selections) (string, error) {
	payload, err := Encode(name, selections)
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(baseURL, '#'); i >= 0 {
		baseURL = baseURL[:i]
	}
	return baseURL + FragmentPrefix + payload, nil
}

// Decode parses a payload produced by Encode or by older links.
func Decode(payload string) (Payload, error) {
	raw, err := decodeBase64(strings.TrimSpace(payload))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidShareLink, err)
	}

	var in anyKeys
	if err := json.Unmarshal(raw, &in); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidShareLink, err)
	}

	out := Payload{Name: in.N, Version: in.V}
	if out.Name == "" {
		out.Name = in.Name
	}
	if out.Name == "" {
		out.Name = DefaultName
	}

	sel := in.S
	if len(sel) == 0 {
		sel = in.Selections
	}
	out.Selections = domain.Selections{}
	for id, lvl := range sel {
		if lvl.Valid() {
			out.Selections[id] = lvl
		}
	}
	return out, nil
}

// ParseFragment decodes a URL or fragment containing "#share=".
func ParseFragment(s string) (Payload, error) {
	i := strings.Index(s, FragmentPrefix)
	if i < 0 {
		return Payload{}, fmt.Errorf("%w: missing %s", ErrInvalidShareLink, FragmentPrefix)
	}
	return Decode(s[i+len(FragmentPrefix):])
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty payload")
	}
	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// Package cache stores parsed ASTs on disk, keyed by the SHA-256 of their
// source content, so a directory parse over an unchanged tree can skip
// rescanning and reparsing files it has already seen.
package cache

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"surge/internal/ast"
	"surge/internal/token"
)

// Entry is the on-disk representation of one cached parse. The AST is
// flattened to a generic node tree (see encode.go) because msgpack has no
// notion of the ast package's Go interfaces.
type Entry struct {
	Hash   [32]byte
	Tokens []token.Token
	Root   *encodedBlock
}

// Cache reads and writes Entry files under a directory, one file per
// content hash.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir, creating it if necessary.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".surgecache")
}

// Lookup returns the cached tokens and AST for hash, or ok=false on a
// cache miss (including a missing or corrupt cache file, which is treated
// as a miss rather than an error — the cache is a pure optimization).
func (c *Cache) Lookup(hash [32]byte) (toks []token.Token, root *ast.Block, ok bool) {
	// #nosec G304 -- path is derived from a content hash under our own cache dir
	data, err := os.ReadFile(c.pathFor(hash))
	if err != nil {
		return nil, nil, false
	}
	var e Entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, nil, false
	}
	if e.Hash != hash {
		return nil, nil, false
	}
	return e.Tokens, decodeBlock(e.Root), true
}

// Store writes toks and root's flattened form under hash, overwriting any
// existing entry.
func (c *Cache) Store(hash [32]byte, toks []token.Token, root *ast.Block) error {
	e := Entry{Hash: hash, Tokens: toks, Root: encodeBlock(root)}
	data, err := msgpack.Marshal(&e)
	if err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(hash), data, 0o644)
}

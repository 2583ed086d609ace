package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when TablePayload changes shape; mismatched entries read as misses.
const tableCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// HashContent hashes a file's path and bytes together, so renames miss.
func HashContent(path string, content []byte) Digest {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// CachedImport is one import record flattened for serialization. Spans are
// not cached; a hit skips scanning entirely, so nothing points back into
// the file.
type CachedImport struct {
	Module    string
	Access    string
	Options   uint8
	Filename  string
	SPIGroups []string
}

// TablePayload is the on-disk form of one file's import table.
type TablePayload struct {
	Schema  uint16
	Path    string
	Records []CachedImport
}

// DiskCache stores per-file import tables keyed by content digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "imports", hexKey+".mp")
}

// Put serializes and writes a payload, replacing any previous entry
// atomically.
func (c *DiskCache) Put(key Digest, payload *TablePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for key. A missing entry or a schema mismatch is a
// miss, not an error.
func (c *DiskCache) Get(key Digest, out *TablePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != tableCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// EncodeTable flattens a resolved file table into its cacheable form.
func EncodeTable(ft *FileTable) *TablePayload {
	payload := &TablePayload{
		Schema: tableCacheSchemaVersion,
		Path:   ft.Path,
	}
	payload.Records = make([]CachedImport, len(ft.Table.Records))
	for i, rec := range ft.Table.Records {
		ci := CachedImport{
			Module:    rec.Module.Module.FullName(),
			Options:   uint8(rec.Options),
			Filename:  rec.Filename,
			SPIGroups: rec.SPIGroups,
		}
		if !rec.Module.Access.Empty() {
			ci.Access = rec.Module.Access.Front().Name
		}
		payload.Records[i] = ci
	}
	return payload
}

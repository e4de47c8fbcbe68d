package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"logsim/internal/diag"
	"logsim/internal/source"
	"logsim/internal/token"
)

// Current schema version - increment when CachePayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// cacheKey: H(schema || content hash || max inputs).
func cacheKey(f *source.File, maxInputs int) Digest {
	limit, err := safecast.Conv[uint64](maxInputs)
	if err != nil {
		panic(fmt.Errorf("max inputs: %w", err))
	}
	var buf [10]byte
	binary.BigEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	binary.BigEndian.PutUint64(buf[2:], limit)

	h := sha256.New()
	_, _ = h.Write(buf[:])
	_, _ = h.Write(f.Hash[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DiskCache хранит результаты проверки по хешу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is a diagnostic without pointers.
type CachedDiagnostic struct {
	Code        uint16
	Severity    uint8
	Description string
	HasSymbol   bool
	Kind        uint8
	ID          int
	Line        int
	Col         int
	Depth       int
	EndOfWord   bool
	Cursor      bool
}

// CachePayload stores the verdict and diagnostics of one check.
type CachePayload struct {
	Schema      uint16
	Parsed      bool
	Stats       Stats
	Diagnostics []CachedDiagnostic
}

func newCachePayload(res *Result) *CachePayload {
	p := &CachePayload{
		Schema:      diskCacheSchemaVersion,
		Parsed:      res.Parsed,
		Stats:       res.Stats,
		Diagnostics: make([]CachedDiagnostic, 0, res.Errors.Len()),
	}
	for _, d := range res.Errors.Items() {
		cd := CachedDiagnostic{
			Code:        uint16(d.Code),
			Severity:    uint8(d.Severity),
			Description: d.Description,
			Depth:       d.Depth,
			EndOfWord:   d.ShowEndOfWord,
			Cursor:      d.ShowCursor,
		}
		if d.Symbol != nil {
			cd.HasSymbol = true
			cd.Kind = uint8(d.Symbol.Kind)
			cd.ID = int(d.Symbol.ID)
			cd.Line = d.Symbol.Line
			cd.Col = d.Symbol.Col
		}
		p.Diagnostics = append(p.Diagnostics, cd)
	}
	return p
}

// restore rebuilds a Result for f, or nil when the payload is stale or
// carries an unknown severity.
func (p *CachePayload) restore(f *source.File) *Result {
	if p == nil || p.Schema != diskCacheSchemaVersion {
		return nil
	}
	errs := diag.NewErrors()
	for _, cd := range p.Diagnostics {
		if !diag.Severity(cd.Severity).Valid() {
			return nil
		}
		d := diag.Diagnostic{
			Code:        diag.Code(cd.Code),
			Severity:    diag.Severity(cd.Severity),
			Description: cd.Description,
			Depth:       cd.Depth,
		}
		if cd.HasSymbol {
			d = d.At(&token.Symbol{Kind: token.Kind(cd.Kind), ID: token.NameID(cd.ID), Line: cd.Line, Col: cd.Col})
		}
		errs.Add(d, cd.EndOfWord, cd.Cursor)
	}
	return &Result{
		Path:   f.Path,
		File:   f,
		Errors: errs,
		Parsed: p.Parsed,
		Cached: true,
		Stats:  p.Stats,
	}
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache uses dir as the cache root, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	// подкаталог "checks" для удобства очистки
	return filepath.Join(c.dir, "checks", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachePayload) (err error) {
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
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
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
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

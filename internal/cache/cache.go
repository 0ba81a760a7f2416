// Package cache keeps copies of fetched remote documents on disk for a configurable time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/swatchkit/swatchkit/filesystem"
	"github.com/swatchkit/swatchkit/key"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/where"
)

// Entry is a cached document.
type Entry struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// TTL returns how long entries stay valid.
func TTL() time.Duration {
	return time.Duration(viper.GetInt(key.CacheTTL)) * time.Hour
}

// Enabled reports whether documents should be cached at all.
func Enabled() bool {
	return viper.GetBool(key.CacheEnable)
}

// GenerateKey derives a deterministic file name from a URL.
func GenerateKey(url string) string {
	sanitized := strings.TrimRight(strings.TrimSpace(url), "/")
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read retrieves an entry if it exists and has not exceeded its TTL.
func Read(key string) (*Entry, bool) {
	path := filepath.Join(where.Pages(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL() {
		return nil, false
	}

	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var entry Entry
	if err := json.NewDecoder(f).Decode(&entry); err != nil {
		log.Warnf("discarding unreadable cache entry %s: %s", key, err)
		return nil, false
	}
	return &entry, true
}

// Write persists an entry using an atomic file swap.
func Write(key string, entry *Entry) error {
	return writeJSON(filepath.Join(where.Pages(), key), entry)
}

// writeJSON encodes v into a temporary file and moves it over path.
// The temporary file never outlives a failed write.
func writeJSON(path string, v any) (err error) {
	tmpPath := path + ".tmp"

	f, err := filesystem.API().Create(tmpPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = filesystem.API().Remove(tmpPath)
		}
	}()

	if err = json.NewEncoder(f).Encode(v); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// Clear removes every cached document.
func Clear() error {
	return filesystem.API().RemoveAll(where.Pages())
}

// CollectGarbage prunes expired entries in the background.
func CollectGarbage() {
	go func() {
		removed := collect()
		if removed > 0 {
			log.Debugf("removed %d expired cache entries", removed)
		}
	}()
}

func collect() int {
	var (
		removed int
		ttl     = TTL()
	)

	_ = filesystem.API().Walk(where.Pages(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > ttl {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	return removed
}


package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogRotator is an io.Writer appending to baseDir/baseName and rotating the
// file once it would grow past maxSize. Rotated files get a timestamp suffix
// and are optionally gzipped.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
}

func NewLogRotator(baseDir, baseName string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &LogRotator{
		baseDir:    baseDir,
		baseName:   baseName,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the file currently written to.
func (r *LogRotator) Path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.currentFile != nil {
		if err := r.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close current log file: %v\n", err)
		}
		r.currentFile = nil
	}

	backupPath := r.Path() + "." + time.Now().Format("2006-01-02-15-04-05")
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()

	r.currentSize = 0
	return r.openCurrentFile()
}

func compressFile(filePath string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(filePath + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// cleanup drops backups older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) cleanup() {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return
	}

	var backups []fs.FileInfo
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.baseName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			if err := os.Remove(filepath.Join(r.baseDir, entry.Name())); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b fs.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		if err := os.Remove(filepath.Join(r.baseDir, info.Name())); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
		}
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}

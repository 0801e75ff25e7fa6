// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// WatchSettings calls fun with the reloaded settings every time the given
// settings file is created or written, until ctx is done.
// Files that fail to load are logged and skipped.
// The directory of the file is watched, so editors that replace the
// file on save are handled.
func WatchSettings(ctx context.Context, filename string, fun func(s *Settings)) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watch.Close()
	if err := watch.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Debug("xyz: watching settings", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watch.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			s, err := OpenSettings(abs)
			if err != nil {
				slog.Error("xyz: reloading settings", "file", abs, "err", err)
				continue
			}
			fun(s)
		case err, ok := <-watch.Errors:
			if !ok {
				return nil
			}
			slog.Error("xyz: watching settings", "file", abs, "err", err)
		}
	}
}

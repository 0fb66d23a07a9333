package licensing

import (
	"errors"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	gplHeader = `/*
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU General Public License, version 2, as
 * published by the Free Software Foundation.
 */
package org.example;
`
	mitHeader = `/*
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 */
`
	bsdHeader = `// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.
`
	plainSource = `package org.example;

public class Plain {}
`
)

type archiveEntry struct {
	name    string
	content string
	raw     *zip.FileHeader
}

// unsupportedEntry claims a compression method no reader knows.
func unsupportedEntry(name, content string) archiveEntry {
	return archiveEntry{name: name, content: content, raw: &zip.FileHeader{
		Name:               name,
		Method:             12,
		CRC32:              crc32.ChecksumIEEE([]byte(content)),
		CompressedSize64:   uint64(len(content)),
		UncompressedSize64: uint64(len(content)),
	}}
}

// corruptEntry is stored uncompressed with a checksum that never matches.
func corruptEntry(name, content string) archiveEntry {
	return archiveEntry{name: name, content: content, raw: &zip.FileHeader{
		Name:               name,
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE([]byte(content)) + 1,
		CompressedSize64:   uint64(len(content)),
		UncompressedSize64: uint64(len(content)),
	}}
}

func writeArchive(path string, entries ...archiveEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := zip.NewWriter(file)
	for _, entry := range entries {
		var target io.Writer
		if entry.raw != nil {
			target, err = writer.CreateRaw(entry.raw)
		} else {
			target, err = writer.Create(entry.name)
		}
		if err != nil {
			return err
		}
		if _, err = target.Write([]byte(entry.content)); err != nil {
			return err
		}
	}
	if err = writer.Close(); err != nil {
		return err
	}
	return file.Close()
}

func jarManifest(lines ...string) archiveEntry {
	return archiveEntry{
		name:    "META-INF/MANIFEST.MF",
		content: "Manifest-Version: 1.0\r\n" + strings.Join(lines, "\r\n") + "\r\n\r\n",
	}
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func fillerLines(count int) string {
	return strings.Repeat("// nothing to see here\n", count)
}

var errBroken = errors.New("broken stream")

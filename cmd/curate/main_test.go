package main

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/smarty/curator/contracts"
)

func TestCurateFixture(t *testing.T) {
	gunit.Run(new(CurateFixture), t)
}

type CurateFixture struct {
	*gunit.Fixture

	root     string
	manifest *strings.Builder
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func (this *CurateFixture) Setup() {
	root, err := os.MkdirTemp("", "curate-")
	this.So(err, should.BeNil)
	this.root = root
	this.manifest = new(strings.Builder)
	this.manifest.WriteString("Filename,SHA1 Hash\n")
	this.stdout = new(bytes.Buffer)
	this.stderr = new(bytes.Buffer)
}

func (this *CurateFixture) Teardown() {
	_ = os.RemoveAll(this.root)
}

func (this *CurateFixture) path(name string) string {
	return filepath.Join(this.root, filepath.FromSlash(name))
}

func (this *CurateFixture) addArtifact(name string, contents []byte) {
	target := this.path("source/" + name)
	_ = os.MkdirAll(filepath.Dir(target), 0755)
	_ = os.WriteFile(target, contents, 0644)
	sum := sha1.Sum(contents)
	this.manifest.WriteString(name + "," + hex.EncodeToString(sum[:]) + "\n")
}

func (this *CurateFixture) writeManifest() {
	_ = os.WriteFile(this.path("manifest.csv"), []byte(this.manifest.String()), 0644)
}

func (this *CurateFixture) curate(flags ...string) int {
	args := append(flags, this.path("manifest.csv"), this.path("source"), this.path("destination"))
	return run(args, this.stdout, this.stderr)
}

func (this *CurateFixture) TestCurateCopiesAndReportsLicenses() {
	_ = os.MkdirAll(this.path("source"), 0755)
	this.addArtifact("org/example/Widget.java", []byte("/*\n * Licensed under the MIT License.\n */\nclass Widget {}\n"))
	this.addArtifact("org/example/widget-1.0.jar", bundleJar("Apache-2.0"))
	this.addArtifact("org/example/readme.txt", []byte("nothing to see"))
	this.manifest.WriteString("org/example/absent.jar,da39a3ee5e6b4b0d3255bfef95601890afd80709\n")
	this.writeManifest()

	code := this.curate()

	this.So(code, should.Equal, exitSuccess)
	lines := strings.Split(strings.TrimSuffix(this.stdout.String(), "\n"), "\n")
	this.So(lines[0], should.Equal, contracts.ResultHeader)
	body := lines[1:]
	sort.Strings(body)
	this.So(body, should.HaveLength, 4)
	this.So(body[0], should.EndWith, ",success,MIT")
	this.So(body[1], should.Equal, "org/example/absent.jar,none,none,does not exist,none")
	this.So(body[2], should.EndWith, ",success,unknown")
	this.So(body[3], should.EndWith, ",success,Apache-2.0")

	copied, err := os.ReadFile(this.path("destination/org/example/readme.txt"))
	this.So(err, should.BeNil)
	this.So(string(copied), should.Equal, "nothing to see")
	this.So(this.stderr.String(), should.ContainSubstring, "curation complete")
}

func (this *CurateFixture) TestWrongArgumentCountIsUsageError() {
	code := run([]string{"manifest.csv"}, this.stdout, this.stderr)

	this.So(code, should.Equal, exitUsage)
	this.So(this.stdout.Len(), should.Equal, 0)
	this.So(this.stderr.String(), should.ContainSubstring, "usage: curate")
}

func (this *CurateFixture) TestHelpSucceeds() {
	code := run([]string{"--help"}, this.stdout, this.stderr)

	this.So(code, should.Equal, exitSuccess)
}

func (this *CurateFixture) TestUnknownFlagReportedOnce() {
	code := this.curate("--bogus")

	this.So(code, should.Equal, exitUsage)
	this.So(strings.Count(this.stderr.String(), "unknown flag: --bogus"), should.Equal, 1)
	this.So(strings.Count(this.stderr.String(), "usage: curate"), should.Equal, 1)
}

func (this *CurateFixture) TestInvalidFlagValueIsUsageError() {
	code := this.curate("--algorithm", "crc32")

	this.So(code, should.Equal, exitUsage)
	this.So(this.stderr.String(), should.ContainSubstring, "unknown hash algorithm")
}

func (this *CurateFixture) TestMissingManifestFails() {
	_ = os.MkdirAll(this.path("source"), 0755)

	code := this.curate()

	this.So(code, should.Equal, exitFailure)
	this.So(this.stdout.Len(), should.Equal, 0)
	this.So(this.stderr.String(), should.ContainSubstring, contracts.ErrManifestNotFile.Error())
}

func (this *CurateFixture) TestNonEmptyDestinationFails() {
	_ = os.MkdirAll(this.path("source"), 0755)
	this.addArtifact("a.pom", []byte("<project/>"))
	this.writeManifest()
	_ = os.MkdirAll(this.path("destination"), 0755)
	_ = os.WriteFile(this.path("destination/leftover"), nil, 0644)

	code := this.curate()

	this.So(code, should.Equal, exitFailure)
	this.So(this.stdout.Len(), should.Equal, 0)
	this.So(this.stderr.String(), should.ContainSubstring, contracts.ErrDestinationNotEmpty.Error())
}

func bundleJar(license string) []byte {
	buffer := new(bytes.Buffer)
	writer := zip.NewWriter(buffer)
	entry, _ := writer.Create("META-INF/MANIFEST.MF")
	_, _ = entry.Write([]byte("Manifest-Version: 1.0\r\nBundle-License: " + license + "\r\n\r\n"))
	_ = writer.Close()
	return buffer.Bytes()
}

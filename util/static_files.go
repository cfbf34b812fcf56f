package util

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"accountsite/static"
)

type StaticFile struct {
	ContentType  string
	LastModified string
	Content      []byte
}

const StaticRouteTemplate = "/static/*"
const StaticUrlPrefix = "/static"

var hashedPathsByFilename map[string]string
var files map[string]*StaticFile

var contentTypesByExt = map[string]string{
	".css":  "text/css; charset=utf-8",
	".ico":  "image/x-icon",
	".js":   "text/javascript; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".txt":  "text/plain",
	".webp": "image/webp",
}

func init() {
	var err error
	hashedPathsByFilename, files, err = loadStaticFiles(static.FS)
	if err != nil {
		panic(err)
	}
}

// Embedded files carry no mtime, so everything is as new as the binary
func loadStaticFiles(
	staticFS fs.FS,
) (hashedPaths map[string]string, filesByPath map[string]*StaticFile, err error) {
	hashedPaths = make(map[string]string)
	filesByPath = make(map[string]*StaticFile)
	lastModified := time.Now().UTC().Format(http.TimeFormat)

	dirEntries, err := fs.ReadDir(staticFS, ".")
	if err != nil {
		return nil, nil, err
	}

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		content, err := fs.ReadFile(staticFS, dirEntry.Name())
		if err != nil {
			return nil, nil, err
		}

		hasher := fnv.New32a()
		hasher.Write(content)
		hash := hasher.Sum32()
		ext := path.Ext(dirEntry.Name())

		urlPath := fmt.Sprintf("%s/%s", StaticUrlPrefix, dirEntry.Name())
		hashedPath := fmt.Sprintf("%s.%08x%s", urlPath[:len(urlPath)-len(ext)], hash, ext)

		mimeType, ok := contentTypesByExt[ext]
		if !ok {
			return nil, nil, fmt.Errorf("extension doesn't have mime type: %s", ext)
		}

		hashedPaths[dirEntry.Name()] = hashedPath
		filesByPath[hashedPath] = &StaticFile{
			ContentType:  mimeType,
			LastModified: lastModified,
			Content:      content,
		}
	}

	return hashedPaths, filesByPath, nil
}

func StaticHashedPath(filename string) (string, error) {
	if hashedPath, ok := hashedPathsByFilename[filename]; ok {
		return hashedPath, nil
	}

	return "", fmt.Errorf("static file not found: %q", filename)
}

func GetStaticFile(hashedPath string) (*StaticFile, error) {
	if containsDotDot(hashedPath) {
		return nil, fmt.Errorf("path contains '..': %q", hashedPath)
	}

	if file, ok := files[hashedPath]; ok {
		return file, nil
	}

	return nil, fmt.Errorf("static path not found: %q", hashedPath)
}

func containsDotDot(v string) bool {
	if !strings.Contains(v, "..") {
		return false
	}
	for _, ent := range strings.FieldsFunc(v, isSlashRune) {
		if ent == ".." {
			return true
		}
	}
	return false
}

func isSlashRune(r rune) bool { return r == '/' || r == '\\' }

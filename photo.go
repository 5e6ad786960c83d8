package lotlist

import (
	"os"
	"path/filepath"
	"strings"
)

// PhotoExtensions lists the recognised image extensions in priority order.
var PhotoExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

// PhotoMatch associates a lot number with its source image.
type PhotoMatch struct {
	LotNo string
	Path  string
	Ext   string
}

// FindPhoto probes dir for <lotNo><ext> for each PhotoExtensions entry in
// order and returns the first regular file found. Lot numbers containing a
// path separator never match.
func FindPhoto(dir, lotNo string) (PhotoMatch, bool) {
	if lotNo == "" || strings.ContainsAny(lotNo, `/\`) {
		return PhotoMatch{}, false
	}
	for _, ext := range PhotoExtensions {
		path := filepath.Join(dir, lotNo+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return PhotoMatch{LotNo: lotNo, Path: path, Ext: ext}, true
		}
	}
	return PhotoMatch{}, false
}

// photoPriority returns the index of ext in PhotoExtensions, compared
// case-insensitively, or -1.
func photoPriority(ext string) int {
	for i, e := range PhotoExtensions {
		if strings.EqualFold(e, ext) {
			return i
		}
	}
	return -1
}

package frontend

import (
	"os"
	"runtime"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/zerr"
)

// scriptPerm is the mode of an extracted script bundle.
const scriptPerm = 0o644

// materialize writes the artifact into the layout and returns its path.
// The file is written next to the target and renamed into place, so an
// executable still held open by an earlier instance is replaced, not rewritten.
func materialize(layout domain.TempLayout, a domain.Artifact) (string, error) {
	dir := layout.Dir()
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", extractionFailed(err, dir)
	}

	target := layout.PathFor(a)

	tmp, err := os.CreateTemp(dir, "."+a.FileName()+".*")
	if err != nil {
		return "", extractionFailed(err, target)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(a.Bytes); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", extractionFailed(err, target)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", extractionFailed(err, target)
	}

	mode := os.FileMode(scriptPerm)
	if a.Kind == domain.ArtifactNativeExecutable {
		mode = domain.ExecutablePerm
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, mode); err != nil {
			cleanup()
			return "", extractionFailed(err, target)
		}
	}

	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		return "", extractionFailed(err, target)
	}

	return target, nil
}

func extractionFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrArtifactExtractionFailed.Error()), "path", path)
}

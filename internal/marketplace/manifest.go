package marketplace

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	mkterrors "github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

// ErrInvalidManifest indicates marketplace.json could not be decoded.
var ErrInvalidManifest = errors.New("invalid marketplace.json")

// Load reads and decodes the manifest of the marketplace at root.
// A missing file is reported as mkterrors.ErrNotFound and undecodable
// content as ErrInvalidManifest.
func Load(root string) (*Manifest, error) {
	data, err := readManifest(root)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding marketplace.json"), ErrInvalidManifest)
	}
	return &m, nil
}

// Save writes m to the manifest path of root, creating the manifest
// directory if needed. Output is indented with two spaces and ends with a
// newline.
func Save(root string, m *Manifest) error {
	if err := os.MkdirAll(filepath.Join(root, ManifestDir), 0o755); err != nil {
		return errors.Wrap(err, "creating manifest directory")
	}
	return errors.Wrap(fileutil.AtomicWriteJSON(ManifestPath(root), m), "writing marketplace.json")
}

func readManifest(root string) ([]byte, error) {
	path := ManifestPath(root)
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Mark(errors.Newf("marketplace.json not found at %s", path), mkterrors.ErrNotFound)
		}
		return nil, errors.Wrap(err, "reading marketplace.json")
	}
	return data, nil
}

func loadDocument(root string) (*document, error) {
	data, err := readManifest(root)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid JSON in marketplace.json"), ErrInvalidManifest)
	}
	return &doc, nil
}

func saveDocument(root string, doc *document) error {
	return errors.Wrap(fileutil.AtomicWriteJSON(ManifestPath(root), doc), "writing marketplace.json")
}

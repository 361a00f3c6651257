package path

import (
	"strings"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

// Normalizer canonicalizes path strings and maps them to and from the public URL
// namespace described by a base URL and base path.
//
// The mapping is a plain substring replacement: it is neither anchored nor limited to
// one occurrence, so a base that appears several times in a string is replaced
// everywhere.
type Normalizer struct {
	sep      byte
	baseURL  string
	basePath string
}

func NewNormalizer(sep byte) *Normalizer {
	return &Normalizer{sep: sep}
}

// Configure stores the base pair. Trailing separators are dropped from both.
func (n *Normalizer) Configure(baseURL, basePath string) {
	n.baseURL = strings.TrimRight(baseURL, `\/`)
	n.basePath = n.Normalize(basePath)
}

func (n *Normalizer) BaseURL() (string, error) {
	if err := n.configured("base-url"); err != nil {
		return "", err
	}
	return n.baseURL, nil
}

func (n *Normalizer) BasePath() (string, error) {
	if err := n.configured("base-path"); err != nil {
		return "", err
	}
	return n.basePath, nil
}

func (n *Normalizer) configured(op string) error {
	if n.baseURL == "" || n.basePath == "" {
		return &pathmodels.PathError{Op: op, Err: pathmodels.ErrNotConfigured}
	}
	return nil
}

// Normalize rewrites every '/' and '\' to the canonical separator and strips trailing
// separators. A path made only of separators collapses to the root separator.
func (n *Normalizer) Normalize(raw string) string {
	sep := string(n.sep)
	p := strings.ReplaceAll(raw, `\`, sep)
	p = strings.ReplaceAll(p, "/", sep)

	trimmed := strings.TrimRight(p, sep)
	if trimmed == "" && p != "" {
		return sep
	}
	return trimmed
}

// IsLocalURL reports whether url contains the base URL anywhere, including at offset 0.
func (n *Normalizer) IsLocalURL(url string) (bool, error) {
	if err := n.configured("is-local-url"); err != nil {
		return false, err
	}
	return strings.Contains(url, n.baseURL), nil
}

func (n *Normalizer) URLToPath(url string) (string, error) {
	if err := n.configured("url-to-path"); err != nil {
		return "", err
	}
	return n.Normalize(strings.ReplaceAll(url, n.baseURL, n.basePath)), nil
}

func (n *Normalizer) PathToURL(path string) (string, error) {
	if err := n.configured("path-to-url"); err != nil {
		return "", err
	}
	url := strings.ReplaceAll(n.Normalize(path), n.basePath, n.baseURL)
	return strings.ReplaceAll(url, `\`, "/"), nil
}

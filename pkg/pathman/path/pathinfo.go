package path

import "strings"

// pathInfo splits a normalized path the way the classic pathinfo() does:
// "/a/b.tar.gz" has dirname "/a", basename "b.tar.gz", extension "gz" and
// filename "b.tar". A basename without a dot has no extension.
type pathInfo struct {
	dirname   string
	basename  string
	extension string
	filename  string
	hasExt    bool
}

func splitPathInfo(p string, sep byte) pathInfo {
	var info pathInfo
	if p == "" {
		return info
	}

	switch i := strings.LastIndexByte(p, sep); {
	case i < 0:
		info.dirname = "."
		info.basename = p
	case i == 0:
		info.dirname = string(sep)
		info.basename = p[1:]
	default:
		info.dirname = p[:i]
		info.basename = p[i+1:]
	}

	info.filename = info.basename
	if i := strings.LastIndexByte(info.basename, '.'); i >= 0 {
		info.hasExt = true
		info.extension = info.basename[i+1:]
		info.filename = info.basename[:i]
	}

	return info
}

// stem is the path with its extension (and the dot before it) removed.
func (info pathInfo) stem(p string) string {
	if !info.hasExt {
		return p
	}
	return p[:len(p)-len(info.extension)-1]
}

// suffix is the extension including its dot, or "".
func (info pathInfo) suffix() string {
	if !info.hasExt {
		return ""
	}
	return "." + info.extension
}

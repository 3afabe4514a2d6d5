package iconpath

import (
	"fmt"
	"net/url"
)

// FilePathFromURL accepts either a plain path or a file:// URL and returns
// the local path. Network URLs are rejected: the icon is always a local file.
func FilePathFromURL(urlString string) (string, error) {
	u, err := url.Parse(urlString)
	if err != nil {
		return urlString, nil
	}
	switch u.Scheme {
	case "":
		return urlString, nil
	case "file":
		if u.Host != "" && u.Host != "localhost" {
			return "", fmt.Errorf("'%s' points to a remote host '%s'", urlString, u.Host)
		}
		if u.Path == "" {
			return "", fmt.Errorf("'%s' has no path", urlString)
		}
		return u.Path, nil
	case "rtmp", "rtmps", "srt", "udp", "tcp", "http", "https", "rtsp", "webrtc":
		return "", fmt.Errorf("'%s' is not a local file", urlString)
	default:
		// e.g. a Windows drive letter
		return urlString, nil
	}
}

package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// A Resource wraps a streamable scene document or referenced file which may
// live on the local filesystem or behind an http/https URL.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Returns the lower-case extension of the resource path (including the dot).
func (r *Resource) Ext() string {
	return strings.ToLower(filepath.Ext(r.url.Path))
}

// Resolve pathToResource into a URL. If relTo is specified and pathToResource
// does not define a scheme, the result is generated by joining the base path of
// relTo and pathToResource.
func resolve(pathToResource string, relTo *Resource) (*url.URL, error) {
	u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	if u.Scheme != "" || relTo == nil || filepath.IsAbs(u.Path) {
		return u, nil
	}

	path := u.Path
	u, _ = url.Parse(relTo.url.String())
	prefix := u.Path
	if u.Scheme == "" {
		prefix, err = filepath.Abs(relTo.url.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", relTo.url.String(), err.Error())
		}
	}
	u.Path = filepath.Dir(prefix) + "/" + path
	return u, nil
}

// Create a new Resource data stream. Relative paths are resolved against relTo
// when it is not nil.
//
// The caller must close the returned Resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	u, err := resolve(pathToResource, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

// Check that pathToResource exists without reading its contents. Local files
// are stat'ed; remote resources receive a HEAD request.
func Exists(pathToResource string, relTo *Resource) error {
	u, err := resolve(pathToResource, relTo)
	if err != nil {
		return err
	}

	switch u.Scheme {
	case "":
		info, err := os.Stat(filepath.Clean(u.Path))
		if err != nil {
			return fmt.Errorf("resource: could not stat '%s': %s", u.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("resource: '%s' is a directory", u.Path)
		}
	case "http", "https":
		resp, err := http.Head(u.String())
		if err != nil {
			return fmt.Errorf("resource: could not fetch '%s': %s", u.String(), err)
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
	default:
		return fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, _ := url.Parse(name)
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}

package domain

import "fmt"

// ParameterError reports a parameter name outside the vocabulary.
// It is returned before any network or disk activity.
type ParameterError struct {
	Name string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("unrecognized query parameter %q", e.Name)
}

// NetworkError reports a failed GET: either a transport failure (StatusCode 0)
// or a non-2xx response from the service.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("usgs query %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("usgs query %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FileWriteError reports a failure persisting a result to Path.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write result to %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

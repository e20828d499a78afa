package feed

// TransportError indicates the remote playlist fetch failed.
// The underlying network error is available via errors.Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "feed: fetch playlist: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// StorageError indicates the bulk upsert into the local store failed.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "feed: store videos: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

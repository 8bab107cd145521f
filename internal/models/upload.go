package models

// FileUpload is a fully-read multipart file payload, parsed once at the HTTP
// boundary and passed down to validation and the asset store.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Size returns the payload size in bytes.
func (f *FileUpload) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Content))
}

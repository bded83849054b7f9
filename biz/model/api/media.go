// Package api provides API request/response models for media management.
package api

// MediaAsset represents an uploaded media asset.
type MediaAsset struct {
	FileId      string `json:"file_id,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
	Url         string `json:"url,omitempty"`
	Remark      string `json:"remark,omitempty"`
	StorageType string `json:"storage_type,omitempty"`
}

// MediaExistsResponse reports whether a stored object is still present in
// the storage backend.
type MediaExistsResponse struct {
	FileId string `json:"file_id"`
	Exists bool   `json:"exists"`
}
